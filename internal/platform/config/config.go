package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio.
//
// Fuentes (en orden de prioridad): env vars, archivo opcional (CONFIG_FILE), defaults.
type Config struct {
	Port    string
	AppName string

	LogLevel  string
	LogFormat string

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DBDSN string

	// RequireUsername exige el header "username" además del CNPJ.
	RequireUsername bool

	CORSAllowedOrigins []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_NAME", "petshop-registry")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("REQUIRE_USERNAME", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// Load lee la configuración. Si CONFIG_FILE está definido, el archivo debe existir.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:               strings.TrimPrefix(strings.TrimSpace(v.GetString("PORT")), ":"),
		AppName:            strings.TrimSpace(v.GetString("APP_NAME")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		DBDSN:              strings.TrimSpace(v.GetString("DB_DSN")),
		RequireUsername:    v.GetBool("REQUIRE_USERNAME"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ReadTimeout:        v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:       v.GetDuration("WRITE_TIMEOUT"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.Port == "" {
		return Config{}, errors.New("config: PORT is empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("config: timeouts must be positive")
	}

	return cfg, nil
}

// Addr devuelve la dirección para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
