// Package respond centraliza las respuestas JSON.
// Antes writeJSON estaba duplicado por módulo; con middleware + petshops + pets ya conviene extraerlo.
package respond

import (
	"encoding/json"
	"net/http"
)

// MsgInternal es el mensaje genérico para errores inesperados.
const MsgInternal = "Erro interno do servidor."

// ErrorBody es el formato de todos los errores de la API.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error escribe {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, MsgInternal)
}
