package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"petshop-registry/internal/platform/logger"
	"petshop-registry/internal/platform/respond"
	"petshop-registry/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const accountKey ctxKey = "account"

const (
	HeaderTaxID    = "cnpj"
	HeaderUsername = "username"
)

const (
	MsgMissingTaxID    = "Informe o CNPJ no header da requisição corretamente."
	MsgMissingUsername = "Informe o username no header da requisição corretamente."
	MsgInvalidTaxID    = "O CNPJ informado não está no formato correto (XX.XXX.XXX/0001-XX)."
	MsgAccountNotFound = "Não foi possível encontrar petshop informado."
)

var (
	ErrMissingTaxID    = errors.New("missing tax id header")
	ErrMissingUsername = errors.New("missing username header")
)

type AccountOptions struct {
	// RequireUsername exige el header "username".
	RequireUsername bool
	Log             logger.Logger
}

// AccountContext resuelve el petshop a partir de los headers y lo deja en el context.
// Orden de validación: cnpj presente, username presente (si se exige), formato, existencia.
// Cualquier falla corta el request con {"error": ...}.
func AccountContext(resolver auth.AccountResolver, opts AccountOptions) func(http.Handler) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			taxID, username, err := accountHeaders(r, opts.RequireUsername)
			switch {
			case errors.Is(err, ErrMissingTaxID):
				respond.Error(w, http.StatusBadRequest, MsgMissingTaxID)
				return
			case errors.Is(err, ErrMissingUsername):
				respond.Error(w, http.StatusBadRequest, MsgMissingUsername)
				return
			}

			acc, err := resolver.ResolveAccount(r.Context(), taxID)
			switch {
			case errors.Is(err, auth.ErrInvalidTaxID):
				respond.Error(w, http.StatusBadRequest, MsgInvalidTaxID)
				return
			case errors.Is(err, auth.ErrAccountNotFound):
				respond.Error(w, http.StatusNotFound, accountNotFoundMessage(username, taxID))
				return
			case err != nil:
				log.Error("account resolve failed", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"err":        err.Error(),
				})
				respond.Internal(w)
				return
			}

			acc.Username = username
			ctx := context.WithValue(r.Context(), accountKey, acc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAccount(ctx context.Context) (auth.Account, bool) {
	v := ctx.Value(accountKey)
	if v == nil {
		return auth.Account{}, false
	}
	a, ok := v.(auth.Account)
	return a, ok
}

func accountHeaders(r *http.Request, requireUsername bool) (string, string, error) {
	taxID := r.Header.Get(HeaderTaxID)
	if strings.TrimSpace(taxID) == "" {
		return "", "", ErrMissingTaxID
	}

	username := strings.TrimSpace(r.Header.Get(HeaderUsername))
	if requireUsername && username == "" {
		return "", "", ErrMissingUsername
	}
	return taxID, username, nil
}

func accountNotFoundMessage(username, taxID string) string {
	if username == "" {
		return MsgAccountNotFound
	}
	return fmt.Sprintf("Não foi possível encontrar o petshop do usuário %s com o CNPJ %s.", username, taxID)
}
