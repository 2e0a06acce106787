package auth

import "errors"

// Errores que un AccountResolver debe devolver para que el middleware responda 400/404.
var (
	ErrInvalidTaxID    = errors.New("invalid tax id format")
	ErrAccountNotFound = errors.New("account not found")
)
