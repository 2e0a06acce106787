package auth

import "context"

// AccountResolver busca la cuenta por CNPJ o devuelve error.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, taxID string) (Account, error)
}
