package petshops

import "context"

// Repository debe garantizar unicidad de TaxID de forma atómica:
// Create devuelve ErrDuplicateTaxID si ya existe.
type Repository interface {
	Create(ctx context.Context, s Shop) error
	GetByTaxID(ctx context.Context, taxID string) (Shop, error)
}
