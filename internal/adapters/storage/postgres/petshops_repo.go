package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petshop-registry/internal/domain/petshops"
)

type PetshopsRepo struct {
	db *sql.DB
}

func NewPetshopsRepo(db *sql.DB) *PetshopsRepo {
	return &PetshopsRepo{db: db}
}

// Create depende del UNIQUE(cnpj) para detectar duplicados de forma atómica.
func (r *PetshopsRepo) Create(ctx context.Context, s petshops.Shop) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO petshops (id, name, cnpj, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		s.ID,
		s.Name,
		s.TaxID,
		s.CreatedAt,
	)
	if isUniqueViolation(err) {
		return petshops.ErrDuplicateTaxID
	}
	return err
}

func (r *PetshopsRepo) GetByTaxID(ctx context.Context, taxID string) (petshops.Shop, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, cnpj, created_at
		FROM petshops
		WHERE cnpj = $1
	`, taxID)

	var s petshops.Shop
	if err := row.Scan(&s.ID, &s.Name, &s.TaxID, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return petshops.Shop{}, petshops.ErrNotFound
		}
		return petshops.Shop{}, err
	}
	return s, nil
}
