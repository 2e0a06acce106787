package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petshop-registry/internal/domain/pets"
)

const petColumns = `id, petshop_id, name, type, description, vaccinated, deadline_vaccination, created_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.ShopID,
		p.Name,
		p.Type,
		p.Description,
		p.Vaccinated,
		p.VaccinationDeadline,
		p.CreatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, shopID, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE petshop_id = $1 AND id = $2
	`, shopID, id)
	return scanPet(row)
}

// ListByShop ordena por seq (orden de inserción).
func (r *PetsRepo) ListByShop(ctx context.Context, shopID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE petshop_id = $1
		ORDER BY seq ASC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET
			name = $3,
			type = $4,
			description = $5,
			deadline_vaccination = $6
		WHERE petshop_id = $1 AND id = $2
		RETURNING `+petColumns,
		p.ShopID,
		p.ID,
		p.Name,
		p.Type,
		p.Description,
		p.VaccinationDeadline,
	)
	return scanPet(row)
}

func (r *PetsRepo) MarkVaccinated(ctx context.Context, shopID, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET vaccinated = TRUE
		WHERE petshop_id = $1 AND id = $2
		RETURNING `+petColumns,
		shopID,
		id,
	)
	return scanPet(row)
}

func (r *PetsRepo) Delete(ctx context.Context, shopID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE petshop_id = $1 AND id = $2
	`, shopID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	if err := s.Scan(
		&p.ID,
		&p.ShopID,
		&p.Name,
		&p.Type,
		&p.Description,
		&p.Vaccinated,
		&p.VaccinationDeadline,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}
