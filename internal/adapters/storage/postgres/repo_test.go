package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"petshop-registry/internal/domain/pets"
	"petshop-registry/internal/domain/petshops"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var petCols = []string{"id", "petshop_id", "name", "type", "description", "vaccinated", "deadline_vaccination", "created_at"}

func TestPetshopsRepo_Create_DuplicateMapsToDomainError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetshopsRepo(db)

	mock.ExpectExec(`INSERT INTO petshops`).
		WithArgs("s-1", "Pet Feliz", "11.222.333/0001-44", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := repo.Create(context.Background(), petshops.Shop{
		ID:        "s-1",
		Name:      "Pet Feliz",
		TaxID:     "11.222.333/0001-44",
		CreatedAt: time.Now(),
	})

	assert.ErrorIs(t, err, petshops.ErrDuplicateTaxID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetshopsRepo_GetByTaxID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetshopsRepo(db)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, cnpj, created_at\s+FROM petshops`).
		WithArgs("11.222.333/0001-44").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cnpj", "created_at"}).
			AddRow("s-1", "Pet Feliz", "11.222.333/0001-44", created))

	got, err := repo.GetByTaxID(context.Background(), "11.222.333/0001-44")
	require.NoError(t, err)
	assert.Equal(t, petshops.Shop{ID: "s-1", Name: "Pet Feliz", TaxID: "11.222.333/0001-44", CreatedAt: created}, got)

	mock.ExpectQuery(`FROM petshops`).
		WithArgs("99.222.333/0001-44").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByTaxID(context.Background(), "99.222.333/0001-44")
	assert.ErrorIs(t, err, petshops.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_ListByShop_OrdersBySeq(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetsRepo(db)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM pets\s+WHERE petshop_id = \$1\s+ORDER BY seq ASC`).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows(petCols).
			AddRow("A", "shop-1", "Rex", "dog", "", false, now, now).
			AddRow("C", "shop-1", "Mia", "cat", "", true, now, now))

	items, err := repo.ListByShop(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "C", items[1].ID)
	assert.True(t, items[1].Vaccinated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_MarkVaccinated_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`UPDATE pets\s+SET vaccinated = TRUE`).
		WithArgs("shop-1", "missing").
		WillReturnRows(sqlmock.NewRows(petCols))

	_, err := repo.MarkVaccinated(context.Background(), "shop-1", "missing")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_UpdateProfile_ReturnsStoredRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetsRepo(db)
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE pets\s+SET\s+name = \$3`).
		WithArgs("shop-1", "A", "Rex II", "dog", "caramelo", deadline).
		WillReturnRows(sqlmock.NewRows(petCols).
			AddRow("A", "shop-1", "Rex II", "dog", "caramelo", true, deadline, created))

	got, err := repo.UpdateProfile(context.Background(), pets.Pet{
		ID:                  "A",
		ShopID:              "shop-1",
		Name:                "Rex II",
		Type:                "dog",
		Description:         "caramelo",
		VaccinationDeadline: deadline,
	})
	require.NoError(t, err)
	assert.True(t, got.Vaccinated)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetsRepo(db)

	mock.ExpectExec(`DELETE FROM pets`).
		WithArgs("shop-1", "B").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM pets`).
		WithArgs("shop-1", "B").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "shop-1", "B"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "shop-1", "B"), pets.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS petshops`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS petshops`).WillReturnError(errors.New("boom"))
	assert.Error(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
