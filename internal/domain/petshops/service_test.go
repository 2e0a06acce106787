package petshops

import (
	"context"
	"errors"
	"testing"
	"time"

	"petshop-registry/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Shop
	err   error
}

func (r *testRepo) Create(ctx context.Context, s Shop) error {
	if r.err != nil {
		return r.err
	}
	for _, it := range r.items {
		if it.TaxID == s.TaxID {
			return ErrDuplicateTaxID
		}
	}
	r.items = append(r.items, s)
	return nil
}

func (r *testRepo) GetByTaxID(ctx context.Context, taxID string) (Shop, error) {
	if r.err != nil {
		return Shop{}, r.err
	}
	for _, it := range r.items {
		if it.TaxID == taxID {
			return it, nil
		}
	}
	return Shop{}, ErrNotFound
}

// -------------------------
// Tests
// -------------------------

func TestValidTaxID(t *testing.T) {
	cases := map[string]bool{
		"11.222.333/0001-44":  true,
		"00.000.000/0001-00":  true,
		"11.222.333/0002-44":  false,
		"112223330001-44":     false,
		"11.222.333/0001-4":   false,
		" 11.222.333/0001-44": false,
		"aa.bbb.ccc/0001-dd":  false,
		"":                    false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidTaxID(in), "ValidTaxID(%q)", in)
	}
}

func TestService_Register_ThenResolve(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	shop, err := svc.Register(context.Background(), RegisterInput{Name: "Pet Feliz", TaxID: "11.222.333/0001-44"})
	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, now, shop.CreatedAt)

	acc, err := svc.ResolveAccount(context.Background(), "11.222.333/0001-44")
	require.NoError(t, err)
	assert.Equal(t, auth.Account{ShopID: shop.ID, ShopName: "Pet Feliz", TaxID: "11.222.333/0001-44"}, acc)
}

func TestService_Register_InvalidFormat_DoesNotMutate(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "X", TaxID: "11.222.333/0002-44"})
	assert.ErrorIs(t, err, ErrInvalidTaxID)
	assert.Empty(t, repo.items)
}

func TestService_Register_Duplicate(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", TaxID: "11.222.333/0001-44"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", TaxID: "11.222.333/0001-44"})
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
	assert.Len(t, repo.items, 1)
}

func TestService_ResolveAccount_Errors(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	_, err := svc.ResolveAccount(ctx, "112223330001-44")
	assert.ErrorIs(t, err, auth.ErrInvalidTaxID)

	_, err = svc.ResolveAccount(ctx, "11.222.333/0001-44")
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)

	boom := errors.New("db down")
	svc = NewService(&testRepo{err: boom})
	_, err = svc.ResolveAccount(ctx, "11.222.333/0001-44")
	assert.ErrorIs(t, err, boom)
}
