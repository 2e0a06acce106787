package petshops

import (
	"context"
	"errors"
	"strings"
	"time"

	"petshop-registry/internal/ports/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidTaxID   = errors.New("invalid tax id format")
	ErrDuplicateTaxID = errors.New("tax id already registered")
	ErrNotFound       = errors.New("not found")
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: newValidator(),
		now:      time.Now,
	}
}

type RegisterInput struct {
	Name  string
	TaxID string `validate:"cnpj"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Shop, error) {
	if err := s.validate.Struct(in); err != nil {
		return Shop{}, ErrInvalidTaxID
	}

	shop := Shop{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		TaxID:     in.TaxID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return Shop{}, err
	}
	return shop, nil
}

// GetByTaxID busca por match exacto (case-sensitive).
func (s *Service) GetByTaxID(ctx context.Context, taxID string) (Shop, error) {
	if !ValidTaxID(taxID) {
		return Shop{}, ErrInvalidTaxID
	}
	return s.repo.GetByTaxID(ctx, taxID)
}

// ResolveAccount implementa auth.AccountResolver.
func (s *Service) ResolveAccount(ctx context.Context, taxID string) (auth.Account, error) {
	shop, err := s.GetByTaxID(ctx, taxID)
	switch {
	case errors.Is(err, ErrInvalidTaxID):
		return auth.Account{}, auth.ErrInvalidTaxID
	case errors.Is(err, ErrNotFound):
		return auth.Account{}, auth.ErrAccountNotFound
	case err != nil:
		return auth.Account{}, err
	}

	return auth.Account{
		ShopID:   shop.ID,
		ShopName: shop.Name,
		TaxID:    shop.TaxID,
	}, nil
}
