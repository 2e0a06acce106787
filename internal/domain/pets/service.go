package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ProfileInput son los campos reemplazables de un pet (create y PUT).
type ProfileInput struct {
	Name                string
	Type                string
	Description         string
	VaccinationDeadline time.Time
}

func (s *Service) Create(ctx context.Context, shopID string, in ProfileInput) (Pet, error) {
	if strings.TrimSpace(shopID) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:                  uuid.NewString(),
		ShopID:              shopID,
		Name:                in.Name,
		Type:                in.Type,
		Description:         in.Description,
		Vaccinated:          false,
		VaccinationDeadline: in.VaccinationDeadline,
		CreatedAt:           s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, shopID string) ([]Pet, error) {
	return s.repo.ListByShop(ctx, shopID)
}

func (s *Service) GetByID(ctx context.Context, shopID, id string) (Pet, error) {
	return s.repo.GetByID(ctx, shopID, id)
}

// Update reemplaza el perfil completo. Si el pet no existe no se modifica nada.
func (s *Service) Update(ctx context.Context, shopID, id string, in ProfileInput) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.UpdateProfile(ctx, Pet{
		ID:                  id,
		ShopID:              shopID,
		Name:                in.Name,
		Type:                in.Type,
		Description:         in.Description,
		VaccinationDeadline: in.VaccinationDeadline,
	})
}

// MarkVaccinated es idempotente.
func (s *Service) MarkVaccinated(ctx context.Context, shopID, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.MarkVaccinated(ctx, shopID, id)
}

// Delete borra el pet y devuelve los restantes del petshop.
func (s *Service) Delete(ctx context.Context, shopID, id string) ([]Pet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	if err := s.repo.Delete(ctx, shopID, id); err != nil {
		return nil, err
	}
	return s.repo.ListByShop(ctx, shopID)
}
