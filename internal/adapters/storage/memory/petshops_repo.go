package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petshop-registry/internal/domain/petshops"
)

type petshopRepo struct {
	mu      sync.RWMutex
	ordered []petshops.Shop
	byTaxID map[string]int // índice en ordered
}

func NewPetshopRepo() petshops.Repository {
	return &petshopRepo{
		byTaxID: make(map[string]int),
	}
}

// Create chequea unicidad e inserta bajo el mismo lock.
func (r *petshopRepo) Create(ctx context.Context, s petshops.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("petshop id required")
	}
	if _, exists := r.byTaxID[s.TaxID]; exists {
		return petshops.ErrDuplicateTaxID
	}

	r.byTaxID[s.TaxID] = len(r.ordered)
	r.ordered = append(r.ordered, s)
	return nil
}

func (r *petshopRepo) GetByTaxID(ctx context.Context, taxID string) (petshops.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byTaxID[taxID]
	if !ok {
		return petshops.Shop{}, petshops.ErrNotFound
	}
	return r.ordered[i], nil
}

// Len devuelve la cantidad de petshops registrados.
func (r *petshopRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
