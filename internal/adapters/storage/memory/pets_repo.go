package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petshop-registry/internal/domain/pets"
)

// shopPets es la colección ordenada de un petshop, con su propio lock.
type shopPets struct {
	mu    sync.Mutex
	items []pets.Pet
}

type petRepo struct {
	mu     sync.RWMutex
	byShop map[string]*shopPets
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byShop: make(map[string]*shopPets),
	}
}

// shop devuelve la colección del petshop; si create es false y no existe devuelve nil.
func (r *petRepo) shop(shopID string, create bool) *shopPets {
	r.mu.RLock()
	sp, ok := r.byShop[shopID]
	r.mu.RUnlock()
	if ok || !create {
		return sp
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sp, ok = r.byShop[shopID]; ok {
		return sp
	}
	sp = &shopPets{}
	r.byShop[shopID] = sp
	return sp
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.ShopID) == "" {
		return errors.New("pet id and shop id required")
	}

	sp := r.shop(p.ShopID, true)
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.indexOf(p.ID) >= 0 {
		return errors.New("pet already exists")
	}
	sp.items = append(sp.items, p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, shopID, id string) (pets.Pet, error) {
	sp := r.shop(shopID, false)
	if sp == nil {
		return pets.Pet{}, pets.ErrNotFound
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	i := sp.indexOf(id)
	if i < 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return sp.items[i], nil
}

func (r *petRepo) ListByShop(ctx context.Context, shopID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)

	sp := r.shop(shopID, false)
	if sp == nil {
		return out, nil
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	return append(out, sp.items...), nil
}

func (r *petRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	return r.modify(p.ShopID, p.ID, func(cur *pets.Pet) {
		cur.Name = p.Name
		cur.Type = p.Type
		cur.Description = p.Description
		cur.VaccinationDeadline = p.VaccinationDeadline
	})
}

func (r *petRepo) MarkVaccinated(ctx context.Context, shopID, id string) (pets.Pet, error) {
	return r.modify(shopID, id, func(cur *pets.Pet) {
		cur.Vaccinated = true
	})
}

func (r *petRepo) Delete(ctx context.Context, shopID, id string) error {
	sp := r.shop(shopID, false)
	if sp == nil {
		return pets.ErrNotFound
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	i := sp.indexOf(id)
	if i < 0 {
		return pets.ErrNotFound
	}
	sp.items = append(sp.items[:i], sp.items[i+1:]...)
	return nil
}

func (r *petRepo) modify(shopID, id string, fn func(*pets.Pet)) (pets.Pet, error) {
	sp := r.shop(shopID, false)
	if sp == nil {
		return pets.Pet{}, pets.ErrNotFound
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	i := sp.indexOf(id)
	if i < 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	fn(&sp.items[i])
	return sp.items[i], nil
}

// indexOf requiere sp.mu tomado. -1 si no existe.
func (sp *shopPets) indexOf(id string) int {
	for i := range sp.items {
		if sp.items[i].ID == id {
			return i
		}
	}
	return -1
}
