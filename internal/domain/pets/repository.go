package pets

import "context"

// Repository guarda las mascotas por petshop, en orden de inserción.
// Todas las operaciones están acotadas a shopID y devuelven ErrNotFound
// si el pet no existe en ese petshop.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, shopID, id string) (Pet, error)
	ListByShop(ctx context.Context, shopID string) ([]Pet, error)

	// UpdateProfile pisa name, type, description y vaccination deadline.
	// Vaccinated y CreatedAt no se tocan.
	UpdateProfile(ctx context.Context, p Pet) (Pet, error)
	MarkVaccinated(ctx context.Context, shopID, id string) (Pet, error)

	Delete(ctx context.Context, shopID, id string) error
}
