package pets

import "time"

// Pet pertenece a un único petshop durante toda su vida.
type Pet struct {
	ID     string
	ShopID string

	Name        string
	Type        string // especie/categoría libre
	Description string

	// Vaccinated solo pasa de false a true.
	Vaccinated          bool
	VaccinationDeadline time.Time

	CreatedAt time.Time
}
