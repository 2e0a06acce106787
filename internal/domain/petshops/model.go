package petshops

import "time"

// Shop representa un petshop registrado. Se identifica por su CNPJ (único).
type Shop struct {
	ID    string
	Name  string
	TaxID string // CNPJ, formato XX.XXX.XXX/0001-XX

	CreatedAt time.Time
}
