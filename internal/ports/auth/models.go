package auth

// Account representa la cuenta (petshop) resuelta desde los headers.
type Account struct {
	ShopID   string
	ShopName string
	TaxID    string

	// Username solo viene si el request lo envió.
	Username string
}
