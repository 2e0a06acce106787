package petshops

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Solo formato; no se valida dígito verificador.
var taxIDPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/0001-\d{2}$`)

// ValidTaxID informa si el CNPJ cumple el formato XX.XXX.XXX/0001-XX.
func ValidTaxID(s string) bool {
	return taxIDPattern.MatchString(s)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return ValidTaxID(fl.Field().String())
	})
	return v
}
