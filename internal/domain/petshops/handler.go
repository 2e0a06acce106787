package petshops

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petshop-registry/internal/platform/logger"
	"petshop-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	MsgInvalidBody    = "Corpo da requisição inválido."
	MsgInvalidTaxID   = "O CNPJ informado não está no formato correto (XX.XXX.XXX/0001-XX)."
	MsgDuplicateTaxID = "Já existe um petshop com o CNPJ informado."
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/petshops", createPetshopHandler(svc, log))
}

// createPetshopRequest es el cuerpo para registrar un petshop.
type createPetshopRequest struct {
	Name string `json:"name"`
	CNPJ string `json:"cnpj" example:"11.222.333/0001-44"`
}

// petshopResponse es el petshop devuelto por la API. Pets siempre viene vacío al crear.
type petshopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Pets      []any     `json:"pets"`
	CreatedAt time.Time `json:"created_at"`
}

// createPetshopHandler godoc
// @Summary Registrar petshop
// @Description Registra un petshop. El CNPJ debe tener formato XX.XXX.XXX/0001-XX y no puede estar registrado.
// @Tags petshops
// @Accept json
// @Produce json
// @Param payload body createPetshopRequest true "Datos del petshop"
// @Success 201 {object} petshopResponse
// @Failure 400 {object} respond.ErrorBody "CNPJ inválido / duplicado / json inválido"
// @Failure 500 {object} respond.ErrorBody
// @Router /petshops [post]
func createPetshopHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetshopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}

		shop, err := svc.Register(r.Context(), RegisterInput{
			Name:  req.Name,
			TaxID: req.CNPJ,
		})
		switch {
		case errors.Is(err, ErrInvalidTaxID):
			respond.Error(w, http.StatusBadRequest, MsgInvalidTaxID)
			return
		case errors.Is(err, ErrDuplicateTaxID):
			respond.Error(w, http.StatusBadRequest, MsgDuplicateTaxID)
			return
		case err != nil:
			log.Error("erro ao criar petshop", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"err":        err.Error(),
			})
			respond.Internal(w)
			return
		}

		log.Info("petshop created", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"petshop_id": shop.ID,
		})
		respond.JSON(w, http.StatusCreated, toPetshopResponse(shop))
	}
}

func toPetshopResponse(s Shop) petshopResponse {
	return petshopResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.TaxID,
		Pets:      []any{},
		CreatedAt: s.CreatedAt,
	}
}
