package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petshop-registry/internal/middleware"
	"petshop-registry/internal/platform/logger"
	"petshop-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	MsgInvalidBody     = "Corpo da requisição inválido."
	MsgInvalidDeadline = "O campo deadline_vaccination deve estar no formato YYYY-MM-DD ou RFC3339."
	MsgPetNotFound     = "Pet não encontrado."
)

// RegisterRoutes monta /pets detrás del middleware de cuenta (account).
func RegisterRoutes(r chi.Router, svc *Service, account func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Use(account)

		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Patch("/{petID}/vaccinated", vaccinatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petRequest es el cuerpo de POST /pets y PUT /pets/{id}.
type petRequest struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Description         string `json:"description"`
	DeadlineVaccination string `json:"deadline_vaccination" example:"2026-12-31"`
}

// petResponse representa un pet devuelto por la API.
type petResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	Description         string    `json:"description"`
	Vaccinated          bool      `json:"vaccinated"`
	DeadlineVaccination time.Time `json:"deadline_vaccination"`
	CreatedAt           time.Time `json:"created_at"`
}

// createPetHandler godoc
// @Summary Registrar pet
// @Description Registra un pet en el petshop identificado por el header `cnpj`. Nace con vaccinated=false.
// @Tags pets
// @Accept json
// @Produce json
// @Param cnpj header string true "CNPJ del petshop (XX.XXX.XXX/0001-XX)"
// @Param username header string false "Usuario (obligatorio si REQUIRE_USERNAME=true)"
// @Param payload body petRequest true "Datos del pet; deadline_vaccination YYYY-MM-DD o RFC3339"
// @Success 201 {object} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "petshop no encontrado"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			respond.Internal(w)
			return
		}

		in, msg := decodeProfile(r)
		if msg != "" {
			respond.Error(w, http.StatusBadRequest, msg)
			return
		}

		p, err := svc.Create(r.Context(), acc.ShopID, in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		log.Info("pet created", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"petshop_id": acc.ShopID,
			"pet_id":     p.ID,
		})
		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar pets
// @Description Devuelve todos los pets del petshop, en orden de registro.
// @Tags pets
// @Produce json
// @Param cnpj header string true "CNPJ del petshop"
// @Param username header string false "Usuario"
// @Success 200 {array} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			respond.Internal(w)
			return
		}

		items, err := svc.List(r.Context(), acc.ShopID)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

// updatePetHandler godoc
// @Summary Actualizar pet
// @Description Reemplaza name, type, description y deadline_vaccination. vaccinated y created_at no cambian.
// @Tags pets
// @Accept json
// @Produce json
// @Param cnpj header string true "CNPJ del petshop"
// @Param username header string false "Usuario"
// @Param petID path string true "ID del pet"
// @Param payload body petRequest true "Datos del pet"
// @Success 200 {object} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "petshop o pet no encontrado"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			respond.Internal(w)
			return
		}

		in, msg := decodeProfile(r)
		if msg != "" {
			respond.Error(w, http.StatusBadRequest, msg)
			return
		}

		p, err := svc.Update(r.Context(), acc.ShopID, chi.URLParam(r, "petID"), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// vaccinatePetHandler godoc
// @Summary Marcar pet como vacunado
// @Description Setea vaccinated=true. Idempotente.
// @Tags pets
// @Produce json
// @Param cnpj header string true "CNPJ del petshop"
// @Param username header string false "Usuario"
// @Param petID path string true "ID del pet"
// @Success 200 {object} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID}/vaccinated [patch]
func vaccinatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			respond.Internal(w)
			return
		}

		p, err := svc.MarkVaccinated(r.Context(), acc.ShopID, chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar pet
// @Description Borra el pet y devuelve los pets restantes del petshop.
// @Tags pets
// @Produce json
// @Param cnpj header string true "CNPJ del petshop"
// @Param username header string false "Usuario"
// @Param petID path string true "ID del pet"
// @Success 200 {array} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			respond.Internal(w)
			return
		}

		remaining, err := svc.Delete(r.Context(), acc.ShopID, chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toPetResponses(remaining))
	}
}

// decodeProfile devuelve un mensaje de error para el cliente si el body no sirve.
func decodeProfile(r *http.Request) (ProfileInput, string) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ProfileInput{}, MsgInvalidBody
	}

	deadline, err := parseDeadline(req.DeadlineVaccination)
	if err != nil {
		return ProfileInput{}, MsgInvalidDeadline
	}

	return ProfileInput{
		Name:                req.Name,
		Type:                req.Type,
		Description:         req.Description,
		VaccinationDeadline: deadline,
	}, ""
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, MsgPetNotFound)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, MsgInvalidBody)
	default:
		log.Error("pets: unexpected error", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"err":        err.Error(),
		})
		respond.Internal(w)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Type:                p.Type,
		Description:         p.Description,
		Vaccinated:          p.Vaccinated,
		DeadlineVaccination: p.VaccinationDeadline,
		CreatedAt:           p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
