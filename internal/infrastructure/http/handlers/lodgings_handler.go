package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/OSU-CS493-Sp18/auth/internal/application/lodging"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

// LodgingsHandler handles POST /lodgings, the creation event that drives the
// ownership-link denormalization.
type LodgingsHandler struct {
	create   *lodging.Create
	validate *validator.Validate
	log      zerolog.Logger
}

func NewLodgingsHandler(create *lodging.Create, log zerolog.Logger) *LodgingsHandler {
	return &LodgingsHandler{create: create, validate: validator.New(), log: log}
}

// Create handles POST /lodgings.
func (h *LodgingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OwnerID     string `json:"ownerID" validate:"required,max=64"`
		Name        string `json:"name" validate:"required,max=255"`
		Description string `json:"description" validate:"max=4096"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request doesn't contain a valid lodging")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request doesn't contain a valid lodging")
		return
	}
	result, err := h.create.Execute(r.Context(), lodging.CreateInput{
		OwnerID:     body.OwnerID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrValidation) {
			writeErr(w, http.StatusBadRequest, "request doesn't contain a valid lodging")
			return
		}
		h.log.Error().Err(err).Msg("create lodging failed")
		writeErr(w, http.StatusInternalServerError, "failed to insert new lodging")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id": result.ID,
		"links": map[string]string{
			"lodgings": fmt.Sprintf("/users/%d/lodgings", result.OwnerID),
		},
	})
}
