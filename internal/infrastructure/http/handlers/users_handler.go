package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/OSU-CS493-Sp18/auth/internal/application/auth"
	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http/middleware"
)

// UsersHandler handles /users/*: registration, login, profile fetch, and the
// authoritative lodging listing.
type UsersHandler struct {
	register  *auth.Register
	login     *auth.Login
	directory ports.UserDirectory
	lodgings  ports.LodgingStore
	validate  *validator.Validate
	log       zerolog.Logger
}

func NewUsersHandler(register *auth.Register, login *auth.Login, directory ports.UserDirectory, lodgings ports.LodgingStore, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{
		register:  register,
		login:     login,
		directory: directory,
		lodgings:  lodgings,
		validate:  validator.New(),
		log:       log,
	}
}

// Create handles POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string `json:"userID" validate:"required,max=64"`
		Name     string `json:"name" validate:"required,max=128"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request doesn't contain a valid user")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request doesn't contain a valid user")
		return
	}
	userID := SanitizeUserID(body.UserID)
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if userID == "" || email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "request doesn't contain a valid user")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		UserID:   userID,
		Name:     body.Name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", userID, false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		switch {
		case errors.Is(err, domerrors.ErrValidation):
			writeErr(w, http.StatusBadRequest, "request doesn't contain a valid user")
		case errors.Is(err, domerrors.ErrDuplicateUser):
			writeErr(w, http.StatusConflict, "a user with that ID already exists")
		default:
			h.log.Error().Err(err).Msg("register failed")
			writeErr(w, http.StatusInternalServerError, "failed to insert new user")
		}
		return
	}
	AuditLog(h.log, r, "user.register", userID, true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id": result.StorageID,
		"links": map[string]string{
			"user": "/users/" + result.User.UserID,
		},
	})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string `json:"userID" validate:"required,max=64"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request needs a user ID and password")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "request needs a user ID and password")
		return
	}
	// Same sanitation as registration, so a password that was trimmed
	// before hashing verifies with the same bytes the user submitted.
	userID := SanitizeUserID(body.UserID)
	password := SanitizePassword(body.Password)
	if userID == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "request needs a user ID and password")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		UserID:   userID,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", userID, false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		switch {
		case errors.Is(err, domerrors.ErrValidation):
			writeErr(w, http.StatusBadRequest, "request needs a user ID and password")
		case errors.Is(err, domerrors.ErrInvalidCredentials):
			writeErrCode(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid credentials")
		default:
			h.log.Error().Err(err).Msg("login failed")
			writeErr(w, http.StatusInternalServerError, "failed to fetch user")
		}
		return
	}
	AuditLog(h.log, r, "user.login", userID, true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]string{"token": result.Token})
}

// userResponse is the JSON shape for a profile fetch. It has no credential
// field at all, so nothing can leak through serialization.
type userResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userID"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Lodgings  []string `json:"lodgings"`
	CreatedAt string   `json:"created_at"`
}

// Get handles GET /users/{userID}. Requires AuthValidator middleware; the
// token subject must match the requested identifier.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	subject := middleware.SubjectFromContext(r.Context())
	if subject == "" {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if subject != userID {
		writeErr(w, http.StatusForbidden, "unauthorized to access that resource")
		return
	}
	user, err := h.directory.FindByID(r.Context(), userID, false)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("fetch user failed")
		writeErr(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:        user.StorageID,
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Lodgings:  user.Lodgings,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

type lodgingResponse struct {
	ID          string `json:"id"`
	OwnerID     int    `json:"ownerID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Lodgings handles GET /users/{userID}/lodgings: the authoritative ownership
// read against the relational store, independent of the denormalized list.
func (h *UsersHandler) Lodgings(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "owner ID must be an integer")
		return
	}
	lodgings, err := h.lodgings.FindByOwner(r.Context(), ownerID)
	if err != nil {
		h.log.Error().Err(err).Int("owner_id", ownerID).Msg("fetch lodgings failed")
		writeErr(w, http.StatusInternalServerError, "unable to fetch lodgings")
		return
	}
	items := make([]lodgingResponse, 0, len(lodgings))
	for _, l := range lodgings {
		items = append(items, lodgingResponse{
			ID:          l.ID,
			OwnerID:     l.OwnerID,
			Name:        l.Name,
			Description: l.Description,
			CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"lodgings": items})
}
