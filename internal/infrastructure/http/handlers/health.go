package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// HealthHandler serves /health with document-store and relational checks.
type HealthHandler struct {
	pool  *pgxpool.Pool
	mongo *mongo.Client
}

// NewHealthHandler creates a health handler over both backends.
func NewHealthHandler(pool *pgxpool.Pool, mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{pool: pool, mongo: mongoClient}
}

type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Message string            `json:"message,omitempty"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]string)
	allOK := true

	if err := h.pool.Ping(ctx); err != nil {
		checks["database"] = "down: " + err.Error()
		allOK = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.mongo.Ping(ctx, nil); err != nil {
		checks["documents"] = "down: " + err.Error()
		allOK = false
	} else {
		checks["documents"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if !allOK {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "unhealthy",
			Checks:  checks,
			Message: "one or more checks failed",
		})
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status: "ok",
		Checks: checks,
	})
}
