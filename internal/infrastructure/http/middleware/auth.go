package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

// AuthValidator verifies the bearer token and sets the subject in context
// (see SubjectFromContext).
type AuthValidator struct {
	issuer ports.TokenIssuer
}

func NewAuthValidator(issuer ports.TokenIssuer) *AuthValidator {
	return &AuthValidator{issuer: issuer}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeUnauthorized(w, "missing or invalid authorization")
			return
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")
		userID, err := m.issuer.Verify(tokenString)
		if err != nil {
			// Expired, forged, and malformed all look the same to the
			// client; the reason stays available for metrics.
			if reason, ok := domerrors.AuthReasonOf(err); ok {
				RecordAuthAttempt("token_"+string(reason), false)
			}
			writeUnauthorized(w, "invalid token")
			return
		}
		ctx := WithSubject(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": "unauthorized"})
}
