package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrValidation          = errors.New("invalid or incomplete request data")
	ErrInvalidCredentials  = errors.New("invalid user ID or password")
	ErrDuplicateUser       = errors.New("user ID already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrStorageUnavailable  = errors.New("storage backend unavailable")
	ErrMalformedCredential = errors.New("malformed credential hash")
)

// AuthReason distinguishes why token verification failed. Clients see all of
// them as 401; the reason is kept for logs and metrics.
type AuthReason string

const (
	ReasonExpired   AuthReason = "expired"
	ReasonInvalid   AuthReason = "invalid"
	ReasonMalformed AuthReason = "malformed"
)

// AuthError is a failed token verification with its reason.
type AuthError struct {
	Reason AuthReason
}

func (e *AuthError) Error() string {
	return "authentication failed: " + string(e.Reason)
}

// NewAuthError returns an AuthError with the given reason.
func NewAuthError(reason AuthReason) *AuthError {
	return &AuthError{Reason: reason}
}

// AuthReasonOf extracts the reason when err is an AuthError.
func AuthReasonOf(err error) (AuthReason, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Reason, true
	}
	return "", false
}
