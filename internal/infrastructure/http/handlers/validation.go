package handlers

import "strings"

// Validation limits.
const (
	MaxUserIDLength   = 64
	MaxNameLength     = 128
	MaxEmailLength    = 254
	MaxPasswordLength = 128
)

// SanitizeUserID trims the identifier; returns empty if over max length.
func SanitizeUserID(userID string) string {
	s := strings.TrimSpace(userID)
	if len(s) > MaxUserIDLength {
		return ""
	}
	return s
}

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizePassword trims password; returns empty if over max length.
func SanitizePassword(password string) string {
	s := strings.TrimSpace(password)
	if len(s) > MaxPasswordLength {
		return ""
	}
	return s
}
