package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns false, nil on a plain mismatch and a non-nil error only
	// when the stored hash cannot be decoded.
	Verify(password, hash string) (bool, error)
}

// TokenIssuer signs and verifies the short-lived tokens handed out at login.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns the token subject, or a domain errors.AuthError with a
	// reason of expired, invalid, or malformed.
	Verify(token string) (string, error)
}
