package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

// fakeDirectory is an in-memory ports.UserDirectory keyed by UserID.
type fakeDirectory struct {
	users     map[string]*domain.User
	createErr error
	findErr   error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{users: make(map[string]*domain.User)}
}

func (d *fakeDirectory) Create(_ context.Context, user *domain.User) (string, error) {
	if d.createErr != nil {
		return "", d.createErr
	}
	if _, exists := d.users[user.UserID]; exists {
		return "", domerrors.ErrDuplicateUser
	}
	stored := *user
	d.users[user.UserID] = &stored
	return fmt.Sprintf("oid-%d", len(d.users)), nil
}

func (d *fakeDirectory) FindByID(_ context.Context, userID string, includeCredential bool) (*domain.User, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	stored, ok := d.users[userID]
	if !ok {
		return nil, nil
	}
	u := *stored
	if !includeCredential {
		u.PasswordHash = ""
	}
	return &u, nil
}

func (d *fakeDirectory) AppendOwnedLodging(_ context.Context, userID, lodgingID string) error {
	stored, ok := d.users[userID]
	if !ok {
		return domerrors.ErrUserNotFound
	}
	if !stored.OwnsLodging(lodgingID) {
		stored.Lodgings = append(stored.Lodgings, lodgingID)
	}
	return nil
}

// fakeHasher marks hashes with a prefix so tests can assert that plaintext
// never reaches the directory.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed$" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) (bool, error) {
	if !strings.HasPrefix(hash, "hashed$") {
		return false, domerrors.ErrMalformedCredential
	}
	return hash == "hashed$"+password, nil
}

type fakeIssuer struct {
	issueErr error
}

func (i *fakeIssuer) Issue(userID string) (string, error) {
	if i.issueErr != nil {
		return "", i.issueErr
	}
	return "token-for-" + userID, nil
}

func (i *fakeIssuer) Verify(token string) (string, error) {
	subject, ok := strings.CutPrefix(token, "token-for-")
	if !ok {
		return "", domerrors.NewAuthError(domerrors.ReasonInvalid)
	}
	return subject, nil
}
