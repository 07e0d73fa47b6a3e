package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

func directoryWithAlice() *fakeDirectory {
	dir := newFakeDirectory()
	dir.users["alice"] = &domain.User{
		UserID:       "alice",
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: "hashed$secret123",
	}
	return dir
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	uc := NewLogin(directoryWithAlice(), &fakeHasher{}, &fakeIssuer{})

	result, err := uc.Execute(context.Background(), LoginInput{UserID: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice", result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	uc := NewLogin(directoryWithAlice(), &fakeHasher{}, &fakeIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{UserID: "alice", Password: "nope"})
	require.ErrorIs(t, err, domerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	uc := NewLogin(directoryWithAlice(), &fakeHasher{}, &fakeIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{UserID: "bob", Password: "secret123"})
	require.ErrorIs(t, err, domerrors.ErrInvalidCredentials,
		"unknown user and wrong password must be indistinguishable")
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	uc := NewLogin(directoryWithAlice(), &fakeHasher{}, &fakeIssuer{})

	for _, input := range []LoginInput{{}, {UserID: "alice"}, {Password: "secret123"}} {
		_, err := uc.Execute(context.Background(), input)
		assert.ErrorIs(t, err, domerrors.ErrValidation)
	}
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.users["alice"] = &domain.User{UserID: "alice", PasswordHash: "corrupted"}
	uc := NewLogin(dir, &fakeHasher{}, &fakeIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{UserID: "alice", Password: "secret123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domerrors.ErrInvalidCredentials,
		"corrupted storage is not a credential mismatch")
	assert.ErrorIs(t, err, domerrors.ErrMalformedCredential)
}
