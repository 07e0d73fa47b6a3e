package lodging

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

type fakeLodgingStore struct {
	rows      []domain.Lodging
	insertErr error
}

func (s *fakeLodgingStore) Insert(_ context.Context, l *domain.Lodging) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.rows = append(s.rows, *l)
	return nil
}

func (s *fakeLodgingStore) FindByOwner(_ context.Context, ownerID int) ([]domain.Lodging, error) {
	out := []domain.Lodging{}
	for _, l := range s.rows {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeAppender struct {
	appended  map[string][]string
	appendErr error
}

func (d *fakeAppender) Create(context.Context, *domain.User) (string, error) {
	panic("not used")
}

func (d *fakeAppender) FindByID(context.Context, string, bool) (*domain.User, error) {
	panic("not used")
}

func (d *fakeAppender) AppendOwnedLodging(_ context.Context, userID, lodgingID string) error {
	if d.appendErr != nil {
		return d.appendErr
	}
	if d.appended == nil {
		d.appended = make(map[string][]string)
	}
	d.appended[userID] = append(d.appended[userID], lodgingID)
	return nil
}

func TestCreate_InsertsRowAndLinksOwner(t *testing.T) {
	t.Parallel()

	store := &fakeLodgingStore{}
	dir := &fakeAppender{}
	uc := NewCreate(store, dir, zerolog.Nop())

	l, err := uc.Execute(context.Background(), CreateInput{OwnerID: "42", Name: "Cabin"})
	require.NoError(t, err)
	require.NotEmpty(t, l.ID)
	assert.Equal(t, 42, l.OwnerID)

	require.Len(t, store.rows, 1)
	assert.Equal(t, l.ID, store.rows[0].ID)
	require.Len(t, dir.appended["42"], 1)
	assert.Equal(t, l.ID, dir.appended["42"][0], "the linked id must be the inserted row's id")
}

func TestCreate_AppendFailureDoesNotFailCreation(t *testing.T) {
	t.Parallel()

	store := &fakeLodgingStore{}
	dir := &fakeAppender{appendErr: domerrors.ErrUserNotFound}
	uc := NewCreate(store, dir, zerolog.Nop())

	l, err := uc.Execute(context.Background(), CreateInput{OwnerID: "42", Name: "Cabin"})
	require.NoError(t, err, "denormalization is best-effort; the row is the source of truth")
	require.Len(t, store.rows, 1)
	assert.Equal(t, l.ID, store.rows[0].ID)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	uc := NewCreate(&fakeLodgingStore{}, &fakeAppender{}, zerolog.Nop())

	cases := []CreateInput{
		{},
		{OwnerID: "42"},
		{Name: "Cabin"},
		{OwnerID: "not-a-number", Name: "Cabin"},
	}
	for _, input := range cases {
		_, err := uc.Execute(context.Background(), input)
		assert.ErrorIs(t, err, domerrors.ErrValidation)
	}
}

func TestCreate_InsertFailureSkipsLink(t *testing.T) {
	t.Parallel()

	store := &fakeLodgingStore{insertErr: errors.New("connection refused")}
	dir := &fakeAppender{}
	uc := NewCreate(store, dir, zerolog.Nop())

	_, err := uc.Execute(context.Background(), CreateInput{OwnerID: "42", Name: "Cabin"})
	require.Error(t, err)
	assert.Empty(t, dir.appended, "no link may be written for a row that does not exist")
}
