package domain

import "time"

// User is the canonical identity record kept in the document store.
// StorageID is the store-assigned identity; UserID is the application-assigned
// identifier, unique and immutable after creation.
type User struct {
	StorageID    string
	UserID       string
	Name         string
	Email        string
	PasswordHash string // empty when the record was loaded without credential
	Lodgings     []string
	CreatedAt    time.Time
}

// OwnsLodging reports whether the denormalized lodging list contains id.
// The list is a best-effort cache; authoritative ownership lives in the
// relational store.
func (u *User) OwnsLodging(id string) bool {
	for _, l := range u.Lodgings {
		if l == id {
			return true
		}
	}
	return false
}
