package domain

import "time"

// Lodging is a row in the relational store, keyed to its owner by the numeric
// form of the owner's user identifier.
type Lodging struct {
	ID          string
	OwnerID     int
	Name        string
	Description string
	CreatedAt   time.Time
}
