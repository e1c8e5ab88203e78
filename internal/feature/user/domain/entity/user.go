// Package entity defines the domain entities for the user feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents one registered account.
type User struct {
	// ID is the store-assigned document id.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// FirstName is provided at registration or derived from the
	// Google display name.
	FirstName string `bson:"firstName"`

	// LastName is provided at registration or derived from the
	// Google display name.
	LastName string `bson:"lastName"`

	// Age is a positive integer.
	Age int `bson:"age"`

	// Email is the trimmed, lower-cased uniqueness key.
	Email string `bson:"email"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored. Google-federated accounts
	// hold the hash of a random password that is never usable.
	Password string `bson:"password"`

	// CreatedAt is assigned by the store layer on creation.
	CreatedAt time.Time `bson:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `bson:"updatedAt"`
}
