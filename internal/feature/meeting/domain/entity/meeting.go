// Package entity defines the domain entities for the meeting feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Meeting represents one meeting room and its lifecycle record.
type Meeting struct {
	// ID is the store-assigned document id.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// Code is the human-facing meeting id handed to participants,
	// e.g. "A1b-2C3-d4E". It is the lookup key of every meeting
	// operation.
	Code string `bson:"code"`

	// Topic is an optional display title.
	Topic string `bson:"topic,omitempty"`

	// CreatedBy is the id of the user who created the meeting.
	CreatedBy string `bson:"createdBy"`

	// CreatedAt is assigned on creation.
	CreatedAt time.Time `bson:"createdAt"`

	// FinishedAt is nil until the meeting is marked finished.
	FinishedAt *time.Time `bson:"finishedAt"`
}
