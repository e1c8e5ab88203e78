// Package entity defines the core domain models for the summary
// feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Summary is an AI-generated or client-supplied recap of a meeting.
type Summary struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"-"`
	MeetingID   string        `bson:"meetingId"     json:"meetingId"`
	UserID      string        `bson:"userId"        json:"userId,omitempty"`
	UserName    string        `bson:"userName"      json:"userName,omitempty"`
	Text        string        `bson:"summary"       json:"summary"`
	GeneratedAt time.Time     `bson:"generatedAt"   json:"generatedAt"`
	CreatedAt   time.Time     `bson:"createdAt"     json:"createdAt"`
}
