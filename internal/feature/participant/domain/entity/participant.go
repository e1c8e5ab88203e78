// Package entity defines the core domain models for the participant
// feature.
package entity

import "time"

// Participant is a user's membership in a meeting. A user appears at
// most once per meeting; rejoining refreshes the existing record.
type Participant struct {
	ID        string    `bson:"_id"       json:"-"`
	MeetingID string    `bson:"meetingId" json:"meetingId"`
	UserID    string    `bson:"userId"    json:"userId"`
	Name      string    `bson:"name"      json:"name"`
	Email     string    `bson:"email"     json:"email"`
	JoinedAt  time.Time `bson:"joinedAt"  json:"joinedAt"`
}

// DocumentID builds the canonical identifier for a membership so that
// repeated joins of the same user overwrite a single record.
func DocumentID(meetingID, userID string) string {
	return meetingID + "_" + userID
}
