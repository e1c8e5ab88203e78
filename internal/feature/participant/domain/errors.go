// Package domain defines the domain-level errors for the participant
// feature.
package domain

import "errors"

var (
	// ErrParticipantNotFound is returned when no membership matches
	// the given meeting and user.
	ErrParticipantNotFound = errors.New("participant not found")
)
