// Package domain defines domain-level errors for the meeting feature.
package domain

import "errors"

// ErrMeetingNotFound indicates no meeting matched the given code.
var ErrMeetingNotFound = errors.New("meeting not found")
