// Package domain defines the domain-level errors for the summary
// feature.
package domain

import "errors"

var (
	// ErrSummaryNotFound is returned when no summary matches the
	// given filters.
	ErrSummaryNotFound = errors.New("summary not found")
	// ErrEmptyTranscript is returned when generation is requested
	// without any transcript text.
	ErrEmptyTranscript = errors.New("transcript is empty")
)
