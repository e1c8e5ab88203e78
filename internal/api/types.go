// Package api defines the shared JSON response envelopes used by every
// HTTP handler.
package api

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of 2xx responses that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of successful login responses.
type TokenResponse struct {
	Token string `json:"token"`
}
