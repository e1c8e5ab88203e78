// Package dto defines data transfer objects for the user feature's
// HTTP transport layer.
package dto

// RegisterReq represents the request body for the /users/register
// endpoint. All five fields are hard preconditions; the password
// policy itself is checked by the usecase.
type RegisterReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Age       int    `json:"age" binding:"required,gt=0"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// RegisterGoogleReq represents the request body for the
// /users/registerGoogle endpoint. The identity itself comes from the
// verified bearer token; only the age travels in the body.
type RegisterGoogleReq struct {
	Age int `json:"age" binding:"required,gt=0"`
}
