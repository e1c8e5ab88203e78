package dto

// UpdateProfileReq represents the request body for PUT /users/me.
// Only these four fields are mutable; anything else in the body is
// silently ignored. Nil pointers mean "leave unchanged".
type UpdateProfileReq struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *int    `json:"age" binding:"omitempty,gt=0"`
}

// ChangePasswordReq represents the request body for PUT
// /users/me/password.
type ChangePasswordReq struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
