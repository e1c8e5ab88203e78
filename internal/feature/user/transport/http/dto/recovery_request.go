package dto

// RecoveryRequestReq represents the request body for
// POST /users/password-recovery/request.
type RecoveryRequestReq struct {
	Email string `json:"email" binding:"required,email"`
}

// RecoveryResetReq represents the request body for
// POST /users/password-recovery/reset. The token arrived by email as a
// reset-link parameter.
type RecoveryResetReq struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
