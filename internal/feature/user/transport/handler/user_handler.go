// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamcall_backend/internal/api"
	"teamcall_backend/internal/feature/user/domain"
	"teamcall_backend/internal/feature/user/domain/entity"
	"teamcall_backend/internal/feature/user/transport/http/dto"
	"teamcall_backend/internal/feature/user/usecase"
	"teamcall_backend/internal/platform/googleauth"
	jwtmw "teamcall_backend/internal/platform/jwt"
)

// UserUsecase defines the account operations the handlers depend on.
// Following Go convention the interface is defined by the consumer
// (handler), not the provider (usecase).
type UserUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (string, error)
	RegisterGoogle(ctx context.Context, claim usecase.FederatedClaim, age int) (id, token string, err error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	LoginGoogle(ctx context.Context, claim usecase.FederatedClaim) (*usecase.GoogleLogin, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	UpdateProfile(ctx context.Context, userID string, in usecase.UpdateProfileInput) error
	ChangePassword(ctx context.Context, userID, newPassword, confirmPassword string) error
	Delete(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

// UserHandler handles the HTTP requests of the user feature.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// respondError maps domain errors to HTTP statuses. Unexpected errors
// are logged and reduced to a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrNoValidFields),
		errors.Is(err, domain.ErrEmailMissing):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(status, api.ErrorResponse{Error: err.Error()})
}

// federatedClaim converts the middleware's verified claim into the
// usecase's shape. The claim was verified upstream and is trusted here.
func federatedClaim(c *gin.Context) (usecase.FederatedClaim, bool) {
	claim, ok := googleauth.ClaimFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing google identity"})
		return usecase.FederatedClaim{}, false
	}
	return usecase.FederatedClaim{
		Subject:       claim.Subject,
		Email:         claim.Email,
		Name:          claim.Name,
		EmailVerified: claim.EmailVerified,
	}, true
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		slog.Warn("registration failed", "email", req.Email, "error", err)
		respondError(c, err)
		return
	}

	slog.Info("user registered", "id", id, "email", req.Email)
	c.JSON(http.StatusCreated, dto.RegisterRes{ID: id})
}

// RegisterGoogle handles POST /users/registerGoogle. The Google
// middleware has already verified the bearer token.
func (h *UserHandler) RegisterGoogle(c *gin.Context) {
	claim, ok := federatedClaim(c)
	if !ok {
		return
	}

	var req dto.RegisterGoogleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "age is required"})
		return
	}

	id, token, err := h.users.RegisterGoogle(c.Request.Context(), claim, req.Age)
	if err != nil {
		slog.Warn("google registration failed", "email", claim.Email, "error", err)
		respondError(c, err)
		return
	}

	slog.Info("google user registered", "id", id, "email", claim.Email)
	c.JSON(http.StatusCreated, dto.RegisterGoogleRes{ID: id, Token: token})
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		respondError(c, err)
		return
	}

	slog.Info("user login successful", "email", user.Email)
	c.JSON(http.StatusOK, dto.LoginRes{Token: token, User: dto.NewUserRes(user)})
}

// LoginGoogle handles POST /users/loginGoogle. An unregistered Google
// email is not an error: the response asks the client to complete the
// profile via federated registration.
func (h *UserHandler) LoginGoogle(c *gin.Context) {
	claim, ok := federatedClaim(c)
	if !ok {
		return
	}

	result, err := h.users.LoginGoogle(c.Request.Context(), claim)
	if err != nil {
		slog.Warn("google login failed", "email", claim.Email, "error", err)
		respondError(c, err)
		return
	}

	if result.NeedsProfile {
		c.JSON(http.StatusOK, dto.GoogleLoginRes{
			NeedsProfile: true,
			Email:        result.Email,
			Name:         result.Name,
			GoogleID:     result.GoogleID,
		})
		return
	}

	user := dto.NewUserRes(result.User)
	c.JSON(http.StatusOK, dto.GoogleLoginRes{Token: result.Token, User: &user})
}

// UpdateProfile handles PUT /users/me. The subject id comes from the
// access token, so a caller can only mutate their own record.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), userID, usecase.UpdateProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "profile updated"})
}

// ChangePassword handles PUT /users/me/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), userID, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "password changed"})
}

// DeleteMe handles DELETE /users/me.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("user deleted", "id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.UserRes, 0, len(users))
	for i := range users {
		res = append(res, dto.NewUserRes(&users[i]))
	}
	c.JSON(http.StatusOK, res)
}

// RequestRecovery handles POST /users/password-recovery/request. The
// recovery token travels only inside the emailed link.
func (h *UserHandler) RequestRecovery(c *gin.Context) {
	var req dto.RecoveryRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.users.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "recovery email sent"})
}

// ResetPassword handles POST /users/password-recovery/reset.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.RecoveryResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "password reset"})
}
