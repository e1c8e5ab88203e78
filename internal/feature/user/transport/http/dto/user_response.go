package dto

import (
	"time"

	"teamcall_backend/internal/feature/user/domain/entity"
)

// UserRes is the public projection of a user record. The password hash
// never leaves the server.
type UserRes struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserRes projects a user entity into its response shape.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginRes is the body of a successful direct login.
type LoginRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// GoogleLoginRes is the body of a federated login. Either Token/User
// are set, or NeedsProfile is true with the claim fields the client
// needs to route to federated registration.
type GoogleLoginRes struct {
	Token string   `json:"token,omitempty"`
	User  *UserRes `json:"user,omitempty"`

	NeedsProfile bool   `json:"needsProfile,omitempty"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	GoogleID     string `json:"googleId,omitempty"`
}

// RegisterRes is the body of a successful direct registration.
type RegisterRes struct {
	ID string `json:"id"`
}

// RegisterGoogleRes is the body of a successful federated
// registration. Unlike direct registration it carries a token, since
// no password login follows.
type RegisterGoogleRes struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}
