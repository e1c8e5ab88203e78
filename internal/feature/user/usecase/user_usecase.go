// Package usecase implements the account and credential business logic
// for the user feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"teamcall_backend/internal/feature/user/domain"
	"teamcall_backend/internal/feature/user/domain/entity"
	"teamcall_backend/internal/platform/email"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and returns the store-assigned id.
	Create(ctx context.Context, user *entity.User) (string, error)

	// FindByID retrieves a user by document id.
	// Returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves the user matching the normalized email.
	// Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user. Used by the admin listing.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update applies the given fields to the user and refreshes
	// updatedAt. Returns domain.ErrUserNotFound when absent.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the user. Returns domain.ErrUserNotFound when
	// absent.
	Delete(ctx context.Context, id string) error
}

// TokenIssuer mints and checks the signed tokens the flows hand out.
type TokenIssuer interface {
	// Issue creates an access token for the given user.
	Issue(userID, email string) (string, error)
	// IssueRecovery creates a password-recovery token.
	IssueRecovery(userID string) (string, error)
	// VerifyRecovery checks a recovery token and returns its subject id.
	VerifyRecovery(token string) (string, error)
}

// Mailer dispatches transactional email fire-and-forget.
type Mailer interface {
	Dispatch(msg email.Message)
}

// FederatedClaim is the verified identity of a Google sign-in, as seen
// by this usecase. It is derived from the bearer token by middleware
// and never persisted.
type FederatedClaim struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// RegisterInput carries the fields of a direct registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Age       int
	Email     string
	Password  string
}

// GoogleLogin is the outcome of a federated login. Exactly one of the
// two shapes is populated: a token with the matched user, or the
// needs-profile fields the client uses to route to federated
// registration. Needing a profile is a legitimate terminal state of
// the flow, not an error.
type GoogleLogin struct {
	Token string
	User  *entity.User

	NeedsProfile bool
	Email        string
	Name         string
	GoogleID     string
}

// userUsecase implements the account business logic.
type userUsecase struct {
	users        UserRepository
	tokens       TokenIssuer
	mail         Mailer
	resetBaseURL string
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository, tokens TokenIssuer, mail Mailer, resetBaseURL string) *userUsecase {
	return &userUsecase{
		users:        users,
		tokens:       tokens,
		mail:         mail,
		resetBaseURL: resetBaseURL,
	}
}

// dummyHash keeps bcrypt comparison time flat when the email is
// unknown, so login timing does not leak account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a direct account and returns the new user's id.
// Login is a separate step; no token is issued here.
func (u *userUsecase) Register(ctx context.Context, in RegisterInput) (string, error) {
	if !isValidPassword(in.Password) {
		return "", domain.ErrWeakPassword
	}

	normalized := normalizeEmail(in.Email)
	if err := u.ensureEmailFree(ctx, normalized); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := u.users.Create(ctx, &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Age:       in.Age,
		Email:     normalized,
		Password:  string(hashed),
	})
	if err != nil {
		return "", err
	}

	u.mail.Dispatch(email.WelcomeMessage(normalized, in.FirstName, u.resetBaseURL+"/change-password"))
	return id, nil
}

// RegisterGoogle creates an account from a verified Google claim plus
// the age the client collected. Unlike direct registration it returns
// an access token immediately, since there is no password login to
// follow.
func (u *userUsecase) RegisterGoogle(ctx context.Context, claim FederatedClaim, age int) (id, token string, err error) {
	if claim.Email == "" {
		return "", "", domain.ErrEmailMissing
	}

	normalized := normalizeEmail(claim.Email)
	if err := u.ensureEmailFree(ctx, normalized); err != nil {
		return "", "", err
	}

	// The account never logs in with a password, but the hashed
	// password invariant holds for every user record.
	hashed, err := bcrypt.GenerateFromPassword([]byte(randomPassword()), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	firstName, lastName := splitName(claim.Name, normalized)
	id, err = u.users.Create(ctx, &entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Email:     normalized,
		Password:  string(hashed),
	})
	if err != nil {
		return "", "", err
	}

	token, err = u.tokens.Issue(id, normalized)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	return id, token, nil
}

// Login authenticates a direct account and returns an access token
// with the matched user. Unknown email and wrong password produce the
// identical error, and bcrypt always runs so response timing stays
// flat either way.
func (u *userUsecase) Login(ctx context.Context, emailAddr, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(emailAddr))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// LoginGoogle resolves a verified Google claim to an account. A claim
// whose email is not registered yet yields a needs-profile result so
// the client can route to federated registration.
func (u *userUsecase) LoginGoogle(ctx context.Context, claim FederatedClaim) (*GoogleLogin, error) {
	normalized := normalizeEmail(claim.Email)

	user, err := u.users.FindByEmail(ctx, normalized)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &GoogleLogin{
			NeedsProfile: true,
			Email:        normalized,
			Name:         claim.Name,
			GoogleID:     claim.Subject,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &GoogleLogin{Token: token, User: user}, nil
}

// RequestPasswordReset mails the user a reset link containing a
// recovery token. The token never appears in the API response.
func (u *userUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(emailAddr))
	if err != nil {
		return err
	}

	token, err := u.tokens.IssueRecovery(user.ID.Hex())
	if err != nil {
		return fmt.Errorf("failed to generate recovery token: %w", err)
	}

	resetURL := u.resetBaseURL + "/reset-password?token=" + token
	u.mail.Dispatch(email.ResetPasswordMessage(user.Email, user.FirstName, resetURL))
	return nil
}

// ResetPassword consumes a recovery token and overwrites the password
// hash. Recovery tokens are not tracked server-side, so a token stays
// verifiable until its natural expiry.
func (u *userUsecase) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	userID, err := u.tokens.VerifyRecovery(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	return u.overwritePassword(ctx, userID, newPassword)
}

// UpdateProfileInput carries the allow-listed mutable fields. Nil
// means "leave unchanged"; anything else in the request body was
// already dropped by the transport layer.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Age       *int
}

// UpdateProfile applies a partial update to the authenticated user's
// own record. The subject id comes from the verified access token.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) error {
	fields := map[string]any{}
	if in.Email != nil {
		fields["email"] = normalizeEmail(*in.Email)
	}
	if in.FirstName != nil {
		fields["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["lastName"] = *in.LastName
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if len(fields) == 0 {
		return domain.ErrNoValidFields
	}
	return u.users.Update(ctx, userID, fields)
}

// ChangePassword overwrites the authenticated user's password hash.
func (u *userUsecase) ChangePassword(ctx context.Context, userID, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}
	return u.overwritePassword(ctx, userID, newPassword)
}

// Delete removes the authenticated user's own record.
func (u *userUsecase) Delete(ctx context.Context, userID string) error {
	return u.users.Delete(ctx, userID)
}

// Get retrieves one user by id.
func (u *userUsecase) Get(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// List retrieves every user.
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// ensureEmailFree is the best-effort uniqueness check performed before
// every insert. It is read-then-write with no transactional guard: two
// concurrent registrations with the same email can both pass.
func (u *userUsecase) ensureEmailFree(ctx context.Context, normalized string) error {
	_, err := u.users.FindByEmail(ctx, normalized)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

func (u *userUsecase) overwritePassword(ctx context.Context, userID, newPassword string) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.Update(ctx, userID, map[string]any{"password": string(hashed)})
}
