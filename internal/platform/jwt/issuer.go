// Package jwtmw provides signed token issuance, verification and the
// gin middleware guarding authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token scopes. Access tokens authorize self-service operations;
// recovery tokens only authorize a password reset.
const (
	ScopeAccess   = "access"
	ScopeRecovery = "recovery"
)

// ErrTokenInvalid is returned for any token that fails signature,
// expiry or scope checks.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims is the payload of every token this service signs.
type Claims struct {
	// UserID is the subject's document id.
	UserID string `json:"uid"`
	// Email is set on access tokens only.
	Email string `json:"email,omitempty"`
	// Scope distinguishes access tokens from recovery tokens so one
	// cannot be replayed as the other.
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies HS256 tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer signing with the given secret. Tokens
// expire after ttl.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the issuer's clock. Used by tests to exercise
// expiry without sleeping.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue creates a signed access token for the given user.
func (i *Issuer) Issue(userID, email string) (string, error) {
	return i.sign(&Claims{UserID: userID, Email: email, Scope: ScopeAccess})
}

// IssueRecovery creates a signed password-recovery token. It carries
// the subject id only.
func (i *Issuer) IssueRecovery(userID string) (string, error) {
	return i.sign(&Claims{UserID: userID, Scope: ScopeRecovery})
}

func (i *Issuer) sign(claims *Claims) (string, error) {
	now := i.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyRecovery checks a password-recovery token and returns the
// subject id it was issued for.
func (i *Issuer) VerifyRecovery(tokenStr string) (string, error) {
	claims, err := i.Verify(tokenStr, ScopeRecovery)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// Verify parses tokenStr and returns its claims when the signature and
// expiry are valid and the scope matches.
func (i *Issuer) Verify(tokenStr, scope string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Scope != scope || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
