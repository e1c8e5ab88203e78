package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"teamcall_backend/internal/feature/user/domain"
	"teamcall_backend/internal/feature/user/domain/entity"
	"teamcall_backend/internal/platform/email"
)

// mockUserRepository is a mock implementation of the UserRepository
// interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) (string, error)
	FindByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindAllFunc     func(ctx context.Context) ([]entity.User, error)
	UpdateFunc      func(ctx context.Context, id string, fields map[string]any) error
	DeleteFunc      func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return bson.NewObjectID().Hex(), nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of the TokenIssuer
// interface.
type mockTokenIssuer struct {
	IssueFunc          func(userID, email string) (string, error)
	IssueRecoveryFunc  func(userID string) (string, error)
	VerifyRecoveryFunc func(token string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email)
	}
	return "mock-access-token", nil
}

func (m *mockTokenIssuer) IssueRecovery(userID string) (string, error) {
	if m.IssueRecoveryFunc != nil {
		return m.IssueRecoveryFunc(userID)
	}
	return "mock-recovery-token", nil
}

func (m *mockTokenIssuer) VerifyRecovery(token string) (string, error) {
	if m.VerifyRecoveryFunc != nil {
		return m.VerifyRecoveryFunc(token)
	}
	return "", errors.New("invalid token")
}

// mockMailer records dispatched messages.
type mockMailer struct {
	messages []email.Message
}

func (m *mockMailer) Dispatch(msg email.Message) {
	m.messages = append(m.messages, msg)
}

func newUsecase(repo *mockUserRepository, tokens *mockTokenIssuer, mail *mockMailer) *userUsecase {
	return NewUserUsecase(repo, tokens, mail, "https://app.example.com")
}

func TestUserUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password and normalizes the email", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) (string, error) {
				created = user
				return "new-id", nil
			},
		}
		mail := &mockMailer{}

		uc := newUsecase(repo, &mockTokenIssuer{}, mail)
		id, err := uc.Register(context.Background(), RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Age:       30,
			Email:     "  Ada@Example.COM ",
			Password:  "Abcdef1!",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "new-id" {
			t.Errorf("expected id new-id, got %q", id)
		}
		if created.Email != "ada@example.com" {
			t.Errorf("expected normalized email, got %q", created.Email)
		}
		if created.Password == "Abcdef1!" || created.Password == "" {
			t.Error("password was stored unhashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Abcdef1!")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
		if len(mail.messages) != 1 {
			t.Fatalf("expected one welcome email, got %d", len(mail.messages))
		}
		if mail.messages[0].To != "ada@example.com" {
			t.Errorf("welcome email sent to %q", mail.messages[0].To)
		}
	})

	t.Run("weak password is rejected before any store access", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				t.Fatal("store must not be touched for a weak password")
				return nil, nil
			},
		}

		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		_, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "abcdefg1"})

		if !errors.Is(err, domain.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("duplicate email conflicts regardless of case", func(t *testing.T) {
		existing := &entity.User{ID: bson.NewObjectID(), Email: "a@b.com"}
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == "a@b.com" {
					return existing, nil
				}
				return nil, domain.ErrUserNotFound
			},
		}

		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		_, err := uc.Register(context.Background(), RegisterInput{Email: "A@b.com", Password: "Abcdef1!"})

		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestUserUsecase_Login(t *testing.T) {
	password := "Abcdef1!"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       bson.NewObjectID(),
		Email:    "test@example.com",
		Password: string(hashed),
	}
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == testUser.Email {
				return testUser, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}

	t.Run("successful login issues a token for the matched user", func(t *testing.T) {
		tokens := &mockTokenIssuer{
			IssueFunc: func(userID, email string) (string, error) {
				if userID != testUser.ID.Hex() || email != testUser.Email {
					t.Errorf("token issued for wrong subject: %s / %s", userID, email)
				}
				return "signed-token", nil
			},
		}

		uc := newUsecase(repo, tokens, &mockMailer{})
		token, user, err := uc.Login(context.Background(), "Test@Example.com", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected signed-token, got %q", token)
		}
		if user.ID != testUser.ID {
			t.Error("returned wrong user")
		}
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})

		_, _, errWrongPass := uc.Login(context.Background(), testUser.Email, "Wrong-pass1!")
		_, _, errNoUser := uc.Login(context.Background(), "ghost@example.com", password)

		if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
			t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
		}
		if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
			t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
		}
	})
}

func TestUserUsecase_LoginGoogle(t *testing.T) {
	claim := FederatedClaim{
		Subject:       "google-uid-1",
		Email:         "Maria@Example.com",
		Name:          "Maria Curie",
		EmailVerified: true,
	}

	t.Run("unregistered email yields needs-profile, not an error", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		result, err := uc.LoginGoogle(context.Background(), claim)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.NeedsProfile {
			t.Fatal("expected needs-profile result")
		}
		if result.Token != "" {
			t.Error("needs-profile result must not carry a token")
		}
		if result.Email != "maria@example.com" || result.GoogleID != "google-uid-1" {
			t.Errorf("unexpected claim echo: %+v", result)
		}
	})

	t.Run("registered email yields a token", func(t *testing.T) {
		user := &entity.User{ID: bson.NewObjectID(), Email: "maria@example.com"}
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == user.Email {
					return user, nil
				}
				return nil, domain.ErrUserNotFound
			},
		}

		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		result, err := uc.LoginGoogle(context.Background(), claim)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.NeedsProfile {
			t.Fatal("did not expect needs-profile")
		}
		if result.Token != "mock-access-token" {
			t.Errorf("expected token, got %q", result.Token)
		}
	})
}

func TestUserUsecase_RegisterGoogle(t *testing.T) {
	t.Run("creates the account from the claim and issues a token", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) (string, error) {
				created = user
				return "google-user-id", nil
			},
		}

		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		id, token, err := uc.RegisterGoogle(context.Background(), FederatedClaim{
			Subject: "google-uid-1",
			Email:   "Maria@Example.com",
			Name:    "Maria Sklodowska Curie",
		}, 35)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "google-user-id" || token != "mock-access-token" {
			t.Errorf("unexpected result: id=%q token=%q", id, token)
		}
		if created.FirstName != "Maria" || created.LastName != "Sklodowska Curie" {
			t.Errorf("name split wrong: %q %q", created.FirstName, created.LastName)
		}
		if created.Email != "maria@example.com" {
			t.Errorf("email not normalized: %q", created.Email)
		}
		if created.Age != 35 {
			t.Errorf("age not stored: %d", created.Age)
		}
		if !strings.HasPrefix(created.Password, "$2a$") {
			t.Error("placeholder password was not bcrypt-hashed")
		}
	})

	t.Run("claim without email is rejected", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		_, _, err := uc.RegisterGoogle(context.Background(), FederatedClaim{Subject: "uid"}, 30)
		if !errors.Is(err, domain.ErrEmailMissing) {
			t.Errorf("expected ErrEmailMissing, got %v", err)
		}
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{Email: email}, nil
			},
		}

		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		_, _, err := uc.RegisterGoogle(context.Background(), FederatedClaim{Email: "a@b.com"}, 30)
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestUserUsecase_PasswordRecovery(t *testing.T) {
	user := &entity.User{
		ID:        bson.NewObjectID(),
		FirstName: "Ada",
		Email:     "user@example.com",
	}

	t.Run("request mails a link embedding the recovery token", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == user.Email {
					return user, nil
				}
				return nil, domain.ErrUserNotFound
			},
		}
		tokens := &mockTokenIssuer{
			IssueRecoveryFunc: func(userID string) (string, error) {
				if userID != user.ID.Hex() {
					t.Errorf("recovery token for wrong subject %q", userID)
				}
				return "recovery-token-xyz", nil
			},
		}
		mail := &mockMailer{}

		uc := newUsecase(repo, tokens, mail)
		if err := uc.RequestPasswordReset(context.Background(), "User@Example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(mail.messages) != 1 {
			t.Fatalf("expected one email, got %d", len(mail.messages))
		}
		if !strings.Contains(mail.messages[0].HTML, "recovery-token-xyz") {
			t.Error("reset link does not embed the token")
		}
	})

	t.Run("request for unknown email reports not found", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		err := uc.RequestPasswordReset(context.Background(), "ghost@example.com")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("reset overwrites the hash with a valid token", func(t *testing.T) {
		var updated map[string]any
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				if id == user.ID.Hex() {
					return user, nil
				}
				return nil, domain.ErrUserNotFound
			},
			UpdateFunc: func(ctx context.Context, id string, fields map[string]any) error {
				updated = fields
				return nil
			},
		}
		tokens := &mockTokenIssuer{
			VerifyRecoveryFunc: func(token string) (string, error) {
				if token == "recovery-token-xyz" {
					return user.ID.Hex(), nil
				}
				return "", errors.New("bad token")
			},
		}

		uc := newUsecase(repo, tokens, &mockMailer{})
		err := uc.ResetPassword(context.Background(), "recovery-token-xyz", "NewPass1!", "NewPass1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hash, ok := updated["password"].(string)
		if !ok {
			t.Fatal("password field was not updated")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPass1!")); err != nil {
			t.Errorf("new password hash mismatch: %v", err)
		}
	})

	t.Run("reset with mismatched confirmation fails", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "tok", "NewPass1!", "Other1!x")
		if !errors.Is(err, domain.ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("reset with an invalid token fails", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "expired", "NewPass1!", "NewPass1!")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	t.Run("normalizes the email and updates only provided fields", func(t *testing.T) {
		var updated map[string]any
		repo := &mockUserRepository{
			UpdateFunc: func(ctx context.Context, id string, fields map[string]any) error {
				updated = fields
				return nil
			},
		}

		newEmail := " X@Y.com "
		uc := newUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		err := uc.UpdateProfile(context.Background(), "uid", UpdateProfileInput{Email: &newEmail})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated["email"] != "x@y.com" {
			t.Errorf("email not normalized: %v", updated["email"])
		}
		if _, ok := updated["firstName"]; ok {
			t.Error("absent field must not be written")
		}
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})

		err := uc.UpdateProfile(context.Background(), "uid", UpdateProfileInput{})
		if !errors.Is(err, domain.ErrNoValidFields) {
			t.Errorf("expected ErrNoValidFields, got %v", err)
		}
	})
}
