package usecase_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/moscow89er/mesto-api/internal/apperror"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/token"
	"github.com/moscow89er/mesto-api/internal/usecase"
)

// ---- fakes ----

type fakeUserRepo struct {
	create        func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByID      func(ctx context.Context, id string) (*domain.User, error)
	findByEmail   func(ctx context.Context, email string) (*domain.User, error)
	list          func(ctx context.Context) ([]*domain.User, error)
	updateProfile func(ctx context.Context, id, name, about string) (*domain.User, error)
	updateAvatar  func(ctx context.Context, id, avatar string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return r.updateProfile(ctx, id, name, about)
}

func (r *fakeUserRepo) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.updateAvatar(ctx, id, avatar)
}

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newAuthUsecase(repo *fakeUserRepo) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(repo, token.NewService([]byte(testJWTKey)))
}

// ---- Register ----

func TestRegister_HashesPasswordBeforePersisting(t *testing.T) {
	var capturedHash string

	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			capturedHash = user.PasswordHash
			created := *user
			created.ID = "64adf13c9a2b7e0012345678"
			return &created, nil
		},
	}

	_, err := newAuthUsecase(repo).Register(context.Background(), usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedHash == "long-enough-password" {
		t.Fatal("plaintext password was persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte("long-enough-password")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegister_NeverReturnsHash(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = "64adf13c9a2b7e0012345678"
			return &created, nil
		},
	}

	created, err := newAuthUsecase(repo).Register(context.Background(), usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PasswordHash != "" {
		t.Error("Register returned a user with a password hash")
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	_, err := newAuthUsecase(repo).Register(context.Background(), usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "long-enough-password",
	})
	if !apperror.IsKind(err, apperror.Conflict) {
		t.Errorf("want Conflict, got %v", err)
	}
}

// ---- Login ----

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLogin_Success_IssuesVerifiableToken(t *testing.T) {
	const userID = "64adf13c9a2b7e0012345678"
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{
				ID:           userID,
				Email:        "test@example.com",
				PasswordHash: mustHash(t, "correct-password"),
			}, nil
		},
	}

	signed, gotID, err := newAuthUsecase(repo).Login(context.Background(), "test@example.com", "correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != userID {
		t.Errorf("userID = %q, want %q", gotID, userID)
	}

	sub, err := token.NewService([]byte(testJWTKey)).Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if sub != userID {
		t.Errorf("token subject = %q, want %q", sub, userID)
	}
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", PasswordHash: mustHash(t, "correct-password")}, nil
		},
	}

	_, _, err := newAuthUsecase(repo).Login(context.Background(), "test@example.com", "wrong-password")
	if !apperror.IsKind(err, apperror.Unauthorized) {
		t.Errorf("want Unauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail_SameUnauthorized(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, _, err := newAuthUsecase(repo).Login(context.Background(), "nobody@example.com", "whatever")
	if !apperror.IsKind(err, apperror.Unauthorized) {
		t.Errorf("want Unauthorized, got %v", err)
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "Incorrect email or password" {
		t.Errorf("message %q reveals whether the email exists", appErr.Message)
	}
}

func TestLogin_RepoError_NotUnauthorized(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}

	_, _, err := newAuthUsecase(repo).Login(context.Background(), "test@example.com", "password")
	if !errors.Is(err, repoErr) {
		t.Errorf("want wrapped repoErr, got %v", err)
	}
	if apperror.IsKind(err, apperror.Unauthorized) {
		t.Error("infrastructure failure was masked as bad credentials")
	}
}
