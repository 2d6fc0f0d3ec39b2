package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// UserUsecase handles registration and user administration.
type UserUsecase struct {
	userRepo contract.IUserRepository
	logger   contract.IAppLogger
}

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(userRepo contract.IUserRepository, logger contract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a user on first self-registration. Re-registering an
// existing email is a no-op; the bool reports whether a document was
// actually created.
func (u *UserUsecase) Register(ctx context.Context, email, displayName, photoURL string) (bool, error) {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, contract.ErrNotFound) {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &entity.User{
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		Role:        entity.DefaultRole(),
		IsPremium:   false,
		Favorites:   []string{},
		CreatedAt:   time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration of the same
		// email; the outcome is identical to finding it up front.
		if errors.Is(err, contract.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetByEmail returns the full user document.
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.userRepo.GetByEmail(ctx, email)
}

// RoleOf returns the user's role, defaulting to "user" when no such
// user exists.
func (u *UserUsecase) RoleOf(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return string(entity.DefaultRole()), nil
		}
		return "", err
	}
	if user.Role == "" {
		return string(entity.DefaultRole()), nil
	}
	return string(user.Role), nil
}

// IsPremiumOf returns the user's premium flag, defaulting to false when
// no such user exists.
func (u *UserUsecase) IsPremiumOf(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsPremium, nil
}

// Search performs a case-insensitive substring match across displayName
// and email, newest first. Empty text returns everyone.
func (u *UserUsecase) Search(ctx context.Context, text string) ([]entity.User, error) {
	return u.userRepo.Search(ctx, text)
}

// List returns all users, optionally narrowed to an exact email.
func (u *UserUsecase) List(ctx context.Context, email string) ([]entity.User, error) {
	return u.userRepo.List(ctx, email)
}

// UpdateRole sets the role to the exact value supplied. Values are not
// checked against the recognized set; that is the documented contract.
func (u *UserUsecase) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	return u.userRepo.UpdateRole(ctx, id, role)
}

// Delete removes a user by id.
func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	return u.userRepo.Delete(ctx, id)
}
