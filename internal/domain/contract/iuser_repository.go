package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// IUserRepository is the persistence contract for the users collection.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Search returns users whose displayName or email contains the text
	// (case-insensitive), newest-created first. Empty text matches all.
	Search(ctx context.Context, text string) ([]entity.User, error)
	// List returns all users, optionally narrowed to an exact email.
	List(ctx context.Context, email string) ([]entity.User, error)
	UpdateRole(ctx context.Context, id string, role string) (int64, error)
	SetPremium(ctx context.Context, id string, premium bool) error
	Delete(ctx context.Context, id string) error
}
