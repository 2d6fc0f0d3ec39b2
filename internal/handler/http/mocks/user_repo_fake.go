package mocks

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// FakeUserRepository is an in-memory IUserRepository for tests.
type FakeUserRepository struct {
	Users map[string]*entity.User // keyed by email

	ShouldFail bool
}

var _ contract.IUserRepository = (*FakeUserRepository)(nil)

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: map[string]*entity.User{}}
}

func (f *FakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if f.ShouldFail {
		return errors.New("user create failed")
	}
	if _, ok := f.Users[user.Email]; ok {
		return contract.ErrDuplicate
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.Users[user.Email] = user
	return nil
}

func (f *FakeUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.ShouldFail {
		return nil, errors.New("user lookup failed")
	}
	user, ok := f.Users[email]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return user, nil
}

func (f *FakeUserRepository) Search(ctx context.Context, text string) ([]entity.User, error) {
	if f.ShouldFail {
		return nil, errors.New("user search failed")
	}
	var out []entity.User
	needle := strings.ToLower(text)
	for _, u := range f.Users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.DisplayName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *FakeUserRepository) List(ctx context.Context, email string) ([]entity.User, error) {
	if f.ShouldFail {
		return nil, errors.New("user list failed")
	}
	var out []entity.User
	for _, u := range f.Users {
		if email == "" || u.Email == email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *FakeUserRepository) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	if f.ShouldFail {
		return 0, errors.New("role update failed")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, contract.ErrInvalidID
	}
	for _, u := range f.Users {
		if u.ID.Hex() == id {
			u.Role = entity.UserRole(role)
			return 1, nil
		}
	}
	return 0, contract.ErrNotFound
}

func (f *FakeUserRepository) SetPremium(ctx context.Context, id string, premium bool) error {
	if f.ShouldFail {
		return errors.New("premium update failed")
	}
	for _, u := range f.Users {
		if u.ID.Hex() == id {
			u.IsPremium = premium
			return nil
		}
	}
	return contract.ErrNotFound
}

func (f *FakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.ShouldFail {
		return errors.New("user delete failed")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return contract.ErrInvalidID
	}
	for email, u := range f.Users {
		if u.ID.Hex() == id {
			delete(f.Users, email)
			return nil
		}
	}
	return contract.ErrNotFound
}
