package mocks

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// FakeFavoriteRepository is an in-memory IFavoriteRepository for tests.
type FakeFavoriteRepository struct {
	Records map[string]*entity.FavoriteRecord // keyed by email

	ShouldFail bool
}

var _ contract.IFavoriteRepository = (*FakeFavoriteRepository)(nil)

func NewFakeFavoriteRepository() *FakeFavoriteRepository {
	return &FakeFavoriteRepository{Records: map[string]*entity.FavoriteRecord{}}
}

func (f *FakeFavoriteRepository) GetByEmail(ctx context.Context, email string) (*entity.FavoriteRecord, error) {
	if f.ShouldFail {
		return nil, errors.New("favorite lookup failed")
	}
	record, ok := f.Records[email]
	if !ok {
		return nil, contract.ErrNotFound
	}
	copied := *record
	copied.Favorites = append([]string{}, record.Favorites...)
	return &copied, nil
}

func (f *FakeFavoriteRepository) Create(ctx context.Context, record *entity.FavoriteRecord) error {
	if f.ShouldFail {
		return errors.New("favorite create failed")
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	f.Records[record.Email] = record
	return nil
}

func (f *FakeFavoriteRepository) AddLesson(ctx context.Context, email, lessonID string) error {
	if f.ShouldFail {
		return errors.New("favorite add failed")
	}
	record, ok := f.Records[email]
	if !ok {
		return contract.ErrNotFound
	}
	if !record.Contains(lessonID) {
		record.Favorites = append(record.Favorites, lessonID)
		record.FavoritesCount++
	}
	return nil
}

func (f *FakeFavoriteRepository) RemoveLesson(ctx context.Context, email, lessonID string) error {
	if f.ShouldFail {
		return errors.New("favorite remove failed")
	}
	record, ok := f.Records[email]
	if !ok {
		return contract.ErrNotFound
	}
	for i, id := range record.Favorites {
		if id == lessonID {
			record.Favorites = append(record.Favorites[:i], record.Favorites[i+1:]...)
			record.FavoritesCount--
			break
		}
	}
	return nil
}
