package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ToggleFavoriteResult reports the outcome of a favorite toggle.
type ToggleFavoriteResult struct {
	Favorited      bool `json:"favorited"`
	FavoritesCount int  `json:"favoritesCount"`
}

// FavoriteUsecase maintains the per-user FavoriteRecord aggregate and
// keeps the lesson-side favoritesCount in step with it.
type FavoriteUsecase struct {
	favoriteRepo contract.IFavoriteRepository
	lessonRepo   contract.ILessonRepository
}

// NewFavoriteUsecase creates and returns a new FavoriteUsecase instance.
func NewFavoriteUsecase(favoriteRepo contract.IFavoriteRepository, lessonRepo contract.ILessonRepository) *FavoriteUsecase {
	return &FavoriteUsecase{
		favoriteRepo: favoriteRepo,
		lessonRepo:   lessonRepo,
	}
}

// Toggle adds the lesson to the caller's favorites if absent, removes it
// if present. The first favorite action creates the record lazily, and
// that path never removes. Both favorite endpoints share this method.
func (u *FavoriteUsecase) Toggle(ctx context.Context, email, lessonID string) (*ToggleFavoriteResult, error) {
	record, err := u.favoriteRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("failed to load favorite record: %w", err)
		}

		record = &entity.FavoriteRecord{
			Email:          email,
			Favorites:      []string{lessonID},
			FavoritesCount: 1,
		}
		if err := u.favoriteRepo.Create(ctx, record); err != nil {
			return nil, err
		}
		if err := u.lessonRepo.IncFavoritesCount(ctx, lessonID, 1); err != nil {
			return nil, err
		}
		return &ToggleFavoriteResult{Favorited: true, FavoritesCount: 1}, nil
	}

	if record.Contains(lessonID) {
		if err := u.favoriteRepo.RemoveLesson(ctx, email, lessonID); err != nil {
			return nil, err
		}
		if err := u.lessonRepo.IncFavoritesCount(ctx, lessonID, -1); err != nil {
			return nil, err
		}
		return &ToggleFavoriteResult{Favorited: false, FavoritesCount: record.FavoritesCount - 1}, nil
	}

	if err := u.favoriteRepo.AddLesson(ctx, email, lessonID); err != nil {
		return nil, err
	}
	if err := u.lessonRepo.IncFavoritesCount(ctx, lessonID, 1); err != nil {
		return nil, err
	}
	return &ToggleFavoriteResult{Favorited: true, FavoritesCount: record.FavoritesCount + 1}, nil
}

// Contents resolves the caller's favorite ids into lesson summaries.
// A missing record or malformed id list degrades to an empty result.
func (u *FavoriteUsecase) Contents(ctx context.Context, email string) ([]entity.FavoriteLessonView, error) {
	record, err := u.favoriteRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.FavoriteLessonView{}, nil
		}
		return nil, err
	}
	if len(record.Favorites) == 0 {
		return []entity.FavoriteLessonView{}, nil
	}

	summaries, err := u.lessonRepo.Summaries(ctx, record.Favorites)
	if err != nil {
		return nil, err
	}

	views := make([]entity.FavoriteLessonView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, entity.FavoriteLessonView{
			RecordID:      record.ID,
			LessonID:      s.ID,
			LessonTitle:   s.Title,
			Category:      s.Category,
			EmotionalTone: s.EmotionalTone,
			CreatorName:   s.CreatorName,
		})
	}
	return views, nil
}

// IDs returns the caller's raw favorite id list, empty when no record
// exists.
func (u *FavoriteUsecase) IDs(ctx context.Context, email string) ([]string, error) {
	record, err := u.favoriteRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if record.Favorites == nil {
		return []string{}, nil
	}
	return record.Favorites, nil
}
