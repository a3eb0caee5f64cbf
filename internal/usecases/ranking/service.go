package ranking

import (
	"context"
	"fmt"

	"github.com/HungEzz/surfsui/infrastructure/repository"
	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/pkg/apiErrors"
	"github.com/HungEzz/surfsui/pkg/log"
)

const (
	// DefaultTopLimit applies when the top endpoint is called without a limit.
	DefaultTopLimit = 10
	MinTopLimit     = 1
	MaxTopLimit     = 50
)

type RankingService interface {
	AllRankings(ctx context.Context) ([]domain.DAppRanking, int, error)
	TopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, int, error)
	DAppsByCategory(ctx context.Context, category domain.Category) ([]domain.DAppRanking, int, error)
	Stats(ctx context.Context) (*domain.DAppStats, error)
}

type DAppRankingService struct {
	repo repository.DAppRankingRepository
}

func NewDAppRankingService(repo repository.DAppRankingRepository) RankingService {
	return &DAppRankingService{
		repo: repo,
	}
}

func (s *DAppRankingService) AllRankings(ctx context.Context) ([]domain.DAppRanking, int, error) {
	rankings, err := s.repo.GetAllRankings(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rankings, len(rankings), nil
}

// TopDApps rejects limits outside [MinTopLimit, MaxTopLimit] before any
// store access.
func (s *DAppRankingService) TopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, int, error) {
	if limit < MinTopLimit || limit > MaxTopLimit {
		return nil, 0, apiErrors.Validation(
			apiErrors.CodeInvalidLimit,
			fmt.Sprintf("limit must be between %d and %d", MinTopLimit, MaxTopLimit),
		)
	}

	rankings, err := s.repo.GetTopDApps(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	return rankings, len(rankings), nil
}

// DAppsByCategory distinguishes a category unknown to the store (not found)
// from a known category that currently has zero rows (empty result).
func (s *DAppRankingService) DAppsByCategory(ctx context.Context, category domain.Category) ([]domain.DAppRanking, int, error) {
	if !s.categoryExists(ctx, category) {
		return nil, 0, apiErrors.NotFound(
			apiErrors.CodeCategoryNotFound,
			fmt.Sprintf("Category '%s' not found", category),
		)
	}

	rankings, err := s.repo.GetDAppsByCategory(ctx, category.String())
	if err != nil {
		return nil, 0, err
	}
	return rankings, len(rankings), nil
}

func (s *DAppRankingService) Stats(ctx context.Context) (*domain.DAppStats, error) {
	return s.repo.GetStats(ctx)
}

// categoryExists is best-effort: store failures are logged and reported as
// "does not exist" instead of propagating, trading correctness for
// availability of the check.
func (s *DAppRankingService) categoryExists(ctx context.Context, category domain.Category) bool {
	exists, err := s.repo.CategoryExists(ctx, category.String())
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("category", category.String()).
			Warn("ranking: category existence check failed, treating as absent")
		return false
	}
	return exists
}
