package services

import (
	"context"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/dtos"
	"travelbook/atlas/internal/models/entities"
)

type HistoryService struct {
	repo    repositories.SearchHistoryRepository
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	now     func() time.Time
}

func NewHistoryService(repo repositories.SearchHistoryRepository, cache common.CacheInterface, m *metrics.MetricsRegistry) *HistoryService {
	return &HistoryService{
		repo:    repo,
		cache:   cache,
		metrics: m,
		now:     time.Now,
	}
}

// SaveSearch records a search and prunes the user's history down to the
// newest MaxHistoryPerUser entries. The cached popular destinations ranking
// is dropped so the next read sees the new search.
func (s *HistoryService) SaveSearch(ctx context.Context, req dtos.SearchHistoryRequest) (*entities.SearchHistory, error) {
	history := &entities.SearchHistory{
		UserID:         req.UserID,
		SearchType:     constants.SearchType(req.SearchType),
		Origin:         req.From,
		Destination:    req.To,
		CheckInDate:    req.CheckIn,
		CheckOutDate:   req.CheckOut,
		Passengers:     req.Passengers,
		SearchQuery:    SearchQuery(req.From, req.To),
		SearchDateTime: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, history); err != nil {
		return nil, storeError(s.metrics, "save search history", err)
	}

	all, err := s.repo.FindByUser(ctx, req.UserID, 0)
	if err != nil {
		return nil, storeError(s.metrics, "load search history", err)
	}
	if len(all) > constants.MaxHistoryPerUser {
		stale := make([]string, 0, len(all)-constants.MaxHistoryPerUser)
		for _, h := range all[constants.MaxHistoryPerUser:] {
			stale = append(stale, h.ID)
		}
		deleted, err := s.repo.DeleteByIDs(ctx, stale)
		if err != nil {
			return nil, storeError(s.metrics, "trim search history", err)
		}
		s.metrics.HistoryTrimmedTotal.Add(float64(deleted))
		logging.Debug("Trimmed search history", "user_id", req.UserID, "deleted", deleted)
	}

	s.cache.Delete(string(constants.CachePrefixPopularDestinations))
	return history, nil
}

func (s *HistoryService) RecentSearches(ctx context.Context, userID string) ([]entities.SearchHistory, error) {
	history, err := s.repo.FindByUser(ctx, userID, constants.RecentSearchLimit)
	if err != nil {
		return nil, storeError(s.metrics, "recent searches", err)
	}
	return history, nil
}

func (s *HistoryService) RecentSearchesByType(ctx context.Context, userID string, searchType constants.SearchType) ([]entities.SearchHistory, error) {
	history, err := s.repo.FindByUserAndType(ctx, userID, searchType)
	if err != nil {
		return nil, storeError(s.metrics, "recent searches by type", err)
	}
	if len(history) > constants.RecentSearchLimit {
		history = history[:constants.RecentSearchLimit]
	}
	return history, nil
}

// ClearHistory removes every record for the user. Clearing an empty history
// is not an error.
func (s *HistoryService) ClearHistory(ctx context.Context, userID string) error {
	if _, err := s.repo.DeleteByUser(ctx, userID); err != nil {
		return storeError(s.metrics, "clear search history", err)
	}
	s.cache.Delete(string(constants.CachePrefixPopularDestinations))
	return nil
}

// SearchQuery joins origin and destination for display. Existing clients
// expect an absent side to read "null".
func SearchQuery(from, to *string) string {
	return nullable(from) + " to " + nullable(to)
}

func nullable(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
