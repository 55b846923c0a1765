package repositories

import (
	"context"
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// GormSearchHistoryRepository handles search_history table operations
type GormSearchHistoryRepository struct {
	db *gormlib.DB
}

func NewGormSearchHistoryRepository(db *gormlib.DB) *GormSearchHistoryRepository {
	return &GormSearchHistoryRepository{db: db}
}

func (r *GormSearchHistoryRepository) Save(ctx context.Context, history *entities.SearchHistory) error {
	row := gorm.SearchHistoryFromEntity(history)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	history.ID = row.ID
	return nil
}

func (r *GormSearchHistoryRepository) FindByUser(ctx context.Context, userID string, limit int) ([]entities.SearchHistory, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("search_date_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query)
}

func (r *GormSearchHistoryRepository) FindByUserAndType(ctx context.Context, userID string, searchType constants.SearchType) ([]entities.SearchHistory, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ? AND search_type = ?", userID, string(searchType)).
		Order("search_date_time DESC"))
}

func (r *GormSearchHistoryRepository) FindSince(ctx context.Context, since time.Time) ([]entities.SearchHistory, error) {
	return r.find(r.db.WithContext(ctx).
		Where("search_date_time >= ?", since).
		Order("search_date_time ASC"))
}

func (r *GormSearchHistoryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&gorm.SearchHistory{})
	return result.RowsAffected, result.Error
}

func (r *GormSearchHistoryRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&gorm.SearchHistory{})
	return result.RowsAffected, result.Error
}

func (r *GormSearchHistoryRepository) find(query *gormlib.DB) ([]entities.SearchHistory, error) {
	var rows []gorm.SearchHistory
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	history := make([]entities.SearchHistory, 0, len(rows))
	for _, row := range rows {
		history = append(history, row.ToEntity())
	}
	return history, nil
}

var _ SearchHistoryRepository = (*GormSearchHistoryRepository)(nil)
