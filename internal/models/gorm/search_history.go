package gorm

import (
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
)

type SearchHistory struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"column:user_id;index:idx_history_user_time"`
	SearchType     string    `gorm:"column:search_type;type:varchar(16)"`
	Origin         *string   `gorm:"column:origin"`
	Destination    *string   `gorm:"column:destination"`
	CheckInDate    *string   `gorm:"column:check_in_date"`
	CheckOutDate   *string   `gorm:"column:check_out_date"`
	Passengers     int       `gorm:"column:passengers"`
	SearchQuery    string    `gorm:"column:search_query"`
	SearchDateTime time.Time `gorm:"column:search_date_time;index:idx_history_user_time"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}

func (h SearchHistory) ToEntity() entities.SearchHistory {
	return entities.SearchHistory{
		ID:             h.ID,
		UserID:         h.UserID,
		SearchType:     constants.SearchType(h.SearchType),
		Origin:         h.Origin,
		Destination:    h.Destination,
		CheckInDate:    h.CheckInDate,
		CheckOutDate:   h.CheckOutDate,
		Passengers:     h.Passengers,
		SearchQuery:    h.SearchQuery,
		SearchDateTime: h.SearchDateTime,
	}
}

func SearchHistoryFromEntity(e *entities.SearchHistory) SearchHistory {
	return SearchHistory{
		ID:             e.ID,
		UserID:         e.UserID,
		SearchType:     string(e.SearchType),
		Origin:         e.Origin,
		Destination:    e.Destination,
		CheckInDate:    e.CheckInDate,
		CheckOutDate:   e.CheckOutDate,
		Passengers:     e.Passengers,
		SearchQuery:    e.SearchQuery,
		SearchDateTime: e.SearchDateTime,
	}
}
