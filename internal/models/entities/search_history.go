package entities

import (
	"time"

	"travelbook/atlas/internal/constants"
)

type SearchHistory struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	UserID         string               `json:"userId" bson:"userId"`
	SearchType     constants.SearchType `json:"searchType" bson:"searchType"`
	Origin         *string              `json:"origin" bson:"origin,omitempty"`
	Destination    *string              `json:"destination" bson:"destination,omitempty"`
	CheckInDate    *string              `json:"checkInDate" bson:"checkInDate,omitempty"`
	CheckOutDate   *string              `json:"checkOutDate" bson:"checkOutDate,omitempty"`
	Passengers     int                  `json:"passengers" bson:"passengers"`
	SearchQuery    string               `json:"searchQuery" bson:"searchQuery"`
	SearchDateTime time.Time            `json:"searchDateTime" bson:"searchDateTime"`
}
