package gorm

import (
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"

	"gorm.io/datatypes"
)

type TravelPackage struct {
	ID                      string                      `gorm:"column:id;primaryKey;type:varchar(36)"`
	PackageName             string                      `gorm:"column:package_name"`
	Description             string                      `gorm:"column:description;type:text"`
	Destination             string                      `gorm:"column:destination;index"`
	Duration                int                         `gorm:"column:duration"`
	OriginalPrice           float64                     `gorm:"column:original_price"`
	DiscountedPrice         float64                     `gorm:"column:discounted_price;index"`
	DiscountPercentage      float64                     `gorm:"column:discount_percentage"`
	FlightIDs               datatypes.JSONSlice[string] `gorm:"column:flight_ids"`
	HotelIDs                datatypes.JSONSlice[string] `gorm:"column:hotel_ids"`
	TourActivities          datatypes.JSONSlice[string] `gorm:"column:tour_activities"`
	PackageType             string                      `gorm:"column:package_type;type:varchar(16);index"`
	IsActive                bool                        `gorm:"column:is_active"`
	ImageURL                string                      `gorm:"column:image_url"`
	Highlights              datatypes.JSONSlice[string] `gorm:"column:highlights"`
	MinGroupSize            int                         `gorm:"column:min_group_size"`
	GroupDiscountPercentage float64                     `gorm:"column:group_discount_percentage"`
	UpdatedAt               time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

func (TravelPackage) TableName() string {
	return "travel_packages"
}

func (p TravelPackage) ToEntity() entities.TravelPackage {
	return entities.TravelPackage{
		ID:                      p.ID,
		PackageName:             p.PackageName,
		Description:             p.Description,
		Destination:             p.Destination,
		Duration:                p.Duration,
		OriginalPrice:           p.OriginalPrice,
		DiscountedPrice:         p.DiscountedPrice,
		DiscountPercentage:      p.DiscountPercentage,
		FlightIDs:               []string(p.FlightIDs),
		HotelIDs:                []string(p.HotelIDs),
		TourActivities:          []string(p.TourActivities),
		PackageType:             constants.PackageType(p.PackageType),
		IsActive:                p.IsActive,
		ImageURL:                p.ImageURL,
		Highlights:              []string(p.Highlights),
		MinGroupSize:            p.MinGroupSize,
		GroupDiscountPercentage: p.GroupDiscountPercentage,
	}
}

func TravelPackageFromEntity(e *entities.TravelPackage) TravelPackage {
	return TravelPackage{
		ID:                      e.ID,
		PackageName:             e.PackageName,
		Description:             e.Description,
		Destination:             e.Destination,
		Duration:                e.Duration,
		OriginalPrice:           e.OriginalPrice,
		DiscountedPrice:         e.DiscountedPrice,
		DiscountPercentage:      e.DiscountPercentage,
		FlightIDs:               datatypes.NewJSONSlice(e.FlightIDs),
		HotelIDs:                datatypes.NewJSONSlice(e.HotelIDs),
		TourActivities:          datatypes.NewJSONSlice(e.TourActivities),
		PackageType:             string(e.PackageType),
		IsActive:                e.IsActive,
		ImageURL:                e.ImageURL,
		Highlights:              datatypes.NewJSONSlice(e.Highlights),
		MinGroupSize:            e.MinGroupSize,
		GroupDiscountPercentage: e.GroupDiscountPercentage,
	}
}
