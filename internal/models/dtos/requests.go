package dtos

import (
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
)

// TravelPackageRequest is the create/update body for a package. Prices are
// derived server side, so they are not accepted here. Pointer fields fall
// back to catalog defaults when omitted.
type TravelPackageRequest struct {
	PackageName             string   `json:"packageName" validate:"required"`
	Description             string   `json:"description"`
	Destination             string   `json:"destination" validate:"required"`
	Duration                int      `json:"duration" validate:"gt=0"`
	DiscountPercentage      float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	FlightIDs               []string `json:"flightIds"`
	HotelIDs                []string `json:"hotelIds"`
	TourActivities          []string `json:"tourActivities"`
	PackageType             string   `json:"packageType" validate:"required,oneof=PRE_BUILT CUSTOMIZABLE"`
	IsActive                *bool    `json:"isActive"`
	ImageURL                string   `json:"imageUrl"`
	Highlights              []string `json:"highlights"`
	MinGroupSize            *int     `json:"minGroupSize" validate:"omitempty,gt=0"`
	GroupDiscountPercentage *float64 `json:"groupDiscountPercentage" validate:"omitempty,gte=0,lte=100"`
}

func (r *TravelPackageRequest) ToEntity() *entities.TravelPackage {
	pkg := &entities.TravelPackage{
		PackageName:             r.PackageName,
		Description:             r.Description,
		Destination:             r.Destination,
		Duration:                r.Duration,
		DiscountPercentage:      r.DiscountPercentage,
		FlightIDs:               orEmpty(r.FlightIDs),
		HotelIDs:                orEmpty(r.HotelIDs),
		TourActivities:          orEmpty(r.TourActivities),
		PackageType:             constants.PackageType(r.PackageType),
		IsActive:                true,
		ImageURL:                r.ImageURL,
		Highlights:              orEmpty(r.Highlights),
		MinGroupSize:            constants.DefaultMinGroupSize,
		GroupDiscountPercentage: constants.DefaultGroupDiscountPercentage,
	}
	if r.IsActive != nil {
		pkg.IsActive = *r.IsActive
	}
	if r.MinGroupSize != nil {
		pkg.MinGroupSize = *r.MinGroupSize
	}
	if r.GroupDiscountPercentage != nil {
		pkg.GroupDiscountPercentage = *r.GroupDiscountPercentage
	}
	return pkg
}

// SearchHistoryRequest mirrors the query/form parameters of POST /search/history.
type SearchHistoryRequest struct {
	UserID     string  `validate:"required"`
	SearchType string  `validate:"required,oneof=FLIGHT HOTEL PACKAGE"`
	From       *string
	To         *string
	CheckIn    *string
	CheckOut   *string
	Passengers int `validate:"gte=1"`
}

// orEmpty keeps omitted lists rendering as [] rather than null.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
