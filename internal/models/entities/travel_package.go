package entities

import "travelbook/atlas/internal/constants"

// TravelPackage bundles flights, hotel stays and activities at a derived price.
type TravelPackage struct {
	ID                      string                `json:"id" bson:"_id,omitempty"`
	PackageName             string                `json:"packageName" bson:"packageName"`
	Description             string                `json:"description" bson:"description"`
	Destination             string                `json:"destination" bson:"destination"`
	Duration                int                   `json:"duration" bson:"duration"`
	OriginalPrice           float64               `json:"originalPrice" bson:"originalPrice"`
	DiscountedPrice         float64               `json:"discountedPrice" bson:"discountedPrice"`
	DiscountPercentage      float64               `json:"discountPercentage" bson:"discountPercentage"`
	FlightIDs               []string              `json:"flightIds" bson:"flightIds"`
	HotelIDs                []string              `json:"hotelIds" bson:"hotelIds"`
	TourActivities          []string              `json:"tourActivities" bson:"tourActivities"`
	PackageType             constants.PackageType `json:"packageType" bson:"packageType"`
	IsActive                bool                  `json:"isActive" bson:"isActive"`
	ImageURL                string                `json:"imageUrl" bson:"imageUrl"`
	Highlights              []string              `json:"highlights" bson:"highlights"`
	MinGroupSize            int                   `json:"minGroupSize" bson:"minGroupSize"`
	GroupDiscountPercentage float64               `json:"groupDiscountPercentage" bson:"groupDiscountPercentage"`
}

// Clone returns a copy whose slices do not alias the receiver's.
func (p *TravelPackage) Clone() *TravelPackage {
	c := *p
	c.FlightIDs = append([]string(nil), p.FlightIDs...)
	c.HotelIDs = append([]string(nil), p.HotelIDs...)
	c.TourActivities = append([]string(nil), p.TourActivities...)
	c.Highlights = append([]string(nil), p.Highlights...)
	return &c
}
