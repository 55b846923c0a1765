package gorm

import (
	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// newID assigns a UUID primary key when the caller did not supply one.
// gen_random_uuid() is Postgres-only, so IDs are generated client side.
func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

func (f *Flight) BeforeCreate(tx *gormlib.DB) error {
	newID(&f.ID)
	return nil
}

func (h *Hotel) BeforeCreate(tx *gormlib.DB) error {
	newID(&h.ID)
	return nil
}

func (s *FlightStatus) BeforeCreate(tx *gormlib.DB) error {
	newID(&s.ID)
	return nil
}

func (p *TravelPackage) BeforeCreate(tx *gormlib.DB) error {
	newID(&p.ID)
	return nil
}

func (h *SearchHistory) BeforeCreate(tx *gormlib.DB) error {
	newID(&h.ID)
	return nil
}

// All lists every row model for AutoMigrate.
func All() []any {
	return []any{
		&Flight{},
		&Hotel{},
		&FlightStatus{},
		&TravelPackage{},
		&SearchHistory{},
	}
}
