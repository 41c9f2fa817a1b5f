package models

import "rrs/src/types"

type Restaurant struct {
	RestaurantID string      `gorm:"primarykey" json:"restaurant_id"`
	Name         string      `json:"name"`
	Slug         string      `gorm:"index" json:"slug,omitempty"`
	Location     string      `json:"location"`
	CuisineType  string      `json:"cuisine_type"`
	Rating       float32     `json:"rating"`
	OpeningHours types.JSONB `gorm:"type:jsonb" json:"opening_hours"`
	ContactInfo  types.JSONB `gorm:"type:jsonb" json:"contact_info"`

	types.Timestamps
}
