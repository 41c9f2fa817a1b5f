package models

import "rrs/src/types"

type Table struct {
	TableID         string `gorm:"primarykey" json:"table_id"`
	RestaurantID    string `gorm:"index" json:"restaurant_id"`
	TableNumber     string `json:"table_number"`
	SeatingCapacity uint   `json:"seating_capacity"`
	LocationType    string `json:"location_type"`

	types.Timestamps
}
