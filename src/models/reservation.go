package models

import "rrs/src/types"

// ReservationTime is stored and compared as an opaque string. Slot
// equality is exact string equality, no tolerance window.
type Reservation struct {
	ReservationID   string       `gorm:"primarykey" json:"reservation_id"`
	CustomerID      string       `json:"customer_id"`
	RestaurantID    string       `gorm:"index" json:"restaurant_id"`
	TableID         string       `json:"table_id"`
	ReservationTime string       `json:"reservation_time"`
	PartySize       uint         `json:"party_size"`
	Status          types.Status `gorm:"default:'confirmed'" json:"status"`

	Customer *Customer `gorm:"-" json:"customer,omitempty"`
	Table    *Table    `gorm:"-" json:"table,omitempty"`

	types.Timestamps
}
