package models

import "rrs/src/types"

// Request is a special-request note attached to a reservation.
type Request struct {
	RequestID     string `gorm:"primarykey" json:"request_id"`
	ReservationID string `gorm:"index" json:"reservation_id"`
	Note          string `json:"note"`
	Priority      string `gorm:"default:'normal'" json:"priority"`

	types.Timestamps
}
