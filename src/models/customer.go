package models

import "rrs/src/types"

type Customer struct {
	CustomerID    string      `gorm:"primarykey" json:"customer_id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	PhoneNumber   string      `json:"phone_number"`
	Preferences   types.JSONB `gorm:"type:jsonb" json:"preferences"`
	LoyaltyStatus string      `gorm:"default:'bronze'" json:"loyalty_status"`

	types.Timestamps
}
