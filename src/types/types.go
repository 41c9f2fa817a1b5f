package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		// sqlite hands back TEXT
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Status string

type Environment string

const (
	Local      Environment = "local"
	Test       Environment = "test"
	Production Environment = "production"
)

const (
	RESERVATION_CONFIRMED Status = "confirmed"
	RESERVATION_CANCELLED Status = "cancelled"

	REQUEST_PRIORITY_NORMAL = "normal"

	LOYALTY_BRONZE = "bronze"
	LOYALTY_SILVER = "silver"
	LOYALTY_GOLD   = "gold"
)

type CreateCustomerRequestBody struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Preferences   JSONB  `json:"preferences,omitempty"`
	LoyaltyStatus string `json:"loyalty_status,omitempty"`
}

type UpdateCustomerRequestBody struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Preferences   *JSONB  `json:"preferences,omitempty"`
	LoyaltyStatus *string `json:"loyalty_status,omitempty"`
}

type CreateRestaurantRequestBody struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	CuisineType  string  `json:"cuisine_type" binding:"required"`
	Rating       float32 `json:"rating,omitempty"`
	OpeningHours JSONB   `json:"opening_hours,omitempty"`
	ContactInfo  JSONB   `json:"contact_info,omitempty"`
}

type UpdateRestaurantRequestBody struct {
	Name         *string  `json:"name,omitempty"`
	Location     *string  `json:"location,omitempty"`
	CuisineType  *string  `json:"cuisine_type,omitempty"`
	Rating       *float32 `json:"rating,omitempty"`
	OpeningHours *JSONB   `json:"opening_hours,omitempty"`
	ContactInfo  *JSONB   `json:"contact_info,omitempty"`
}

type CreateTableRequestBody struct {
	RestaurantID    string `json:"restaurant_id" binding:"required"`
	TableNumber     string `json:"table_number" binding:"required"`
	SeatingCapacity uint   `json:"seating_capacity" binding:"required,gt=0"`
	LocationType    string `json:"location_type" binding:"required"`
}

type CreateReservationRequestBody struct {
	CustomerID      string   `json:"customer_id" binding:"required"`
	RestaurantID    string   `json:"restaurant_id" binding:"required"`
	TableID         string   `json:"table_id" binding:"required"`
	ReservationTime string   `json:"reservation_time" binding:"required,reservabledate"`
	PartySize       uint     `json:"party_size" binding:"required,gt=0"`
	SpecialRequests []string `json:"special_requests,omitempty"`
}

type UpdateReservationRequestBody struct {
	TableID         *string `json:"table_id,omitempty"`
	ReservationTime *string `json:"reservation_time,omitempty" binding:"omitempty,reservabledate"`
	PartySize       *uint   `json:"party_size,omitempty" binding:"omitempty,gt=0"`
	Status          *Status `json:"status,omitempty"`
}

type CreateRequestRequestBody struct {
	ReservationID string `json:"reservation_id" binding:"required"`
	Note          string `json:"note" binding:"required"`
	Priority      string `json:"priority,omitempty"`
}

type AvailabilityQueryParams struct {
	RestaurantID    string `form:"restaurant_id" binding:"required"`
	PartySize       uint   `form:"party_size" binding:"required,gt=0"`
	ReservationTime string `form:"reservation_time" binding:"required"`
}

type AgentPromptRequestBody struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AgentParameters mirrors the parameter envelope the model is instructed
// to emit. Field names follow the model-facing contract, not snake_case.
type AgentParameters struct {
	CustomerID      string   `json:"customerId,omitempty"`
	RestaurantID    string   `json:"restaurantId,omitempty"`
	TableID         string   `json:"tableId,omitempty"`
	Time            string   `json:"time,omitempty"`
	PartySize       uint     `json:"partySize,omitempty"`
	SpecialRequests []string `json:"specialRequests,omitempty"`
}

type AgentAction string

const (
	ACTION_CHECK_AVAILABILITY     AgentAction = "check_availability"
	ACTION_CREATE_RESERVATION     AgentAction = "create_reservation"
	ACTION_SUGGEST_ALTERNATIVES   AgentAction = "suggest_alternatives"
	ACTION_HANDLE_SPECIAL_REQUEST AgentAction = "handle_special_request"
)

type AgentInstruction struct {
	Action     AgentAction     `json:"action"`
	Parameters AgentParameters `json:"parameters"`
	Response   string          `json:"response"`
	Confidence float64         `json:"confidence"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}
