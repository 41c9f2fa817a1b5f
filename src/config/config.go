package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const TIME_PARSE_FORMAT = "2006-01-02T15:04:05Z07:00"

// Defaults the agent falls back to when the model omits a parameter.
const (
	DEFAULT_PARTY_SIZE uint = 2
	DEFAULT_RESTAURANT_ID   = "rest_001"
	DEFAULT_CUSTOMER_ID     = "cust_001"
)

var API_ENV = os.Getenv("API_ENV")

// DefaultRestaurantID returns the single-restaurant deployment id, env-overridable.
func DefaultRestaurantID() string {
	if v := os.Getenv("DEFAULT_RESTAURANT_ID"); v != "" {
		return v
	}
	return DEFAULT_RESTAURANT_ID
}
