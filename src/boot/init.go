package boot

import (
	"log"
	"time"

	"rrs/src/common"
	"rrs/src/db"
	"rrs/src/lib"
	"rrs/src/models"
	"rrs/src/types"
)

func InitDb() {
	tx := db.GetDb()
	if err := tx.AutoMigrate(
		&models.Customer{},
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.Request{},
	); err != nil {
		log.Printf("automigrate error: %s\n", err.Error())
	}
}

// SeedDemoData loads the demo restaurant and its floor plan on first boot.
// Safe to call on every start: a seeded database is left untouched.
func SeedDemoData() error {
	tx := db.GetDb()
	var count int64
	if err := tx.Model(&models.Restaurant{}).Where(&models.Restaurant{RestaurantID: "rest_001"}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	restaurant := models.Restaurant{
		RestaurantID: "rest_001",
		Name:         "Fine Dining Restaurant",
		Slug:         "fine-dining-restaurant",
		Location:     "123 Main Street, Downtown",
		CuisineType:  "Contemporary American",
		Rating:       4.5,
		OpeningHours: types.JSONB{
			"monday":    "11:00-23:00",
			"tuesday":   "11:00-23:00",
			"wednesday": "11:00-23:00",
			"thursday":  "11:00-23:00",
			"friday":    "11:00-23:00",
			"saturday":  "11:00-23:00",
			"sunday":    "11:00-23:00",
		},
		ContactInfo: types.JSONB{
			"phone":   "(555) 123-4567",
			"email":   "info@finedining.com",
			"website": "https://finedining.com",
		},
	}
	if err := tx.Create(&restaurant).Error; err != nil {
		return err
	}
	tables := []models.Table{
		{TableID: "table_001", TableNumber: "A1", SeatingCapacity: 2, LocationType: "indoor"},
		{TableID: "table_002", TableNumber: "A2", SeatingCapacity: 2, LocationType: "indoor"},
		{TableID: "table_003", TableNumber: "A3", SeatingCapacity: 4, LocationType: "indoor"},
		{TableID: "table_004", TableNumber: "A4", SeatingCapacity: 4, LocationType: "indoor"},
		{TableID: "table_005", TableNumber: "A5", SeatingCapacity: 6, LocationType: "indoor"},
		{TableID: "table_006", TableNumber: "A6", SeatingCapacity: 6, LocationType: "indoor"},
		{TableID: "table_007", TableNumber: "B1", SeatingCapacity: 2, LocationType: "outdoor"},
		{TableID: "table_008", TableNumber: "B2", SeatingCapacity: 4, LocationType: "outdoor"},
		{TableID: "table_009", TableNumber: "B3", SeatingCapacity: 4, LocationType: "outdoor"},
		{TableID: "table_010", TableNumber: "VIP1", SeatingCapacity: 8, LocationType: "indoor"},
		{TableID: "table_011", TableNumber: "VIP2", SeatingCapacity: 8, LocationType: "indoor"},
	}
	for i := range tables {
		tables[i].RestaurantID = restaurant.RestaurantID
	}
	if err := tx.Create(&tables).Error; err != nil {
		return err
	}
	customer := models.Customer{
		CustomerID:  "cust_001",
		Name:        "Demo Customer",
		Email:       "demo@example.com",
		PhoneNumber: "(555) 000-0000",
	}
	return tx.Create(&customer).Error
}

func InitScheduler() {
	if _, err := lib.CreateCronJob(func() {
		var confirmed, cancelled int64
		tx := db.GetDb()
		tx.Model(&models.Reservation{}).Where("status = ?", types.RESERVATION_CONFIRMED).Count(&confirmed)
		tx.Model(&models.Reservation{}).Where("status = ?", types.RESERVATION_CANCELLED).Count(&cancelled)
		log.Printf("reservations summary: %d confirmed, %d cancelled\n", confirmed, cancelled)
	}, 24*time.Hour); err != nil {
		log.Printf("error scheduling summary job: %s\n", err.Error())
		return
	}
	if sched, err := lib.GetScheduler(); err == nil {
		sched.Start()
	}
}

func InitBroker() {
	if !lib.KafkaEnabled() {
		return
	}
	lib.KafkaCreateTopics("reservations", "emails")
	go common.EmailsConsumer()
}
