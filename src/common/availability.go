package common

import (
	"rrs/src/db"
	"rrs/src/models"
	"rrs/src/types"
)

// FindAvailableTables lists the tables of a restaurant that can seat the
// party and have no confirmed reservation at the requested time. The time
// value is compared as an opaque string: two clients that spell the same
// instant differently occupy different slots.
func FindAvailableTables(restaurantId, reservationTime string, partySize uint) ([]models.Table, error) {
	tx := db.GetDb()
	var tables []models.Table
	if err := tx.Where(&models.Table{RestaurantID: restaurantId}).Find(&tables).Error; err != nil {
		return nil, err
	}
	var reservations []models.Reservation
	if err := tx.
		Where(&models.Reservation{RestaurantID: restaurantId, ReservationTime: reservationTime, Status: types.RESERVATION_CONFIRMED}).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		booked[r.TableID] = true
	}
	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if booked[t.TableID] {
			continue
		}
		if t.SeatingCapacity < partySize {
			continue
		}
		available = append(available, t)
	}
	return available, nil
}
