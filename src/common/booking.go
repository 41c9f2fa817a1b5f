package common

import (
	"fmt"
	"log"
	"os"

	"rrs/src/db"
	"rrs/src/lib"
	"rrs/src/lib/mailer"
	"rrs/src/models"
	"rrs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReservation books a table after re-checking that the slot is still
// free. Returns ErrSlotConflict when a confirmed reservation already holds
// the (restaurant, table, time) slot. Special request notes are recorded
// after the booking commits; a note that fails to persist is logged and
// skipped without affecting the reservation.
func CreateReservation(body *types.CreateReservationRequestBody) (*models.Reservation, error) {
	reservation := &models.Reservation{
		ReservationID:   uuid.NewString(),
		CustomerID:      body.CustomerID,
		RestaurantID:    body.RestaurantID,
		TableID:         body.TableID,
		ReservationTime: body.ReservationTime,
		PartySize:       body.PartySize,
		Status:          types.RESERVATION_CONFIRMED,
	}
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Reservation{}).
			Where(&models.Reservation{
				RestaurantID:    body.RestaurantID,
				TableID:         body.TableID,
				ReservationTime: body.ReservationTime,
				Status:          types.RESERVATION_CONFIRMED,
			}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotConflict
		}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return nil, err
	}
	for _, note := range body.SpecialRequests {
		request := models.Request{
			RequestID:     uuid.NewString(),
			ReservationID: reservation.ReservationID,
			Note:          note,
			Priority:      types.REQUEST_PRIORITY_NORMAL,
		}
		if err := db.GetDb().Create(&request).Error; err != nil {
			log.Printf("error saving special request: %s\n", err.Error())
		}
	}
	go notifyReservationCreated(reservation)
	return reservation, nil
}

// CancelReservation flips a reservation to cancelled, freeing its slot.
func CancelReservation(id string) (*models.Reservation, error) {
	tx := db.GetDb()
	var reservation models.Reservation
	if err := tx.Where(&models.Reservation{ReservationID: id}).First(&reservation).Error; err != nil {
		return nil, err
	}
	reservation.Status = types.RESERVATION_CANCELLED
	if err := tx.Save(&reservation).Error; err != nil {
		return nil, err
	}
	go func() {
		lib.SocketEmit("reservation:cancelled", map[string]any{"reservation_id": reservation.ReservationID})
		if lib.KafkaEnabled() {
			if err := lib.KafkaProduceMessage("rrsEvents", "reservations", map[string]any{
				"event":          "reservation.cancelled",
				"reservation_id": reservation.ReservationID,
			}); err != nil {
				log.Printf("error producing cancel event: %s\n", err.Error())
			}
		}
	}()
	return &reservation, nil
}

func notifyReservationCreated(reservation *models.Reservation) {
	lib.SocketEmit("reservation:created", map[string]any{
		"reservation_id": reservation.ReservationID,
		"table_id":       reservation.TableID,
		"time":           reservation.ReservationTime,
	})
	if lib.KafkaEnabled() {
		if err := lib.KafkaProduceMessage("rrsEvents", "reservations", map[string]any{
			"event":          "reservation.created",
			"reservation_id": reservation.ReservationID,
			"restaurant_id":  reservation.RestaurantID,
			"table_id":       reservation.TableID,
			"time":           reservation.ReservationTime,
		}); err != nil {
			log.Printf("error producing reservation event: %s\n", err.Error())
		}
	}
	var customer models.Customer
	if err := db.GetDb().Where(&models.Customer{CustomerID: reservation.CustomerID}).First(&customer).Error; err != nil {
		return
	}
	if customer.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your reservation is confirmed for %s, party of %d.</p><p>Reservation ID: %s</p>",
		customer.Name, reservation.ReservationTime, reservation.PartySize, reservation.ReservationID,
	)
	if err := mailer.NewMailerMessage(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Reservations",
		To:       []string{customer.Email},
		Subject:  "Your reservation is confirmed",
		Body:     body,
		Html:     true,
	}); err != nil {
		log.Printf("error sending confirmation email: %s\n", err.Error())
	}
}
