package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"rrs/src/db"
	"rrs/src/models"
	"rrs/src/types"

	"gorm.io/gorm"
)

func IsProd() bool {
	return os.Getenv("API_ENV") == string(types.Production)
}

func GetRestaurantReservations(restaurantId string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	db := db.GetDb()
	if err := db.
		Model(&models.Reservation{}).
		Where(&models.Reservation{RestaurantID: restaurantId}).
		Find(&reservations).
		Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func GetCustomerReservations(customerId string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	db := db.GetDb()
	if err := db.
		Model(&models.Reservation{}).
		Where(&models.Reservation{CustomerID: customerId}).
		Find(&reservations).
		Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservationDetail loads a reservation and attaches the customer and
// table rows. Missing referenced rows are tolerated, the reference is
// advisory only.
func GetReservationDetail(id string) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	if err := db.
		Where(&models.Reservation{ReservationID: id}).
		First(&reservation).
		Error; err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := db.
		Where(&models.Customer{CustomerID: reservation.CustomerID}).
		First(&customer).
		Error; err == nil {
		reservation.Customer = &customer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var table models.Table
	if err := db.
		Where(&models.Table{TableID: reservation.TableID}).
		First(&table).
		Error; err == nil {
		reservation.Table = &table
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &reservation, nil
}

func GetReservationRequests(reservationId string) ([]models.Request, error) {
	var requests []models.Request
	db := db.GetDb()
	if err := db.
		Model(&models.Request{}).
		Where(&models.Request{ReservationID: reservationId}).
		Find(&requests).
		Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func EncryptMessage(key []byte, message string) (string, error) {
	plaintext := []byte(message)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	cipherText := gcm.Seal(nonce, nonce, plaintext, nil)
	encodedString := hex.EncodeToString(cipherText)

	return encodedString, nil
}

func DecryptMessage(key []byte, message string) (*string, error) {
	cipherText, err := hex.DecodeString(message)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	decryptedData, err := gcm.Open(nil, cipherText[:gcm.NonceSize()], cipherText[gcm.NonceSize():], nil)
	if err != nil {
		return nil, err
	}
	decodedString := string(decryptedData)

	return &decodedString, nil
}
