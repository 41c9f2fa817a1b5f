package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"

	"rrs/src/common"
	"rrs/src/db"
	"rrs/src/models"
	"rrs/src/types"
	"rrs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
	"gorm.io/gorm"
)

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations/availability", func(ctx *gin.Context) {
			var query types.AvailabilityQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tables, err := common.FindAvailableTables(query.RestaurantID, query.ReservationTime, query.PartySize)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"available": len(tables) > 0,
				"data":      tables,
				"count":     len(tables),
			})
		}).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CreateReservation(&body)
			if err != nil {
				if errors.Is(err, common.ErrSlotConflict) {
					ctx.JSON(http.StatusConflict, gin.H{"error": "Table is not available at this time"})
					return
				}
				log.Printf("error creating reservation: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": reservation})
		}).
		GET("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := utils.GetReservationDetail(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		PUT("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tx := db.GetDb()
			var reservation models.Reservation
			err := tx.Where(&models.Reservation{ReservationID: params.ID}).First(&reservation).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if body.TableID != nil {
				reservation.TableID = *body.TableID
			}
			if body.ReservationTime != nil {
				reservation.ReservationTime = *body.ReservationTime
			}
			if body.PartySize != nil {
				reservation.PartySize = *body.PartySize
			}
			if body.Status != nil {
				reservation.Status = *body.Status
			}
			if err := tx.Save(&reservation).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
		}).
		DELETE("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CancelReservation(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
		}).
		GET("/reservations/:id/requests", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requests, err := utils.GetReservationRequests(params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
		}).
		GET("/reservations/:id/qr", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var reservation models.Reservation
			err := db.GetDb().Where(&models.Reservation{ReservationID: params.ID}).First(&reservation).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			rawData := map[string]any{
				"reservationId": reservation.ReservationID,
				"tableId":       reservation.TableID,
				"time":          reservation.ReservationTime,
			}
			rawBytes, _ := json.Marshal(rawData)
			keyEnv := os.Getenv("API_QRC_SECRET")
			key, err := hex.DecodeString(keyEnv)
			if err != nil {
				log.Printf("Could not read key from string: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate code"})
				return
			}
			encryptedMessage, err := utils.EncryptMessage(key, string(rawBytes))
			if err != nil {
				log.Printf("Error encrypting message: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate code"})
				return
			}
			qrc, err := qrcode.New(encryptedMessage)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			filepath := path.Join(os.TempDir(), fmt.Sprintf("%s.jpeg", reservation.ReservationID))
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.FileAttachment(filepath, "reservation.jpeg")
		})
	return g
}
