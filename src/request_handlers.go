package main

import (
	"errors"
	"log"
	"net/http"

	"rrs/src/db"
	"rrs/src/models"
	"rrs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			var body types.CreateRequestRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tx := db.GetDb()
			var reservation models.Reservation
			err := tx.Where(&models.Reservation{ReservationID: body.ReservationID}).First(&reservation).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			priority := body.Priority
			if priority == "" {
				priority = types.REQUEST_PRIORITY_NORMAL
			}
			request := models.Request{
				RequestID:     uuid.NewString(),
				ReservationID: body.ReservationID,
				Note:          body.Note,
				Priority:      priority,
			}
			if err := tx.Create(&request).Error; err != nil {
				log.Printf("error creating request: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": request})
		}).
		GET("/requests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var request models.Request
			err := db.GetDb().Where(&models.Request{RequestID: params.ID}).First(&request).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": request})
		})
	return g
}
