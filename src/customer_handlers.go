package main

import (
	"errors"
	"log"
	"net/http"

	"rrs/src/db"
	"rrs/src/models"
	"rrs/src/types"
	"rrs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func customerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/customers", func(ctx *gin.Context) {
			var body types.CreateCustomerRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			loyalty := body.LoyaltyStatus
			if loyalty == "" {
				loyalty = types.LOYALTY_BRONZE
			}
			customer := models.Customer{
				CustomerID:    uuid.NewString(),
				Name:          body.Name,
				Email:         body.Email,
				PhoneNumber:   body.PhoneNumber,
				Preferences:   body.Preferences,
				LoyaltyStatus: loyalty,
			}
			if err := db.GetDb().Create(&customer).Error; err != nil {
				log.Printf("error creating customer: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": customer})
		}).
		GET("/customers", func(ctx *gin.Context) {
			var customers []models.Customer
			if err := db.GetDb().Find(&customers).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": customers, "count": len(customers)})
		}).
		GET("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var customer models.Customer
			err := db.GetDb().Where(&models.Customer{CustomerID: params.ID}).First(&customer).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": customer})
		}).
		PUT("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateCustomerRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tx := db.GetDb()
			var customer models.Customer
			err := tx.Where(&models.Customer{CustomerID: params.ID}).First(&customer).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if body.Name != nil {
				customer.Name = *body.Name
			}
			if body.Email != nil {
				customer.Email = *body.Email
			}
			if body.PhoneNumber != nil {
				customer.PhoneNumber = *body.PhoneNumber
			}
			if body.Preferences != nil {
				customer.Preferences = *body.Preferences
			}
			if body.LoyaltyStatus != nil {
				customer.LoyaltyStatus = *body.LoyaltyStatus
			}
			if err := tx.Save(&customer).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
		}).
		GET("/customers/:id/reservations", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservations, err := utils.GetCustomerReservations(params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		})
	return g
}
