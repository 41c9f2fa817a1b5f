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

func tableHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/tables", func(ctx *gin.Context) {
			var body types.CreateTableRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var restaurant models.Restaurant
			err := db.GetDb().Where(&models.Restaurant{RestaurantID: body.RestaurantID}).First(&restaurant).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			table := models.Table{
				TableID:         uuid.NewString(),
				RestaurantID:    body.RestaurantID,
				TableNumber:     body.TableNumber,
				SeatingCapacity: body.SeatingCapacity,
				LocationType:    body.LocationType,
			}
			if err := db.GetDb().Create(&table).Error; err != nil {
				log.Printf("error creating table: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": table})
		}).
		GET("/tables/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var table models.Table
			err := db.GetDb().Where(&models.Table{TableID: params.ID}).First(&table).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": table})
		}).
		DELETE("/tables/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tx := db.GetDb()
			var table models.Table
			err := tx.Where(&models.Table{TableID: params.ID}).First(&table).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if err := tx.Delete(&table).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	return g
}
