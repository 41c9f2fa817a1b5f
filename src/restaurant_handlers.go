package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"rrs/src/db"
	"rrs/src/lib"
	"rrs/src/models"
	"rrs/src/types"
	"rrs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const restaurantCacheTTL = 5 * time.Minute

func restaurantHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/restaurants", func(ctx *gin.Context) {
			var body types.CreateRestaurantRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			restaurant := models.Restaurant{
				RestaurantID: uuid.NewString(),
				Name:         body.Name,
				Slug:         slug.Make(body.Name),
				Location:     body.Location,
				CuisineType:  body.CuisineType,
				Rating:       body.Rating,
				OpeningHours: body.OpeningHours,
				ContactInfo:  body.ContactInfo,
			}
			if err := db.GetDb().Create(&restaurant).Error; err != nil {
				log.Printf("error creating restaurant: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": restaurant})
		}).
		GET("/restaurants", func(ctx *gin.Context) {
			var restaurants []models.Restaurant
			if err := db.GetDb().Find(&restaurants).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": restaurants, "count": len(restaurants)})
		}).
		GET("/restaurants/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cacheKey := "restaurants:" + params.ID
			if rdb := lib.GetRedisClient(); rdb != nil {
				if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
					var restaurant models.Restaurant
					if err := json.Unmarshal([]byte(cached), &restaurant); err == nil {
						ctx.JSON(http.StatusOK, gin.H{"data": restaurant})
						return
					}
				}
			}
			var restaurant models.Restaurant
			err := db.GetDb().Where(&models.Restaurant{RestaurantID: params.ID}).First(&restaurant).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if rdb := lib.GetRedisClient(); rdb != nil {
				if raw, err := json.Marshal(restaurant); err == nil {
					if err := rdb.Set(ctx, cacheKey, raw, restaurantCacheTTL).Err(); err != nil {
						log.Printf("error caching restaurant: %s\n", err.Error())
					}
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": restaurant})
		}).
		PUT("/restaurants/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateRestaurantRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tx := db.GetDb()
			var restaurant models.Restaurant
			err := tx.Where(&models.Restaurant{RestaurantID: params.ID}).First(&restaurant).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if body.Name != nil {
				restaurant.Name = *body.Name
				restaurant.Slug = slug.Make(*body.Name)
			}
			if body.Location != nil {
				restaurant.Location = *body.Location
			}
			if body.CuisineType != nil {
				restaurant.CuisineType = *body.CuisineType
			}
			if body.Rating != nil {
				restaurant.Rating = *body.Rating
			}
			if body.OpeningHours != nil {
				restaurant.OpeningHours = *body.OpeningHours
			}
			if body.ContactInfo != nil {
				restaurant.ContactInfo = *body.ContactInfo
			}
			if err := tx.Save(&restaurant).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if rdb := lib.GetRedisClient(); rdb != nil {
				if err := rdb.Del(ctx, "restaurants:"+restaurant.RestaurantID).Err(); err != nil {
					log.Printf("error invalidating restaurant cache: %s\n", err.Error())
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": restaurant})
		}).
		GET("/restaurants/:id/tables", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var tables []models.Table
			if err := db.GetDb().Where(&models.Table{RestaurantID: params.ID}).Find(&tables).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tables, "count": len(tables)})
		}).
		GET("/restaurants/:id/reservations", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservations, err := utils.GetRestaurantReservations(params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		})
	return g
}
