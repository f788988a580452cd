package main

import (
	"net/http"

	"hbs/src/db"
	"hbs/src/models"

	"github.com/gin-gonic/gin"
)

func loyaltyHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/loyalty", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			d := db.GetDb()
			var guest models.Guest
			if err := d.
				Where(&models.Guest{ID: guestId}).
				First(&guest).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"points": guest.LoyaltyPoints})
		}).
		GET("/loyalty/ledger", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			d := db.GetDb()
			var transactions []models.LoyaltyTransaction
			if err := d.
				Where(&models.LoyaltyTransaction{GuestID: guestId}).
				Order("created_at DESC").
				Find(&transactions).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": transactions, "count": len(transactions)})
		})
	return g
}
