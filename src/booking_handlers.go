package main

import (
	"log"
	"net/http"

	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			var query struct {
				Status *types.BookingStatus `form:"status" binding:"omitempty,oneof=pending_payment confirmed checked_in checked_out cancelled no_show"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			d := db.GetDb()
			tx := d.Model(&models.Booking{}).Preload("Guest")
			if query.Status != nil {
				tx = tx.Where(&models.Booking{Status: *query.Status})
			}
			var bookings []models.Booking
			if err := tx.Order("check_in").Find(&bookings).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			booking, err := utils.GetBooking(params.ID)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.Source == "" {
				body.Source = types.SOURCE_WALK_IN
			}
			booking, err := utils.CreateBooking(&body)
			if err != nil {
				log.Printf("Error creating booking: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		POST("/bookings/:id/transition", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.TransitionRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.TransitionBooking(params.ID, body.Status)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings/:id/checkin", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			booking, err := utils.TransitionBooking(params.ID, types.BOOKING_CHECKED_IN)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings/:id/checkout", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			booking, err := utils.CheckOutBooking(params.ID)
			if err != nil {
				log.Printf("Error checking out booking %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			result, err := utils.CancelBooking(params.ID)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": result})
		}).
		POST("/bookings/:id/no-show", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			booking, err := utils.MarkNoShow(params.ID)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}
