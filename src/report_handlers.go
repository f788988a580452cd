package main

import (
	"net/http"
	"time"

	"hbs/src/config"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
)

func reportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reports/revenue", func(ctx *gin.Context) {
			var query types.RevenueQueryFilters
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			from, _ := time.Parse(config.DATE_PARSE_FORMAT, query.From)
			to, _ := time.Parse(config.DATE_PARSE_FORMAT, query.To)
			if !to.After(from) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "'to' must be after 'from'"})
				return
			}
			report, err := utils.RevenueBetween(from, to)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		}).
		GET("/reports/occupancy", func(ctx *gin.Context) {
			var query struct {
				Date *string `form:"date" binding:"omitempty,datetime=2006-01-02"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			date := time.Now().Truncate(24 * time.Hour)
			if query.Date != nil {
				t, _ := time.Parse(config.DATE_PARSE_FORMAT, *query.Date)
				date = t
			}
			report, err := utils.OccupancyOn(date)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		})
	return g
}
