package main

import (
	"net/http"
	"time"

	"hbs/src/config"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
)

func catalogHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rooms", func(ctx *gin.Context) {
			var query struct {
				CheckIn *string `form:"check_in" binding:"omitempty,datetime=2006-01-02"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkIn := time.Now()
			if query.CheckIn != nil {
				t, _ := time.Parse(config.DATE_PARSE_FORMAT, *query.CheckIn)
				checkIn = t
			}
			offers, err := utils.AvailableRooms(checkIn)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": offers, "count": len(offers)})
		}).
		GET("/services", func(ctx *gin.Context) {
			services, err := utils.ActiveServices()
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": services, "count": len(services)})
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			pkg, err := utils.PackageCatalog{}.PackageByID(params.ID)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		})
	return g
}
