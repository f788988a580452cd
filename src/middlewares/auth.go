package middlewares

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(401)
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatus(401)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		if err == jwt.ErrSignatureInvalid || err == jwt.ErrTokenMalformed {
			ctx.AbortWithStatus(401)
			return
		}
		ctx.AbortWithError(401, err)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(401)
		return
	}

	d := db.GetDb()
	var guest models.Guest
	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	d.Model(&models.Guest{}).Where(&models.Guest{ID: uint(uid)}).Find(&guest)

	if uint(uid) != guest.ID || guest.ID < 1 {
		ctx.AbortWithStatus(401)
		return
	}
	ctx.Set("email", guest.Email)
	ctx.Set("id", guest.ID)
	ctx.Set("role", guest.Role)
}

// AdminOnly gates the back-office lifecycle endpoints.
func AdminOnly(ctx *gin.Context) {
	if ctx.GetString("role") != "admin" {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
}
