package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"reflect"
	"regexp"
	"strconv"
	"time"

	"hbs/src/boot"
	"hbs/src/config"
	"hbs/src/middlewares"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

// checkOutAfterCheckIn rejects stays of zero or negative length. The param
// names the sibling check-in field, which may be a plain string or a pointer.
var checkOutAfterCheckIn validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	checkOut, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	checkIn, err := time.Parse(config.DATE_PARSE_FORMAT, field.String())
	if err != nil {
		return false
	}
	return checkOut.After(checkIn)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err != nil || atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1 = catalogHandlers(apiv1)
	apiv1 = flowHandlers(apiv1)
	return apiv1
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()
	boot.InitScheduler()
	defer boot.StopScheduler()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", "X-Session-ID")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			if match {
				return true
			}
			match, _ = regexp.MatchString("app:mobile", origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("checkoutafter", checkOutAfterCheckIn)
	}

	router = maintenanceModeMiddleware(router)

	publicRoutes(router)

	stripeWebhookRoute(router)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = loyaltyHandlers(authorized)

		admin := authorized.Group("")
		admin.Use(middlewares.AdminOnly)
		admin = bookingHandlers(admin)
		admin = reportHandlers(admin)
	}

	if os.Getenv("TLS_ENABLE") == "true" {
		cwd, _ := os.Getwd()
		certpath := path.Join(cwd, "certificates", "localhost.pem")
		keypath := path.Join(cwd, "certificates", "localhost-key.pem")
		if err := router.RunTLS(":9090", certpath, keypath); err != nil {
			log.Fatalf("Failed to start server: %s", err)
		}
	}
	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
