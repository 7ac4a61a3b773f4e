package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"tsg/src/boot"
	"tsg/src/config"
	"tsg/src/db"
	"tsg/src/middlewares"
	"tsg/src/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"
)

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(middlewares.RequestID)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group("")
}

// registerRoutes builds the services once and hands them to the handler
// registrars; nothing service-shaped lives in package state.
func registerRoutes(router *gin.Engine, gdb *gorm.DB, sched gocron.Scheduler) {
	api := apiGroup(router)
	userHandlers(api, services.NewUserService(gdb))
	ticketHandlers(api, services.NewTicketService(gdb), services.NewBulkTicketService(gdb, sched))
}

func main() {
	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %s", err.Error())
	}
	boot.InitDb(gdb)

	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %s", err.Error())
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %s\n", err.Error())
		}
	}()

	router := setupRouter()
	if os.Getenv("APP_ENV") == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", "X-Request-ID")
		cc.AllowAllOrigins = true
		router.Use(cors.New(cc))
	}
	registerRoutes(router, gdb, sched)

	if err := router.Run(fmt.Sprintf(":%s", config.GetAppPort())); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
