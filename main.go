package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-resto-manager/config"
	"go-resto-manager/controllers"
	"go-resto-manager/database"
	"go-resto-manager/helpers"
	"go-resto-manager/routes"
	"go-resto-manager/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	} else {
		log.Println(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	helpers.Init(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("admin seeding failed: %v", err)
	}

	store := storage.New(db)
	controllers.Init(store, cfg)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve the SPA build; API 404s stay JSON.
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.ProductRoutes(router)
	routes.TableRoutes(router)
	routes.OrderRoutes(router)
	routes.SaleRoutes(router)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
