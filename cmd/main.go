package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rentify/database"
	"rentify/internal/cache"
	"rentify/internal/controllers"
	"rentify/internal/repository"
	"rentify/internal/services"
	"rentify/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Printf("Warning: no .env file found: %v", err)
		}
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional: without it the city repository simply skips its
	// cache layer.
	var redisClient *cache.RedisClient
	var cityRepo repository.CityRepository
	if rc, err := cache.NewRedisClient(); err != nil {
		log.Printf("Warning: Redis unavailable, city cache disabled: %v", err)
		cityRepo = repository.NewCityRepository(database.DB)
	} else {
		redisClient = rc
		defer redisClient.Close()
		cityRepo = repository.NewCachedCityRepository(database.DB, redisClient.Client())
		log.Println("Connected to Redis successfully")
	}

	// Initialize repositories
	consumerRepo := repository.NewConsumerRepository(database.DB)
	propertyRepo := repository.NewPropertyRepository(database.DB)
	contractRepo := repository.NewContractRepository(database.DB)
	reviewRepo := repository.NewReviewRepository(database.DB)

	// Initialize services
	consumerService := services.NewConsumerService(consumerRepo, propertyRepo)
	propertyService := services.NewPropertyService(propertyRepo, consumerRepo, cityRepo)
	contractService := services.NewContractService(contractRepo, propertyRepo, consumerRepo)
	reviewService := services.NewReviewService(reviewRepo, contractRepo, consumerRepo)
	cityService := services.NewCityService(cityRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(consumerService)
	cityController := controllers.NewCityController(cityService)
	landlordController := controllers.NewLandlordController(consumerService, propertyService)
	tenantController := controllers.NewTenantController(consumerService)
	consumerController := controllers.NewConsumerController(consumerService, reviewService, contractService)
	propertyController := controllers.NewPropertyController(propertyService)
	contractController := controllers.NewContractController(contractService)
	reviewController := controllers.NewReviewController(reviewService)
	moderatorController := controllers.NewModeratorController(consumerService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Rentify API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterCityRoutes(router, cityController)
	routes.RegisterLandlordRoutes(router, landlordController)
	routes.RegisterTenantRoutes(router, tenantController)
	routes.RegisterConsumerRoutes(router, consumerController)
	routes.RegisterPropertyRoutes(router, propertyController)
	routes.RegisterContractRoutes(router, contractController)
	routes.RegisterReviewRoutes(router, reviewController)
	routes.RegisterModeratorRoutes(router, moderatorController)

	// Health endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(200, gin.H{"cache_health": false, "enabled": false})
			return
		}
		status, err := redisClient.Status()
		if err != nil {
			c.JSON(500, gin.H{"cache_health": false, "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"cache_health": true, "stats": status})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Rentify API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
