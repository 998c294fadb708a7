package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tdat0411/laptopshop-api/config"
	orderControllers "github.com/tdat0411/laptopshop-api/controllers/order"
	"github.com/tdat0411/laptopshop-api/events"
	"github.com/tdat0411/laptopshop-api/models"
	"github.com/tdat0411/laptopshop-api/routes"
	cartservice "github.com/tdat0411/laptopshop-api/services/cart"
	productservice "github.com/tdat0411/laptopshop-api/services/product"
	userservice "github.com/tdat0411/laptopshop-api/services/user"
	"github.com/tdat0411/laptopshop-api/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	logger.Info().Msg("starting laptopshop api")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartDetail{},
		&models.Order{},
		&models.OrderDetail{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// Session badge store (advisory cart sum)
	var badges *session.BadgeStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		badges = session.NewBadgeStore(addr)
	}

	// Order event stream
	var publisher *events.Publisher
	if os.Getenv("KAFKA_BROKERS") != "" {
		publisher = events.NewPublisher(config.NewKafkaWriter("order-topic"))
	}

	hub := orderControllers.NewHub()

	deps := routes.Deps{
		DB:       db,
		Carts:    cartservice.NewService(db, badges),
		Products: productservice.NewService(db),
		Users:    userservice.NewService(db),
		Hub:      hub,
		Events:   publisher,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.Static("/uploads", uploadDir)

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("server running")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("db connection failed")
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	return db
}
