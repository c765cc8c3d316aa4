package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vijay-kumar-79/ZCoder/internal/ai"
	"github.com/vijay-kumar-79/ZCoder/internal/api"
	"github.com/vijay-kumar-79/ZCoder/internal/bookmarks"
	"github.com/vijay-kumar-79/ZCoder/internal/handlers"
	"github.com/vijay-kumar-79/ZCoder/internal/history"
	"github.com/vijay-kumar-79/ZCoder/internal/metrics"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/routers"
	"github.com/vijay-kumar-79/ZCoder/internal/session"
)

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "zcoder")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Solution{},
		&models.DiscussionPost{},
		&models.Scholarship{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	jwtSecret := getEnv("JWT_SECRET", "dev")

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	mongoClient, err := history.NewClient(context.Background())
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	messageStore, err := history.NewStore(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize message store", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: getEnv("REDIS_ADDR", "localhost:6379")})

	promptManager, err := ai.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to load prompt templates", zap.Error(err))
	}

	userRepo := &repositories.UserRepository{DB: db}
	solutionRepo := &repositories.SolutionRepository{DB: db}
	discussionRepo := &repositories.DiscussionRepository{DB: db}
	scholarshipRepo := &repositories.ScholarshipRepository{DB: db}
	bookmarkStore := bookmarks.NewStore(rdb)

	hub := session.NewHub()
	roomHandlers := api.NewHandlers(logger, hub, messageStore)

	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	userHandler := handlers.NewUserHandler(userRepo)
	solutionHandler := handlers.NewSolutionHandler(solutionRepo)
	discussionHandler := handlers.NewDiscussionHandler(discussionRepo)
	scholarshipHandler := handlers.NewScholarshipHandler(scholarshipRepo)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkStore, logger)
	aiHandler := handlers.NewAIHandler(ai.NewClient(promptManager), logger)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}),
		metrics.Middleware(),
	)

	routers.AuthRoutes(r, authHandler, jwtSecret)
	routers.UserRoutes(r, userHandler, jwtSecret)
	routers.SolutionRoutes(r, solutionHandler, jwtSecret)
	routers.BookmarkRoutes(r, bookmarkHandler, jwtSecret)
	routers.DiscussionRoutes(r, discussionHandler, jwtSecret)
	routers.ScholarshipRoutes(r, scholarshipHandler)
	routers.AIRoutes(r, aiHandler)
	routers.RoomRoutes(r, roomHandlers)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/ping", handlers.PingHandler)
	r.Handle("/metrics", metrics.Handler())

	// Keep the live-room gauge fresh without touching the hot path.
	go func() {
		for range time.Tick(15 * time.Second) {
			metrics.SetActiveRooms(hub.RoomCount())
		}
	}()

	port := getEnv("PORT", "5000")
	addr := ":" + port
	logger.Info("zcoder server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
