package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/skn143/lifelessons/internal/handler/http"
	redisclient "github.com/skn143/lifelessons/internal/infrastructure/cache"
	"github.com/skn143/lifelessons/internal/infrastructure/config"
	database "github.com/skn143/lifelessons/internal/infrastructure/database"
	"github.com/skn143/lifelessons/internal/infrastructure/firebaseauth"
	"github.com/skn143/lifelessons/internal/infrastructure/logger"
	"github.com/skn143/lifelessons/internal/infrastructure/payment"
	"github.com/skn143/lifelessons/internal/infrastructure/repository/mongodb"
	"github.com/skn143/lifelessons/internal/infrastructure/store"
	"github.com/skn143/lifelessons/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.StripeSecret == "" {
		log.Fatal("STRIPE_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Token verification against the identity provider
	verifier, err := firebaseauth.NewVerifier(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	lessonRepo := mongodb.NewLessonRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	checkout := payment.NewStripeCheckout(appConfig.StripeSecret, appConfig.CheckoutCurrency, appConfig.SiteDomain)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, appLogger)
	lessonUsecase := usecase.NewLessonUsecase(lessonRepo, appLogger)
	favoriteUsecase := usecase.NewFavoriteUsecase(favoriteRepo, lessonRepo)
	commentUsecase := usecase.NewCommentUsecase(commentRepo)
	reportUsecase := usecase.NewReportUsecase(reportRepo, lessonRepo)
	paymentUsecase := usecase.NewPaymentUsecase(checkout, paymentRepo, userRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		lessonUsecase.SetLessonCache(store.NewLessonCacheStore(rdb))
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, lessonUsecase, favoriteUsecase,
		commentUsecase, reportUsecase, paymentUsecase,
		verifier, userRepo, appConfig.RateLimit,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
