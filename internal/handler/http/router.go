package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/handler/http/middleware"
	"github.com/skn143/lifelessons/internal/usecase"
)

type Router struct {
	userHandler     *UserHandler
	lessonHandler   *LessonHandler
	favoriteHandler *FavoriteHandler
	commentHandler  *CommentHandler
	reportHandler   *ReportHandler
	adminHandler    *AdminLessonHandler
	paymentHandler  *PaymentHandler
	verifier        contract.ITokenVerifier
	userRepo        contract.IUserRepository
	rateLimit       float64
}

func NewRouter(
	userUsecase *usecase.UserUsecase,
	lessonUsecase *usecase.LessonUsecase,
	favoriteUsecase *usecase.FavoriteUsecase,
	commentUsecase *usecase.CommentUsecase,
	reportUsecase *usecase.ReportUsecase,
	paymentUsecase *usecase.PaymentUsecase,
	verifier contract.ITokenVerifier,
	userRepo contract.IUserRepository,
	rateLimit float64,
) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUsecase),
		lessonHandler:   NewLessonHandler(lessonUsecase),
		favoriteHandler: NewFavoriteHandler(favoriteUsecase),
		commentHandler:  NewCommentHandler(commentUsecase),
		reportHandler:   NewReportHandler(reportUsecase),
		adminHandler:    NewAdminLessonHandler(lessonUsecase),
		paymentHandler:  NewPaymentHandler(paymentUsecase),
		verifier:        verifier,
		userRepo:        userRepo,
		rateLimit:       rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	authGate := middleware.AuthMiddleWare(r.verifier)
	adminGate := middleware.AdminOnly(r.userRepo)

	router.GET("/", func(c *gin.Context) {
		MessageHandler(c, 200, "Digital Life Lessons server is running")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Users
	router.POST("/users", r.userHandler.CreateUser)
	router.GET("/users/:email", r.userHandler.GetUserByEmail)
	router.GET("/users", authGate, adminGate, r.userHandler.ListUsers)
	router.GET("/users/search", authGate, adminGate, r.userHandler.SearchUsers)
	router.PATCH("/users/:id/role", authGate, adminGate, r.userHandler.UpdateUserRole)
	router.DELETE("/users/:id", authGate, adminGate, r.userHandler.DeleteUser)

	// Lessons
	router.GET("/lessons", r.lessonHandler.ListLessons)
	router.GET("/lessons/:id", authGate, r.lessonHandler.GetLesson)
	router.POST("/lessons", authGate, r.lessonHandler.CreateLesson)
	router.PATCH("/lessons/:id", authGate, r.lessonHandler.UpdateLesson)
	router.PATCH("/lessons/:id/visibility", authGate, r.lessonHandler.UpdateLessonVisibility)
	router.PATCH("/lessons/like/:id", authGate, r.lessonHandler.ToggleLike)
	router.DELETE("/lessons/:id", authGate, r.lessonHandler.DeleteLesson)
	router.GET("/lessons/user/:email", authGate, r.lessonHandler.ListLessonsByCreator)

	// Favorites
	router.GET("/lessons/favorite/lessons-content", authGate, r.favoriteHandler.ListFavoriteContents)
	router.GET("/favorite/lesson", authGate, r.favoriteHandler.ListFavoriteIDs)
	router.PATCH("/lessons/favorite/:id", authGate, r.favoriteHandler.ToggleFavorite)
	router.PATCH("/favorites/remove/:id/:lessonId", authGate, r.favoriteHandler.RemoveFavorite)

	// Comments
	router.GET("/comments", r.commentHandler.ListComments)
	router.POST("/comments", authGate, r.commentHandler.CreateComment)

	// Reports and moderation
	router.POST("/lesson-reports", authGate, r.reportHandler.CreateReport)
	router.GET("/lesson-reports", authGate, adminGate, r.reportHandler.ListReports)
	router.PATCH("/lesson-reports/:id/status", authGate, adminGate, r.reportHandler.UpdateReportStatus)
	router.PATCH("/lessons/:id/access", authGate, adminGate, r.adminHandler.UpdateAccessLevel)
	router.PATCH("/reviewed/lessons/:id", authGate, adminGate, r.adminHandler.MarkReviewed)

	// Admin lesson management
	router.GET("/admin/lessons", authGate, adminGate, r.adminHandler.ListAllLessons)
	router.PATCH("/admin/lessons/feature/:id", authGate, adminGate, r.adminHandler.UpdateFeatured)
	router.PATCH("/admin/lessons/:id/visibility", authGate, adminGate, r.adminHandler.UpdateVisibility)
	router.DELETE("/admin/lessons/:id", authGate, adminGate, r.adminHandler.DeleteLesson)

	// Payments
	router.POST("/create-checkout-session", r.paymentHandler.CreateCheckoutSession)
	router.GET("/payment-success", r.paymentHandler.PaymentSuccess)
}
