package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"

	"github.com/moscow89er/mesto-api/internal/token"
	"github.com/moscow89er/mesto-api/internal/transport/http/handler"
	"github.com/moscow89er/mesto-api/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	cardHandler *handler.CardHandler,
	tokens *token.Service,
	allowedOrigins []string,
) *gin.Engine {
	handler.RegisterValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Errors(logger))

	// Public routes
	r.POST("/signup", authHandler.SignUp)
	r.POST("/signin", authHandler.SignIn)

	authMW := middleware.Auth(tokens)

	// Protected user routes
	users := r.Group("/users", authMW)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/:userId", userHandler.GetByID)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.PATCH("/me/avatar", userHandler.UpdateAvatar)

	// Protected card routes
	cards := r.Group("/cards", authMW)
	cards.GET("", cardHandler.List)
	cards.POST("", cardHandler.Create)
	cards.DELETE("/:cardId", cardHandler.Delete)
	cards.PUT("/:cardId/likes", cardHandler.Like)
	cards.DELETE("/:cardId/likes", cardHandler.Unlike)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	return r
}
