package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/movilidad-dev/movilidad/internal/handlers"
	"github.com/movilidad-dev/movilidad/internal/middleware"
)

// NewRouter builds the gin engine with CORS restricted to the given
// origin allow-list.
func NewRouter(allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/forgot-password", handlers.ForgotPassword)
	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)

	r.POST("/score", handlers.SaveScore)
	r.GET("/leaderboard", handlers.GetLeaderboard)

	return r
}
