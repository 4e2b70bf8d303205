package server

import (
	"GymAttendanceTracker/internal/auth"
	"GymAttendanceTracker/internal/handler"
	"GymAttendanceTracker/internal/middleware"
	"net/http"

	_ "GymAttendanceTracker/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	Handler        *handler.Handler
	Identity       auth.IdentityProvider
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.CORSOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	if opts.RateLimitRPS > 0 && opts.RateLimitBurst > 0 {
		api.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	api.GET("/login", handler.Login)
	api.GET("/logout", handler.Logout)

	h := opts.Handler
	protected := api.Group("").Use(middleware.Identity(opts.Identity))
	{
		protected.GET("/auth/user", h.CurrentUser)
		protected.GET("/gym-classes", h.ListGymClasses)
		protected.GET("/gym-classes/:id", h.GetGymClass)
		protected.POST("/gym-classes", h.CreateGymClass)
		protected.PATCH("/gym-classes/:id", h.UpdateGymClass)
		protected.DELETE("/gym-classes/:id", h.DeleteGymClass)
		protected.GET("/stats", h.GetStats)
		protected.GET("/events", h.StreamEvents)
	}
	return router
}
