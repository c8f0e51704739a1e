package server

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/auth"
	"github.com/grievance-portal/grievance-api/internal/constants"
	"github.com/grievance-portal/grievance-api/internal/database"
	"github.com/grievance-portal/grievance-api/internal/handlers"
	"github.com/grievance-portal/grievance-api/internal/middleware"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"github.com/grievance-portal/grievance-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the process-wide resources the router is built from.
type Dependencies struct {
	DB             *gorm.DB
	Tokens         *auth.TokenService
	Log            *zap.SugaredLogger
	AllowedOrigins []string
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
		middleware.Recovery(deps.Log),
		cors.New(corsConfig(deps.AllowedOrigins)),
	)

	complaintRepo := repository.NewComplaintRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)

	authService := services.NewAuthService(userRepo, deps.Tokens, deps.Log)
	complaintService := services.NewComplaintService(complaintRepo, deps.Log)
	dashboardService := services.NewDashboardService(complaintRepo, deps.Log)

	policy := middleware.NewAccessPolicy(deps.Tokens, deps.Log)

	authHandler := handlers.NewAuthHandler(authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	adminHandler := handlers.NewAdminHandler(complaintService, dashboardService)
	statsHandler := handlers.NewStatsHandler(dashboardService)
	logHandler := handlers.NewLogHandler(deps.Log)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, deps.DB)
	}, deps.Log)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", policy.RequireAuth(), authHandler.GetCurrentUser)
		}

		complaints := api.Group("/complaints")
		{
			complaints.POST("", policy.Optional(), complaintHandler.CreateComplaint)
			complaints.GET("/user/:userId", policy.RequireAuth(), complaintHandler.ListUserComplaints)
			complaints.GET("/:complaintId", complaintHandler.GetComplaint)
		}

		admin := api.Group("/admin")
		admin.Use(policy.RequireAdmin())
		{
			admin.GET("/complaints", adminHandler.ListComplaints)
			admin.GET("/stats", adminHandler.GetStats)
			admin.PUT("/complaints/:id/status", adminHandler.UpdateStatus)
		}

		api.GET("/stats", statsHandler.GetPublicStats)
		api.POST("/log/not-found", logHandler.NotFound)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
