package routes

import (
	"time"

	"gamecenter-backend/internal/api/handlers"
	"gamecenter-backend/internal/api/middleware"
	"gamecenter-backend/internal/auth"
	"gamecenter-backend/internal/cache"
	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/notify"
	"gamecenter-backend/internal/repository"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	views := cache.New(redisClient, 5*time.Minute)

	// Repositories
	gmRepo := repository.NewGameMasterRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	competencyRepo := repository.NewCompetencyRepository(db)
	gameRepo := repository.NewGameRepository(db)
	mappingRepo := repository.NewGameMappingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	emailSender := notify.NewSMTPSender(cfg)
	notificationService := service.NewNotificationService(notificationRepo, emailSender)
	matcherService := service.NewMatcherService(mappingRepo)
	conflictService := service.NewConflictService(availabilityRepo, activityRepo, gameRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, activityRepo, gmRepo, notificationService, views)
	activityService := service.NewActivityService(activityRepo, assignmentRepo, gmRepo, matcherService, notificationService, views, validator)
	gmService := service.NewGameMasterService(gmRepo, validator)
	availabilityService := service.NewAvailabilityService(availabilityRepo, gmRepo, validator)
	competencyService := service.NewCompetencyService(competencyRepo, gmRepo, gameRepo, validator)
	gameService := service.NewGameService(gameRepo, mappingRepo, matcherService, validator)
	reportService := service.NewReportService(assignmentRepo, gmRepo)
	suggestionService := service.NewSuggestionService(activityRepo, gmRepo, competencyRepo, conflictService)

	// Auth
	authService := auth.NewAuthService(cfg, gmRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService, suggestionService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, conflictService, activityService)
	gmHandler := handlers.NewGameMasterHandler(gmService)
	gameHandler := handlers.NewGameHandler(gameService, matcherService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	competencyHandler := handlers.NewCompetencyHandler(competencyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	reportHandler := handlers.NewReportHandler(reportService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		activities := v1.Group("/activities")
		{
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("", activityHandler.ListActivities)
			activities.GET("/unassigned", activityHandler.ListUnassignedActivities)
			activities.GET("/:id", activityHandler.GetActivity)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.PATCH("/:id/status", activityHandler.UpdateActivityStatus)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
			activities.GET("/:id/suggestions", activityHandler.SuggestGameMasters)
			activities.GET("/:id/conflicts", assignmentHandler.CheckConflicts)
			activities.POST("/:id/assignments", assignmentHandler.AssignGameMaster)
			activities.GET("/:id/assignments", assignmentHandler.ListAssignments)
			activities.DELETE("/:id/assignments", assignmentHandler.UnassignAll)
			activities.DELETE("/:id/assignments/:gmId", assignmentHandler.UnassignGameMaster)
		}

		gameMasters := v1.Group("/game-masters")
		{
			gameMasters.POST("", authMiddleware.RequireAdmin(), gmHandler.CreateGameMaster)
			gameMasters.GET("", gmHandler.ListGameMasters)
			gameMasters.GET("/:id", gmHandler.GetGameMaster)
			gameMasters.PUT("/:id", authMiddleware.RequireAdmin(), gmHandler.UpdateGameMaster)
			gameMasters.DELETE("/:id", authMiddleware.RequireAdmin(), gmHandler.DeactivateGameMaster)
			gameMasters.GET("/:id/availabilities", availabilityHandler.GetGMAvailability)
			gameMasters.GET("/:id/competencies", competencyHandler.GetGMCompetencies)
		}

		games := v1.Group("/games")
		{
			games.POST("", gameHandler.CreateGame)
			games.GET("", gameHandler.ListGames)
			games.GET("/match", gameHandler.MatchGame)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", gameHandler.UpdateGame)
			games.DELETE("/:id", gameHandler.DeleteGame)
		}

		mappings := v1.Group("/game-mappings")
		{
			mappings.POST("", gameHandler.CreateMapping)
			mappings.GET("", gameHandler.ListMappings)
			mappings.DELETE("/:id", gameHandler.DeleteMapping)
		}

		availabilities := v1.Group("/availabilities")
		{
			availabilities.POST("", availabilityHandler.DeclareAvailability)
			availabilities.GET("", availabilityHandler.GetAvailabilityByDate)
			availabilities.DELETE("/:id", availabilityHandler.DeleteAvailability)
		}

		competencies := v1.Group("/competencies")
		{
			competencies.POST("", competencyHandler.CreateCompetency)
			competencies.PUT("/:id", competencyHandler.UpdateCompetency)
			competencies.DELETE("/:id", competencyHandler.DeleteCompetency)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/monthly-hours", reportHandler.MonthlyHours)
		}
	}

	return router
}
