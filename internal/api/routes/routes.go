package routes

import (
	"servicedesk-backend/internal/api/handlers"
	"servicedesk-backend/internal/api/middleware"
	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/config"
	"servicedesk-backend/internal/database/models"
	"servicedesk-backend/internal/repository"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ciRepo := repository.NewCIRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	changeRepo := repository.NewChangeRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	kbRepo := repository.NewKBRepository(db)

	// Services
	ticketService := service.NewTicketService(ticketRepo, commentRepo, userRepo, validator, cfg.FallbackSubmitterEmail)
	ciService := service.NewCIService(ciRepo, validator)
	problemService := service.NewProblemService(problemRepo, validator)
	changeService := service.NewChangeService(changeRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	kbService := service.NewKBService(kbRepo, validator)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiryMinutes)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	ciHandler := handlers.NewCIHandler(ciService)
	problemHandler := handlers.NewProblemHandler(problemService)
	changeHandler := handlers.NewChangeHandler(changeService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	kbHandler := handlers.NewKBHandler(kbService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", auth.RequireAuth(authService), authHandler.Me)
		}

		v1 := api.Group("/v1")
		{
			// Ticket intake accepts anonymous submissions; everything that
			// writes on behalf of a caller requires auth.
			tickets := v1.Group("/tickets")
			{
				tickets.POST("", auth.OptionalAuth(authService), ticketHandler.Create)
				tickets.GET("", ticketHandler.GetAll)
				tickets.GET("/:id", ticketHandler.GetByID)
				tickets.PATCH("/:id", auth.RequireAuth(authService), ticketHandler.Update)
				tickets.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleTechnician, models.RoleAdmin), ticketHandler.Delete)
				tickets.GET("/:id/comments", ticketHandler.GetComments)
				tickets.POST("/:id/comments", auth.RequireAuth(authService), ticketHandler.AddComment)
				tickets.POST("/:id/cis/:ciId", auth.RequireAuth(authService), ticketHandler.LinkCI)
				tickets.DELETE("/:id/cis/:ciId", auth.RequireAuth(authService), ticketHandler.UnlinkCI)
			}

			cis := v1.Group("/cis")
			{
				cis.POST("", auth.RequireAuth(authService), ciHandler.Create)
				cis.GET("", ciHandler.GetAll)
				cis.GET("/:id", ciHandler.GetByID)
				cis.PATCH("/:id", auth.RequireAuth(authService), ciHandler.Update)
				cis.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleTechnician, models.RoleAdmin), ciHandler.Delete)
			}

			problems := v1.Group("/problems")
			{
				problems.POST("", auth.RequireAuth(authService), problemHandler.Create)
				problems.GET("", problemHandler.GetAll)
				problems.GET("/:id", problemHandler.GetByID)
				problems.PATCH("/:id", auth.RequireAuth(authService), problemHandler.Update)
				problems.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleTechnician, models.RoleAdmin), problemHandler.Delete)
				problems.POST("/:id/resolve", auth.RequireAuth(authService), problemHandler.Resolve)
				problems.POST("/:id/tickets/:ticketId", auth.RequireAuth(authService), problemHandler.LinkTicket)
				problems.DELETE("/:id/tickets/:ticketId", auth.RequireAuth(authService), problemHandler.UnlinkTicket)
			}

			changes := v1.Group("/changes")
			{
				changes.POST("", auth.RequireAuth(authService), changeHandler.Create)
				changes.GET("", changeHandler.GetAll)
				changes.GET("/:id", changeHandler.GetByID)
				changes.PATCH("/:id", auth.RequireAuth(authService), changeHandler.Update)
				changes.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleAdmin), changeHandler.Delete)
				changes.POST("/:id/approve", auth.RequireAuth(authService), auth.RequireRole(models.RoleTechnician, models.RoleAdmin), changeHandler.Approve)
				changes.POST("/:id/cis/:ciId", auth.RequireAuth(authService), changeHandler.LinkCI)
				changes.DELETE("/:id/cis/:ciId", auth.RequireAuth(authService), changeHandler.UnlinkCI)
				changes.POST("/:id/problems/:problemId", auth.RequireAuth(authService), changeHandler.LinkProblem)
				changes.DELETE("/:id/problems/:problemId", auth.RequireAuth(authService), changeHandler.UnlinkProblem)
			}

			users := v1.Group("/users", auth.RequireAuth(authService))
			{
				users.GET("", userHandler.GetAll)
				users.GET("/:id", userHandler.GetByID)
				users.PATCH("/:id", auth.RequireRole(models.RoleAdmin), userHandler.Update)
				users.DELETE("/:id", auth.RequireRole(models.RoleAdmin), userHandler.Delete)
			}

			teams := v1.Group("/teams")
			{
				teams.POST("", auth.RequireAuth(authService), auth.RequireRole(models.RoleAdmin), teamHandler.Create)
				teams.GET("", teamHandler.GetAll)
				teams.GET("/:id", teamHandler.GetByID)
				teams.PATCH("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleAdmin), teamHandler.Update)
				teams.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleAdmin), teamHandler.Delete)
			}

			members := v1.Group("/team-members", auth.RequireAuth(authService))
			{
				members.GET("", teamHandler.GetAllMembers)
				members.POST("", auth.RequireRole(models.RoleAdmin), teamHandler.AddMember)
				members.PATCH("/:teamId/:userId", auth.RequireRole(models.RoleAdmin), teamHandler.UpdateMemberRole)
				members.DELETE("/:teamId/:userId", auth.RequireRole(models.RoleAdmin), teamHandler.RemoveMember)
			}

			kb := v1.Group("/kb")
			{
				kb.POST("", auth.RequireAuth(authService), kbHandler.Create)
				kb.GET("", kbHandler.Search)
				kb.GET("/:id", kbHandler.GetByID)
				kb.PATCH("/:id", auth.RequireAuth(authService), kbHandler.Update)
				kb.DELETE("/:id", auth.RequireAuth(authService), auth.RequireRole(models.RoleTechnician, models.RoleAdmin), kbHandler.Delete)
			}
		}
	}

	return router
}
