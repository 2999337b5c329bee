package routes

import (
	"staffhub/internal/adapters/http/handlers"
	"staffhub/internal/adapters/http/middleware"
	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/config"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/sessioncache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, sessions *sessioncache.Cache) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	resetRepo := repositories.NewResetTokenRepository(db)
	deptRepo := repositories.NewDepartmentRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, resetRepo, sessions, cfg)
	userService := services.NewUserService(userRepo, deptRepo)
	mailer := services.NewLogMailer()

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, mailer)
	userHandler := handlers.NewUserHandler(userService)

	// Public endpoints
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth endpoints; login produces the token, so it bypasses the gate
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/verify-email", middleware.StrictRateLimiter(), authHandler.VerifyEmail)
	auth.Post("/reset", middleware.StrictRateLimiter(), authHandler.Reset)
	auth.Post("/logout", authHandler.Logout)

	// Staff management; listing and mutation restricted to ADMIN / HOD
	users := api.Group("/users")
	users.Get("/me", middleware.Auth(cfg), userHandler.Me)
	users.Get("/", middleware.Auth(cfg, models.RoleAdmin, models.RoleHOD), userHandler.List)
	users.Post("/", middleware.Auth(cfg, models.RoleAdmin, models.RoleHOD), userHandler.Create)
	users.Get("/:id", middleware.Auth(cfg), userHandler.Get)
	users.Put("/:id", middleware.Auth(cfg, models.RoleAdmin, models.RoleHOD), userHandler.Update)
	users.Delete("/:id", middleware.Auth(cfg, models.RoleAdmin, models.RoleHOD), userHandler.Delete)
}
