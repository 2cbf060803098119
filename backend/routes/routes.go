package routes

import (
	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/controllers"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"message": "JavaPath Pro API is running",
		})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	users := api.Group("/users", authMiddleware)
	users.Get("/me", userController.GetProfile)
	users.Put("/me", userController.UpdateProfile)
	users.Get("/me/stats", userController.GetStats)
	users.Get("/me/projects", userController.GetProjects)
	users.Get("/me/achievements", userController.GetAchievements)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := api.Group("/progress", authMiddleware)
	progress.Get("/", progressController.GetProgress)
	progress.Post("/topics/:topicId/complete", progressController.CompleteTopic)
	progress.Post("/topics/:topicId/incomplete", progressController.IncompleteTopic)

	// Activity routes
	activityController := controllers.NewActivityController(db, cfg)
	activity := api.Group("/activity", authMiddleware)
	activity.Get("/", activityController.GetActivity)
	activity.Post("/", activityController.LogActivity)
	activity.Get("/streak", activityController.GetStreak)

	// Projects routes
	projectsController := controllers.NewProjectsController(db, cfg)
	api.Post("/projects/:projectId/submit", authMiddleware, projectsController.SubmitProject)

	// Goals routes
	goalsController := controllers.NewGoalsController(db, cfg)
	goals := api.Group("/goals", authMiddleware)
	goals.Get("/", goalsController.GetGoals)
	goals.Post("/", goalsController.CreateGoal)
	goals.Put("/:goalId/progress", goalsController.UpdateGoalProgress)
	goals.Post("/:goalId/complete", goalsController.CompleteGoal)
	goals.Delete("/:goalId", goalsController.DeleteGoal)

	// Focus session routes
	focusController := controllers.NewFocusController(db, cfg)
	focus := api.Group("/focus-sessions", authMiddleware)
	focus.Post("/", focusController.LogSession)
	focus.Get("/", focusController.GetSessions)

	// Envelope 404 for unknown API paths
	api.Use(func(c *fiber.Ctx) error {
		return utils.NotFound(c, "Not found")
	})
}
