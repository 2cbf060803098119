package controllers

import (
	"fmt"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TotalRoadmapTopics is the number of topics in the roadmap the dashboard
// progress percentage is computed against.
const TotalRoadmapTopics = 45

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get current user profile
// @Description Returns the authenticated user's profile without credentials
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Updates the authenticated user's display fields
// @Tags users
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Profile update data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		FullName  string `json:"fullName"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := uc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"full_name":  input.FullName,
			"avatar_url": input.AvatarURL,
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Update failed")
	}

	return utils.Message(c, fiber.StatusOK, "Profile updated successfully", nil)
}

// GetStats godoc
// @Summary Get user statistics
// @Description Returns the stats row plus overall roadmap progress
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me/stats [get]
func (uc *UserController) GetStats(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var stats models.UserStats
	if err := uc.DB.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch stats")
	}

	// Прогресс по роадмапу считаем из строк user_progress, а не из счетчика
	var completedTopics int64
	uc.DB.Model(&models.UserProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&completedTopics)

	overallProgress := float64(completedTopics) / float64(TotalRoadmapTopics) * 100

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id":                stats.UserID,
		"total_learning_hours":   stats.TotalLearningHours,
		"topics_completed":       stats.TopicsCompleted,
		"projects_completed":     stats.ProjectsCompleted,
		"current_streak":         stats.CurrentStreak,
		"longest_streak":         stats.LongestStreak,
		"last_activity_date":     stats.LastActivityDate,
		"overallProgressPercent": fmt.Sprintf("%.2f", overallProgress),
		"topicsTotal":            TotalRoadmapTopics,
	})
}

// GetProjects godoc
// @Summary Get user projects
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me/projects [get]
func (uc *UserController) GetProjects(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var projects []models.UserProject
	if err := uc.DB.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch projects")
	}

	return utils.Success(c, fiber.StatusOK, projects)
}

// GetAchievements godoc
// @Summary Get user achievements
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me/achievements [get]
func (uc *UserController) GetAchievements(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var achievements []models.UserAchievement
	if err := uc.DB.Where("user_id = ?", userID).Find(&achievements).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch achievements")
	}

	return utils.Success(c, fiber.StatusOK, achievements)
}
