package controllers

import (
	"time"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GoalsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGoalsController(db *gorm.DB, cfg *config.Config) *GoalsController {
	return &GoalsController{DB: db, Cfg: cfg}
}

// GetGoals godoc
// @Summary Get goals
// @Description Returns the user's goals, newest first
// @Tags goals
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [get]
func (gc *GoalsController) GetGoals(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var goals []models.Goal
	err := gc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch goals")
	}

	return utils.Success(c, fiber.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Goal data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [post]
func (gc *GoalsController) CreateGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		GoalType    string `json:"goalType"`
		TargetValue int    `json:"targetValue"`
		Deadline    string `json:"deadline"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "title is required")
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		GoalType:    input.GoalType,
		TargetValue: input.TargetValue,
		Deadline:    input.Deadline,
	}
	if err := gc.DB.Create(&goal).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create goal")
	}

	return utils.Message(c, fiber.StatusCreated, "Goal created successfully", fiber.Map{
		"id": goal.ID,
	})
}

// UpdateGoalProgress godoc
// @Summary Update goal progress
// @Description Sets currentValue; completion stays an explicit action
// @Tags goals
// @Accept json
// @Produce json
// @Param goalId path int true "Goal ID"
// @Param input body map[string]interface{} true "Progress data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals/{goalId}/progress [put]
func (gc *GoalsController) UpdateGoalProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	var input struct {
		CurrentValue int `json:"currentValue"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Фильтр по владельцу защищает от изменения чужой цели
	err := gc.DB.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("current_value", input.CurrentValue).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to update goal")
	}

	return utils.Message(c, fiber.StatusOK, "Goal progress updated", nil)
}

// CompleteGoal godoc
// @Summary Mark a goal as completed
// @Tags goals
// @Produce json
// @Param goalId path int true "Goal ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals/{goalId}/complete [post]
func (gc *GoalsController) CompleteGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	now := time.Now()
	err := gc.DB.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": &now,
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to complete goal")
	}

	return utils.Message(c, fiber.StatusOK, "Goal completed!", nil)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param goalId path int true "Goal ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals/{goalId} [delete]
func (gc *GoalsController) DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("goalId")

	err := gc.DB.Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.Goal{}).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to delete goal")
	}

	return utils.Message(c, fiber.StatusOK, "Goal deleted successfully", nil)
}
