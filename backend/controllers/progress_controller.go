package controllers

import (
	"time"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/services"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get per-topic progress
// @Description Returns every progress row for the authenticated user
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var progress []models.UserProgress
	if err := pc.DB.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}

	return utils.Success(c, fiber.StatusOK, progress)
}

// CompleteTopic godoc
// @Summary Mark a topic as completed
// @Description Upserts the (user, topic) progress row and updates streak
// @Tags progress
// @Accept json
// @Produce json
// @Param topicId path string true "Topic ID"
// @Param input body map[string]interface{} true "Completion data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/topics/{topicId}/complete [post]
func (pc *ProgressController) CompleteTopic(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	topicID := c.Params("topicId")

	var input struct {
		TimeSpentMinutes int    `json:"timeSpentMinutes"`
		Notes            string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	now := time.Now()
	progress := models.UserProgress{
		UserID:           userID,
		TopicID:          topicID,
		IsCompleted:      true,
		CompletedAt:      &now,
		TimeSpentMinutes: input.TimeSpentMinutes,
		Notes:            input.Notes,
	}
	err := pc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_completed", "completed_at", "time_spent_minutes", "notes"}),
	}).Create(&progress).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to update progress")
	}

	// Счетчик инкрементальный, дрейф при повторном завершении принят
	pc.DB.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Update("topics_completed", gorm.Expr("topics_completed + 1"))

	// Best effort, a failed streak update never fails the request
	_ = services.UpdateStreak(pc.DB, userID)

	return utils.Message(c, fiber.StatusOK, "Topic marked as completed", fiber.Map{
		"topicId":     topicID,
		"isCompleted": true,
	})
}

// IncompleteTopic godoc
// @Summary Mark a topic as incomplete
// @Description Clears the completion flag and decrements the counter
// @Tags progress
// @Produce json
// @Param topicId path string true "Topic ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/topics/{topicId}/incomplete [post]
func (pc *ProgressController) IncompleteTopic(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	topicID := c.Params("topicId")

	err := pc.DB.Model(&models.UserProgress{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Updates(map[string]interface{}{
			"is_completed": false,
			"completed_at": nil,
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to update progress")
	}

	// Floor at zero, the counter never goes negative
	pc.DB.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Update("topics_completed", gorm.Expr("CASE WHEN topics_completed > 0 THEN topics_completed - 1 ELSE 0 END"))

	return utils.Message(c, fiber.StatusOK, "Topic marked as incomplete", nil)
}
