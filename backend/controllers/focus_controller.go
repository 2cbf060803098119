package controllers

import (
	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FocusController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewFocusController(db *gorm.DB, cfg *config.Config) *FocusController {
	return &FocusController{DB: db, Cfg: cfg}
}

// LogSession godoc
// @Summary Log a focus session
// @Tags focus-sessions
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Session data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /focus-sessions [post]
func (fc *FocusController) LogSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		DurationMinutes int    `json:"durationMinutes"`
		TopicID         string `json:"topicId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.DurationMinutes <= 0 {
		return utils.BadRequest(c, "durationMinutes must be positive")
	}

	session := models.FocusSession{
		UserID:          userID,
		DurationMinutes: input.DurationMinutes,
		TopicID:         input.TopicID,
	}
	if err := fc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Failed to log focus session")
	}

	return utils.Message(c, fiber.StatusOK, "Focus session logged", fiber.Map{
		"id": session.ID,
	})
}

// GetSessions godoc
// @Summary Get recent focus sessions
// @Description Returns the latest 10 sessions, newest first
// @Tags focus-sessions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /focus-sessions [get]
func (fc *FocusController) GetSessions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var sessions []models.FocusSession
	err := fc.DB.Where("user_id = ?", userID).
		Order("session_date DESC").
		Limit(10).
		Find(&sessions).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch sessions")
	}

	return utils.Success(c, fiber.StatusOK, sessions)
}
