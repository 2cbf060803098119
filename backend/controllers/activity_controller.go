package controllers

import (
	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/middleware"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/services"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewActivityController(db *gorm.DB, cfg *config.Config) *ActivityController {
	return &ActivityController{DB: db, Cfg: cfg}
}

// GetActivity godoc
// @Summary Get recent activity logs
// @Description Returns the most recent daily logs, oldest first
// @Tags activity
// @Produce json
// @Param limit query int false "Number of days" default(7)
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activity [get]
func (ac *ActivityController) GetActivity(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	limit := c.QueryInt("limit", 7)

	var activities []models.ActivityLog
	err := ac.DB.Where("user_id = ?", userID).
		Order("activity_date DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch activities")
	}

	// Запрошены новейшие, отдаем в хронологическом порядке
	for i, j := 0, len(activities)-1; i < j; i, j = i+1, j-1 {
		activities[i], activities[j] = activities[j], activities[i]
	}

	return utils.Success(c, fiber.StatusOK, activities)
}

// LogActivity godoc
// @Summary Log study activity for a day
// @Description Accumulates hours and topics into the day's row and updates streak
// @Tags activity
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Activity data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activity [post]
func (ac *ActivityController) LogActivity(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		ActivityDate    string  `json:"activityDate"`
		StudyHours      float64 `json:"studyHours"`
		TopicsCompleted int     `json:"topicsCompleted"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ActivityDate == "" {
		return utils.BadRequest(c, "activityDate is required")
	}

	// Повторный лог за тот же день накапливается, а не перезаписывается
	entry := models.ActivityLog{
		UserID:          userID,
		ActivityDate:    input.ActivityDate,
		StudyHours:      input.StudyHours,
		TopicsCompleted: input.TopicsCompleted,
	}
	err := ac.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"study_hours":      gorm.Expr("study_hours + ?", input.StudyHours),
			"topics_completed": gorm.Expr("topics_completed + ?", input.TopicsCompleted),
		}),
	}).Create(&entry).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to log activity")
	}

	ac.DB.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Update("total_learning_hours", gorm.Expr("total_learning_hours + ?", input.StudyHours))

	_ = services.UpdateStreak(ac.DB, userID)

	return utils.Message(c, fiber.StatusOK, "Activity logged successfully", nil)
}

// GetStreak godoc
// @Summary Get streak information
// @Tags activity
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activity/streak [get]
func (ac *ActivityController) GetStreak(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var stats models.UserStats
	if err := ac.DB.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch streak")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"current_streak":     stats.CurrentStreak,
		"longest_streak":     stats.LongestStreak,
		"last_activity_date": stats.LastActivityDate,
	})
}
