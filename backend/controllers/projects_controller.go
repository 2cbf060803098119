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

type ProjectsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProjectsController(db *gorm.DB, cfg *config.Config) *ProjectsController {
	return &ProjectsController{DB: db, Cfg: cfg}
}

// SubmitProject godoc
// @Summary Submit a project
// @Description Upserts the (user, project) row with status completed
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param input body map[string]interface{} true "Submission links"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /projects/{projectId}/submit [post]
func (pc *ProjectsController) SubmitProject(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	projectID := c.Params("projectId")

	var input struct {
		GithubURL   string `json:"githubUrl"`
		LiveDemoURL string `json:"liveDemoUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	now := time.Now()
	project := models.UserProject{
		UserID:      userID,
		ProjectID:   projectID,
		GithubURL:   input.GithubURL,
		LiveDemoURL: input.LiveDemoURL,
		Status:      "completed",
		CompletedAt: &now,
	}
	err := pc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"github_url", "live_demo_url", "status", "completed_at"}),
	}).Create(&project).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to submit project")
	}

	pc.DB.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Update("projects_completed", gorm.Expr("projects_completed + 1"))

	// Первый проект открывает FIRST_DEPLOYMENT
	_ = services.CheckAndAwardAchievements(pc.DB, userID)

	return utils.Message(c, fiber.StatusOK, "Project submitted successfully", nil)
}
