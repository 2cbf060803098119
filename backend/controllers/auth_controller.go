package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func validateRegisterInput(input RegisterInput) map[string]string {
	fields := make(map[string]string)

	if len(strings.TrimSpace(input.Username)) < 3 {
		fields["username"] = "Username must be at least 3 characters"
	}
	at := strings.Index(input.Email, "@")
	if at < 1 || at == len(input.Email)-1 || !strings.Contains(input.Email[at:], ".") {
		fields["email"] = "Email must be a valid email address"
	}
	if len(input.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account with a zeroed stats row
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "User registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := validateRegisterInput(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Registration failed")
	}

	user := models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return utils.BadRequest(c, "Username or email already exists")
		}
		return utils.InternalServerError(c, "Registration failed")
	}

	// Stats row starts zeroed and lives as long as the account
	ac.DB.Create(&models.UserStats{UserID: user.ID})

	token, err := utils.GenerateJWTToken(user.ID, user.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Message(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    token,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate by email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// The same message for unknown email and wrong password, nothing leaks
	// which one failed
	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	now := time.Now()
	ac.DB.Model(&user).Update("last_login", &now)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"fullName": user.FullName,
		"token":    token,
	})
}
