package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/models"
	"github.com/thepritampatil/java-pathpro-app/backend/routes"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
)

func TestMain(m *testing.M) {
	cfg = &config.Config{
		DBDriver:   "sqlite",
		DBPath:     "file:apitest?mode=memory&cache=shared",
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = utils.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg)

	os.Exit(m.Run())
}

func doRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp, result
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, username string) string {
	t.Helper()

	resp, result := doRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"fullName": "Test " + username,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	return data["token"].(string)
}

func getStats(t *testing.T, token string) map[string]interface{} {
	t.Helper()

	resp, result := doRequest(t, "GET", "/api/v1/users/me/stats", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return result["data"].(map[string]interface{})
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "OK", result["status"])
}

func TestRegisterValidation(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, result["success"])

	fields := result["error"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRegisterAndLogin(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
		"fullName": "Alice Doe",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "alice", data["username"])

	// Duplicate email
	resp, _ = doRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Wrong password gets the same generic message as an unknown email
	resp, result = doRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", result["error"].(map[string]interface{})["message"])

	resp, result = doRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "unknown@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", result["error"].(map[string]interface{})["message"])

	resp, result = doRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "Alice Doe", data["fullName"])
}

func TestAuthRequired(t *testing.T) {
	// No token at all
	resp, _ := doRequest(t, "GET", "/api/v1/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Present but invalid token
	resp, _ = doRequest(t, "GET", "/api/v1/users/me", "garbage.token.here", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestProfileUpdate(t *testing.T) {
	token := registerUser(t, "profileuser")

	resp, _ := doRequest(t, "PUT", "/api/v1/users/me", token, map[string]string{
		"fullName":  "New Name",
		"avatarUrl": "https://example.com/avatar.png",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, result := doRequest(t, "GET", "/api/v1/users/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "New Name", data["full_name"])
	assert.Equal(t, "https://example.com/avatar.png", data["avatar_url"])
	assert.NotContains(t, data, "password_hash")
}

func TestTopicCompletionFlow(t *testing.T) {
	token := registerUser(t, "bob")

	resp, result := doRequest(t, "POST", "/api/v1/progress/topics/p1-t1/complete", token, map[string]interface{}{
		"timeSpentMinutes": 30,
		"notes":            "finished generics",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["data"].(map[string]interface{})["isCompleted"])

	stats := getStats(t, token)
	assert.Equal(t, float64(1), stats["topics_completed"])
	assert.Equal(t, float64(1), stats["current_streak"])
	assert.Equal(t, float64(45), stats["topicsTotal"])

	resp, result = doRequest(t, "GET", "/api/v1/progress", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := result["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "p1-t1", row["topic_id"])
	assert.Equal(t, true, row["is_completed"])
	assert.Equal(t, float64(30), row["time_spent_minutes"])

	// Completing a second topic on the same day keeps the streak at 1
	resp, _ = doRequest(t, "POST", "/api/v1/progress/topics/p1-t2/complete", token, map[string]interface{}{
		"timeSpentMinutes": 15,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats = getStats(t, token)
	assert.Equal(t, float64(2), stats["topics_completed"])
	assert.Equal(t, float64(1), stats["current_streak"])

	// Marking incomplete returns the counter to its previous value
	resp, _ = doRequest(t, "POST", "/api/v1/progress/topics/p1-t2/incomplete", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats = getStats(t, token)
	assert.Equal(t, float64(1), stats["topics_completed"])
}

func TestTopicsCompletedNeverNegative(t *testing.T) {
	token := registerUser(t, "floortester")

	for i := 0; i < 3; i++ {
		resp, _ := doRequest(t, "POST", "/api/v1/progress/topics/p9-t9/incomplete", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	stats := getStats(t, token)
	assert.Equal(t, float64(0), stats["topics_completed"])
}

func TestActivityAccumulates(t *testing.T) {
	token := registerUser(t, "carol")

	for i := 0; i < 2; i++ {
		resp, _ := doRequest(t, "POST", "/api/v1/activity", token, map[string]interface{}{
			"activityDate":    "2025-05-01",
			"studyHours":      2,
			"topicsCompleted": 1,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, result := doRequest(t, "GET", "/api/v1/activity", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := result["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "2025-05-01", row["activity_date"])
	assert.Equal(t, float64(4), row["study_hours"])
	assert.Equal(t, float64(2), row["topics_completed"])

	stats := getStats(t, token)
	assert.Equal(t, float64(4), stats["total_learning_hours"])

	resp, result = doRequest(t, "GET", "/api/v1/activity/streak", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["current_streak"])
	assert.NotEmpty(t, data["last_activity_date"])
}

func TestActivityLimitAndOrder(t *testing.T) {
	token := registerUser(t, "dave")

	for _, date := range []string{"2025-04-01", "2025-04-02", "2025-04-03"} {
		resp, _ := doRequest(t, "POST", "/api/v1/activity", token, map[string]interface{}{
			"activityDate": date,
			"studyHours":   1,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// The two most recent days, returned oldest first
	resp, result := doRequest(t, "GET", "/api/v1/activity?limit=2", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := result["data"].([]interface{})
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-04-02", rows[0].(map[string]interface{})["activity_date"])
	assert.Equal(t, "2025-04-03", rows[1].(map[string]interface{})["activity_date"])
}

func TestActivityRequiresDate(t *testing.T) {
	token := registerUser(t, "nodate")

	resp, _ := doRequest(t, "POST", "/api/v1/activity", token, map[string]interface{}{
		"studyHours": 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGoalLifecycle(t *testing.T) {
	token := registerUser(t, "erin")

	resp, result := doRequest(t, "POST", "/api/v1/goals", token, map[string]interface{}{
		"title":       "Finish core Java",
		"description": "All of phase 1",
		"goalType":    "monthly",
		"targetValue": 20,
		"deadline":    "2025-06-30",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	goalID := result["data"].(map[string]interface{})["id"].(float64)

	resp, _ = doRequest(t, "PUT", fmt.Sprintf("/api/v1/goals/%.0f/progress", goalID), token, map[string]interface{}{
		"currentValue": 12,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, result = doRequest(t, "GET", "/api/v1/goals", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	goals := result["data"].([]interface{})
	require.Len(t, goals, 1)
	goal := goals[0].(map[string]interface{})
	assert.Equal(t, float64(12), goal["current_value"])
	// currentValue >= targetValue alone never completes a goal
	assert.Equal(t, false, goal["is_completed"])

	resp, _ = doRequest(t, "POST", fmt.Sprintf("/api/v1/goals/%.0f/complete", goalID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, result = doRequest(t, "GET", "/api/v1/goals", token, nil)
	goal = result["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, goal["is_completed"])

	resp, _ = doRequest(t, "DELETE", fmt.Sprintf("/api/v1/goals/%.0f", goalID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, result = doRequest(t, "GET", "/api/v1/goals", token, nil)
	assert.Empty(t, result["data"])
}

func TestGoalCrossUserIsolation(t *testing.T) {
	ownerToken := registerUser(t, "owner")
	otherToken := registerUser(t, "intruder")

	_, result := doRequest(t, "POST", "/api/v1/goals", ownerToken, map[string]interface{}{
		"title":       "Private goal",
		"targetValue": 5,
	})
	goalID := result["data"].(map[string]interface{})["id"].(float64)

	// Mutations filtered by owner id must not touch the row
	doRequest(t, "PUT", fmt.Sprintf("/api/v1/goals/%.0f/progress", goalID), otherToken, map[string]interface{}{
		"currentValue": 99,
	})
	doRequest(t, "POST", fmt.Sprintf("/api/v1/goals/%.0f/complete", goalID), otherToken, nil)
	doRequest(t, "DELETE", fmt.Sprintf("/api/v1/goals/%.0f", goalID), otherToken, nil)

	_, result = doRequest(t, "GET", "/api/v1/goals", ownerToken, nil)
	goals := result["data"].([]interface{})
	require.Len(t, goals, 1)
	goal := goals[0].(map[string]interface{})
	assert.Equal(t, float64(0), goal["current_value"])
	assert.Equal(t, false, goal["is_completed"])
}

func TestProjectSubmitAwardsFirstDeployment(t *testing.T) {
	token := registerUser(t, "gina")

	resp, _ := doRequest(t, "POST", "/api/v1/projects/banking-app/submit", token, map[string]string{
		"githubUrl":   "https://github.com/gina/banking-app",
		"liveDemoUrl": "https://banking.example.com",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := getStats(t, token)
	assert.Equal(t, float64(1), stats["projects_completed"])

	resp, result := doRequest(t, "GET", "/api/v1/users/me/projects", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	projects := result["data"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, "completed", projects[0].(map[string]interface{})["status"])

	// Resubmission upserts the same row and never duplicates the grant
	resp, _ = doRequest(t, "POST", "/api/v1/projects/banking-app/submit", token, map[string]string{
		"githubUrl": "https://github.com/gina/banking-app-v2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, result = doRequest(t, "GET", "/api/v1/users/me/achievements", token, nil)
	achievements := result["data"].([]interface{})
	granted := 0
	for _, a := range achievements {
		if a.(map[string]interface{})["achievement_id"] == models.AchievementFirstDeployment {
			granted++
		}
	}
	assert.Equal(t, 1, granted)

	_, result = doRequest(t, "GET", "/api/v1/users/me/projects", token, nil)
	require.Len(t, result["data"].([]interface{}), 1)
}

func TestFocusSessionsCapAtTen(t *testing.T) {
	token := registerUser(t, "hank")

	for i := 1; i <= 12; i++ {
		resp, _ := doRequest(t, "POST", "/api/v1/focus-sessions", token, map[string]interface{}{
			"durationMinutes": 25,
			"topicId":         fmt.Sprintf("p1-t%d", i),
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, result := doRequest(t, "GET", "/api/v1/focus-sessions", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, result["data"].([]interface{}), 10)

	resp, _ = doRequest(t, "POST", "/api/v1/focus-sessions", token, map[string]interface{}{
		"durationMinutes": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
