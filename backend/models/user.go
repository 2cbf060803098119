package models

import "time"

type User struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	Username     string     `json:"username" gorm:"unique;not null"`
	Email        string     `json:"email" gorm:"unique;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FullName     string     `json:"full_name"`
	AvatarURL    string     `json:"avatar_url"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

type UserStats struct {
	ID                 uint    `json:"id" gorm:"primarykey"`
	UserID             uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalLearningHours float64 `json:"total_learning_hours" gorm:"default:0"`
	TopicsCompleted    int     `json:"topics_completed" gorm:"default:0"`
	ProjectsCompleted  int     `json:"projects_completed" gorm:"default:0"`
	CurrentStreak      int     `json:"current_streak" gorm:"default:0"`
	LongestStreak      int     `json:"longest_streak" gorm:"default:0"`
	// Calendar date in YYYY-MM-DD, empty until the first activity
	LastActivityDate string `json:"last_activity_date"`
}
