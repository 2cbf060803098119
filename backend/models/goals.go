package models

import "time"

type Goal struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description"`
	GoalType     string     `json:"goal_type"` // daily, weekly, monthly, custom
	TargetValue  int        `json:"target_value"`
	CurrentValue int        `json:"current_value" gorm:"default:0"`
	Deadline     string     `json:"deadline"`
	IsCompleted  bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
