package models

import "time"

type UserProgress struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	TopicID          string     `json:"topic_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	IsCompleted      bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt      *time.Time `json:"completed_at"`
	TimeSpentMinutes int        `json:"time_spent_minutes" gorm:"default:0"`
	Notes            string     `json:"notes"`
}

// ActivityLog accumulates study time per calendar day. ActivityDate is
// YYYY-MM-DD so day equality matches the streak arithmetic exactly.
type ActivityLog struct {
	ID              uint    `json:"id" gorm:"primarykey"`
	UserID          uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_activity_date"`
	ActivityDate    string  `json:"activity_date" gorm:"not null;uniqueIndex:idx_user_activity_date"`
	StudyHours      float64 `json:"study_hours" gorm:"default:0"`
	TopicsCompleted int     `json:"topics_completed" gorm:"default:0"`
}
