package models

import "time"

type FocusSession struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	TopicID         string    `json:"topic_id"`
	SessionDate     time.Time `json:"session_date" gorm:"autoCreateTime"`
}
