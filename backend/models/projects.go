package models

import "time"

type UserProject struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID   string     `json:"project_id" gorm:"not null;uniqueIndex:idx_user_project"`
	GithubURL   string     `json:"github_url"`
	LiveDemoURL string     `json:"live_demo_url"`
	Status      string     `json:"status" gorm:"default:not_started"` // not_started, in_progress, completed
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
