package models

import "time"

// Achievement identifiers. Once earned they are never revoked, even if the
// underlying stat later drops back below the threshold.
const (
	AchievementWeekWarrior     = "WEEK_WARRIOR"     // 7-day streak
	AchievementKnowledgeSeeker = "KNOWLEDGE_SEEKER" // 10 topics completed
	AchievementFirstDeployment = "FIRST_DEPLOYMENT" // first project submitted
)

type UserAchievement struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID string    `json:"achievement_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	EarnedAt      time.Time `json:"earned_at" gorm:"autoCreateTime"`
}
