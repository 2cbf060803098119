package services

import (
	"errors"

	"github.com/thepritampatil/java-pathpro-app/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QualifyingAchievements lists every achievement the stats snapshot earns.
// The rules are independent and evaluated against the same snapshot.
func QualifyingAchievements(stats models.UserStats) []string {
	var earned []string

	if stats.CurrentStreak >= 7 {
		earned = append(earned, models.AchievementWeekWarrior)
	}
	if stats.TopicsCompleted >= 10 {
		earned = append(earned, models.AchievementKnowledgeSeeker)
	}
	if stats.ProjectsCompleted >= 1 {
		earned = append(earned, models.AchievementFirstDeployment)
	}

	return earned
}

// CheckAndAwardAchievements grants every qualifying achievement the user does
// not hold yet. Grants are insert-or-ignore, so re-checking after every stats
// mutation never duplicates a row and never revokes an earlier grant.
func CheckAndAwardAchievements(db *gorm.DB, userID uint) error {
	var stats models.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	for _, achievementID := range QualifyingAchievements(stats) {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.UserAchievement{UserID: userID, AchievementID: achievementID}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
