package services

import (
	"errors"
	"time"

	"github.com/thepritampatil/java-pathpro-app/backend/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// NextStreak computes the consecutive-day streak transition for one activity
// event. lastActivity is the stored YYYY-MM-DD date, empty if the user was
// never active. A repeated event on the same day changes nothing; an event on
// the next day extends the streak; any larger gap restarts it at 1. The
// returned longest is never below the returned current. changed is false only
// for the same-day case, where no write should happen.
func NextStreak(lastActivity string, current, longest int, today time.Time) (newCurrent, newLongest int, changed bool) {
	if lastActivity == today.Format(dateLayout) {
		return current, longest, false
	}

	if lastActivity == today.AddDate(0, 0, -1).Format(dateLayout) {
		current++
	} else {
		current = 1
	}

	if current > longest {
		longest = current
	}
	return current, longest, true
}

// UpdateStreak records one activity event for the user: it reads the stats
// row, applies NextStreak against today's local calendar date and persists
// the result in a single update, then re-evaluates achievements.
//
// The read-then-write pair is not wrapped in a transaction; two concurrent
// events for the same user racing across a day boundary can lose an
// increment. Accounts are single-user and low-rate, so this is accepted.
func UpdateStreak(db *gorm.DB, userID uint) error {
	var stats models.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// registration always creates the row; stay permissive if it is gone
			return nil
		}
		return err
	}

	today := time.Now()
	current, longest, changed := NextStreak(stats.LastActivityDate, stats.CurrentStreak, stats.LongestStreak, today)
	if !changed {
		return nil
	}

	err := db.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":     current,
			"longest_streak":     longest,
			"last_activity_date": today.Format(dateLayout),
		}).Error
	if err != nil {
		return err
	}

	return CheckAndAwardAchievements(db, userID)
}
