package utils

import (
	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by the config and migrates the schema.
// The default is a single-file sqlite database; postgres stays available for
// deployments that outgrow it.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DBDriver == "postgres" {
		dsn := "host=" + cfg.DBHost +
			" user=" + cfg.DBUser +
			" password=" + cfg.DBPassword +
			" dbname=" + cfg.DBName +
			" port=" + cfg.DBPort +
			" sslmode=disable"
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	// TranslateError surfaces uniqueness conflicts as gorm.ErrDuplicatedKey
	// on both drivers
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserStats{},
		&models.UserProgress{},
		&models.ActivityLog{},
		&models.UserProject{},
		&models.Goal{},
		&models.FocusSession{},
		&models.UserAchievement{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
