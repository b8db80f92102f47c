package db

import (
	"github.com/glebarez/sqlite"
	"github.com/movilidad-dev/movilidad/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the store: Postgres when dsn is non-empty,
// otherwise an embedded SQLite file at sqlitePath. TranslateError is
// enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey
// on both drivers.
func ConnectDatabase(dsn, sqlitePath string) error {
	var (
		dialector gorm.Dialector
		err       error
	)

	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

// MigrateDatabase creates missing tables. Existing tables are left
// untouched.
func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Score{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
