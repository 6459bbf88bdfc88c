package db

import (
	"strings"
	"windowmart/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the SQLite database at path and migrates the schema. The
// returned handle is injected into the route handlers and closed at shutdown
// via Close.
func Open(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(withForeignKeys(path)), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(&models.WindowCollection{}, &models.Window{}); err != nil {
		return nil, err
	}

	return database, nil
}

// withForeignKeys enables foreign key enforcement on every pooled connection;
// cascade deleting a collection's windows depends on it.
func withForeignKeys(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
