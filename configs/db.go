package configs

import (
	"os"
	"path/filepath"

	"chickenpos/entity"
	"chickenpos/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	if dir := filepath.Dir(source); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&repository.OrderRow{},
	)
}
