package database

import (
	"gorm.io/gorm"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/labstack/gommon/log"

	"agro/pkg/mirror"
)

// OpenSQLite opens the local mirror database and migrates its schema.
// The mirror survives process restarts; pending flags set before a crash
// are picked up by the next reconciliation pass.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&mirror.Record{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}
