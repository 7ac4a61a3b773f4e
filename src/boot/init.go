package boot

import (
	"log"
	"tsg/src/models"

	"gorm.io/gorm"
)

// InitDb creates the users and tickets tables at process start when absent.
func InitDb(db *gorm.DB) *gorm.DB {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ticket{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
