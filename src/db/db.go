package db

import (
	"log"
	"time"
	"tsg/src/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and configures the connection pool. The handle
// is passed to services explicitly; nothing in this package holds it.
func Connect() (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(config.GetDSN()), Config())
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Printf("Error establishing connection to database: %s\n", err.Error())
		return nil, err
	}
	poolSize := config.GetPoolSize()
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetMaxOpenConns(poolSize + config.GetMaxOverflow())

	return gdb, nil
}

// Config returns the gorm settings shared by runtime and test databases:
// timestamps are written in UTC, and driver constraint errors are translated
// to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so the services can
// map them to domain errors.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
