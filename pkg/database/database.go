package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a PostgreSQL connection with the pool limits used across
// the service. The handle is passed around explicitly; there is no
// package-level singleton.
func Connect(dsn string) (*gorm.DB, error) {
	// PostgreSQL spesifik konfigürasyon
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Prepared statement sorununu çözmek için
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		PrepareStmt:    false,
		TranslateError: true, // unique ihlallerini ErrDuplicatedKey olarak almak için
	}

	db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool limitleri
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

func Migrate(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if !db.Migrator().HasTable(model) {
			if err := db.Migrator().CreateTable(model); err != nil {
				return err
			}
			log.Printf("Created table for %T\n", model)
		} else {
			if err := db.Migrator().AutoMigrate(model); err != nil {
				return err
			}
			log.Printf("Updated table for %T\n", model)
		}
	}
	return nil
}
