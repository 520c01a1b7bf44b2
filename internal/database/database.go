package database

import (
	"fmt"
	"time"

	"vglist/backend/internal/logger"
	"vglist/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(dsn string, log *logger.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), log)
}

// Open opens a database through any gorm dialector and migrates the schema.
func Open(dialector gorm.Dialector, log *logger.Logger) (*gorm.DB, error) {
	gormLogger := gormlogger.New(
		log.StdLogger(),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrated successfully.")

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
