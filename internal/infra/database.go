package infra

import (
	"fmt"

	"nomina/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate so the schema is created idempotently at startup — there is
// no separate migration system. TranslateError is enabled so unique and
// FK violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// and can be mapped to proper HTTP statuses instead of opaque 500s.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Personal{},
		&model.Obra{},
		&model.Asignacion{},
		&model.Presentismo{},
		&model.IngresoEgreso{},
		&model.Usuario{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
