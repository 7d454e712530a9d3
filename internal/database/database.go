package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashishjh/contactbook/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to the MySQL database identified by dsn and
// migrates the schema.
func NewDatabase(dsn string) (*Database, error) {
	return Open(mysql.Open(dsn))
}

// Open connects using an explicit dialector. Tests use this with an
// sqlite dialector instead of MySQL.
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique-key violations as gorm.ErrDuplicatedKey so the
		// store stays the arbiter of concurrent duplicate signups.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Contact{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully")

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping reports whether the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
