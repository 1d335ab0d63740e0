package database

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rentnest/server/internal/models"
)

// Database wraps the gorm handle. Every read path goes through gorm's
// soft-delete scoping, so callers never have to remember the "not
// deleted" predicate themselves.
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return &Database{db: db, logger: logger}, nil
}

var testDBCounter atomic.Int64

// NewTestDB opens an isolated in-memory database for tests. Each call gets
// its own named memory store so parallel tests do not share state.
func NewTestDB() (*Database, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	return NewDatabase(dsn, nil)
}

// RunMigrations creates or updates the schema for all collections.
func (d *Database) RunMigrations() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Apartment{},
		&models.Favorite{},
	)
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}
