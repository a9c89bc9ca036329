// Package db opens and migrates the mock server database.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/models"
)

// ErrUnsupportedEngine is returned for an unknown gorm engine.
var ErrUnsupportedEngine = errors.New("unsupported gorm engine")

// Open connects to the configured database and migrates the schema.
func Open(cfg config.DB, devMode bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Create(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		return nil, errors.Wrap(ErrUnsupportedEngine, cfg.GormEngine)
	}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if devMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if cfg.GormEngine == config.EngineSQLite || cfg.GormEngine == "" {
		// sqlite allows a single writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access database handle")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Zone{}, &models.Record{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
