package database

import (
	"fmt"
	"time"

	"github.com/Baaaki/gigflow/internal/config"
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database named by cfg.DatabaseDriver and cfg.DatabaseURL.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	db, err := Open(dialector, logLevel)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connected",
		zap.String("driver", cfg.DatabaseDriver),
	)
	return db, nil
}

// Dialector picks the gorm driver for a DATABASE_DRIVER value.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects through dialector. Driver errors such as unique violations are
// translated to gorm's sentinel errors (gorm.ErrDuplicatedKey).
func Open(dialector gorm.Dialector, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if dialector.Name() == config.DriverSQLite {
		// SQLite allows one writer; a single connection makes transactions queue
		// instead of failing with SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// Migrate creates or updates the users, gigs and bids tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Gig{}, &models.Bid{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Log.Info("Database migration completed")
	return nil
}
