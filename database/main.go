package database

import (
	"fmt"
	"time"

	"twitteralchemy/config"
	"twitteralchemy/models"
	"twitteralchemy/util"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// Start opens the database described by cfg, migrates the tables and makes
// the connection available as DB.
func Start(cfg *models.EnvConfig) (*gorm.DB, error) {
	dialector, err := getDialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NamingStrategy: NewTableNamer(cfg.Tables),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database connection")
	}
	if cfg.DBDriver == config.DriverSQLite {
		// an in-memory database only exists on its own connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	if err := migrateDatabase(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}
	zap.S().Debugf(
		"database ready (%s), tables: %s, %s, %s",
		cfg.DBDriver, cfg.Tables.Tweet, cfg.Tables.ReferencedTweet, cfg.Tables.User,
	)
	DB = db
	return db, nil
}

func getDialector(cfg *models.EnvConfig) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		connectionString := fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		return mysql.Open(connectionString), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, errors.Wrap(util.ErrUnsupportedDriver, cfg.DBDriver)
	}
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tweet{},
		&models.ReferencedTweet{},
		&models.User{},
		&models.Batch{},
	)
}

// TableNamer names the record tables from a TableConfig and leaves every
// other name to gorm's default strategy.
type TableNamer struct {
	schema.NamingStrategy

	tables models.TableConfig
}

func NewTableNamer(tables models.TableConfig) TableNamer {
	return TableNamer{tables: tables.Merge(models.DefaultTableConfig())}
}

func (namer TableNamer) TableName(name string) string {
	switch name {
	case "Tweet":
		return namer.tables.Tweet
	case "ReferencedTweet":
		return namer.tables.ReferencedTweet
	case "User":
		return namer.tables.User
	}
	return namer.NamingStrategy.TableName(name)
}
