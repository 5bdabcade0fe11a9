package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/foodgram/backend/config"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database selected by cfg.DBDriver
func New(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	default:
		log.Info().
			Str("host", cfg.DBHost).
			Str("port", cfg.DBPort).
			Str("user", cfg.DBUser).
			Msg("connecting to database")
		return OpenPostgres(cfg.PostgresDSN())
	}
}

// OpenPostgres connects through lib/pq and hands the pool to gorm
func OpenPostgres(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("error initializing gorm: %w", err)
	}

	log.Info().Msg("successfully connected to database")
	return db, nil
}

// OpenSQLite opens a SQLite database file, or an in-memory one for ":memory:"
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers anyway
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: conflictQuietLogger{logger.New(zerologWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})},
	}
}

// conflictQuietLogger drops unique violations from the query log. They are
// the normal outcome of a duplicate favorite, cart entry or follow and are
// reported to the client as conflicts.
type conflictQuietLogger struct {
	logger.Interface
}

func (l conflictQuietLogger) LogMode(level logger.LogLevel) logger.Interface {
	return conflictQuietLogger{l.Interface.LogMode(level)}
}

func (l conflictQuietLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if IsDuplicateKey(err) {
		err = nil
	}
	l.Interface.Trace(ctx, begin, fc, err)
}

// zerologWriter routes gorm's warnings through the global logger
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(format, args...)
}
