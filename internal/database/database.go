package database

import (
	"errors"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/pathakanu/foreverly/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when creating a user whose username is taken.
	ErrUserExists = errors.New("user already exists")
)

// New creates a GORM database connection.
// When databaseURL is provided PostgreSQL is used, otherwise SQLite is used.
func New(databaseURL string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open("reminders.db")
	}

	db, err := Open(dialector)
	if err != nil {
		return nil, err
	}

	logBackend(db, log)
	return db, nil
}

// Open connects with the given dialector and migrates the schema.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return open(dialector, newGormLogger(os.Stdout))
}

// newGormLogger logs slow queries and real errors only. Missing rows are an
// expected outcome of lookups and are reported through ErrNotFound instead.
func newGormLogger(w io.Writer) logger.Interface {
	return logger.New(stdlog.New(w, "\r\n", stdlog.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.ReminderList{}, &model.ReminderTask{}, &model.SMS{}); err != nil {
		return nil, err
	}
	return db, nil
}

func logBackend(db *gorm.DB, log *zap.Logger) {
	dialector := db.Dialector.Name()
	switch strings.ToLower(dialector) {
	case "postgres":
		log.Info("database: connected to PostgreSQL")
	case "sqlite":
		log.Info("database: using SQLite reminders.db")
	default:
		log.Info("database: connected", zap.String("dialector", dialector))
	}
}
