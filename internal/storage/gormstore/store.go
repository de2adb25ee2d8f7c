// Package gormstore implements the repository contracts on top of GORM,
// backed by an embedded SQLite file in production and optionally by a
// PostgreSQL server.
package gormstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

const (
	dialectSQLite   = "sqlite"
	dialectPostgres = "postgres"
)

// Store owns the single shared database handle. The handle is created
// lazily: the first repository call performs schema setup exactly once and
// every concurrent first caller waits for that one execution to finish.
// The handle is never closed during normal operation.
type Store struct {
	dialector gorm.Dialector
	dialect   string
	logger    zerolog.Logger

	once sync.Once
	db   *gorm.DB
	err  error
}

// NewSQLite returns a store backed by an embedded SQLite file at path.
// The file is created on first use.
func NewSQLite(path string, logger zerolog.Logger) *Store {
	return &Store{dialector: sqlite.Open(path), dialect: dialectSQLite, logger: logger}
}

// NewPostgres returns a store backed by a PostgreSQL server.
func NewPostgres(dsn string, logger zerolog.Logger) *Store {
	return &Store{dialector: postgres.Open(dsn), dialect: dialectPostgres, logger: logger}
}

// ensureReady hands out the shared handle, running initialization on the
// first call. Initialization failure is sticky: every subsequent call keeps
// reporting the store as unavailable rather than retrying in a loop.
func (s *Store) ensureReady() (*gorm.DB, error) {
	s.once.Do(s.initialize)
	return s.db, s.err
}

func (s *Store) initialize() {
	db, err := gorm.Open(s.dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		s.err = fmt.Errorf("open %s store: %w: %w", s.dialect, repositories.ErrStoreUnavailable, err)
		return
	}

	if s.dialect == dialectSQLite {
		// Cascade deletes need foreign_keys; WAL keeps readers unblocked
		// while the single writer works.
		for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA journal_mode = WAL"} {
			if err := db.Exec(pragma).Error; err != nil {
				s.err = fmt.Errorf("%s: %w: %w", pragma, repositories.ErrStoreUnavailable, err)
				return
			}
		}
	}

	if err := db.AutoMigrate(
		&entities.Studio{},
		&entities.Patient{},
		&entities.Delivery{},
		&entities.Report{},
		&entities.Invoice{},
		&entities.Appointment{},
		&entities.Activity{},
	); err != nil {
		s.err = fmt.Errorf("migrate schema: %w: %w", repositories.ErrStoreUnavailable, err)
		return
	}

	if err := s.seedDefaultStudio(db); err != nil {
		s.err = fmt.Errorf("seed default studio: %w: %w", repositories.ErrStoreUnavailable, err)
		return
	}

	s.logger.Info().Str("dialect", s.dialect).Msg("database schema ready")
	s.db = db
}

// seedDefaultStudio guarantees exactly one studio row. The placeholder
// values match a fresh installation; the doctor fills them in later.
func (s *Store) seedDefaultStudio(db *gorm.DB) error {
	now := time.Now().UTC()
	studio := entities.Studio{
		ID:          entities.DefaultStudioID,
		Name:        "Studio Ginecologico",
		DoctorName:  ptr("Dr.ssa"),
		DoctorTitle: ptr("Specialista in Ginecologia e Ostetricia"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return db.Where("id = ?", entities.DefaultStudioID).FirstOrCreate(&studio).Error
}

// wrap maps store-level failures onto the shared taxonomy while keeping the
// original cause in the chain.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %w", op, repositories.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, repositories.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func ptr[T any](v T) *T { return &v }
