package database

import (
	"fmt"

	"github.com/rs/zerolog"

	"gyneco-record-service/internal/config"
	"gyneco-record-service/internal/storage/gormstore"
	"gyneco-record-service/internal/storage/memstore"
)

// The in-memory stand-in must keep implementing the full facade.
var _ DatabaseService = (*memstore.Store)(nil)

// New selects the backing store once at process start. Call sites receive
// only the DatabaseService contract and never see which backend is active.
func New(cfg config.Config, logger zerolog.Logger) (DatabaseService, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memstore.New(), nil
	case config.BackendPostgres:
		return fromStore(gormstore.NewPostgres(cfg.PostgresDSN, logger)), nil
	case config.BackendSQLite:
		return fromStore(gormstore.NewSQLite(cfg.SQLitePath, logger)), nil
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Backend)
	}
}

// fromStore wires every repository over the one shared store handle.
func fromStore(store *gormstore.Store) *Database {
	return NewDatabase(
		gormstore.NewPatientRepository(store),
		gormstore.NewDeliveryRepository(store),
		gormstore.NewReportRepository(store),
		gormstore.NewInvoiceRepository(store),
		gormstore.NewAppointmentRepository(store),
		gormstore.NewStudioRepository(store),
		gormstore.NewActivityRepository(store),
	)
}
