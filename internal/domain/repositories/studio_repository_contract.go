package repositories

import (
	"context"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// StudioRepositoryContract defines the interface for practice settings.
// Backends without a studio table return ErrUnsupported.
type StudioRepositoryContract interface {
	// GetSettings returns the single studio row seeded at initialization.
	GetSettings(ctx context.Context) (*entities.Studio, error)
	UpdateSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error)
}
