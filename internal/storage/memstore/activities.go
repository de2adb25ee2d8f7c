package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func (s *Store) GetActivitiesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Activity
	for _, a := range s.activities {
		if a.PatientID == patientID {
			out = append(out, cloneActivity(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ActivityDate.After(out[j].ActivityDate)
	})
	return out, nil
}

func (s *Store) CreateActivity(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := &entities.Activity{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		ActivityType:  req.ActivityType,
		ActivityDate:  req.ActivityDate,
		Description:   req.Description,
		ReferenceID:   clonePtr(req.ReferenceID),
		ReferenceType: clonePtr(req.ReferenceType),
		CreatedBy:     clonePtr(req.CreatedBy),
		CreatedAt:     time.Now().UTC(),
	}
	s.activities[activity.ID] = activity
	return cloneActivity(activity), nil
}

// GetStudioSettings is not supported by the in-memory stand-in: there is no
// studio table to seed. Callers degrade gracefully on ErrUnsupported.
func (s *Store) GetStudioSettings(ctx context.Context) (*entities.Studio, error) {
	return nil, fmt.Errorf("studio settings: %w", repositories.ErrUnsupported)
}

// UpdateStudioSettings is not supported by the in-memory stand-in.
func (s *Store) UpdateStudioSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error) {
	return nil, fmt.Errorf("studio settings: %w", repositories.ErrUnsupported)
}
