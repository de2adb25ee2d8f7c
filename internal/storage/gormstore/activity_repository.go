package gormstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// ActivityRepository implements repositories.ActivityRepositoryContract.
// The timeline is append-only, so there is no update or delete.
type ActivityRepository struct {
	store *Store
}

var _ repositories.ActivityRepositoryContract = (*ActivityRepository)(nil)

func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

func (r *ActivityRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var activities []*entities.Activity
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("activity_date DESC").
		Find(&activities).Error
	if err != nil {
		return nil, wrap("list activities", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Create(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	activity := entities.Activity{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		ActivityType:  req.ActivityType,
		ActivityDate:  req.ActivityDate,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, wrap("create activity", err)
	}
	return r.reload(ctx, db, activity.ID)
}

func (r *ActivityRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Activity, error) {
	var activity entities.Activity
	if err := db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		return nil, wrap("reload activity", err)
	}
	return &activity, nil
}
