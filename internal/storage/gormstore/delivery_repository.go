package gormstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// DeliveryRepository implements repositories.DeliveryRepositoryContract.
type DeliveryRepository struct {
	store *Store
}

var _ repositories.DeliveryRepositoryContract = (*DeliveryRepository)(nil)

func NewDeliveryRepository(store *Store) *DeliveryRepository {
	return &DeliveryRepository{store: store}
}

func (r *DeliveryRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var deliveries []*entities.Delivery
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("delivery_date DESC").
		Find(&deliveries).Error
	if err != nil {
		return nil, wrap("list deliveries", err)
	}
	return deliveries, nil
}

func (r *DeliveryRepository) Create(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	delivery := entities.Delivery{
		ID:           uuid.New(),
		PatientID:    req.PatientID,
		StudioID:     req.StudioID,
		DeliveryDate: req.DeliveryDate,
		DeliveryType: req.DeliveryType,

		PregnancyWeeks: req.PregnancyWeeks,
		BabyWeight:     req.BabyWeight,
		BabyGender:     req.BabyGender,
		Complications:  req.Complications,
		Notes:          req.Notes,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(&delivery).Error; err != nil {
		return nil, wrap("create delivery", err)
	}
	return r.reload(ctx, db, delivery.ID)
}

func (r *DeliveryRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.DeliveryDate != nil {
		updates["delivery_date"] = *req.DeliveryDate
	}
	if req.DeliveryType != nil {
		updates["delivery_type"] = *req.DeliveryType
	}
	if req.PregnancyWeeks != nil {
		updates["pregnancy_weeks"] = *req.PregnancyWeeks
	}
	if req.BabyWeight != nil {
		updates["baby_weight"] = *req.BabyWeight
	}
	if req.BabyGender != nil {
		updates["baby_gender"] = *req.BabyGender
	}
	if req.Complications != nil {
		updates["complications"] = *req.Complications
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Delivery{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrap("update delivery", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update delivery %s: %w", id, repositories.ErrNotFound)
	}
	return r.reload(ctx, db, id)
}

func (r *DeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.store.ensureReady()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&entities.Delivery{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete delivery", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete delivery %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (r *DeliveryRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Delivery, error) {
	var delivery entities.Delivery
	if err := db.WithContext(ctx).First(&delivery, "id = ?", id).Error; err != nil {
		return nil, wrap("reload delivery", err)
	}
	return &delivery, nil
}
