package gormstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// StudioRepository implements repositories.StudioRepositoryContract over the
// single default studio row seeded at initialization.
type StudioRepository struct {
	store *Store
}

var _ repositories.StudioRepositoryContract = (*StudioRepository)(nil)

func NewStudioRepository(store *Store) *StudioRepository {
	return &StudioRepository{store: store}
}

func (r *StudioRepository) GetSettings(ctx context.Context) (*entities.Studio, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	return r.reload(ctx, db)
}

func (r *StudioRepository) UpdateSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.VatNumber != nil {
		updates["vat_number"] = *req.VatNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Province != nil {
		updates["province"] = *req.Province
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.DoctorName != nil {
		updates["doctor_name"] = *req.DoctorName
	}
	if req.DoctorTitle != nil {
		updates["doctor_title"] = *req.DoctorTitle
	}
	if req.DoctorSignaturePath != nil {
		updates["doctor_signature_path"] = *req.DoctorSignaturePath
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Studio{}).
		Where("id = ?", entities.DefaultStudioID).
		Updates(updates)
	if res.Error != nil {
		return nil, wrap("update studio settings", res.Error)
	}
	return r.reload(ctx, db)
}

func (r *StudioRepository) reload(ctx context.Context, db *gorm.DB) (*entities.Studio, error) {
	var studio entities.Studio
	err := db.WithContext(ctx).First(&studio, "id = ?", entities.DefaultStudioID).Error
	if err != nil {
		return nil, wrap("get studio settings", err)
	}
	return &studio, nil
}
