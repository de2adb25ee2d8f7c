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

func (s *Store) GetDeliveriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Delivery
	for _, d := range s.deliveries {
		if d.PatientID == patientID {
			out = append(out, cloneDelivery(d))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DeliveryDate.After(out[j].DeliveryDate)
	})
	return out, nil
}

func (s *Store) CreateDelivery(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	delivery := &entities.Delivery{
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
	s.deliveries[delivery.ID] = cloneDelivery(delivery)
	return delivery, nil
}

func (s *Store) UpdateDelivery(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deliveries[id]
	if !ok {
		return nil, fmt.Errorf("update delivery %s: %w", id, repositories.ErrNotFound)
	}
	if req.DeliveryDate != nil {
		d.DeliveryDate = *req.DeliveryDate
	}
	if req.DeliveryType != nil {
		d.DeliveryType = *req.DeliveryType
	}
	if req.PregnancyWeeks != nil {
		d.PregnancyWeeks = clonePtr(req.PregnancyWeeks)
	}
	if req.BabyWeight != nil {
		d.BabyWeight = clonePtr(req.BabyWeight)
	}
	if req.BabyGender != nil {
		d.BabyGender = clonePtr(req.BabyGender)
	}
	if req.Complications != nil {
		d.Complications = clonePtr(req.Complications)
	}
	if req.Notes != nil {
		d.Notes = clonePtr(req.Notes)
	}
	d.UpdatedAt = time.Now().UTC()
	return cloneDelivery(d), nil
}

func (s *Store) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[id]; !ok {
		return fmt.Errorf("delete delivery %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.deliveries, id)
	return nil
}
