package dtos

import (
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/entities"
)

// CreateDeliveryRequest defines the payload for recording a delivery.
// Range checks on weeks and weight belong to the input boundary, not here.
type CreateDeliveryRequest struct {
	PatientID    uuid.UUID             `json:"patientId" validate:"required"`
	StudioID     string                `json:"studioId" validate:"required"`
	DeliveryDate time.Time             `json:"deliveryDate" validate:"required"`
	DeliveryType entities.DeliveryType `json:"deliveryType" validate:"required"`

	PregnancyWeeks *int                 `json:"pregnancyWeeks,omitempty"`
	BabyWeight     *float64             `json:"babyWeight,omitempty"`
	BabyGender     *entities.BabyGender `json:"babyGender,omitempty"`
	Complications  *string              `json:"complications,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
}

// UpdateDeliveryRequest is a sparse update over the delivery fields.
type UpdateDeliveryRequest struct {
	DeliveryDate *time.Time             `json:"deliveryDate,omitempty"`
	DeliveryType *entities.DeliveryType `json:"deliveryType,omitempty"`

	PregnancyWeeks *int                 `json:"pregnancyWeeks,omitempty"`
	BabyWeight     *float64             `json:"babyWeight,omitempty"`
	BabyGender     *entities.BabyGender `json:"babyGender,omitempty"`
	Complications  *string              `json:"complications,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
}
