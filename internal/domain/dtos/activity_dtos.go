package dtos

import (
	"time"

	"github.com/google/uuid"
)

// CreateActivityRequest appends one entry to a patient's timeline.
// Activities are append-only, so there is no update counterpart.
type CreateActivityRequest struct {
	PatientID    uuid.UUID `json:"patientId" validate:"required"`
	ActivityType string    `json:"activityType" validate:"required"`
	ActivityDate time.Time `json:"activityDate" validate:"required"`
	Description  string    `json:"description" validate:"required"`

	ReferenceID   *uuid.UUID `json:"referenceId,omitempty"`
	ReferenceType *string    `json:"referenceType,omitempty"`
	CreatedBy     *string    `json:"createdBy,omitempty"`
}
