package dtos

// UpdateStudioRequest is a sparse update of the practice settings. There is
// no create counterpart: the default studio row is seeded by the store.
type UpdateStudioRequest struct {
	Name                *string `json:"name,omitempty"`
	VatNumber           *string `json:"vatNumber,omitempty"`
	Address             *string `json:"address,omitempty"`
	City                *string `json:"city,omitempty"`
	PostalCode          *string `json:"postalCode,omitempty"`
	Province            *string `json:"province,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	LogoURL             *string `json:"logoUrl,omitempty"`
	DoctorName          *string `json:"doctorName,omitempty"`
	DoctorTitle         *string `json:"doctorTitle,omitempty"`
	DoctorSignaturePath *string `json:"doctorSignaturePath,omitempty"`
}
