package dto

// Request DTOs

type RegisterDoctorRequest struct {
	LicenseNumber string `json:"license_number" validate:"required"`
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Specialty     string `json:"specialty" validate:"omitempty"`
}

// Response DTOs

type DoctorSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type RegisterDoctorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Doctor  *DoctorSummary `json:"doctor"`
}
