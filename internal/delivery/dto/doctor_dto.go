package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorRequest struct {
	Specialization  string `json:"specialization" validate:"omitempty,max=100"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Bio             string `json:"bio" validate:"omitempty"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty,numeric"`
	IsAvailable     *bool  `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	FullName        string          `json:"full_name"`
	Specialization  string          `json:"specialization"`
	LicenseNumber   string          `json:"license_number"`
	ExperienceYears int             `json:"experience_years"`
	Bio             string          `json:"bio,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	IsAvailable     *bool           `json:"is_available"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
