package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest registers a user with a patient profile
type RegisterPatientRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=150"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"omitempty,max=150"`
	LastName    string `json:"last_name" validate:"omitempty,max=150"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
}

// RegisterDoctorRequest registers a user with a doctor profile and record
type RegisterDoctorRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	FirstName       string `json:"first_name" validate:"omitempty,max=150"`
	LastName        string `json:"last_name" validate:"omitempty,max=150"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Specialization  string `json:"specialization" validate:"required,max=100"`
	LicenseNumber   string `json:"license_number" validate:"required,max=50"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	Bio             string `json:"bio" validate:"omitempty"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty,numeric"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
}

type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name,omitempty"`
	LastName    string          `json:"last_name,omitempty"`
	Role        string          `json:"role,omitempty"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
