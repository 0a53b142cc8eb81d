package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReportRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	Title         string    `json:"title" validate:"required,max=255"`
	Content       string    `json:"content" validate:"omitempty"`
	AttachmentURL string    `json:"attachment_url" validate:"omitempty,url"`
}

// Response DTOs

type MedicalReportResponse struct {
	ID            uuid.UUID  `json:"id"`
	DoctorID      *uuid.UUID `json:"doctor_id,omitempty"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	PatientID     uuid.UUID  `json:"patient_id"`
	PatientName   string     `json:"patient_name,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content,omitempty"`
	AttachmentURL string     `json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MedicalReportListResponse struct {
	Reports []MedicalReportResponse `json:"reports"`
	Total   int                     `json:"total"`
}
