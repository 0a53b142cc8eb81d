package dto

import "github.com/google/uuid"

// Request DTOs

type CreateSlotRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateSlotRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"omitempty,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime string `json:"start_time" validate:"omitempty"`
	EndTime   string `json:"end_time" validate:"omitempty"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type SlotResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsActive  *bool     `json:"is_active"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
