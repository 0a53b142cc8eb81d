package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weekday is a three-letter day code for recurring availability windows
type Weekday string

const (
	WeekdayMonday    Weekday = "MON"
	WeekdayTuesday   Weekday = "TUE"
	WeekdayWednesday Weekday = "WED"
	WeekdayThursday  Weekday = "THU"
	WeekdayFriday    Weekday = "FRI"
	WeekdaySaturday  Weekday = "SAT"
	WeekdaySunday    Weekday = "SUN"
)

// IsValid reports whether the weekday is one of the seven day codes
func (w Weekday) IsValid() bool {
	switch w {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	}
	return false
}

// AvailabilitySlot is a weekly recurring consultation window for a doctor.
// The (doctor, day, start, end) tuple is unique.
type AvailabilitySlot struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_availability_slot_window" json:"doctor_id"`
	DayOfWeek Weekday   `gorm:"type:varchar(3);not null;uniqueIndex:uq_availability_slot_window" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null;uniqueIndex:uq_availability_slot_window" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null;uniqueIndex:uq_availability_slot_window" json:"end_time"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
