package repository

import (
	"errors"
	"time"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	domainRepo "github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindScheduledSlot looks up a scheduled appointment occupying the exact
// (doctor, date, start_time) slot. Advisory pre-check only; the partial
// unique index is the authoritative guard against double booking.
func (r *appointmentRepository) FindScheduledSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, startTime string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND appointment_date = ? AND start_time = ? AND status = ?",
		doctorID, date, startTime, entity.AppointmentStatusScheduled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// CancelAppointment atomically cancels an appointment ONLY if it's not
// already cancelled. Returns affected rows: 1 = cancelled now, 0 = was
// already cancelled (prevents double-cancel races).
func (r *appointmentRepository) CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.AppointmentStatusCancelled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

// HasAppointmentBetween reports whether any appointment, regardless of
// status, links the doctor and the patient. The care relationship that
// scopes medical-report access.
func (r *appointmentRepository) HasAppointmentBetween(db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) DistinctPatientIDs(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	var patientIDs []uuid.UUID
	err := db.Model(&entity.Appointment{}).
		Distinct("patient_id").
		Where("doctor_id = ?", doctorID).
		Pluck("patient_id", &patientIDs).Error
	if err != nil {
		return nil, err
	}
	return patientIDs, nil
}
