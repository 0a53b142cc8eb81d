package converter

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}

	if appointment.Doctor.User.ID != uuid.Nil {
		resp.DoctorName = appointment.Doctor.User.FullName()
	}
	if appointment.Patient.ID != uuid.Nil {
		resp.PatientName = appointment.Patient.FullName()
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
