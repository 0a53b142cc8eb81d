package converter

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.UserID,
		Username:        doctor.User.Username,
		Email:           doctor.User.Email,
		FullName:        doctor.User.FullName(),
		Specialization:  doctor.Specialization,
		LicenseNumber:   doctor.LicenseNumber,
		ExperienceYears: doctor.ExperienceYears,
		Bio:             doctor.Bio,
		ConsultationFee: doctor.ConsultationFee,
		IsAvailable:     doctor.IsAvailable,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
