package converter

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalReportToResponse converts a MedicalReport entity to MedicalReportResponse DTO
func MedicalReportToResponse(report *entity.MedicalReport) *dto.MedicalReportResponse {
	if report == nil {
		return nil
	}

	resp := &dto.MedicalReportResponse{
		ID:            report.ID,
		DoctorID:      report.DoctorID,
		PatientID:     report.PatientID,
		Title:         report.Title,
		Content:       report.Content,
		AttachmentURL: report.AttachmentURL,
		CreatedAt:     report.CreatedAt,
	}

	if report.Doctor != nil && report.Doctor.User.ID != uuid.Nil {
		resp.DoctorName = report.Doctor.User.FullName()
	}
	if report.Patient.ID != uuid.Nil {
		resp.PatientName = report.Patient.FullName()
	}

	return resp
}

// MedicalReportsToResponses converts a slice of MedicalReport entities to MedicalReportResponse DTOs
func MedicalReportsToResponses(reports []entity.MedicalReport) []dto.MedicalReportResponse {
	responses := make([]dto.MedicalReportResponse, len(reports))
	for i := range reports {
		responses[i] = *MedicalReportToResponse(&reports[i])
	}
	return responses
}
