package handler

import (
	"encoding/json"
	"net/http"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/http/middleware"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/usecase"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/pkg/response"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/pkg/validator"

	"github.com/google/uuid"
)

type MedicalReportHandler struct {
	reportUsecase usecase.MedicalReportUsecase
	validator     *validator.CustomValidator
}

func NewMedicalReportHandler(reportUsecase usecase.MedicalReportUsecase, validator *validator.CustomValidator) *MedicalReportHandler {
	return &MedicalReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// ListReports handles listing medical reports visible to the caller
// @Summary List medical reports
// @Description Doctors see reports of patients they have appointments with, patients see their own
// @Tags MedicalReports
// @Security BearerAuth
// @Produce json
// @Param patient_id query string false "Restrict to a single patient"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-reports [get]
func (h *MedicalReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var patientID *uuid.UUID
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient_id", nil)
			return
		}
		patientID = &parsed
	}

	reports, err := h.reportUsecase.ListReports(r.Context(), userID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrReportAccessDenied:
			response.Forbidden(w, "You do not have access to this patient's reports")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to list medical reports")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical reports retrieved successfully", reports)
}

// CreateReport handles creating a medical report
// @Summary Create a medical report
// @Description Create a report for a patient; the authoring doctor is the caller
// @Tags MedicalReports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Create Report Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-reports [post]
func (h *MedicalReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.CreateReport(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create medical report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical report created successfully", report)
}
