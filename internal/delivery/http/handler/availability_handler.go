package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/http/middleware"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/usecase"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/pkg/response"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/pkg/validator"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// ListMySlots handles listing the caller's availability slots
// @Summary List my availability slots
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /availability [get]
func (h *AvailabilityHandler) ListMySlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	slots, err := h.availabilityUsecase.ListMySlots(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list availability slots")
		return
	}

	response.Success(w, http.StatusOK, "Availability slots retrieved successfully", slots)
}

// CreateSlot handles creating an availability slot
// @Summary Create an availability slot
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotRequest true "Create Slot Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /availability [post]
func (h *AvailabilityHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.CreateSlot(r.Context(), userID, &req)
	if err != nil {
		h.writeSlotError(w, err, "Failed to create availability slot")
		return
	}

	response.Success(w, http.StatusCreated, "Availability slot created successfully", slot)
}

// UpdateSlot handles updating an availability slot
// @Summary Update an availability slot
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param request body dto.UpdateSlotRequest true "Update Slot Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /availability/{id} [put]
func (h *AvailabilityHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	slotID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.UpdateSlot(r.Context(), userID, slotID, &req)
	if err != nil {
		h.writeSlotError(w, err, "Failed to update availability slot")
		return
	}

	response.Success(w, http.StatusOK, "Availability slot updated successfully", slot)
}

// DeleteSlot handles deleting an availability slot
// @Summary Delete an availability slot
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	slotID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteSlot(r.Context(), userID, slotID); err != nil {
		h.writeSlotError(w, err, "Failed to delete availability slot")
		return
	}

	response.Success(w, http.StatusOK, "Availability slot deleted successfully", nil)
}

func (h *AvailabilityHandler) writeSlotError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor profile not found")
	case usecase.ErrSlotNotFound:
		response.NotFound(w, "Availability slot not found")
	case usecase.ErrSlotExists:
		response.Conflict(w, "Availability slot already exists for this window")
	case usecase.ErrInvalidTimeFormat, usecase.ErrInvalidTimeRange:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
