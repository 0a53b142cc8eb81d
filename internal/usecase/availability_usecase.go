package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/converter"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound      = errors.New("availability slot not found")
	ErrSlotExists        = errors.New("availability slot already exists")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
)

type AvailabilityUsecase interface {
	ListMySlots(ctx context.Context, actorID uuid.UUID) (*dto.SlotListResponse, error)
	CreateSlot(ctx context.Context, actorID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, actorID uuid.UUID, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, actorID uuid.UUID, slotID int) error
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	actors       *ActorResolver
	slotRepo     repository.AvailabilitySlotRepository
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	actors *ActorResolver,
	slotRepo repository.AvailabilitySlotRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		actors:       actors,
		slotRepo:     slotRepo,
		auditService: auditService,
	}
}

// ListMySlots returns the actor's own slots. An actor without a Doctor
// record gets an empty list, not an error.
func (u *availabilityUsecase) ListMySlots(ctx context.Context, actorID uuid.UUID) (*dto.SlotListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}

	var slots []entity.AvailabilitySlot
	if doctorID, ok := actor.AsDoctor(); ok {
		slots, err = u.slotRepo.FindByDoctorID(db, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find slots for doctor %s: %+v", doctorID, err)
			return nil, err
		}
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// CreateSlot creates an availability window for the actor's own Doctor
// record. The owning doctor is always derived server-side from the actor.
func (u *availabilityUsecase) CreateSlot(ctx context.Context, actorID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}
	doctorID, ok := actor.AsDoctor()
	if !ok {
		return nil, ErrDoctorNotFound
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot := &entity.AvailabilitySlot{
		DoctorID:  doctorID,
		DayOfWeek: entity.Weekday(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  req.IsActive,
	}

	if err := u.slotRepo.Create(db, slot); err != nil {
		if isDuplicateKeyError(err, "slot_window") {
			return nil, ErrSlotExists
		}
		u.log.Warnf("Failed to create slot for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, db, &actorID, entity.AuditActionSlotCreate, "availability_slot", strconv.Itoa(slot.ID), req)

	return converter.SlotToResponse(slot), nil
}

func (u *availabilityUsecase) UpdateSlot(ctx context.Context, actorID uuid.UUID, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}
	doctorID, ok := actor.AsDoctor()
	if !ok {
		return nil, ErrDoctorNotFound
	}

	slot, err := u.fetchOwnedSlot(db, doctorID, slotID)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != "" {
		slot.DayOfWeek = entity.Weekday(req.DayOfWeek)
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	if req.IsActive != nil {
		slot.IsActive = req.IsActive
	}

	if err := validateWindow(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}

	if err := u.slotRepo.Update(db, slot); err != nil {
		if isDuplicateKeyError(err, "slot_window") {
			return nil, ErrSlotExists
		}
		u.log.Warnf("Failed to update slot %d: %+v", slotID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, db, &actorID, entity.AuditActionSlotUpdate, "availability_slot", strconv.Itoa(slotID), nil, req)

	return converter.SlotToResponse(slot), nil
}

func (u *availabilityUsecase) DeleteSlot(ctx context.Context, actorID uuid.UUID, slotID int) error {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return err
	}
	doctorID, ok := actor.AsDoctor()
	if !ok {
		return ErrDoctorNotFound
	}

	slot, err := u.fetchOwnedSlot(db, doctorID, slotID)
	if err != nil {
		return err
	}

	affected, err := u.slotRepo.Delete(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to delete slot %d: %+v", slotID, err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	u.auditService.LogDelete(ctx, db, &actorID, entity.AuditActionSlotDelete, "availability_slot", strconv.Itoa(slotID), slot)

	return nil
}

// fetchOwnedSlot loads a slot and verifies ownership. A slot owned by
// another doctor is reported as not found, never as forbidden, so slot ids
// cannot be probed across doctors.
func (u *availabilityUsecase) fetchOwnedSlot(db *gorm.DB, doctorID uuid.UUID, slotID int) (*entity.AvailabilitySlot, error) {
	slot, err := u.slotRepo.FindByID(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %d: %+v", slotID, err)
		return nil, err
	}
	if slot == nil || slot.DoctorID != doctorID {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

func validateWindow(startTime, endTime string) error {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if !end.After(start) {
		return ErrInvalidTimeRange
	}
	return nil
}
