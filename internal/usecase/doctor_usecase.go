package usecase

import (
	"context"
	"errors"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/converter"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, actorID uuid.UUID, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetMyProfile(ctx context.Context, actorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateMyProfile(ctx context.Context, actorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	GetAvailableSlots(ctx context.Context, actorID, doctorID uuid.UUID) (*dto.SlotListResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	actors       *ActorResolver
	doctorRepo   repository.DoctorRepository
	slotRepo     repository.AvailabilitySlotRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	actors *ActorResolver,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.AvailabilitySlotRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		actors:       actors,
		doctorRepo:   doctorRepo,
		slotRepo:     slotRepo,
		auditService: auditService,
	}
}

// ListDoctors returns the doctor set visible to the actor: a doctor sees only
// their own record, a patient sees all available doctors. An actor without a
// profile sees an empty list rather than an error.
func (u *doctorUsecase) ListDoctors(ctx context.Context, actorID uuid.UUID, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}

	var doctors []entity.Doctor
	switch {
	case actor.IsDoctor():
		doctor, err := u.doctorRepo.FindByUserID(db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find doctor record for user %s: %+v", actor.UserID, err)
			return nil, err
		}
		if doctor != nil {
			doctors = []entity.Doctor{*doctor}
		}
	case actor.IsPatient():
		doctors, err = u.doctorRepo.FindAllAvailable(db, filter)
		if err != nil {
			u.log.Warnf("Failed to list available doctors: %+v", err)
			return nil, err
		}
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetMyProfile(ctx context.Context, actorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), actorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor record for user %s: %+v", actorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateMyProfile(ctx context.Context, actorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor record for user %s: %+v", actorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Bio != "" {
		doctor.Bio = req.Bio
	}
	if req.ConsultationFee != "" {
		fee, err := decimal.NewFromString(req.ConsultationFee)
		if err != nil {
			return nil, ErrInvalidFee
		}
		doctor.ConsultationFee = fee
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor record for user %s: %+v", actorID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, db, &actorID, entity.AuditActionDoctorUpdate, "doctor", doctor.UserID.String(), nil, req)

	return converter.DoctorToResponse(doctor), nil
}

// GetAvailableSlots returns the active availability windows of a doctor, but
// only when that doctor is inside the actor's visible doctor set: doctors see
// their own slots, patients see slots of available doctors. Anything outside
// that scope is indistinguishable from a missing doctor.
func (u *doctorUsecase) GetAvailableSlots(ctx context.Context, actorID, doctorID uuid.UUID) (*dto.SlotListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsDoctor():
		own, ok := actor.AsDoctor()
		if !ok || own != doctorID {
			return nil, ErrDoctorNotFound
		}
	case actor.IsPatient():
		doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
			return nil, err
		}
		if doctor == nil || doctor.IsAvailable == nil || !*doctor.IsAvailable {
			return nil, ErrDoctorNotFound
		}
	default:
		return nil, ErrDoctorNotFound
	}

	slots, err := u.slotRepo.FindActiveByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}
