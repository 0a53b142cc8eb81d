package usecase

import (
	"context"
	"errors"
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
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrSlotAlreadyBooked         = errors.New("slot already booked")
	ErrAppointmentNotOwned       = errors.New("appointment does not belong to you")
	ErrAppointmentNotCancellable = errors.New("appointment can no longer be cancelled")
	ErrInvalidDateFormat         = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, actorID uuid.UUID) (*dto.AppointmentListResponse, error)
	Book(ctx context.Context, actorID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	actors          *ActorResolver
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	actors *ActorResolver,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		actors:          actors,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// ListAppointments returns the appointments the actor participates in: a
// doctor sees appointments addressed to their Doctor record, a patient sees
// appointments they booked. An actor with no profile, or a doctor-role actor
// with no Doctor record, gets an empty list rather than someone else's scope.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, actorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	switch {
	case actor.IsDoctor():
		if doctorID, ok := actor.AsDoctor(); ok {
			appointments, err = u.appointmentRepo.FindByDoctorID(db, doctorID)
		}
	case actor.IsPatient():
		appointments, err = u.appointmentRepo.FindByPatientID(db, actor.AsPatient())
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", actorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Book creates a scheduled appointment with the actor as patient. The
// pre-check against an existing scheduled appointment is advisory; the
// partial unique index on (doctor_id, appointment_date, start_time) for
// scheduled rows is what actually serializes concurrent bookings, and its
// violation surfaces here as ErrSlotAlreadyBooked.
func (u *appointmentUsecase) Book(ctx context.Context, actorID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	existing, err := u.appointmentRepo.FindScheduledSlot(db, req.DoctorID, date, req.StartTime)
	if err != nil {
		u.log.Warnf("Failed to check slot for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       actorID,
		AppointmentDate: date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_slot") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment for patient %s: %+v", actorID, err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, db, &actorID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), req)

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel cancels an appointment the actor booked as patient. Cancelling an
// already cancelled appointment succeeds without changing anything; completed
// and no-show appointments cannot be cancelled.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Only the booking patient may cancel; the addressed doctor cannot.
	if appointment.PatientID != actorID {
		return nil, ErrAppointmentNotOwned
	}

	if appointment.IsCancelled() {
		return converter.AppointmentToResponse(appointment), nil
	}
	if !appointment.IsScheduled() {
		return nil, ErrAppointmentNotCancellable
	}

	affected, err := u.appointmentRepo.CancelAppointment(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		// Lost the race to another cancel; the end state is the same.
		appointment.Cancel()
		return converter.AppointmentToResponse(appointment), nil
	}

	appointment.Cancel()

	u.auditService.LogUpdate(ctx, db, &actorID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(),
		entity.AppointmentStatusScheduled, entity.AppointmentStatusCancelled)

	return converter.AppointmentToResponse(appointment), nil
}
