package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	usecase         AppointmentUsecase
	profileRepo     *mockProfileRepo
	doctorRepo      *mockDoctorRepo
	appointmentRepo *mockAppointmentRepo
	audit           *mockAuditService
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	profileRepo := &mockProfileRepo{}
	doctorRepo := &mockDoctorRepo{}
	appointmentRepo := &mockAppointmentRepo{}
	audit := newAuditServiceAllowingAnything()

	db := newTestDB(t)
	log := newTestLogger()
	actors := NewActorResolver(log, profileRepo, doctorRepo)

	return &appointmentFixture{
		usecase:         NewAppointmentUsecase(db, log, actors, appointmentRepo, doctorRepo, audit),
		profileRepo:     profileRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (f *appointmentFixture) givenActor(userID uuid.UUID, role entity.Role, hasDoctorRecord bool) {
	f.profileRepo.On("FindByUserID", mock.Anything, userID).Return(&entity.Profile{UserID: userID, Role: role}, nil)
	if role == entity.RoleDoctor {
		var doctor *entity.Doctor
		if hasDoctorRecord {
			doctor = &entity.Doctor{UserID: userID}
		}
		f.doctorRepo.On("FindByUserID", mock.Anything, userID).Return(doctor, nil)
	}
}

func bookRequest(doctorID uuid.UUID) *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentDate: "2026-09-01",
		StartTime:       "10:00",
		EndTime:         "10:30",
		Reason:          "Follow-up",
	}
}

func TestBookAppointment(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	t.Run("books a free slot as scheduled", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.Doctor{UserID: doctorID}, nil)
		f.appointmentRepo.On("FindScheduledSlot", mock.Anything, doctorID, mock.Anything, "10:00").Return(nil, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.DoctorID == doctorID &&
				a.PatientID == patientID &&
				a.Status == entity.AppointmentStatusScheduled &&
				a.AppointmentDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		})).Return(nil)

		resp, err := f.usecase.Book(context.Background(), patientID, bookRequest(doctorID))
		require.NoError(t, err)
		assert.Equal(t, doctorID, resp.DoctorID)
		assert.Equal(t, patientID, resp.PatientID)
		assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
		f.appointmentRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown doctor", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)

		_, err := f.usecase.Book(context.Background(), patientID, bookRequest(doctorID))
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		f := newAppointmentFixture(t)
		req := bookRequest(doctorID)
		req.AppointmentDate = "01-09-2026"

		_, err := f.usecase.Book(context.Background(), patientID, req)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("rejects an inverted time window", func(t *testing.T) {
		f := newAppointmentFixture(t)
		req := bookRequest(doctorID)
		req.StartTime = "11:00"
		req.EndTime = "10:00"

		_, err := f.usecase.Book(context.Background(), patientID, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("reports a conflict when the slot is already scheduled", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.Doctor{UserID: doctorID}, nil)
		f.appointmentRepo.On("FindScheduledSlot", mock.Anything, doctorID, mock.Anything, "10:00").
			Return(&entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusScheduled}, nil)

		_, err := f.usecase.Book(context.Background(), patientID, bookRequest(doctorID))
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})

	t.Run("reports a conflict when the unique index fires on insert", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.Doctor{UserID: doctorID}, nil)
		f.appointmentRepo.On("FindScheduledSlot", mock.Anything, doctorID, mock.Anything, "10:00").Return(nil, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_slot"})

		_, err := f.usecase.Book(context.Background(), patientID, bookRequest(doctorID))
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})
}

func TestCancelAppointment(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	appointmentID := uuid.New()

	scheduled := func() *entity.Appointment {
		return &entity.Appointment{
			ID:        appointmentID,
			DoctorID:  doctorID,
			PatientID: patientID,
			Status:    entity.AppointmentStatusScheduled,
		}
	}

	t.Run("patient cancels their own appointment", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(scheduled(), nil)
		f.appointmentRepo.On("CancelAppointment", mock.Anything, appointmentID).Return(int64(1), nil)

		resp, err := f.usecase.Cancel(context.Background(), patientID, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
	})

	t.Run("the addressed doctor cannot cancel", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(scheduled(), nil)

		_, err := f.usecase.Cancel(context.Background(), doctorID, appointmentID)
		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
		f.appointmentRepo.AssertNotCalled(t, "CancelAppointment", mock.Anything, mock.Anything)
	})

	t.Run("rejects a stranger", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(scheduled(), nil)

		_, err := f.usecase.Cancel(context.Background(), uuid.New(), appointmentID)
		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
		f.appointmentRepo.AssertNotCalled(t, "CancelAppointment", mock.Anything, mock.Anything)
	})

	t.Run("missing appointment is not found", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(nil, nil)

		_, err := f.usecase.Cancel(context.Background(), patientID, appointmentID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("cancelling twice is a no-op success", func(t *testing.T) {
		f := newAppointmentFixture(t)
		cancelled := scheduled()
		cancelled.Cancel()
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(cancelled, nil)

		resp, err := f.usecase.Cancel(context.Background(), patientID, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
		f.appointmentRepo.AssertNotCalled(t, "CancelAppointment", mock.Anything, mock.Anything)
	})

	t.Run("completed appointments cannot be cancelled", func(t *testing.T) {
		f := newAppointmentFixture(t)
		completed := scheduled()
		completed.Status = entity.AppointmentStatusCompleted
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(completed, nil)

		_, err := f.usecase.Cancel(context.Background(), patientID, appointmentID)
		assert.ErrorIs(t, err, ErrAppointmentNotCancellable)
	})

	t.Run("losing the cancel race still reports cancelled", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(scheduled(), nil)
		f.appointmentRepo.On("CancelAppointment", mock.Anything, appointmentID).Return(int64(0), nil)

		resp, err := f.usecase.Cancel(context.Background(), patientID, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
	})
}

func TestListAppointments(t *testing.T) {
	t.Run("doctor sees appointments addressed to their record", func(t *testing.T) {
		f := newAppointmentFixture(t)
		doctorID := uuid.New()
		f.givenActor(doctorID, entity.RoleDoctor, true)
		f.appointmentRepo.On("FindByDoctorID", mock.Anything, doctorID).
			Return([]entity.Appointment{{ID: uuid.New(), DoctorID: doctorID}}, nil)

		resp, err := f.usecase.ListAppointments(context.Background(), doctorID)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		f.appointmentRepo.AssertNotCalled(t, "FindByPatientID", mock.Anything, mock.Anything)
	})

	t.Run("patient sees appointments they booked", func(t *testing.T) {
		f := newAppointmentFixture(t)
		patientID := uuid.New()
		f.givenActor(patientID, entity.RolePatient, false)
		f.appointmentRepo.On("FindByPatientID", mock.Anything, patientID).
			Return([]entity.Appointment{{ID: uuid.New(), PatientID: patientID}, {ID: uuid.New(), PatientID: patientID}}, nil)

		resp, err := f.usecase.ListAppointments(context.Background(), patientID)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("actor without a profile gets an empty list", func(t *testing.T) {
		f := newAppointmentFixture(t)
		userID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

		resp, err := f.usecase.ListAppointments(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Appointments)
		f.appointmentRepo.AssertNotCalled(t, "FindByPatientID", mock.Anything, mock.Anything)
		f.appointmentRepo.AssertNotCalled(t, "FindByDoctorID", mock.Anything, mock.Anything)
	})

	t.Run("doctor without a record gets an empty list, not the patient scope", func(t *testing.T) {
		f := newAppointmentFixture(t)
		userID := uuid.New()
		f.givenActor(userID, entity.RoleDoctor, false)

		resp, err := f.usecase.ListAppointments(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		f.appointmentRepo.AssertNotCalled(t, "FindByPatientID", mock.Anything, mock.Anything)
		f.appointmentRepo.AssertNotCalled(t, "FindByDoctorID", mock.Anything, mock.Anything)
	})
}
