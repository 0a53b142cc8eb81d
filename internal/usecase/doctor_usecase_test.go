package usecase

import (
	"context"
	"testing"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type doctorFixture struct {
	usecase     DoctorUsecase
	profileRepo *mockProfileRepo
	doctorRepo  *mockDoctorRepo
	slotRepo    *mockSlotRepo
	audit       *mockAuditService
}

func newDoctorFixture(t *testing.T) *doctorFixture {
	profileRepo := &mockProfileRepo{}
	doctorRepo := &mockDoctorRepo{}
	slotRepo := &mockSlotRepo{}
	audit := newAuditServiceAllowingAnything()

	db := newTestDB(t)
	log := newTestLogger()
	actors := NewActorResolver(log, profileRepo, doctorRepo)

	return &doctorFixture{
		usecase:     NewDoctorUsecase(db, log, actors, doctorRepo, slotRepo, audit),
		profileRepo: profileRepo,
		doctorRepo:  doctorRepo,
		slotRepo:    slotRepo,
		audit:       audit,
	}
}

func TestListDoctors(t *testing.T) {
	t.Run("patient sees available doctors", func(t *testing.T) {
		f := newDoctorFixture(t)
		patientID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.Profile{UserID: patientID, Role: entity.RolePatient}, nil)
		f.doctorRepo.On("FindAllAvailable", mock.Anything, mock.Anything).
			Return([]entity.Doctor{{UserID: uuid.New()}, {UserID: uuid.New()}}, nil)

		resp, err := f.usecase.ListDoctors(context.Background(), patientID, &entity.DoctorFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("patient filter is passed through", func(t *testing.T) {
		f := newDoctorFixture(t)
		patientID := uuid.New()
		filter := &entity.DoctorFilter{Specialization: "cardio", Name: "smith"}
		f.profileRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.Profile{UserID: patientID, Role: entity.RolePatient}, nil)
		f.doctorRepo.On("FindAllAvailable", mock.Anything, filter).Return([]entity.Doctor{}, nil)

		_, err := f.usecase.ListDoctors(context.Background(), patientID, filter)
		require.NoError(t, err)
		f.doctorRepo.AssertExpectations(t)
	})

	t.Run("doctor sees only their own record", func(t *testing.T) {
		f := newDoctorFixture(t)
		doctorID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Profile{UserID: doctorID, Role: entity.RoleDoctor}, nil)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Doctor{UserID: doctorID}, nil)

		resp, err := f.usecase.ListDoctors(context.Background(), doctorID, &entity.DoctorFilter{})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, doctorID, resp.Doctors[0].ID)
		f.doctorRepo.AssertNotCalled(t, "FindAllAvailable", mock.Anything, mock.Anything)
	})

	t.Run("actor without a profile sees an empty list", func(t *testing.T) {
		f := newDoctorFixture(t)
		userID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

		resp, err := f.usecase.ListDoctors(context.Background(), userID, &entity.DoctorFilter{})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("applies partial updates", func(t *testing.T) {
		f := newDoctorFixture(t)
		doctorID := uuid.New()
		years := 12
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.Doctor{
			UserID:          doctorID,
			Specialization:  "General Practitioner",
			ExperienceYears: 3,
			ConsultationFee: decimal.NewFromInt(500),
		}, nil)
		f.doctorRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.Doctor) bool {
			return d.Specialization == "Cardiology" &&
				d.ExperienceYears == 12 &&
				d.ConsultationFee.Equal(decimal.NewFromInt(750))
		})).Return(nil)

		resp, err := f.usecase.UpdateMyProfile(context.Background(), doctorID, &dto.UpdateDoctorRequest{
			Specialization:  "Cardiology",
			ExperienceYears: &years,
			ConsultationFee: "750",
		})
		require.NoError(t, err)
		assert.Equal(t, "Cardiology", resp.Specialization)
		f.doctorRepo.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric fee", func(t *testing.T) {
		f := newDoctorFixture(t)
		doctorID := uuid.New()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Doctor{UserID: doctorID}, nil)

		_, err := f.usecase.UpdateMyProfile(context.Background(), doctorID, &dto.UpdateDoctorRequest{ConsultationFee: "abc"})
		assert.ErrorIs(t, err, ErrInvalidFee)
	})

	t.Run("user without a doctor record is not found", func(t *testing.T) {
		f := newDoctorFixture(t)
		userID := uuid.New()
		f.doctorRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := f.usecase.UpdateMyProfile(context.Background(), userID, &dto.UpdateDoctorRequest{})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}

func TestGetAvailableSlots(t *testing.T) {
	doctorID := uuid.New()

	t.Run("patient sees slots of an available doctor", func(t *testing.T) {
		f := newDoctorFixture(t)
		patientID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.Profile{UserID: patientID, Role: entity.RolePatient}, nil)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Doctor{UserID: doctorID, IsAvailable: boolPtr(true)}, nil)
		f.slotRepo.On("FindActiveByDoctorID", mock.Anything, doctorID).
			Return([]entity.AvailabilitySlot{{ID: 1, DoctorID: doctorID}}, nil)

		resp, err := f.usecase.GetAvailableSlots(context.Background(), patientID, doctorID)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("unavailable doctor is hidden from patients", func(t *testing.T) {
		f := newDoctorFixture(t)
		patientID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.Profile{UserID: patientID, Role: entity.RolePatient}, nil)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Doctor{UserID: doctorID, IsAvailable: boolPtr(false)}, nil)

		_, err := f.usecase.GetAvailableSlots(context.Background(), patientID, doctorID)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("doctor can see their own slots but not another doctor's", func(t *testing.T) {
		f := newDoctorFixture(t)
		f.profileRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Profile{UserID: doctorID, Role: entity.RoleDoctor}, nil)
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.Doctor{UserID: doctorID}, nil)
		f.slotRepo.On("FindActiveByDoctorID", mock.Anything, doctorID).
			Return([]entity.AvailabilitySlot{}, nil)

		_, err := f.usecase.GetAvailableSlots(context.Background(), doctorID, doctorID)
		require.NoError(t, err)

		_, err = f.usecase.GetAvailableSlots(context.Background(), doctorID, uuid.New())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("actor without a profile cannot probe slots", func(t *testing.T) {
		f := newDoctorFixture(t)
		userID := uuid.New()
		f.profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := f.usecase.GetAvailableSlots(context.Background(), userID, doctorID)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
