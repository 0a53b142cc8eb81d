package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newTestDB returns an inert gorm handle; nothing in these tests should ever
// reach a real connection because every repository is mocked.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error {
	return m.Called(db, profile).Error(0)
}

func (m *mockProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(db, userID)
	profile, _ := args.Get(0).(*entity.Profile)
	return profile, args.Error(1)
}

type mockDoctorRepo struct{ mock.Mock }

func (m *mockDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

func (m *mockDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(db, userID)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepo) FindAllAvailable(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	args := m.Called(db, filter)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

type mockSlotRepo struct{ mock.Mock }

func (m *mockSlotRepo) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return m.Called(db, slot).Error(0)
}

func (m *mockSlotRepo) FindByID(db *gorm.DB, id int) (*entity.AvailabilitySlot, error) {
	args := m.Called(db, id)
	slot, _ := args.Get(0).(*entity.AvailabilitySlot)
	return slot, args.Error(1)
}

func (m *mockSlotRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	args := m.Called(db, doctorID)
	slots, _ := args.Get(0).([]entity.AvailabilitySlot)
	return slots, args.Error(1)
}

func (m *mockSlotRepo) FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	args := m.Called(db, doctorID)
	slots, _ := args.Get(0).([]entity.AvailabilitySlot)
	return slots, args.Error(1)
}

func (m *mockSlotRepo) Update(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return m.Called(db, slot).Error(0)
}

func (m *mockSlotRepo) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(db, appointment).Error(0)
}

func (m *mockAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepo) FindScheduledSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, startTime string) (*entity.Appointment, error) {
	args := m.Called(db, doctorID, date, startTime)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepo) CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) HasAppointmentBetween(db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error) {
	args := m.Called(db, doctorID, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentRepo) DistinctPatientIDs(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(db, doctorID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) Create(db *gorm.DB, report *entity.MedicalReport) error {
	return m.Called(db, report).Error(0)
}

func (m *mockReportRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	args := m.Called(db, patientID)
	reports, _ := args.Get(0).([]entity.MedicalReport)
	return reports, args.Error(1)
}

func (m *mockReportRepo) FindByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) ([]entity.MedicalReport, error) {
	args := m.Called(db, patientIDs)
	reports, _ := args.Get(0).([]entity.MedicalReport)
	return reports, args.Error(1)
}

type mockAuditService struct{ mock.Mock }

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, oldValue).Error(0)
}

// newAuditServiceAllowingAnything returns an audit mock that accepts every
// call; tests that assert on audit writes set explicit expectations instead.
func newAuditServiceAllowingAnything() *mockAuditService {
	audit := &mockAuditService{}
	audit.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	audit.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	audit.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return audit
}

func boolPtr(b bool) *bool { return &b }
