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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReportAccessDenied = errors.New("you do not have access to this patient's reports")
	ErrPatientNotFound    = errors.New("patient not found")
)

type MedicalReportUsecase interface {
	ListReports(ctx context.Context, actorID uuid.UUID, patientID *uuid.UUID) (*dto.MedicalReportListResponse, error)
	CreateReport(ctx context.Context, actorID uuid.UUID, req *dto.CreateReportRequest) (*dto.MedicalReportResponse, error)
}

type medicalReportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	actors          *ActorResolver
	reportRepo      repository.MedicalReportRepository
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewMedicalReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	actors *ActorResolver,
	reportRepo repository.MedicalReportRepository,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) MedicalReportUsecase {
	return &medicalReportUsecase{
		db:              db,
		log:             log,
		actors:          actors,
		reportRepo:      reportRepo,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// ListReports returns the reports the actor may read. Without a patient_id
// filter, a doctor sees the reports of every patient they have an
// appointment with and a patient sees their own. With a filter, a patient
// may only name themselves; a doctor may only name patients they share an
// appointment with. Filter violations are forbidden; an unfiltered listing
// with missing supporting records is just empty.
func (u *medicalReportUsecase) ListReports(ctx context.Context, actorID uuid.UUID, patientID *uuid.UUID) (*dto.MedicalReportListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}

	var reports []entity.MedicalReport
	switch {
	case patientID != nil:
		reports, err = u.listFiltered(db, actor, *patientID)
	case actor.IsDoctor():
		reports, err = u.listForDoctor(db, actor)
	case actor.IsPatient():
		reports, err = u.reportRepo.FindByPatientID(db, actorID)
	}
	if err != nil {
		return nil, err
	}

	return &dto.MedicalReportListResponse{
		Reports: converter.MedicalReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *medicalReportUsecase) listForDoctor(db *gorm.DB, actor *ActorContext) ([]entity.MedicalReport, error) {
	doctorID, ok := actor.AsDoctor()
	if !ok {
		// Doctor role without a Doctor record: the unfiltered listing
		// degrades to empty, only the filtered path rejects.
		return nil, nil
	}

	patientIDs, err := u.appointmentRepo.DistinctPatientIDs(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	reports, err := u.reportRepo.FindByPatientIDs(db, patientIDs)
	if err != nil {
		u.log.Warnf("Failed to list reports for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return reports, nil
}

func (u *medicalReportUsecase) listFiltered(db *gorm.DB, actor *ActorContext, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	switch {
	case actor.IsDoctor():
		doctorID, ok := actor.AsDoctor()
		if !ok {
			return nil, ErrDoctorNotFound
		}
		patient, err := u.userRepo.FindByID(db, patientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		seen, err := u.appointmentRepo.HasAppointmentBetween(db, doctorID, patientID)
		if err != nil {
			u.log.Warnf("Failed to check appointments between doctor %s and patient %s: %+v", doctorID, patientID, err)
			return nil, err
		}
		if !seen {
			return nil, ErrReportAccessDenied
		}
	case actor.IsPatient():
		if patientID != actor.UserID {
			return nil, ErrReportAccessDenied
		}
	default:
		return nil, ErrReportAccessDenied
	}

	reports, err := u.reportRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list reports for patient %s: %+v", patientID, err)
		return nil, err
	}
	return reports, nil
}

// CreateReport writes a report authored by the actor's Doctor record. The
// authoring doctor is always taken from the actor, never from the request.
func (u *medicalReportUsecase) CreateReport(ctx context.Context, actorID uuid.UUID, req *dto.CreateReportRequest) (*dto.MedicalReportResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.actors.Resolve(db, actorID)
	if err != nil {
		return nil, err
	}
	doctorID, ok := actor.AsDoctor()
	if !ok {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.userRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	report := &entity.MedicalReport{
		DoctorID:      &doctorID,
		PatientID:     req.PatientID,
		Title:         req.Title,
		Content:       req.Content,
		AttachmentURL: req.AttachmentURL,
	}

	if err := u.reportRepo.Create(db, report); err != nil {
		if isForeignKeyError(err, "patient_id") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create report for patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, db, &actorID, entity.AuditActionReportCreate, "medical_report", report.ID.String(), req)

	return converter.MedicalReportToResponse(report), nil
}
