package usecase

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ActorContext is the authorization view of the authenticated user, resolved
// once per request. Every role-scoped query and ownership check dispatches
// on it instead of re-querying profiles per branch.
//
// A user without a profile resolves to a role-less actor: listings scoped by
// it come back empty (fail-closed), while targeted operations reject.
type ActorContext struct {
	UserID uuid.UUID
	Role   entity.Role

	doctorID *uuid.UUID
}

// IsDoctor reports whether the actor has the doctor role
func (a *ActorContext) IsDoctor() bool {
	return a.Role == entity.RoleDoctor
}

// IsPatient reports whether the actor has the patient role
func (a *ActorContext) IsPatient() bool {
	return a.Role == entity.RolePatient
}

// AsDoctor returns the actor's Doctor record key. ok is false when the actor
// is not a doctor or has no Doctor record.
func (a *ActorContext) AsDoctor() (uuid.UUID, bool) {
	if a.doctorID == nil {
		return uuid.Nil, false
	}
	return *a.doctorID, true
}

// AsPatient returns the actor's user id, which is how patients are keyed
func (a *ActorContext) AsPatient() uuid.UUID {
	return a.UserID
}

// ActorResolver builds ActorContexts from the profile directory and the
// doctor registry.
type ActorResolver struct {
	log         *logrus.Logger
	profileRepo repository.ProfileRepository
	doctorRepo  repository.DoctorRepository
}

func NewActorResolver(
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	doctorRepo repository.DoctorRepository,
) *ActorResolver {
	return &ActorResolver{
		log:         log,
		profileRepo: profileRepo,
		doctorRepo:  doctorRepo,
	}
}

// Resolve loads the actor's role and, for doctors, their Doctor record key.
// A missing profile is not an error here; it yields a role-less actor.
func (r *ActorResolver) Resolve(db *gorm.DB, userID uuid.UUID) (*ActorContext, error) {
	actor := &ActorContext{UserID: userID}

	profile, err := r.profileRepo.FindByUserID(db, userID)
	if err != nil {
		r.log.Warnf("Failed to resolve profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return actor, nil
	}
	actor.Role = profile.Role

	if profile.Role == entity.RoleDoctor {
		doctor, err := r.doctorRepo.FindByUserID(db, userID)
		if err != nil {
			r.log.Warnf("Failed to resolve doctor record for user %s: %+v", userID, err)
			return nil, err
		}
		if doctor != nil {
			actor.doctorID = &doctor.UserID
		}
	}

	return actor, nil
}
