package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/audit"
	domain "github.com/bookably/appointment-api/internal/domain/appointment"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/models"
)

// UpdateInput covers both full replaces and partial patches: nil fields keep
// their stored value. The resulting record goes through the same reference
// validation as a create.
type UpdateInput struct {
	ClientID    *uint
	ProviderID  *uint
	ServiceID   *uint
	ScheduledAt *time.Time
	Status      *string
	Notes       *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	rescheduled := in.ScheduledAt != nil && !in.ScheduledAt.Equal(ap.ScheduledAt)

	if in.ClientID != nil {
		ap.ClientID = *in.ClientID
	}
	if in.ProviderID != nil {
		ap.ProviderID = *in.ProviderID
	}
	if in.ServiceID != nil {
		ap.ServiceID = *in.ServiceID
	}
	if in.ScheduledAt != nil {
		ap.ScheduledAt = *in.ScheduledAt
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	ve := httperr.NewValidation()

	if err := validateReferences(
		ctx,
		uc.repo,
		ap.ClientID,
		ap.ProviderID,
		ap.ServiceID,
		ve,
	); err != nil {
		return nil, err
	}

	// The future-time rule applies only when the caller actually moves the
	// appointment. Status or notes corrections on past appointments stay
	// legal.
	if rescheduled && !ap.ScheduledAt.After(time.Now()) {
		ve.Add("scheduled_at", "The scheduled_at must be a date after now.")
	}

	if !domain.Status(ap.Status).Valid() {
		ve.Add("status", "The selected status is invalid.")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
