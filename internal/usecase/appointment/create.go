package appointment

import (
	"context"
	"time"

	"github.com/bookably/appointment-api/internal/audit"
	domain "github.com/bookably/appointment-api/internal/domain/appointment"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID   uint
	ProviderID uint
	ServiceID  uint

	ScheduledAt time.Time

	// Optional; defaults to pending when empty.
	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
	actorID uint,
) (*models.Appointment, error) {

	ve := httperr.NewValidation()

	if err := validateReferences(
		ctx,
		uc.repo,
		in.ClientID,
		in.ProviderID,
		in.ServiceID,
		ve,
	); err != nil {
		return nil, err
	}

	// Bookings must land strictly in the future.
	if !in.ScheduledAt.After(time.Now()) {
		ve.Add("scheduled_at", "The scheduled_at must be a date after now.")
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.InitialStatus()
	} else if !status.Valid() {
		ve.Add("status", "The selected status is invalid.")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	ap := &models.Appointment{
		ClientID:    in.ClientID,
		ProviderID:  in.ProviderID,
		ServiceID:   in.ServiceID,
		ScheduledAt: in.ScheduledAt,
		Status:      string(status),
		Notes:       in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
