package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/audit"
	domain "github.com/bookably/appointment-api/internal/domain/appointment"
	"github.com/bookably/appointment-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the appointment deleted. The row stays behind for history
// and referential integrity; reads and lists stop returning it.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
) error {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if err := uc.repo.SoftDelete(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
