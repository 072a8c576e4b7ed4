package appointment

import (
	"context"

	domain "github.com/bookably/appointment-api/internal/domain/appointment"
	"github.com/bookably/appointment-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every non-deleted appointment in insertion order.
func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.List(ctx)
}
