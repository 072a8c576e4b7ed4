package appointment

import (
	"context"

	"github.com/bookably/appointment-api/internal/models"
)

// Repository is everything the scheduler needs from storage. Existence checks
// see live rows only; soft-deleted clients, providers and appointments are
// invisible here.
type Repository interface {
	// -------- Referenced registries --------
	ClientExists(ctx context.Context, id uint) (bool, error)

	ProviderExists(ctx context.Context, id uint) (bool, error)

	ServiceExists(ctx context.Context, id uint) (bool, error)

	// -------- Appointment --------
	Create(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, id uint) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	SoftDelete(ctx context.Context, ap *models.Appointment) error

	List(ctx context.Context) ([]models.Appointment, error)
}
