package appointment

import (
	"context"

	domain "github.com/bookably/appointment-api/internal/domain/appointment"
	"github.com/bookably/appointment-api/internal/httperr"
)

// validateReferences checks that every referenced id resolves to a live row
// and records a field error for each one that does not. Storage failures are
// returned as-is and abort the pipeline.
func validateReferences(
	ctx context.Context,
	repo domain.Repository,
	clientID uint,
	providerID uint,
	serviceID uint,
	ve *httperr.ValidationError,
) error {

	ok, err := repo.ClientExists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("client_id", "The selected client_id is invalid.")
	}

	ok, err = repo.ProviderExists(ctx, providerID)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("provider_id", "The selected provider_id is invalid.")
	}

	ok, err = repo.ServiceExists(ctx, serviceID)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("service_id", "The selected service_id is invalid.")
	}

	return nil
}
