package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository is the appointment store. Storage faults are reported wrapped
// in ErrStorageUnavailable; a missing id is never an error for Delete or
// Update.
type Repository interface {
	// Initialize creates the appointments table when it does not exist.
	Initialize(ctx context.Context) error

	// Insert assigns a new id to ap and persists it. ap.ID must be zero.
	Insert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Delete removes the row matching id. An absent id is a no-op.
	Delete(
		ctx context.Context,
		id uint,
	) error

	// Update overwrites every non-id column of the row matching id.
	Update(
		ctx context.Context,
		id uint,
		fields Fields,
	) error

	// ScanAll returns every appointment in insertion order.
	ScanAll(ctx context.Context) ([]models.Appointment, error)

	// ScanFiltered returns the appointments whose field contains substring,
	// case-sensitively, anywhere in the value.
	ScanFiltered(
		ctx context.Context,
		field Field,
		substring string,
	) ([]models.Appointment, error)

	// FindByID returns the row matching id, or ErrNotFound.
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)
}
