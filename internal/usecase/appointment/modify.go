package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
)

// Modify overwrites every field of appointment id. The id itself never
// changes; an unknown id is a no-op.
func (s *Service) Modify(
	ctx context.Context,
	id uint,
	in AppointmentInput,
) error {

	fields, err := in.fields()
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	s.audit.Log(audit.Event{
		Action:   "appointment_modified",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
