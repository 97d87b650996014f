package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func (s *Service) Add(
	ctx context.Context,
	in AppointmentInput,
) (*models.Appointment, error) {

	fields, err := in.fields()
	if err != nil {
		return nil, err
	}

	ap := fields.Record()
	if err := s.repo.Insert(ctx, ap); err != nil {
		return nil, err
	}

	s.audit.Log(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"date":        ap.Date,
			"time":        ap.Time,
			"doctor_name": ap.DoctorName,
		},
	})

	return ap, nil
}
