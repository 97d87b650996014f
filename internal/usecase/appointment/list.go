package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func (s *Service) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.ScanAll(ctx)
}

func (s *Service) FindByPatient(
	ctx context.Context,
	substring string,
) ([]models.Appointment, error) {
	return s.repo.ScanFiltered(ctx, domain.FieldPatientName, substring)
}

func (s *Service) FindByDoctor(
	ctx context.Context,
	substring string,
) ([]models.Appointment, error) {
	return s.repo.ScanFiltered(ctx, domain.FieldDoctorName, substring)
}

// Get returns appointment id, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}
