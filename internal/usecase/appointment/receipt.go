package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

const (
	ReceiptNotFound = "Appointment not found."
	ReceiptFailed   = "Error while generating the receipt."
)

const receiptTemplate = `Receipt for Appointment ID: %d
Patient Name: %s
Appointment Date: %s
Appointment Time: %s
Doctor Name: %s
`

// ReceiptText always returns printable text. A missing appointment yields
// ReceiptNotFound with a nil error; a storage fault yields ReceiptFailed
// together with the fault.
func (s *Service) ReceiptText(ctx context.Context, id uint) (string, error) {
	ap, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return ReceiptNotFound, nil
	}
	if err != nil {
		return ReceiptFailed, err
	}

	return fmt.Sprintf(
		receiptTemplate,
		ap.ID,
		ap.PatientName,
		ap.Date,
		ap.Time,
		ap.DoctorName,
	), nil
}
