package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// ======================================================
// INPUT
// ======================================================

// AppointmentInput is what the appointment form submits. Age is kept as
// typed and coerced here.
type AppointmentInput struct {
	Date               string
	Time               string
	PatientName        string
	Gender             string
	Age                string
	ConsultationReason string
	DoctorName         string
	DoctorSpecialty    string
}

func (in AppointmentInput) fields() (domain.Fields, error) {
	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil {
		return domain.Fields{}, fmt.Errorf("age %q: %w", in.Age, domain.ErrInvalidNumericInput)
	}

	return domain.Fields{
		Date:               in.Date,
		Time:               in.Time,
		PatientName:        in.PatientName,
		Gender:             in.Gender,
		Age:                age,
		ConsultationReason: in.ConsultationReason,
		DoctorName:         in.DoctorName,
		DoctorSpecialty:    in.DoctorSpecialty,
	}, nil
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewService(
	repo domain.Repository,
	audit *audit.Logger,
) *Service {
	return &Service{
		repo:  repo,
		audit: audit,
	}
}
