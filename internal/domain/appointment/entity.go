package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// Fields is every column of an appointment except its id.
type Fields struct {
	Date               string
	Time               string
	PatientName        string
	Gender             string
	Age                int
	ConsultationReason string
	DoctorName         string
	DoctorSpecialty    string
}

// Record builds a new, not yet persisted, appointment.
func (f Fields) Record() *models.Appointment {
	return &models.Appointment{
		Date:               f.Date,
		Time:               f.Time,
		PatientName:        f.PatientName,
		Gender:             f.Gender,
		Age:                f.Age,
		ConsultationReason: f.ConsultationReason,
		DoctorName:         f.DoctorName,
		DoctorSpecialty:    f.DoctorSpecialty,
	}
}

// Columns maps the fields to their column names. Zero values are kept so
// an update overwrites every column.
func (f Fields) Columns() map[string]any {
	return map[string]any{
		"date":                f.Date,
		"time":                f.Time,
		"patient_name":        f.PatientName,
		"gender":              f.Gender,
		"age":                 f.Age,
		"consultation_reason": f.ConsultationReason,
		"doctor_name":         f.DoctorName,
		"doctor_specialty":    f.DoctorSpecialty,
	}
}
