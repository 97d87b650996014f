package dto

import (
	"encoding/json"

	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// AgeText holds the age exactly as typed. JSON clients may send it as a
// string or as a number.
type AgeText string

func (a *AgeText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = AgeText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = AgeText(n.String())
	return nil
}

type AppointmentRequest struct {
	Date               string  `json:"date" form:"date"`
	Time               string  `json:"time" form:"time"`
	PatientName        string  `json:"patient_name" form:"patient_name"`
	Gender             string  `json:"gender" form:"gender"`
	Age                AgeText `json:"age" form:"age"`
	ConsultationReason string  `json:"consultation_reason" form:"consultation_reason"`
	DoctorName         string  `json:"doctor_name" form:"doctor_name"`
	DoctorSpecialty    string  `json:"doctor_specialty" form:"doctor_specialty"`
}

func (r AppointmentRequest) Input() ucAppointment.AppointmentInput {
	return ucAppointment.AppointmentInput{
		Date:               r.Date,
		Time:               r.Time,
		PatientName:        r.PatientName,
		Gender:             r.Gender,
		Age:                string(r.Age),
		ConsultationReason: r.ConsultationReason,
		DoctorName:         r.DoctorName,
		DoctorSpecialty:    r.DoctorSpecialty,
	}
}
