package appointment

// Field names a text column that can be searched by substring.
type Field string

const (
	FieldDate               Field = "date"
	FieldTime               Field = "time"
	FieldPatientName        Field = "patient_name"
	FieldGender             Field = "gender"
	FieldConsultationReason Field = "consultation_reason"
	FieldDoctorName         Field = "doctor_name"
	FieldDoctorSpecialty    Field = "doctor_specialty"
)

func (f Field) Valid() bool {
	switch f {
	case FieldDate, FieldTime, FieldPatientName, FieldGender,
		FieldConsultationReason, FieldDoctorName, FieldDoctorSpecialty:
		return true
	}
	return false
}

// Column returns the column name. Only call it on a Valid field.
func (f Field) Column() string {
	return string(f)
}
