package models

type Appointment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Date string `gorm:"column:date;not null" json:"date"`
	Time string `gorm:"column:time;not null" json:"time"`

	PatientName string `gorm:"not null" json:"patient_name"`
	Gender      string `gorm:"not null" json:"gender"`
	Age         int    `gorm:"not null" json:"age"`

	ConsultationReason string `gorm:"not null" json:"consultation_reason"`
	DoctorName         string `gorm:"not null" json:"doctor_name"`
	DoctorSpecialty    string `gorm:"not null" json:"doctor_specialty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
