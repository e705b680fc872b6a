package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	Serial          int64     `json:"serial"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentType string    `json:"appointment_type"`
	IsScope         bool      `json:"is_scope"`
	Status          string    `json:"status"`
}
