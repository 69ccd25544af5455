package model

import "time"

// AppointmentStatus tracks the lifecycle of a scheduled visit.
type AppointmentStatus string

// Appointment status constants.
const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a scheduled, completed, or cancelled vet visit.
type Appointment struct {
	AppointmentDate time.Time         `json:"appointment_date"`
	CreatedAt       time.Time         `json:"created_at"`
	Title           string            `json:"title"`
	Clinic          string            `json:"clinic,omitempty"`
	Veterinarian    string            `json:"veterinarian,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
	ID              int64             `json:"id"`
	PetID           int64             `json:"pet_id"`
	VetProviderID   int64             `json:"vet_provider_id,omitempty"`
}
