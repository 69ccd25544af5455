package model

import "time"

// DashboardSummary aggregates upcoming and overdue items across all pets.
type DashboardSummary struct {
	OverdueVaccines      []VaccineReminder     `json:"overdue_vaccines"`
	UpcomingVaccines     []VaccineReminder     `json:"upcoming_vaccines"`
	RefillReminders      []RefillReminder      `json:"refill_reminders"`
	UpcomingAppointments []AppointmentReminder `json:"upcoming_appointments"`
}

// VaccineReminder is a dashboard line for a due or overdue vaccine.
type VaccineReminder struct {
	PetName     string `json:"pet_name"`
	Name        string `json:"name"`
	NextDueDate Date   `json:"next_due_date"`
	ID          int64  `json:"id"`
	PetID       int64  `json:"pet_id"`
}

// RefillReminder is a dashboard line for a medication refill.
type RefillReminder struct {
	PetName            string `json:"pet_name"`
	DrugName           string `json:"drug_name"`
	RefillReminderDate Date   `json:"refill_reminder_date"`
	ID                 int64  `json:"id"`
	PetID              int64  `json:"pet_id"`
}

// AppointmentReminder is a dashboard line for an upcoming visit.
type AppointmentReminder struct {
	AppointmentDate time.Time `json:"appointment_date"`
	PetName         string    `json:"pet_name"`
	Title           string    `json:"title"`
	ID              int64     `json:"id"`
	PetID           int64     `json:"pet_id"`
}
