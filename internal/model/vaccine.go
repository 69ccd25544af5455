package model

import "time"

// Vaccine is a single immunization record.
type Vaccine struct {
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Clinic      string    `json:"clinic,omitempty"`
	LotNumber   string    `json:"lot_number,omitempty"`
	DateGiven   Date      `json:"date_given,omitempty"`
	NextDueDate Date      `json:"next_due_date,omitempty"`
	ID          int64     `json:"id"`
	PetID       int64     `json:"pet_id"`
	DocumentID  int64     `json:"document_id,omitempty"`
}

// IsOverdue reports whether the vaccine's next dose was due before now.
func (v Vaccine) IsOverdue(now time.Time) bool {
	return !v.NextDueDate.IsZero() && v.NextDueDate.Before(now)
}
