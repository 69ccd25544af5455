package model

import "time"

// Vital is one set of home-recorded vital signs.
type Vital struct {
	CreatedAt       time.Time `json:"created_at"`
	Notes           string    `json:"notes,omitempty"`
	RecordedDate    Date      `json:"recorded_date"`
	WeightKg        float64   `json:"weight_kg,omitempty"`
	WeightLbs       float64   `json:"weight_lbs,omitempty"`
	TemperatureF    float64   `json:"temperature_f,omitempty"`
	HeartRateBPM    int       `json:"heart_rate_bpm,omitempty"`
	RespiratoryRate int       `json:"respiratory_rate,omitempty"`
	ID              int64     `json:"id"`
	PetID           int64     `json:"pet_id"`
}
