package model

import "time"

// EmergencyShare is a time-boxed public access grant to a pet's
// emergency summary.
type EmergencyShare struct {
	ExpiresAt  time.Time `json:"expires_at"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
	QRCode     string    `json:"qr_code,omitempty"`
	AccessType string    `json:"access_type"`
}

// EmergencySummary is the read-only snapshot served on the public
// emergency page.
type EmergencySummary struct {
	GeneratedAt       time.Time        `json:"generated_at"`
	PetName           string           `json:"pet_name"`
	Species           string           `json:"species"`
	Breed             string           `json:"breed,omitempty"`
	Disclaimer        string           `json:"disclaimer"`
	ActiveMedications []map[string]any `json:"active_medications"`
	Allergies         []map[string]any `json:"allergies"`
	ActiveProblems    []map[string]any `json:"active_problems"`
}
