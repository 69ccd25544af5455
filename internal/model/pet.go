// Package model defines the core domain models used throughout the application.
package model

import "time"

// Pet is a single animal on an owner's account.
type Pet struct {
	CreatedAt    time.Time     `json:"created_at"`
	Name         string        `json:"name"`
	Species      string        `json:"species"`
	Breed        string        `json:"breed,omitempty"`
	Sex          string        `json:"sex,omitempty"`
	MicrochipNum string        `json:"microchip_num,omitempty"`
	Insurance    string        `json:"insurance,omitempty"`
	ImageURL     string        `json:"image_url,omitempty"`
	WeightLog    []WeightEntry `json:"weight_log,omitempty"`
	DOB          Date          `json:"dob,omitempty"`
	ID           int64         `json:"id"`
	OwnerID      int64         `json:"owner_id"`
}

// WeightEntry is one point in a pet's weight history.
type WeightEntry struct {
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}
