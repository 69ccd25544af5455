package model

import "time"

// NoteCategory groups activity notes by topic.
type NoteCategory string

// Note category constants.
const (
	NoteGeneral  NoteCategory = "general"
	NoteBehavior NoteCategory = "behavior"
	NoteDiet     NoteCategory = "diet"
	NoteSymptom  NoteCategory = "symptom"
	NoteExercise NoteCategory = "exercise"
)

// ActivityNote is a free-form dated observation about a pet.
type ActivityNote struct {
	CreatedAt time.Time    `json:"created_at"`
	Title     string       `json:"title"`
	Body      string       `json:"body,omitempty"`
	Category  NoteCategory `json:"category"`
	NoteDate  Date         `json:"note_date"`
	ID        int64        `json:"id"`
	PetID     int64        `json:"pet_id"`
}
