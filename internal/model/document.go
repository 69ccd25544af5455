package model

import "time"

// ExtractionStatus tracks the AI extraction pipeline for an uploaded document.
type ExtractionStatus string

// Extraction status constants.
const (
	ExtractionPending    ExtractionStatus = "pending"
	ExtractionProcessing ExtractionStatus = "processing"
	ExtractionCompleted  ExtractionStatus = "completed"
	ExtractionFailed     ExtractionStatus = "failed"
)

// Document is an uploaded medical record file and its extraction result.
// ExtractedData maps category name to a list of candidate items; any
// category key may be absent.
type Document struct {
	UploadDate       time.Time                  `json:"upload_date"`
	ExtractedData    map[string][]ExtractedItem `json:"extracted_data,omitempty"`
	Filename         string                     `json:"filename"`
	ExtractionStatus ExtractionStatus           `json:"extraction_status"`
	ID               int64                      `json:"id"`
	PetID            int64                      `json:"pet_id"`
}
