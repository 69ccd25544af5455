package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shouniet/medpetrx/internal/model"
)

// LabCreate is the request body for adding a lab panel.
type LabCreate struct {
	Results      map[string]string `json:"results,omitempty"`
	LabType      model.LabType     `json:"lab_type"`
	Veterinarian string            `json:"veterinarian,omitempty"`
	Clinic       string            `json:"clinic,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	LabDate      model.Date        `json:"lab_date,omitempty"`
}

// ListLabs returns a pet's lab results, newest first.
func (c *Client) ListLabs(ctx context.Context, petID int64) ([]model.Lab, error) {
	var labs []model.Lab
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/labs", petID), nil, &labs); err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}
	return labs, nil
}

// CreateLab adds a lab panel result.
func (c *Client) CreateLab(ctx context.Context, petID int64, req LabCreate) (*model.Lab, error) {
	var lab model.Lab
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/labs", petID), req, &lab); err != nil {
		return nil, fmt.Errorf("failed to create lab: %w", err)
	}
	return &lab, nil
}

// VitalCreate is the request body for recording vitals.
type VitalCreate struct {
	Notes           string     `json:"notes,omitempty"`
	RecordedDate    model.Date `json:"recorded_date"`
	WeightKg        float64    `json:"weight_kg,omitempty"`
	TemperatureF    float64    `json:"temperature_f,omitempty"`
	HeartRateBPM    int        `json:"heart_rate_bpm,omitempty"`
	RespiratoryRate int        `json:"respiratory_rate,omitempty"`
}

// ListVitals returns a pet's recorded vitals.
func (c *Client) ListVitals(ctx context.Context, petID int64) ([]model.Vital, error) {
	var vitals []model.Vital
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/vitals", petID), nil, &vitals); err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	return vitals, nil
}

// CreateVital records a set of vital signs.
func (c *Client) CreateVital(ctx context.Context, petID int64, req VitalCreate) (*model.Vital, error) {
	var vital model.Vital
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/vitals", petID), req, &vital); err != nil {
		return nil, fmt.Errorf("failed to create vital: %w", err)
	}
	return &vital, nil
}

// NoteCreate is the request body for adding an activity note.
type NoteCreate struct {
	Title    string             `json:"title"`
	Body     string             `json:"body,omitempty"`
	Category model.NoteCategory `json:"category"`
	NoteDate model.Date         `json:"note_date"`
}

// ListNotes returns a pet's activity notes.
func (c *Client) ListNotes(ctx context.Context, petID int64) ([]model.ActivityNote, error) {
	var notes []model.ActivityNote
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/notes", petID), nil, &notes); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// CreateNote adds an activity note.
func (c *Client) CreateNote(ctx context.Context, petID int64, req NoteCreate) (*model.ActivityNote, error) {
	var note model.ActivityNote
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/notes", petID), req, &note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

// AppointmentCreate is the request body for scheduling an appointment.
type AppointmentCreate struct {
	AppointmentDate time.Time `json:"appointment_date"`
	Title           string    `json:"title"`
	Clinic          string    `json:"clinic,omitempty"`
	Veterinarian    string    `json:"veterinarian,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	VetProviderID   int64     `json:"vet_provider_id,omitempty"`
}

// ListAppointments returns a pet's appointments.
func (c *Client) ListAppointments(ctx context.Context, petID int64) ([]model.Appointment, error) {
	var appts []model.Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/appointments", petID), nil, &appts); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// CreateAppointment schedules a visit.
func (c *Client) CreateAppointment(ctx context.Context, petID int64, req AppointmentCreate) (*model.Appointment, error) {
	var appt model.Appointment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/appointments", petID), req, &appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appt, nil
}

// SetAppointmentStatus marks an appointment completed or cancelled.
func (c *Client) SetAppointmentStatus(ctx context.Context, petID, apptID int64, status model.AppointmentStatus) (*model.Appointment, error) {
	body := map[string]string{"status": string(status)}
	var appt model.Appointment
	path := fmt.Sprintf("/pets/%d/appointments/%d", petID, apptID)
	if err := c.do(ctx, http.MethodPatch, path, body, &appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %d: %w", apptID, err)
	}
	return &appt, nil
}

// GetInsurance fetches a pet's insurance details.
func (c *Client) GetInsurance(ctx context.Context, petID int64) (*model.Insurance, error) {
	var ins model.Insurance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/insurance", petID), nil, &ins); err != nil {
		return nil, fmt.Errorf("failed to get insurance: %w", err)
	}
	return &ins, nil
}

// PutInsurance creates or replaces a pet's insurance details.
func (c *Client) PutInsurance(ctx context.Context, petID int64, ins model.Insurance) (*model.Insurance, error) {
	var saved model.Insurance
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pets/%d/insurance", petID), ins, &saved); err != nil {
		return nil, fmt.Errorf("failed to save insurance: %w", err)
	}
	return &saved, nil
}

// ListProviders returns the owner's vet providers.
func (c *Client) ListProviders(ctx context.Context) ([]model.VetProvider, error) {
	var providers []model.VetProvider
	if err := c.do(ctx, http.MethodGet, "/vet-providers", nil, &providers); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// CreateProvider adds a vet provider to the owner's list.
func (c *Client) CreateProvider(ctx context.Context, provider model.VetProvider) (*model.VetProvider, error) {
	var saved model.VetProvider
	if err := c.do(ctx, http.MethodPost, "/vet-providers", provider, &saved); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return &saved, nil
}
