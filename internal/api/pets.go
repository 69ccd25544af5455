package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/model"
)

// PetCreate is the request body for creating or updating a pet.
type PetCreate struct {
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Breed        string     `json:"breed,omitempty"`
	Sex          string     `json:"sex,omitempty"`
	MicrochipNum string     `json:"microchip_num,omitempty"`
	DOB          model.Date `json:"dob,omitempty"`
}

// ListPets returns every pet on the authenticated owner's account.
func (c *Client) ListPets(ctx context.Context) ([]model.Pet, error) {
	var pets []model.Pet
	if err := c.do(ctx, http.MethodGet, "/pets", nil, &pets); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

// GetPet fetches one pet by id.
func (c *Client) GetPet(ctx context.Context, petID int64) (*model.Pet, error) {
	var pet model.Pet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d", petID), nil, &pet); err != nil {
		return nil, fmt.Errorf("failed to get pet %d: %w", petID, err)
	}
	return &pet, nil
}

// CreatePet registers a new pet.
func (c *Client) CreatePet(ctx context.Context, req PetCreate) (*model.Pet, error) {
	var pet model.Pet
	if err := c.do(ctx, http.MethodPost, "/pets", req, &pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &pet, nil
}

// UpdatePet replaces a pet's editable fields.
func (c *Client) UpdatePet(ctx context.Context, petID int64, req PetCreate) (*model.Pet, error) {
	var pet model.Pet
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pets/%d", petID), req, &pet); err != nil {
		return nil, fmt.Errorf("failed to update pet %d: %w", petID, err)
	}
	return &pet, nil
}

// DeletePet removes a pet and all of its records.
func (c *Client) DeletePet(ctx context.Context, petID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/pets/%d", petID), nil, nil); err != nil {
		return fmt.Errorf("failed to delete pet %d: %w", petID, err)
	}
	return nil
}
