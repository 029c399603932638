package domain

import "time"

const (
	ClientActive   = "Active"
	ClientInactive = "Inactive"
)

type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
