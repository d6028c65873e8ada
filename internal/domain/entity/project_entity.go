package entity

import "time"

// Project belongs to exactly one admin (CreatedBy). Owner name/email are
// populated by list/get queries for response shaping and are not persisted
// on the projects table.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"projectName"`
	Description string    `json:"projectDescription"`
	CreatedBy   string    `json:"createdBy"`
	OwnerName   string    `json:"ownerName,omitempty"`
	OwnerEmail  string    `json:"ownerEmail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
