package models

import "time"

type Table struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Description string     `json:"description,omitempty"`
	IsOccupied  bool       `json:"is_occupied"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type TableCreate struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

type TableUpdate struct {
	Name        *string `json:"name,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	IsOccupied  *bool   `json:"is_occupied,omitempty"`
	Description *string `json:"description,omitempty"`
}
