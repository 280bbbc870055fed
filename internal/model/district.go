package model

import "time"

// District represents a water-distribution district.
// Districts are referenced by id from metrics and alert entries, never duplicated.
type District struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Province  string    `json:"province"`
	Region    string    `json:"region"`
	Status    string    `json:"status"` // free-text operational status label
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
