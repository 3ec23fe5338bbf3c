// Package snapshot reads the legacy document-store export (db.json): one
// document holding arrays of users, events, vendors and tasks plus a stats
// object. The field shapes mirror the legacy format, not the current schema.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"eventflow/internal/models"
)

type Snapshot struct {
	Users   []User        `json:"users"`
	Events  []Event       `json:"events"`
	Vendors []Vendor      `json:"vendors"`
	Tasks   []Task        `json:"tasks"`
	Stats   *models.Stats `json:"stats"`
}

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Event struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
	Budget   float64 `json:"budget"`
	Status   string  `json:"status"`
}

// Vendor keeps the legacy single contact string; the importer maps it to the
// contact person field of the current schema.
type Vendor struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Contact  string  `json:"contact"`
	Status   string  `json:"status"`
	Rating   float64 `json:"rating"`
}

type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// Load reads and decodes a snapshot file.
func Load(path string) (*Snapshot, error) {
	const op = "snapshot.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &snap, nil
}
