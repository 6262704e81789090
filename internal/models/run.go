package models

import (
	"time"
)

// RunStatus represents the status of an import run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// ImportRun records one destructive reset-and-import of the seeded tables.
// The load is not transactional, so a failed run can leave partial state;
// the row exists so operators can tell.
type ImportRun struct {
	ID          string     `json:"run_id" db:"id"`
	Status      RunStatus  `json:"status" db:"status"`
	SourcePath  string     `json:"source_path" db:"source_path"`
	TotalRows   int        `json:"total_rows" db:"total_rows"`
	LoadedRows  int        `json:"loaded_rows" db:"loaded_rows"`
	Error       string     `json:"error,omitempty" db:"error"`
	StartedAt   time.Time  `json:"started_at" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// DashboardStats is the aggregate counts response for the admin dashboard.
type DashboardStats struct {
	Users    int `json:"users"`
	Models   int `json:"models"`
	Venues   int `json:"venues"`
	Events   int `json:"events"`
	Sessions int `json:"sessions"`

	LastImport *ImportRun `json:"last_import,omitempty"`
}
