package repository

import "time"

// Decision represents a decisions row.
type Decision struct {
	ID        string
	RecordID  string
	Name      string
	Direction string
	Source    string
	DecidedAt time.Time
}
