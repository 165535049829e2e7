package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/swipedeck/internal/database"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/errors"
	"github.com/jask/swipedeck/internal/gesture"
	"github.com/jask/swipedeck/internal/record"
)

// Source says how a decision was made.
type Source string

const (
	SourceGesture Source = "gesture"
	SourceControl Source = "control"
)

// JournalService appends committed decisions to the opt-in journal.
type JournalService struct {
	Decisions *repository.DecisionRepo
}

// Record stores one decision about rec. Record text is stored as plain text.
func (s *JournalService) Record(ctx context.Context, rec record.Record, dir gesture.Direction, src Source) (repository.Decision, error) {
	if s == nil || s.Decisions == nil {
		return repository.Decision{}, fmt.Errorf("journal: not configured")
	}
	rec = rec.Plain()
	d := repository.Decision{
		ID:        uuid.NewString(),
		RecordID:  rec.ID,
		Name:      rec.Name,
		Direction: dir.String(),
		Source:    string(src),
		DecidedAt: database.Now(),
	}
	if err := s.Decisions.Append(ctx, d); err != nil {
		return repository.Decision{}, errors.NewStorage("append decision", err)
	}
	return d, nil
}

// Recent lists the newest decisions first.
func (s *JournalService) Recent(ctx context.Context, limit int) ([]repository.Decision, error) {
	if limit <= 0 {
		limit = 20
	}
	out, err := s.Decisions.Recent(ctx, limit)
	if err != nil {
		return nil, errors.NewStorage("list decisions", err)
	}
	return out, nil
}
