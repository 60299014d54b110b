// Package score keeps the scores of the running process and forwards them to
// persistent sinks.
package score

import (
	"context"
	"errors"

	"github.com/verte-zerg/typit/internal/model"
)

// Sink persists score records.
type Sink interface {
	AppendScore(ctx context.Context, rec model.ScoreRecord) error
}

// Board holds the records appended during this process, in insertion order.
// Persisted history is never loaded back into a Board.
type Board struct {
	records []model.ScoreRecord
	sinks   []Sink
}

// NewBoard returns an empty board that forwards records to sinks.
func NewBoard(sinks ...Sink) *Board {
	return &Board{sinks: sinks}
}

// Append records rec in memory and then in every sink. The in-memory copy is
// kept even when sinks fail; their errors are joined in the result.
func (b *Board) Append(ctx context.Context, rec model.ScoreRecord) error {
	b.records = append(b.records, rec)
	var errs []error
	for _, sink := range b.sinks {
		if err := sink.AppendScore(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// List returns a copy of the records appended so far.
func (b *Board) List() []model.ScoreRecord {
	out := make([]model.ScoreRecord, len(b.records))
	copy(out, b.records)
	return out
}

// Len reports the number of records in memory.
func (b *Board) Len() int {
	return len(b.records)
}
