package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
)

// SequenceUpdate moves one record to a new display position. ID is kept as
// the raw client string so malformed ids can be counted as skipped.
type SequenceUpdate struct {
	ID       string
	Sequence int
}

type ReorderResult struct {
	Applied int
	Skipped int
}

// PositionalUpdates turns an ordered id list into updates where the element
// at index i gets position i+1.
func PositionalUpdates(ids []string) []SequenceUpdate {
	updates := make([]SequenceUpdate, len(ids))
	for i, id := range ids {
		updates[i] = SequenceUpdate{ID: id, Sequence: i + 1}
	}
	return updates
}

// sequencer implements the ordering rules shared by every orderable table.
// table and column are compile-time constants, never user input.
type sequencer struct {
	db     *database.DB
	table  string
	column string
}

// next returns max+1 for the collection, or 1 when it is empty. The read and
// the following insert are separate statements, so concurrent creates can
// observe the same max and store duplicate positions.
func (s sequencer) next(ctx context.Context) (int, error) {
	var next int
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s), 0) + 1 FROM %s`, s.column, s.table)
	if err := s.db.Pool.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next %s %s: %w", s.table, s.column, err)
	}
	return next, nil
}

// reorder writes each assignment as its own statement. Malformed and unknown
// ids are skipped. There is no surrounding transaction: a failure part way
// leaves earlier writes in place.
func (s sequencer) reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	if len(updates) == 0 {
		return nil, ErrEmptySequence
	}

	type assignment struct {
		id       uuid.UUID
		sequence int
	}

	result := &ReorderResult{}
	valid := make([]assignment, 0, len(updates))
	for _, u := range updates {
		id, err := uuid.Parse(u.ID)
		if err != nil {
			result.Skipped++
			continue
		}
		valid = append(valid, assignment{id: id, sequence: u.Sequence})
	}

	if len(valid) == 0 {
		return result, ErrNoValidIDs
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $1, updated_at = NOW() WHERE id = $2`, s.table, s.column)
	for _, a := range valid {
		tag, err := s.db.Pool.Exec(ctx, query, a.sequence, a.id)
		if err != nil {
			return result, fmt.Errorf("failed to update %s %s: %w", s.table, s.column, err)
		}
		if tag.RowsAffected() == 0 {
			result.Skipped++
			continue
		}
		result.Applied++
	}

	return result, nil
}

func (s sequencer) delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
