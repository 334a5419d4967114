package store

import (
	"context"
	"fmt"
)

// ReactionRecord is one stored reaction row.
type ReactionRecord struct {
	MechanismID     string
	ID              string
	Seq             int
	Type            string
	Equation        string
	Reversible      bool
	Duplicate       bool
	Electrochemical bool
	RateUnits       string
	Params          string
}

// ListReactions returns the stored reactions of a mechanism in load
// order.
func (s *Store) ListReactions(ctx context.Context, mechanismID string) ([]ReactionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mechanism_id, id, seq, type, equation, reversible, duplicate,
		       electrochemical, rate_units, params
		FROM reactions
		WHERE mechanism_id = ?
		ORDER BY seq`, mechanismID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions: %w", err)
	}
	defer rows.Close()

	var out []ReactionRecord
	for rows.Next() {
		var rec ReactionRecord
		var rev, dup, elec int
		if err := rows.Scan(&rec.MechanismID, &rec.ID, &rec.Seq, &rec.Type,
			&rec.Equation, &rev, &dup, &elec, &rec.RateUnits, &rec.Params); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		rec.Reversible = rev != 0
		rec.Duplicate = dup != 0
		rec.Electrochemical = elec != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountReactions returns the number of stored reactions for a mechanism.
func (s *Store) CountReactions(ctx context.Context, mechanismID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reactions WHERE mechanism_id = ?`, mechanismID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return n, nil
}
