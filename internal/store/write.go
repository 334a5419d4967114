package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mechkit/mechkit/internal/mechfile"
	"github.com/mechkit/mechkit/internal/reaction"
)

// SaveMechanism writes a loaded mechanism and all of its reactions in a
// single transaction and returns the generated mechanism id. The stored
// parameter block is the computed description, not the input snapshot.
func (s *Store) SaveMechanism(ctx context.Context, source string, mech *mechfile.Mechanism) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO mechanisms (id, source) VALUES (?, ?)`, id, source); err != nil {
		return "", fmt.Errorf("failed to insert mechanism: %w", err)
	}

	for seq, r := range mech.Reactions {
		params, err := json.Marshal(r.Parameters())
		if err != nil {
			return "", fmt.Errorf("failed to marshal parameters for '%s': %w", r.Equation(), err)
		}
		if err := insertReaction(ctx, tx, id, seq, r, params, mech); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return id, nil
}

func insertReaction(ctx context.Context, tx *sql.Tx, mechID string, seq int,
	r *reaction.Reaction, params []byte, mech *mechfile.Mechanism) error {

	_, err := tx.ExecContext(ctx, `
		INSERT INTO reactions
			(mechanism_id, id, seq, type, equation, reversible, duplicate,
			 electrochemical, rate_units, params)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mechID, r.ID, seq, r.TypeName(), r.Equation(),
		boolInt(r.Reversible), boolInt(r.Duplicate),
		boolInt(r.UsesElectrochemistry(mech.Context)),
		r.RateUnits().Product().String(), string(params))
	if err != nil {
		return fmt.Errorf("failed to insert reaction '%s': %w", r.Equation(), err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
