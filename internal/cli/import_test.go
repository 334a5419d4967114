package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechkit/mechkit/internal/store"
)

func TestImport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mechkit.db")

	buf := &bytes.Buffer{}
	cmd := NewImportCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "simple.yaml"), dbPath})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string       `json:"status"`
		Data   ImportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Data.Reactions)
	require.NotEmpty(t, resp.Data.MechanismID)

	// The reactions really landed in the store.
	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	n, err := db.CountReactions(context.Background(), resp.Data.MechanismID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportBadMechanism(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mechkit.db")

	buf := &bytes.Buffer{}
	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "unbalanced.yaml"), dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
