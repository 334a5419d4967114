package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewShowCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "simple.yaml")})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "elementary")
	assert.Contains(t, out, "three-body")
	assert.Contains(t, out, "2 H + M <=> H2 + M")
	assert.Contains(t, out, "m^6/s/kmol^2")
}

func TestShowJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewShowCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "simple.yaml")})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string            `json:"status"`
		Data   []ReactionSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, "r1", resp.Data[0].ID)
	assert.Equal(t, "elementary", resp.Data[0].Type)
	assert.True(t, resp.Data[0].Reversible)
	assert.Equal(t, "three-body", resp.Data[1].Type)
	assert.Equal(t, "m^6/s/kmol^2", resp.Data[1].RateUnits)
}
