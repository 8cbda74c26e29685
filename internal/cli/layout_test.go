package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"layout"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "print bed: 240 x 210 x 210 mm")
	// The one-piece base cannot fit and splits 3x3.
	assert.Contains(t, out, "✗ manifold_base")
	assert.Contains(t, out, "split 3x3")
	// The retaining nut fits as-is.
	assert.Contains(t, out, "✓ retaining_nut")
	// Quadrants fit in no flat orientation; they print nested.
	assert.Contains(t, out, "✗ manifold_transition_front_left")
}

func TestLayoutJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"layout", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["base_split_x"])
	assert.EqualValues(t, 3, data["base_split_y"])
	assert.NotEmpty(t, data["fits"])
}

func TestLayoutNestedOut(t *testing.T) {
	if testing.Short() {
		t.Skip("meshing the nested layout is slow")
	}

	out := filepath.Join(t.TempDir(), "nested.stl")
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"layout", "--nested-out", out, "--resolution", "4.0"})

	require.NoError(t, cmd.Execute())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84))
}
