package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDefaultDesign(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"derive"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "derive_default", buf.Bytes())
}

func TestDeriveJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"derive", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 4.91, data["actual_multiplier"].(float64), 0.005)
	assert.InDelta(t, 1764.0, data["chamber_area_mm2"].(float64), 1e-6)
	assert.Equal(t, true, data["within_tolerance"])
}

func TestDeriveCustomDesign(t *testing.T) {
	path := writeDesign(t, "chamber_width_mm: 60\n")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"derive", "--design", path})

	require.NoError(t, cmd.Execute())

	// 9 tubes of 35 mm bore into a 60 mm chamber: multiplier 2.41x,
	// far off the 5x target, so the warning must show.
	out := buf.String()
	assert.Contains(t, out, "2.41x")
	assert.Contains(t, out, "WARNING")
}

func TestDeriveMissingDesignFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"derive", "--design", "/nonexistent/design.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E002")
}
