package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/manifold/internal/catalog"
)

func TestGenerateSinglePart(t *testing.T) {
	outDir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"generate",
		"--parts", "retaining_nut",
		"--resolution", "2.0",
		"--out", outDir,
		"--catalog", dbPath,
	})

	require.NoError(t, cmd.Execute())

	stlPath := filepath.Join(outDir, "retaining_nut.stl")
	info, err := os.Stat(stlPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84), "STL has content beyond the header")

	out := buf.String()
	assert.Contains(t, out, "retaining_nut")
	assert.Contains(t, out, "1 part(s) written")

	// The run and its part landed in the catalog.
	store, err := catalog.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "builtin:default", runs[0].DesignFile)
	assert.InDelta(t, 2.0, runs[0].ResolutionMM, 1e-9)

	parts, err := store.ListParts(context.Background(), runs[0].ID)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "retaining_nut", parts[0].Name)
	assert.Equal(t, catalog.StatusOK, parts[0].Status)
	assert.Equal(t, 9, parts[0].Quantity)
	assert.Greater(t, parts[0].Triangles, 0)
	assert.InDelta(t, 55.4, parts[0].SizeX, 4)
}

func TestGenerateUnknownPart(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"generate",
		"--parts", "no_such_part",
		"--out", t.TempDir(),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no_such_part")
}

func TestGenerateWarnsOnMultiplierDeviation(t *testing.T) {
	// 9 tubes of 35 mm bore into a 60 mm chamber gives 2.41x against
	// the 5x target, well past the tolerance.
	path := writeDesign(t, "chamber_width_mm: 60\n")

	errBuf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{
		"generate",
		"--design", path,
		"--parts", "retaining_nut",
		"--resolution", "2.0",
		"--out", t.TempDir(),
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errBuf.String(), "speed multiplier off target")
}

func TestGenerateSplitBaseReplacesBase(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	p, err := loadDesign(rootOpts)
	require.NoError(t, err)

	parts, err := buildParts(p, &GenerateOptions{SplitBase: true})
	require.NoError(t, err)

	names := make(map[string]bool, len(parts))
	for _, pt := range parts {
		names[pt.Name] = true
	}
	assert.False(t, names["manifold_base"], "whole base replaced by sections")
	assert.True(t, names["base_r1c1"])
	assert.True(t, names["base_r3c3"])
}

func TestCatalogCommandsReadBack(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	store, err := catalog.Open(dbPath)
	require.NoError(t, err)
	runID := catalog.NewRunID()
	require.NoError(t, store.WriteRun(context.Background(), catalog.Run{
		ID: runID, DesignFile: "builtin:default",
		ResolutionMM: 1.0, TargetMultiplier: 5, ActualMultiplier: 4.91,
	}))
	require.NoError(t, store.WritePart(context.Background(), catalog.PartRecord{
		RunID: runID, Name: "intake_tube", File: "out/intake_tube.stl",
		Quantity: 9, Status: catalog.StatusOK, Triangles: 1234,
		VolumeMM3: 25000, SizeX: 41, SizeY: 41, SizeZ: 60,
	}))
	require.NoError(t, store.Close())

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog", "runs", "--db", dbPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), runID)
	assert.Contains(t, buf.String(), "4.91x")

	buf.Reset()
	cmd = NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog", "parts", "--db", dbPath, runID})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "intake_tube")
	assert.Contains(t, buf.String(), "x9")
}

func TestCatalogMissingDatabase(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog", "runs", "--db", filepath.Join(t.TempDir(), "missing.db")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E005")
}
