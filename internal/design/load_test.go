package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDesign(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeDesign(t, `
cabinet_width_mm: 600
cabinet_depth_mm: 600
tube_rows: 4
tube_cols: 4
`)
	p, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 600.0, p.CabinetWidth, 1e-9)
	assert.Equal(t, 16, p.TubeCount())
	// Untouched fields keep their defaults.
	assert.InDelta(t, 42.0, p.ChamberWidth, 1e-9)
	assert.InDelta(t, 120.0, p.FanSize, 1e-9)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeDesign(t, "tube_diameter_mm: 35\n")
	_, err := Load(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "tube_diameter_mm")
}

func TestLoadRejectsConstraintViolation(t *testing.T) {
	path := writeDesign(t, "tube_rows: -2\n")
	_, err := Load(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "tube_rows")
}

func TestLoadRejectsWrongType(t *testing.T) {
	path := writeDesign(t, "tube_rows: three\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsCrossFieldViolation(t *testing.T) {
	// Schema-clean but geometrically impossible: bore wider than the tube.
	path := writeDesign(t, "tube_id_mm: 45\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tube_id_mm")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
