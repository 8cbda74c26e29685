package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/solid"
)

func TestGenerateRetainingNut(t *testing.T) {
	p := design.Default()
	// coarse cells keep the test fast; the nut is the smallest part
	m, err := Generate(solid.RetainingNut(p), 2.0)
	require.NoError(t, err)

	stats := Summarize(m)
	assert.Greater(t, stats.Triangles, 100)
	assert.Greater(t, stats.Volume, 0.0)
	// hex across corners is 55.4 mm for the default tube
	assert.InDelta(t, 55.4, stats.SizeX, 4.0)
	assert.InDelta(t, 10.0, stats.SizeZ, 2.5)
}

func TestGenerateRejectsBadResolution(t *testing.T) {
	p := design.Default()
	_, err := Generate(solid.RetainingNut(p), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution")
}

func TestExportSTL(t *testing.T) {
	p := design.Default()
	m, err := Generate(solid.PCBHolder(p), 2.0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pcb_holder.stl")
	require.NoError(t, ExportSTL(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84), "binary STL header plus triangles")
}
