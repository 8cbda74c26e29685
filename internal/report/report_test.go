package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/solid"
)

func TestWriteDimensionSheet(t *testing.T) {
	p := design.Default()
	d, err := design.Derive(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDimensionSheet(&buf, p, d))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteBOM(t *testing.T) {
	p := design.Default()
	parts, err := solid.Build(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBOM(&buf, p, parts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"item", "quantity", "notes"}, rows[0][:3])

	byName := map[string][]string{}
	for _, row := range rows[1:] {
		if len(row) > 0 {
			byName[row[0]] = row
		}
	}

	nut, ok := byName["retaining_nut"]
	require.True(t, ok, "printed part rows present")
	qty, err := strconv.Atoi(nut[1])
	require.NoError(t, err)
	assert.Equal(t, p.TubeCount(), qty)

	var hasFan, hasBolts bool
	for name := range byName {
		if strings.Contains(name, "fan") {
			hasFan = true
		}
		if strings.Contains(name, "bolt") {
			hasBolts = true
		}
	}
	assert.True(t, hasFan, "hardware rows include the fan")
	assert.True(t, hasBolts, "hardware rows include joint bolts")
}

func TestWriteFlowChart(t *testing.T) {
	p := design.Default()
	d, err := design.Derive(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFlowChart(&buf, p, d))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "duct area")
	assert.Contains(t, html, "bulk velocity")
}

func TestFlowProfileMatchesDerivation(t *testing.T) {
	p := design.Default()
	d, err := design.Derive(p)
	require.NoError(t, err)

	heights, areas, velocities := flowProfile(p)
	require.Len(t, heights, profileSamples+1)
	require.Len(t, areas, profileSamples+1)
	require.Len(t, velocities, profileSamples+1)

	// The chamber plateau sits between the transition top and the
	// adapter, so a sample in that band must report the chamber area
	// and the derived chamber velocity.
	wall := p.WallThickness
	total := wall + p.BaseHeight + p.TransitionLength + p.ChamberHeight + p.AdapterHeight
	chamberZ := wall + p.BaseHeight + p.TransitionLength + p.ChamberHeight/2
	i := int(chamberZ / total * profileSamples)
	assert.InDelta(t, p.ChamberWidth*p.ChamberWidth, areas[i].Value.(float64), 1.0)
	assert.InDelta(t, d.ChamberVelocity, velocities[i].Value.(float64), 0.05)
}
