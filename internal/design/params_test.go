package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Params)
		wantErr string
	}{
		{
			name:    "negative cabinet",
			mutate:  func(p *Params) { p.CabinetWidth = -1 },
			wantErr: "cabinet_width_mm",
		},
		{
			name:    "zero tubes",
			mutate:  func(p *Params) { p.TubeCols = 0 },
			wantErr: "tube grid",
		},
		{
			name:    "bore wider than tube",
			mutate:  func(p *Params) { p.TubeID = 40 },
			wantErr: "tube_id_mm",
		},
		{
			name:    "thread longer than tube",
			mutate:  func(p *Params) { p.ThreadLength = 70 },
			wantErr: "thread_length_mm",
		},
		{
			name:    "chamber swallows base",
			mutate:  func(p *Params) { p.ChamberWidth = 600 },
			wantErr: "does not fit",
		},
		{
			name:    "walls close the chamber",
			mutate:  func(p *Params) { p.WallThickness = 21 },
			wantErr: "chamber cavity",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDerivedAccessors(t *testing.T) {
	p := Default()
	assert.Equal(t, 9, p.TubeCount())
	assert.InDelta(t, 510.0, p.BasePlateWidth(), 1e-9)
	assert.InDelta(t, 48.0, p.ChamberOuter(), 1e-9)
	assert.InDelta(t, 0.6134*2.5, p.ThreadDepth(), 1e-9)
}
