package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/roach88/manifold/internal/design"
)

const profileSamples = 48

// flowProfile samples the duct cross-section from the base cavity up
// through the fan adapter and derives the bulk velocity at each height
// from the fan's free-air flow.
func flowProfile(p design.Params) (heights []string, areas, velocities []opts.LineData) {
	wall := p.WallThickness
	baseTop := wall + p.BaseHeight
	transTop := baseTop + p.TransitionLength
	chamberTop := transTop + p.ChamberHeight
	total := chamberTop + p.AdapterHeight

	flow := p.FanFlowM3H / 3600
	fanR := p.FanSize/2 - 5

	areaAt := func(z float64) float64 {
		switch {
		case z <= baseTop:
			w := p.BasePlateWidth() - 2*p.SealMargin
			d := p.BasePlateDepth() - 2*p.SealMargin
			return w * d
		case z <= transTop:
			t := (z - baseTop) / p.TransitionLength
			w := p.BasePlateWidth() - 2*wall
			d := p.BasePlateDepth() - 2*wall
			return (w + (p.ChamberWidth-w)*t) * (d + (p.ChamberWidth-d)*t)
		case z <= chamberTop:
			return p.ChamberWidth * p.ChamberWidth
		default:
			// square bore blending into the circular fan opening
			t := (z - chamberTop) / p.AdapterHeight
			square := p.ChamberWidth * p.ChamberWidth
			circle := math.Pi * fanR * fanR
			return square + (circle-square)*t
		}
	}

	for i := 0; i <= profileSamples; i++ {
		z := total * float64(i) / profileSamples
		a := areaAt(z)
		heights = append(heights, fmt.Sprintf("%.0f", z))
		areas = append(areas, opts.LineData{Value: math.Round(a)})
		velocities = append(velocities, opts.LineData{Value: math.Round(flow/(a*1e-6)*100) / 100})
	}
	return heights, areas, velocities
}

// WriteFlowChart renders an HTML chart of duct area and bulk velocity
// against height through the assembled manifold. The velocity spike in
// the chamber region is the whole point of the design; the chart makes
// it easy to sanity-check a parameter change before printing anything.
func WriteFlowChart(w io.Writer, p design.Params, d design.Derivation) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Duct profile",
			Subtitle: fmt.Sprintf("speed multiplier %.2fx", d.ActualMultiplier),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "height (mm)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "area (mm2) / velocity (m/s)", Scale: opts.Bool(true)}),
	)

	heights, areas, velocities := flowProfile(p)
	line.SetXAxis(heights).
		AddSeries("duct area (mm2)", areas).
		AddSeries("bulk velocity (m/s)", velocities)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render flow chart: %w", err)
	}
	return nil
}
