// Package layout checks printed parts against the print bed and
// recommends split grids for parts that cannot fit in any orientation.
package layout

import (
	"math"

	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/solid"
)

// Fit reports how one part relates to the configured print bed.
type Fit struct {
	Part     string  `json:"part"`
	Quantity int     `json:"quantity"`
	SizeX    float64 `json:"size_x_mm"`
	SizeY    float64 `json:"size_y_mm"`
	SizeZ    float64 `json:"size_z_mm"`
	FitsBed  bool    `json:"fits_bed"`
	SplitX   int     `json:"split_x,omitempty"`
	SplitY   int     `json:"split_y,omitempty"`
}

// Plan measures every part in the standard set against the print bed.
// A part counts as fitting if any axis-aligned orientation fits; one
// that fits in none gets a recommended flat split grid.
func Plan(p design.Params) ([]Fit, error) {
	parts, err := solid.Build(p)
	if err != nil {
		return nil, err
	}
	fits := make([]Fit, 0, len(parts))
	for _, pt := range parts {
		min, max := pt.Solid.Min(), pt.Solid.Max()
		f := Fit{
			Part:     pt.Name,
			Quantity: pt.Quantity,
			SizeX:    max.X - min.X,
			SizeY:    max.Y - min.Y,
			SizeZ:    max.Z - min.Z,
		}
		f.FitsBed = fitsAnyOrientation(f.SizeX, f.SizeY, f.SizeZ, p)
		if !f.FitsBed {
			f.SplitX = int(math.Ceil(f.SizeX / p.BedX))
			f.SplitY = int(math.Ceil(f.SizeY / p.BedY))
		}
		fits = append(fits, f)
	}
	return fits, nil
}

// BaseSplit returns the split grid for the manifold base, at least 1x1.
func BaseSplit(p design.Params) (nx, ny int) {
	nx = int(math.Ceil(p.BasePlateWidth() / p.BedX))
	ny = int(math.Ceil(p.BasePlateDepth() / p.BedY))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	return nx, ny
}

func fitsAnyOrientation(x, y, z float64, p design.Params) bool {
	dims := [3]float64{x, y, z}
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, pr := range perms {
		if dims[pr[0]] <= p.BedX && dims[pr[1]] <= p.BedY && dims[pr[2]] <= p.BedZ {
			return true
		}
	}
	return false
}
