// Package solid constructs every printable part of the manifold as a
// boolean composition of primitive solids. All coordinates are in
// millimetres with the part resting on z=0 and centered on the Z axis
// unless noted otherwise.
package solid

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// pad is the overcut applied to subtracted solids so boolean differences
// never leave a zero-thickness skin at a shared face.
const pad = 0.1

// boxAt returns an axis-aligned box centered at (cx, cy) spanning
// [z0, z0+h].
func boxAt(cx, cy, z0, w, d, h float64) model3d.Solid {
	return model3d.NewRect(
		model3d.XYZ(cx-w/2, cy-d/2, z0),
		model3d.XYZ(cx+w/2, cy+d/2, z0+h),
	)
}

// cylinderZ returns a vertical cylinder at (cx, cy) spanning [z0, z1].
func cylinderZ(cx, cy, z0, z1, r float64) model3d.Solid {
	return &model3d.Cylinder{
		P1:     model3d.XYZ(cx, cy, z0),
		P2:     model3d.XYZ(cx, cy, z1),
		Radius: r,
	}
}

// annulusZ returns a vertical ring between rInner and rOuter.
func annulusZ(cx, cy, z0, z1, rInner, rOuter float64) model3d.Solid {
	return &model3d.SubtractedSolid{
		Positive: cylinderZ(cx, cy, z0, z1, rOuter),
		Negative: cylinderZ(cx, cy, z0-pad, z1+pad, rInner),
	}
}

// ringBoxZ returns a rectangular wall band: the outer box minus a
// centered inner opening, spanning [z0, z1].
func ringBoxZ(cx, cy, z0, z1, outerW, outerD, innerW, innerD float64) model3d.Solid {
	return &model3d.SubtractedSolid{
		Positive: boxAt(cx, cy, z0, outerW, outerD, z1-z0),
		Negative: boxAt(cx, cy, z0-pad, innerW, innerD, z1-z0+2*pad),
	}
}

// hexPrismZ returns a hexagonal prism with the given across-flats width.
func hexPrismZ(cx, cy, z0, z1, acrossFlats float64) model3d.Solid {
	half := acrossFlats / 2
	circum := half / math.Cos(math.Pi/6)
	return model3d.CheckedFuncSolid(
		model3d.XYZ(cx-circum, cy-circum, z0),
		model3d.XYZ(cx+circum, cy+circum, z1),
		func(c model3d.Coord3D) bool {
			x, y := c.X-cx, c.Y-cy
			for i := 0; i < 3; i++ {
				a := float64(i) * math.Pi / 3
				if math.Abs(x*math.Cos(a)+y*math.Sin(a)) > half {
					return false
				}
			}
			return true
		},
	)
}

// profile describes a rectangular cross-section by center and half
// extents, used as a loft endpoint.
type profile struct {
	cx, cy, hw, hd float64
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func profileFromBounds(x0, x1, y0, y1 float64) profile {
	return profile{(x0 + x1) / 2, (y0 + y1) / 2, (x1 - x0) / 2, (y1 - y0) / 2}
}

// rectLoft returns the linear loft between two rectangular profiles, the
// tapered shell shape of the transition body.
func rectLoft(bottom, top profile, z0, z1 float64) model3d.Solid {
	min := model3d.XYZ(
		math.Min(bottom.cx-bottom.hw, top.cx-top.hw),
		math.Min(bottom.cy-bottom.hd, top.cy-top.hd),
		z0,
	)
	max := model3d.XYZ(
		math.Max(bottom.cx+bottom.hw, top.cx+top.hw),
		math.Max(bottom.cy+bottom.hd, top.cy+top.hd),
		z1,
	)
	return model3d.CheckedFuncSolid(min, max, func(c model3d.Coord3D) bool {
		t := (c.Z - z0) / (z1 - z0)
		if t < 0 || t > 1 {
			return false
		}
		cx := lerp(bottom.cx, top.cx, t)
		cy := lerp(bottom.cy, top.cy, t)
		hw := lerp(bottom.hw, top.hw, t)
		hd := lerp(bottom.hd, top.hd, t)
		return math.Abs(c.X-cx) <= hw && math.Abs(c.Y-cy) <= hd
	})
}

// rectLoftThrough is rectLoft extended slightly past z1 along the same
// taper, for cavities that open through a coincident top face. Without
// the overshoot the subtraction can leave a zero-thickness skin there.
func rectLoftThrough(bottom, top profile, z0, z1 float64) model3d.Solid {
	tMax := (z1 + pad - z0) / (z1 - z0)
	min := model3d.XYZ(
		math.Min(bottom.cx-bottom.hw, top.cx-top.hw),
		math.Min(bottom.cy-bottom.hd, top.cy-top.hd),
		z0,
	)
	max := model3d.XYZ(
		math.Max(bottom.cx+bottom.hw, top.cx+top.hw),
		math.Max(bottom.cy+bottom.hd, top.cy+top.hd),
		z1+pad,
	)
	return model3d.CheckedFuncSolid(min, max, func(c model3d.Coord3D) bool {
		t := (c.Z - z0) / (z1 - z0)
		if t < 0 || t > tMax {
			return false
		}
		cx := lerp(bottom.cx, top.cx, t)
		cy := lerp(bottom.cy, top.cy, t)
		hw := lerp(bottom.hw, top.hw, t)
		hd := lerp(bottom.hd, top.hd, t)
		return math.Abs(c.X-cx) <= hw && math.Abs(c.Y-cy) <= hd
	})
}

// squareToCircleLoft returns the loft from a centered square of the given
// half width at z0 to a circle of the given radius at z1. The
// cross-section morphs by blending the square's max-norm with the
// circle's euclidean norm, which keeps the surface continuous.
func squareToCircleLoft(cx, cy, halfSquare, radius, z0, z1 float64) model3d.Solid {
	bound := math.Max(halfSquare*math.Sqrt2, radius)
	min := model3d.XYZ(cx-bound, cy-bound, z0)
	max := model3d.XYZ(cx+bound, cy+bound, z1)
	return model3d.CheckedFuncSolid(min, max, func(c model3d.Coord3D) bool {
		t := (c.Z - z0) / (z1 - z0)
		if t < 0 || t > 1 {
			return false
		}
		x, y := c.X-cx, c.Y-cy
		square := math.Max(math.Abs(x), math.Abs(y)) / halfSquare
		circle := math.Hypot(x, y) / radius
		return lerp(square, circle, t) <= 1
	})
}
