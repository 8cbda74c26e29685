package solid

import (
	"math"

	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// snapTabSpacing is the nominal distance between adjacent tabs on one
// edge. Every edge carries at least two tabs regardless of length.
const snapTabSpacing = 60.0

// snapEdge identifies one edge of a rectangular perimeter by its outward
// normal, its distance from the center, and its length.
type snapEdge struct {
	nx, ny float64
	offset float64
	length float64
}

func perimeterEdges(w, d float64) []snapEdge {
	return []snapEdge{
		{0, 1, d / 2, w},
		{0, -1, d / 2, w},
		{1, 0, w / 2, d},
		{-1, 0, w / 2, d},
	}
}

func tabCount(edgeLen float64) int {
	n := int(edgeLen / snapTabSpacing)
	if n < 2 {
		n = 2
	}
	return n
}

// snapFeature builds one tab (clearance 0) or its mating recess volume
// (clearance > 0) on the given edge at tangent position v0 with its base
// at height h. Tabs sit on the joint land just inside the outer edge and
// rise above the joint plane; the outer face tapers toward the top so
// the recess can ride over it during assembly.
func snapFeature(p design.Params, e snapEdge, v0, h, clearance float64) model3d.Solid {
	width := p.SnapWidth + 2*clearance
	height := p.SnapHeight + 2*clearance
	depth := p.SnapDepth

	px := e.nx*e.offset + e.ny*v0
	py := e.ny*e.offset - e.nx*v0
	r := math.Max(width/2, depth+clearance) + pad
	min := model3d.XYZ(px-r, py-r, h-clearance)
	max := model3d.XYZ(px+r, py+r, h-clearance+height)

	return model3d.CheckedFuncSolid(min, max, func(c model3d.Coord3D) bool {
		u := c.X*e.nx + c.Y*e.ny - e.offset
		v := c.X*e.ny - c.Y*e.nx
		if u < -depth-clearance || u > clearance {
			return false
		}
		if math.Abs(v-v0) > width/2 {
			return false
		}
		z := c.Z - (h - clearance)
		if z < 0 || z > height {
			return false
		}
		return z <= height-p.SnapTaper*(u+depth+clearance)/depth
	})
}

func edgePositions(e snapEdge) []float64 {
	n := tabCount(e.length)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = -e.length/2 + float64(i+1)*e.length/float64(n+1)
	}
	return out
}

// snapTabs returns the male tabs around a w x d perimeter with their
// base at height h.
func snapTabs(p design.Params, w, d, h float64) []model3d.Solid {
	var out []model3d.Solid
	for _, e := range perimeterEdges(w, d) {
		for _, v0 := range edgePositions(e) {
			out = append(out, snapFeature(p, e, v0, h, 0))
		}
	}
	return out
}

// snapSlots returns the slot volumes to subtract from the mating part,
// oversized by the configured clearance.
func snapSlots(p design.Params, w, d, h float64) []model3d.Solid {
	var out []model3d.Solid
	for _, e := range perimeterEdges(w, d) {
		for _, v0 := range edgePositions(e) {
			out = append(out, snapFeature(p, e, v0, h, p.SnapClearance))
		}
	}
	return out
}

// sealGroove returns the o-ring channel volume to subtract from a joint
// land at height h. The outer perimeter is w x d and the land extends
// inward by land mm; the channel runs down the middle of the land,
// inward of the snap tabs. The channel narrows on tight lands so a wall
// always remains on both sides of the cord.
func sealGroove(p design.Params, w, d, land, h float64) model3d.Solid {
	gw := math.Min(p.GrooveWidth, land/2)
	cx := w - land
	cy := d - land
	return ringBoxZ(0, 0, h-p.GrooveDepth, h+pad,
		cx+gw, cy+gw, cx-gw, cy-gw)
}
