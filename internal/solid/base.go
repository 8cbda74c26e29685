package solid

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// XY is a point in the base plane, relative to the plate center.
type XY struct {
	X, Y float64
}

// TubePositions returns the center of every tube hole. Tubes are spaced
// evenly across the cabinet footprint so each one serves an equal share
// of the lid area.
func TubePositions(p design.Params) []XY {
	sx := p.CabinetWidth / float64(p.TubeCols+1)
	sy := p.CabinetDepth / float64(p.TubeRows+1)
	out := make([]XY, 0, p.TubeCount())
	for r := 0; r < p.TubeRows; r++ {
		for c := 0; c < p.TubeCols; c++ {
			out = append(out, XY{
				X: -p.CabinetWidth/2 + float64(c+1)*sx,
				Y: -p.CabinetDepth/2 + float64(r+1)*sy,
			})
		}
	}
	return out
}

// Base returns the manifold base: a flat plate pierced by the tube
// grid, a perimeter wall that the transition snaps onto, and a sleeve
// boss reinforcing each tube hole. The wall is seal-margin thick so its
// top face serves as the joint land: snap tabs ring the outer edge and
// the o-ring channel runs down the middle.
func Base(p design.Params) model3d.Solid {
	w, d := p.BasePlateWidth(), p.BasePlateDepth()
	wall := p.WallThickness
	top := wall + p.BaseHeight

	body := model3d.JoinedSolid{
		boxAt(0, 0, 0, w, d, wall),
		ringBoxZ(0, 0, 0, top, w, d, w-2*p.SealMargin, d-2*p.SealMargin),
	}
	for _, t := range TubePositions(p) {
		body = append(body, cylinderZ(t.X, t.Y, 0, top, p.TubeOD/2+3))
	}
	body = append(body, snapTabs(p, w, d, top)...)

	neg := model3d.JoinedSolid{sealGroove(p, w, d, p.SealMargin, top)}
	for _, t := range TubePositions(p) {
		neg = append(neg, cylinderZ(t.X, t.Y, -pad, top+pad, p.TubeOD/2+0.2))
	}
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}

// Split-base joinery. Interior cell edges carry a rib on each side of
// the joint; bolts run through both ribs and a pin/socket pair keeps the
// faces registered while the bolts go in.
const (
	sectionRibHeight = 15.0
	sectionRibThick  = 6.0
)

// SplitBase slices the base into an nx x ny grid of bed-sized sections.
// Row-major, one part per section.
func SplitBase(p design.Params, nx, ny int) []Part {
	base := Base(p)
	w, d := p.BasePlateWidth(), p.BasePlateDepth()
	cw, cd := w/float64(nx), d/float64(ny)
	zTop := p.WallThickness + p.BaseHeight + p.SnapHeight + pad

	parts := make([]Part, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x0 := -w/2 + float64(i)*cw
			y0 := -d/2 + float64(j)*cd
			cell := model3d.NewRect(
				model3d.XYZ(x0, y0, -pad),
				model3d.XYZ(x0+cw, y0+cd, zTop),
			)
			parts = append(parts, Part{
				Name:     fmt.Sprintf("base_r%dc%d", j+1, i+1),
				Quantity: 1,
				Solid:    baseSection(p, base, cell, x0, y0, cw, cd, i, j, nx, ny),
			})
		}
	}
	return parts
}

func baseSection(p design.Params, base, cell model3d.Solid, x0, y0, cw, cd float64, i, j, nx, ny int) model3d.Solid {
	wall := p.WallThickness
	ribTop := wall + sectionRibHeight
	zBolt := wall + sectionRibHeight/2

	body := model3d.JoinedSolid{
		model3d.IntersectedSolid{base, cell},
	}
	var neg model3d.JoinedSolid

	boltPositions := func(c0, length float64) []float64 {
		n := int(length / p.BoltSpacing)
		if n < 2 {
			n = 2
		}
		out := make([]float64, n)
		for k := 0; k < n; k++ {
			out[k] = c0 + float64(k+1)*length/float64(n+1)
		}
		return out
	}

	// Joints normal to X.
	for _, left := range []bool{true, false} {
		if (left && i == 0) || (!left && i == nx-1) {
			continue
		}
		xj := x0
		rib := model3d.NewRect(
			model3d.XYZ(x0, y0, wall),
			model3d.XYZ(x0+sectionRibThick, y0+cd, ribTop),
		)
		if !left {
			xj = x0 + cw
			rib = model3d.NewRect(
				model3d.XYZ(xj-sectionRibThick, y0, wall),
				model3d.XYZ(xj, y0+cd, ribTop),
			)
		}
		body = append(body, rib)
		for _, y := range boltPositions(y0, cd) {
			neg = append(neg, &model3d.Cylinder{
				P1:     model3d.XYZ(xj-2*sectionRibThick, y, zBolt),
				P2:     model3d.XYZ(xj+2*sectionRibThick, y, zBolt),
				Radius: p.BoltDia / 2,
			})
		}
		for _, y := range []float64{y0 + cd/4, y0 + 3*cd/4} {
			if left {
				// sockets receive the neighbor's pins
				neg = append(neg, &model3d.Cylinder{
					P1:     model3d.XYZ(xj-pad, y, zBolt),
					P2:     model3d.XYZ(xj+p.PinLength+p.SnapClearance, y, zBolt),
					Radius: p.PinDia/2 + p.SnapClearance,
				})
			} else {
				body = append(body, &model3d.Cylinder{
					P1:     model3d.XYZ(xj-sectionRibThick/2, y, zBolt),
					P2:     model3d.XYZ(xj+p.PinLength, y, zBolt),
					Radius: p.PinDia / 2,
				})
			}
		}
	}

	// Joints normal to Y.
	for _, front := range []bool{true, false} {
		if (front && j == 0) || (!front && j == ny-1) {
			continue
		}
		yj := y0
		rib := model3d.NewRect(
			model3d.XYZ(x0, y0, wall),
			model3d.XYZ(x0+cw, y0+sectionRibThick, ribTop),
		)
		if !front {
			yj = y0 + cd
			rib = model3d.NewRect(
				model3d.XYZ(x0, yj-sectionRibThick, wall),
				model3d.XYZ(x0+cw, yj, ribTop),
			)
		}
		body = append(body, rib)
		for _, x := range boltPositions(x0, cw) {
			neg = append(neg, &model3d.Cylinder{
				P1:     model3d.XYZ(x, yj-2*sectionRibThick, zBolt),
				P2:     model3d.XYZ(x, yj+2*sectionRibThick, zBolt),
				Radius: p.BoltDia / 2,
			})
		}
		for _, x := range []float64{x0 + cw/4, x0 + 3*cw/4} {
			if front {
				neg = append(neg, &model3d.Cylinder{
					P1:     model3d.XYZ(x, yj-pad, zBolt),
					P2:     model3d.XYZ(x, yj+p.PinLength+p.SnapClearance, zBolt),
					Radius: p.PinDia/2 + p.SnapClearance,
				})
			} else {
				body = append(body, &model3d.Cylinder{
					P1:     model3d.XYZ(x, yj-sectionRibThick/2, zBolt),
					P2:     model3d.XYZ(x, yj+p.PinLength, zBolt),
					Radius: p.PinDia / 2,
				})
			}
		}
	}

	if len(neg) == 0 {
		return body
	}
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}
