package solid

import (
	"math"

	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// joinFlange is how far the chamber-sized joints flange outward past the
// duct wall. The extra land carries the snap tabs and leaves room for
// the o-ring channel inward of them.
const joinFlange = 6.0

// TopJointOuter returns the outer square of the joints at the narrow end
// of the duct: transition top, sensor chamber, and fan adapter bottom.
func TopJointOuter(p design.Params) float64 { return p.ChamberOuter() + 2*joinFlange }

// TopJointLand is the flat land width of those joints, measured inward
// from the outer edge.
func TopJointLand(p design.Params) float64 { return joinFlange + p.WallThickness }

// jointPlateH is the thickness of a female joint plate. The snap
// recesses cut in from below must be deeper than the tabs are tall.
func jointPlateH(p design.Params) float64 { return p.WallThickness + p.SnapHeight }

// Transition returns the one-piece duct that narrows from the base
// footprint down to the sensor chamber over the transition length. The
// taper is kept shallow to preserve laminar flow. Too tall for most
// printers in the reference configuration; Quadrants covers that case.
func Transition(p design.Params) model3d.Solid {
	w, d := p.BasePlateWidth(), p.BasePlateDepth()
	wall := p.WallThickness
	plateH := jointPlateH(p)
	top := wall + p.TransitionLength
	jo := TopJointOuter(p)

	body := model3d.JoinedSolid{
		boxAt(0, 0, 0, w, d, plateH),
		rectLoft(
			profile{0, 0, w / 2, d / 2},
			profile{0, 0, p.ChamberOuter() / 2, p.ChamberOuter() / 2},
			wall, top),
		ringBoxZ(0, 0, top-wall, top, jo, jo, p.ChamberWidth, p.ChamberWidth),
	}
	body = append(body, snapTabs(p, jo, jo, top)...)

	neg := model3d.JoinedSolid{
		boxAt(0, 0, -pad, w-2*p.SealMargin, d-2*p.SealMargin, plateH+2*pad),
		rectLoftThrough(
			profile{0, 0, w/2 - wall, d/2 - wall},
			profile{0, 0, p.ChamberWidth / 2, p.ChamberWidth / 2},
			2*wall, top),
		sealGroove(p, jo, jo, TopJointLand(p), top),
	}
	neg = append(neg, snapSlots(p, w, d, 0)...)
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}

// Quadrant indices, front-left first, matching part file names.
const (
	FrontLeft = iota
	FrontRight
	BackLeft
	BackRight
)

// QuadrantNames maps a quadrant index to its part-name suffix.
var QuadrantNames = []string{"front_left", "front_right", "back_left", "back_right"}

// TransitionQuadrant returns one vertical quarter of the transition,
// sized to fit the print bed. Outer edges are trimmed by the quadrant
// trim; interior edges extend half the joint overlap past the center
// line so mating faces have material for the bolted joint. Bolts run
// horizontally through the interior walls.
func TransitionQuadrant(p design.Params, q int) model3d.Solid {
	isRight := q == FrontRight || q == BackRight
	isBack := q == BackLeft || q == BackRight

	w, d := p.BasePlateWidth(), p.BasePlateDepth()
	wall := p.WallThickness
	top := wall + p.TransitionLength

	xMin, xMax := -w/2, 0.0
	if isRight {
		xMin, xMax = 0, w/2
	}
	yMin, yMax := -d/2, 0.0
	if isBack {
		yMin, yMax = 0, d/2
	}
	if isRight {
		xMax -= p.QuadrantTrim
		xMin -= p.QuadrantOverlap / 2
	} else {
		xMin += p.QuadrantTrim
		xMax += p.QuadrantOverlap / 2
	}
	if isBack {
		yMax -= p.QuadrantTrim
		yMin -= p.QuadrantOverlap / 2
	} else {
		yMin += p.QuadrantTrim
		yMax += p.QuadrantOverlap / 2
	}
	bottom := profileFromBounds(xMin, xMax, yMin, yMax)

	topHalf := p.ChamberOuter() / 2
	txMin, txMax := -topHalf, p.QuadrantOverlap/2
	if isRight {
		txMin, txMax = -p.QuadrantOverlap/2, topHalf
	}
	tyMin, tyMax := -topHalf, p.QuadrantOverlap/2
	if isBack {
		tyMin, tyMax = -p.QuadrantOverlap/2, topHalf
	}
	topP := profileFromBounds(txMin, txMax, tyMin, tyMax)

	body := model3d.JoinedSolid{
		quadrantPlate(p, xMin, xMax, yMin, yMax),
		rectLoft(bottom, topP, 0, top),
	}

	neg := model3d.JoinedSolid{
		rectLoftThrough(
			profile{bottom.cx, bottom.cy, bottom.hw - wall, bottom.hd - wall},
			profile{topP.cx, topP.cy, topP.hw - wall, topP.hd - wall},
			wall, top),
	}

	// Bolt holes through the interior joint walls. Each joint plane is
	// drilled from one side only so mating quadrants share one pattern.
	nBolts := int(top / p.BoltSpacing)
	if nBolts < 2 {
		nBolts = 2
	}
	for i := 0; i < nBolts; i++ {
		z := wall + float64(i+1)*(top-wall)/float64(nBolts+1)
		if !(isRight && !isBack) {
			neg = append(neg, &model3d.Cylinder{
				P1:     model3d.XYZ(-20, bottom.cy, z),
				P2:     model3d.XYZ(20, bottom.cy, z),
				Radius: p.BoltDia / 2,
			})
		}
		if !(isBack && !isRight) {
			neg = append(neg, &model3d.Cylinder{
				P1:     model3d.XYZ(bottom.cx, -20, z),
				P2:     model3d.XYZ(bottom.cx, 20, z),
				Radius: p.BoltDia / 2,
			})
		}
	}
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}

// quadrantPlate is the quadrant's share of the bottom seal plate. The
// center opening is clipped against the full plate's seal margin, so a
// quadrant keeps plate material only where the seal band crosses it.
func quadrantPlate(p design.Params, xMin, xMax, yMin, yMax float64) model3d.Solid {
	w, d := p.BasePlateWidth(), p.BasePlateDepth()
	wall := p.WallThickness

	plate := model3d.NewRect(
		model3d.XYZ(xMin, yMin, 0),
		model3d.XYZ(xMax, yMax, wall),
	)

	ix0 := math.Max(xMin, -w/2+p.SealMargin)
	ix1 := math.Min(xMax, w/2-p.SealMargin)
	iy0 := math.Max(yMin, -d/2+p.SealMargin)
	iy1 := math.Min(yMax, d/2-p.SealMargin)
	if ix1 <= ix0 || iy1 <= iy0 {
		return plate
	}
	return &model3d.SubtractedSolid{
		Positive: plate,
		Negative: model3d.NewRect(
			model3d.XYZ(ix0, iy0, -pad),
			model3d.XYZ(ix1, iy1, wall+pad),
		),
	}
}
