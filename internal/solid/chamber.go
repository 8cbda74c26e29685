package solid

import (
	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// PCB mounting rails across the chamber. Thin bars so they shadow as
// little of the measured flow as possible.
const (
	strutWidth = 8.0
	strutThick = 4.0
)

// SensorChamber returns the straight measurement section. Air enters
// through the open bottom plate from the transition and leaves through
// the open top into the fan adapter. Two rails at mid-height carry the
// anemometer PCB; the screw bores land on the PCB's corner holes.
func SensorChamber(p design.Params) model3d.Solid {
	co := p.ChamberOuter()
	jo := TopJointOuter(p)
	wall := p.WallThickness
	plateH := jointPlateH(p)
	top := plateH + p.ChamberHeight

	holeSpan := p.SensorPCBSize - 2*p.SensorHoleOffset
	zStrut := plateH + p.ChamberHeight/2

	body := model3d.JoinedSolid{
		boxAt(0, 0, 0, jo, jo, plateH),
		ringBoxZ(0, 0, 0, top, co, co, p.ChamberWidth, p.ChamberWidth),
		ringBoxZ(0, 0, top-wall, top, jo, jo, p.ChamberWidth, p.ChamberWidth),
		boxAt(0, -holeSpan/2, zStrut, co, strutWidth, strutThick),
		boxAt(0, holeSpan/2, zStrut, co, strutWidth, strutThick),
	}
	body = append(body, snapTabs(p, jo, jo, top)...)

	neg := model3d.JoinedSolid{
		boxAt(0, 0, -pad, p.ChamberWidth, p.ChamberWidth, plateH+2*pad),
		sealGroove(p, jo, jo, TopJointLand(p), top),
	}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			neg = append(neg, cylinderZ(
				sx*holeSpan/2, sy*holeSpan/2,
				zStrut-pad, zStrut+strutThick+pad,
				p.SensorHoleDia/2))
		}
	}
	neg = append(neg, snapSlots(p, jo, jo, 0)...)
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}
