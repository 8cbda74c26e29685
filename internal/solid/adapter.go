package solid

import (
	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

const (
	fanPlateThick = 4.0
	// fanRim is the fan plate's margin past the fan frame, and also how
	// much the airflow bore stays inside the frame edge.
	fanRim = 5.0
)

// FanAdapter returns the top section that expands from the sensor
// chamber back out to the fan. The inner passage morphs from the square
// chamber bore to the fan's circular opening; the plate on top matches
// the fan's frame and screw pattern.
func FanAdapter(p design.Params) model3d.Solid {
	jo := TopJointOuter(p)
	plateH := jointPlateH(p)
	mouth := plateH + p.AdapterHeight
	top := mouth + fanPlateThick

	fanOuter := p.FanSize + 2*fanRim
	boreR := p.FanSize/2 - fanRim

	body := model3d.JoinedSolid{
		boxAt(0, 0, 0, jo, jo, plateH),
		rectLoft(
			profile{0, 0, jo / 2, jo / 2},
			profile{0, 0, fanOuter / 2, fanOuter / 2},
			plateH, mouth),
		boxAt(0, 0, mouth, fanOuter, fanOuter, fanPlateThick),
	}

	neg := model3d.JoinedSolid{
		boxAt(0, 0, -pad, p.ChamberWidth, p.ChamberWidth, plateH+2*pad),
		squareToCircleLoft(0, 0, p.ChamberWidth/2, boreR, plateH, mouth),
		cylinderZ(0, 0, mouth-pad, top+pad, boreR),
	}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			neg = append(neg, cylinderZ(
				sx*p.FanHoleSpacing/2, sy*p.FanHoleSpacing/2,
				mouth-pad, top+pad,
				p.FanHoleDia/2))
		}
	}
	neg = append(neg, snapSlots(p, jo, jo, 0)...)
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}
