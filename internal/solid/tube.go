package solid

import (
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/toolbox3d"

	"github.com/roach88/manifold/internal/design"
)

// nutHeight is the retaining nut's thickness along the tube axis.
const nutHeight = 10.0

// IntakeTube returns one intake tube. The tube drops through a hole in
// the cabinet lid: the flange at the top rests on the lid and a
// RetainingNut threads onto the lower end from inside the cabinet.
func IntakeTube(p design.Params) model3d.Solid {
	body := model3d.JoinedSolid{
		cylinderZ(0, 0, 0, p.TubeLength, p.TubeOD/2),
		annulusZ(0, 0, p.TubeLength-2, p.TubeLength, p.TubeOD/2-0.5, p.TubeOD/2+1),
		&toolbox3d.ScrewSolid{
			P1:         model3d.XYZ(0, 0, 0),
			P2:         model3d.XYZ(0, 0, p.ThreadLength),
			Radius:     p.TubeOD/2 + p.ThreadDepth(),
			GrooveSize: p.ThreadDepth(),
		},
	}
	return &model3d.SubtractedSolid{
		Positive: body,
		Negative: cylinderZ(0, 0, -pad, p.TubeLength+pad, p.TubeID/2),
	}
}

// RetainingNut returns the hex nut that clamps an intake tube against
// the cabinet lid. The threaded bore is oversized by the snap clearance
// so a printed nut actually turns.
func RetainingNut(p design.Params) model3d.Solid {
	bore := &toolbox3d.ScrewSolid{
		P1:         model3d.XYZ(0, 0, -pad),
		P2:         model3d.XYZ(0, 0, nutHeight+pad),
		Radius:     p.TubeOD/2 + p.ThreadDepth() + p.SnapClearance,
		GrooveSize: p.ThreadDepth(),
	}
	return &model3d.SubtractedSolid{
		Positive: hexPrismZ(0, 0, 0, nutHeight, p.TubeOD+10),
		Negative: bore,
	}
}
