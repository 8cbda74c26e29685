package solid

import (
	"math"

	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// Support rails under the nested quadrants. 3 mm ribs are enough to
// carry the sloped faces and snap off cleanly after printing.
const (
	railWidth  = 3.0
	railLength = 110.0
)

// NestedQuadrantLayout returns three transition quadrants stood on an
// interior edge and nested into each other, with support rails, as one
// solid for a single print job. The offsets are tuned for the reference
// quadrant size; the fourth quadrant prints alone.
func NestedQuadrantLayout(p design.Params) model3d.Solid {
	// Standing a front-left quadrant on its x=0 interior face puts its
	// outer edge (at -lift) downward; the translation grounds it on the
	// plate and walks it away from the narrow end.
	lift := p.BasePlateWidth()/2 - p.QuadrantTrim
	quadrant := func(offset model3d.Coord3D) model3d.Solid {
		s := TransitionQuadrant(p, FrontLeft)
		s = model3d.RotateSolid(s, model3d.XYZ(0, 1, 0), -math.Pi/2)
		return model3d.TranslateSolid(s, model3d.XYZ(150, 0, lift).Add(offset))
	}

	rails := model3d.JoinedSolid{
		boxAt(-53, 55, 0, railWidth, railLength, 10),
		boxAt(-33, 55, 0, railWidth, railLength, 10),
		boxAt(-8, 55, 0, railWidth, railLength, 5),
		boxAt(-28, 55, 0, railWidth, railLength, 5),
	}
	platform := model3d.TranslateSolid(
		model3d.RotateSolid(rails, model3d.XYZ(0, 0, 1), math.Pi),
		model3d.XYZ(150, 180, 0))

	return model3d.JoinedSolid{
		quadrant(model3d.XYZ(0, 0, 0)),
		quadrant(model3d.XYZ(30, 10, 5)),
		quadrant(model3d.XYZ(55, 20, 10)),
		platform,
	}
}
