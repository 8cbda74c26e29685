package solid

import (
	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// Holder-specific dimensions. The fixture is a drop-in test jig for the
// bare sensor PCB, so these track the PCB itself rather than the duct
// parameters: 1 mm board, 3 mm corner holes 0.75 mm off the edge, and a
// connector on the back edge.
const (
	holderWall     = 1.2
	holderBase     = 1.125
	platformH      = 1.125
	pcbThick       = 1.0
	pcbClearance   = 1.5
	clipLength     = 2.0
	clipThick      = 0.6
	clipOverhang   = 1.6
	connectorW     = 4.0
	connectorH     = 2.0
	pcbHoleDia     = 3.0
	pcbHoleOffset  = 0.75
	postDia        = 2.6
	postHeight     = 1.0
	postAdjustment = 0.0625
)

// PCBHolder returns a snap-fit holder for the sensor PCB. The board
// drops onto a recessed platform; L-shaped corner walls keep the sides
// located and thin cantilever clips at the rim press the corners down.
// The side centers stay open so air crosses the board, and the back
// corner walls are notched for the connector.
func PCBHolder(p design.Params) model3d.Solid {
	pcb := p.SensorPCBSize
	outer := pcb + 2*pcbClearance + 2*holderWall
	rimH := platformH + pcbThick + 2
	rimTop := holderBase + rimH
	platformTop := holderBase + platformH
	pcbTop := platformTop + pcbThick
	cornerLen := pcb / 4

	body := model3d.JoinedSolid{
		boxAt(0, 0, 0, outer, outer, holderBase),
		boxAt(0, 0, holderBase, pcb-1, pcb-1, platformH),
	}

	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			ox := sx * (pcb/2 + pcbClearance + holderWall/2)
			oy := sy * (pcb/2 + pcbClearance + holderWall/2)

			// L-shaped corner wall
			body = append(body,
				boxAt(ox-sx*cornerLen/2, oy, holderBase, cornerLen, holderWall, rimH),
				boxAt(ox, oy-sy*cornerLen/2, holderBase, holderWall, cornerLen, rimH),
			)

			// retention clips cantilever inward over the PCB corners
			wallYInner := sy * (pcb/2 + pcbClearance)
			wallXInner := sx * (pcb/2 + pcbClearance)
			body = append(body,
				boxAt(sx*(pcb/2-cornerLen/2), wallYInner-sy*clipOverhang/2,
					rimTop-clipThick, clipLength, clipOverhang, clipThick),
				boxAt(wallXInner-sx*clipOverhang/2, sy*(pcb/2-cornerLen/2),
					rimTop-clipThick, clipOverhang, clipLength, clipThick),
			)

			// alignment posts under the PCB corner holes
			px := sx * (pcb/2 - pcbHoleOffset - pcbHoleDia/2 - postAdjustment)
			py := sy * (pcb/2 - pcbHoleOffset - pcbHoleDia/2 - postAdjustment)
			body = append(body, cylinderZ(px, py, platformTop, platformTop+postHeight, postDia/2))
		}
	}

	var neg model3d.JoinedSolid
	for _, sx := range []float64{-1, 1} {
		neg = append(neg, boxAt(
			sx*cornerLen/4, pcb/2+holderWall/2, pcbTop-0.1,
			connectorW, holderWall+2, connectorH+1))
	}
	return &model3d.SubtractedSolid{Positive: body, Negative: neg}
}
