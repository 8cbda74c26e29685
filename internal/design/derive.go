package design

import (
	"fmt"
	"math"
)

// Air density at room temperature, kg/m^3. Used only for the rough
// dynamic-pressure estimate printed on the dimension sheet.
const airDensity = 1.2

// MultiplierTolerance is the largest deviation from the target speed
// multiplier that passes without a warning.
const MultiplierTolerance = 0.5

// Derivation holds every quantity computed from a parameter set. All of
// the part geometry is expressed in terms of these values, so they are
// also what the reports and the catalog record.
type Derivation struct {
	TubeArea         float64 `json:"tube_area_mm2"`
	IntakeArea       float64 `json:"intake_area_mm2"`
	ChamberArea      float64 `json:"chamber_area_mm2"`
	ActualMultiplier float64 `json:"actual_multiplier"`
	Deviation        float64 `json:"multiplier_deviation"`
	WithinTolerance  bool    `json:"within_tolerance"`

	RequiredChamberSide float64 `json:"required_chamber_side_mm"`
	TubeSpacingX        float64 `json:"tube_spacing_x_mm"`
	TubeSpacingY        float64 `json:"tube_spacing_y_mm"`
	BasePlateWidth      float64 `json:"base_plate_width_mm"`
	BasePlateDepth      float64 `json:"base_plate_depth_mm"`
	TaperHalfAngleDeg   float64 `json:"taper_half_angle_deg"`

	TubeVelocity    float64 `json:"tube_velocity_ms"`
	ChamberVelocity float64 `json:"chamber_velocity_ms"`
	PressureDrop    float64 `json:"pressure_drop_pa"`
}

// Derive computes all derived quantities from a validated parameter set.
//
// The speed multiplier follows the continuity equation for incompressible
// flow: velocity scales with the inverse of the duct cross-section, so the
// multiplier is the ratio of total intake area to chamber area.
func Derive(p Params) (Derivation, error) {
	if err := p.Validate(); err != nil {
		return Derivation{}, fmt.Errorf("derive: %w", err)
	}

	var d Derivation
	d.TubeArea = math.Pi * (p.TubeID / 2) * (p.TubeID / 2)
	d.IntakeArea = float64(p.TubeCount()) * d.TubeArea
	d.ChamberArea = p.ChamberWidth * p.ChamberWidth
	d.ActualMultiplier = d.IntakeArea / d.ChamberArea
	d.Deviation = math.Abs(d.ActualMultiplier - p.TargetMultiplier)
	d.WithinTolerance = d.Deviation <= MultiplierTolerance

	d.RequiredChamberSide = math.Sqrt(d.IntakeArea / p.TargetMultiplier)
	d.TubeSpacingX = p.CabinetWidth / float64(p.TubeCols+1)
	d.TubeSpacingY = p.CabinetDepth / float64(p.TubeRows+1)
	d.BasePlateWidth = p.BasePlateWidth()
	d.BasePlateDepth = p.BasePlateDepth()

	run := (d.BasePlateWidth - p.ChamberOuter()) / 2
	d.TaperHalfAngleDeg = math.Atan2(run, p.TransitionLength) * 180 / math.Pi

	// Bulk velocities from the fan's free-air flow. Areas are mm^2.
	flow := p.FanFlowM3H / 3600 // m^3/s
	d.TubeVelocity = flow / (d.IntakeArea * 1e-6)
	d.ChamberVelocity = flow / (d.ChamberArea * 1e-6)
	d.PressureDrop = 0.5 * airDensity *
		(d.ChamberVelocity*d.ChamberVelocity - d.TubeVelocity*d.TubeVelocity)

	return d, nil
}
