package design

import "fmt"

// Params is the complete scalar parameter set for the manifold. Every
// dimension is in millimetres; the fan flow is in cubic metres per hour.
//
// The zero value is not usable - start from Default() and override.
type Params struct {
	// Cabinet and airflow.
	CabinetWidth     float64 `yaml:"cabinet_width_mm"`
	CabinetDepth     float64 `yaml:"cabinet_depth_mm"`
	TargetMultiplier float64 `yaml:"target_multiplier"`
	FanFlowM3H       float64 `yaml:"fan_flow_m3h"`

	// Intake tubes. The tubes pierce the cabinet lid and thread into
	// retaining nuts from below.
	TubeRows     int     `yaml:"tube_rows"`
	TubeCols     int     `yaml:"tube_cols"`
	TubeOD       float64 `yaml:"tube_od_mm"`
	TubeID       float64 `yaml:"tube_id_mm"`
	TubeLength   float64 `yaml:"tube_length_mm"`
	ThreadLength float64 `yaml:"thread_length_mm"`
	ThreadPitch  float64 `yaml:"thread_pitch_mm"`

	// Sensor PCB and chamber.
	SensorPCBSize    float64 `yaml:"sensor_pcb_size_mm"`
	SensorHoleDia    float64 `yaml:"sensor_hole_dia_mm"`
	SensorHoleOffset float64 `yaml:"sensor_hole_offset_mm"`
	ChamberWidth     float64 `yaml:"chamber_width_mm"`
	ChamberHeight    float64 `yaml:"chamber_height_mm"`

	// Fan mount.
	FanSize        float64 `yaml:"fan_size_mm"`
	FanHoleSpacing float64 `yaml:"fan_hole_spacing_mm"`
	FanHoleDia     float64 `yaml:"fan_hole_dia_mm"`

	// Manifold body.
	BaseHeight       float64 `yaml:"base_height_mm"`
	TransitionLength float64 `yaml:"transition_length_mm"`
	AdapterHeight    float64 `yaml:"adapter_height_mm"`
	WallThickness    float64 `yaml:"wall_thickness_mm"`
	OuterMargin      float64 `yaml:"outer_margin_mm"`
	SealMargin       float64 `yaml:"seal_margin_mm"`

	// Snap-fit tabs and o-ring grooves.
	SnapWidth     float64 `yaml:"snap_width_mm"`
	SnapHeight    float64 `yaml:"snap_height_mm"`
	SnapDepth     float64 `yaml:"snap_depth_mm"`
	SnapTaper     float64 `yaml:"snap_taper_mm"`
	SnapClearance float64 `yaml:"snap_clearance_mm"`
	GrooveWidth   float64 `yaml:"groove_width_mm"`
	GrooveDepth   float64 `yaml:"groove_depth_mm"`

	// Sectioning for parts that exceed the print bed.
	QuadrantTrim    float64 `yaml:"quadrant_trim_mm"`
	QuadrantOverlap float64 `yaml:"quadrant_overlap_mm"`
	BoltDia         float64 `yaml:"bolt_dia_mm"`
	BoltSpacing     float64 `yaml:"bolt_spacing_mm"`
	PinDia          float64 `yaml:"pin_dia_mm"`
	PinLength       float64 `yaml:"pin_length_mm"`

	// Print bed limits.
	BedX float64 `yaml:"bed_x_mm"`
	BedY float64 `yaml:"bed_y_mm"`
	BedZ float64 `yaml:"bed_z_mm"`

	// Marching-cubes cell size for STL export.
	MeshResolution float64 `yaml:"mesh_resolution_mm"`
}

// Default returns the reference design: a 550x550 mm curing cabinet fed by
// a 3x3 grid of 35 mm ID tubes converging on a 42 mm anemometer chamber
// under a standard 120 mm fan.
func Default() Params {
	return Params{
		CabinetWidth:     550,
		CabinetDepth:     550,
		TargetMultiplier: 5,
		FanFlowM3H:       120,

		TubeRows:     3,
		TubeCols:     3,
		TubeOD:       38,
		TubeID:       35,
		TubeLength:   60,
		ThreadLength: 15,
		ThreadPitch:  2.5,

		SensorPCBSize:    25.4,
		SensorHoleDia:    4,
		SensorHoleOffset: 1,
		ChamberWidth:     42,
		ChamberHeight:    80,

		FanSize:        120,
		FanHoleSpacing: 105,
		FanHoleDia:     4.5,

		BaseHeight:       40,
		TransitionLength: 150,
		AdapterHeight:    40,
		WallThickness:    3,
		OuterMargin:      20,
		SealMargin:       15,

		SnapWidth:     6,
		SnapHeight:    8,
		SnapDepth:     2,
		SnapTaper:     0.3,
		SnapClearance: 0.3,
		GrooveWidth:   3,
		GrooveDepth:   1.5,

		QuadrantTrim:    38,
		QuadrantOverlap: 4,
		BoltDia:         5,
		BoltSpacing:     40,
		PinDia:          6,
		PinLength:       10,

		BedX: 240,
		BedY: 210,
		BedZ: 210,

		MeshResolution: 1.0,
	}
}

// TubeCount returns the number of intake tubes in the grid.
func (p Params) TubeCount() int { return p.TubeRows * p.TubeCols }

// BasePlateWidth returns the manifold footprint along X.
func (p Params) BasePlateWidth() float64 { return p.CabinetWidth - 2*p.OuterMargin }

// BasePlateDepth returns the manifold footprint along Y.
func (p Params) BasePlateDepth() float64 { return p.CabinetDepth - 2*p.OuterMargin }

// ChamberOuter returns the outer side length of the sensor chamber.
func (p Params) ChamberOuter() float64 { return p.ChamberWidth + 2*p.WallThickness }

// ThreadDepth returns the radial depth of the thread ridges, the ISO
// fundamental triangle height for the configured pitch.
func (p Params) ThreadDepth() float64 { return 0.6134 * p.ThreadPitch }

// Validate rejects parameter sets that cannot produce sound geometry.
// Failures here abort the whole run; there is nothing to recover.
func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"cabinet_width_mm", p.CabinetWidth},
		{"cabinet_depth_mm", p.CabinetDepth},
		{"target_multiplier", p.TargetMultiplier},
		{"fan_flow_m3h", p.FanFlowM3H},
		{"tube_od_mm", p.TubeOD},
		{"tube_id_mm", p.TubeID},
		{"tube_length_mm", p.TubeLength},
		{"thread_pitch_mm", p.ThreadPitch},
		{"chamber_width_mm", p.ChamberWidth},
		{"chamber_height_mm", p.ChamberHeight},
		{"fan_size_mm", p.FanSize},
		{"base_height_mm", p.BaseHeight},
		{"transition_length_mm", p.TransitionLength},
		{"adapter_height_mm", p.AdapterHeight},
		{"wall_thickness_mm", p.WallThickness},
		{"bed_x_mm", p.BedX},
		{"bed_y_mm", p.BedY},
		{"bed_z_mm", p.BedZ},
		{"mesh_resolution_mm", p.MeshResolution},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %g", f.name, f.v)
		}
	}
	if p.TubeRows <= 0 || p.TubeCols <= 0 {
		return fmt.Errorf("tube grid must be at least 1x1, got %dx%d", p.TubeRows, p.TubeCols)
	}
	if p.TubeID >= p.TubeOD {
		return fmt.Errorf("tube_id_mm (%g) must be smaller than tube_od_mm (%g)", p.TubeID, p.TubeOD)
	}
	if p.ThreadLength > p.TubeLength {
		return fmt.Errorf("thread_length_mm (%g) exceeds tube_length_mm (%g)", p.ThreadLength, p.TubeLength)
	}
	if p.ChamberOuter() >= p.BasePlateWidth() || p.ChamberOuter() >= p.BasePlateDepth() {
		return fmt.Errorf("chamber (%g mm outer) does not fit inside the base plate (%g x %g mm)",
			p.ChamberOuter(), p.BasePlateWidth(), p.BasePlateDepth())
	}
	if 2*p.WallThickness >= p.ChamberWidth {
		return fmt.Errorf("wall_thickness_mm (%g) leaves no chamber cavity at chamber_width_mm %g",
			p.WallThickness, p.ChamberWidth)
	}
	return nil
}
