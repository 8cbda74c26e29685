package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/solid"
)

// hardware lists the non-printed items the assembly needs, with
// quantities derived from the parameter set.
func hardware(p design.Params) [][]any {
	// bolts joining the four transition quadrants: one set per interior
	// joint plane, two planes
	nBolts := int((p.WallThickness + p.TransitionLength) / p.BoltSpacing)
	if nBolts < 2 {
		nBolts = 2
	}
	boltCount := 4 * nBolts

	// o-ring cord: base land channel plus the two chamber-sized joints
	baseRing := 2 * (p.BasePlateWidth() - p.SealMargin + p.BasePlateDepth() - p.SealMargin)
	topRing := 4 * (solid.TopJointOuter(p) - solid.TopJointLand(p))
	cordMM := baseRing + 2*topRing

	return [][]any{
		{"M5 x 25 bolt + nut", boltCount, "joins transition quadrants"},
		{fmt.Sprintf("M%.0f x 12 screw", p.SensorHoleDia), 4, "sensor PCB to chamber rails"},
		{"fan screw (self-tapping)", 4, fmt.Sprintf("%.0f mm fan to adapter plate", p.FanSize)},
		{"o-ring cord, 3 mm", fmt.Sprintf("%.0f mm", cordMM), "cut to length per joint"},
		{fmt.Sprintf("%.0f mm axial fan", p.FanSize), 1, fmt.Sprintf("%.0f m3/h class", p.FanFlowM3H)},
	}
}

// WriteBOM writes an XLSX bill of materials: every printed part with
// its quantity, then the off-the-shelf hardware.
func WriteBOM(w io.Writer, p design.Params, parts []solid.Part) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []any{"item", "quantity", "notes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write BOM header: %w", err)
	}

	rowN := 2
	writeRow := func(cells []any) error {
		cell, err := excelize.CoordinatesToCellName(1, rowN)
		if err != nil {
			return err
		}
		rowN++
		return f.SetSheetRow(sheet, cell, &cells)
	}

	for _, pt := range parts {
		if err := writeRow([]any{pt.Name, pt.Quantity, "printed"}); err != nil {
			return fmt.Errorf("write BOM part row: %w", err)
		}
	}
	for _, hw := range hardware(p) {
		if err := writeRow(hw); err != nil {
			return fmt.Errorf("write BOM hardware row: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 36); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "C", 40); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	return nil
}
