// Package report renders human-facing artifacts for a design: a PDF
// dimension sheet, an XLSX bill of materials, and an HTML flow chart.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/manifold/internal/design"
)

// WriteDimensionSheet renders a one-page A4 sheet with the input
// parameters, every derived quantity, and the multiplier check.
func WriteDimensionSheet(w io.Writer, p design.Params, d design.Derivation) error {
	pr := message.NewPrinter(language.English)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Air Manifold Dimension Sheet")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	section := func(title string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	section("Input parameters")
	row("Cabinet", pr.Sprintf("%.0f x %.0f mm", p.CabinetWidth, p.CabinetDepth))
	row("Intake tubes", pr.Sprintf("%d x %d grid, %.0f mm OD / %.0f mm ID, %.0f mm long",
		p.TubeRows, p.TubeCols, p.TubeOD, p.TubeID, p.TubeLength))
	row("Sensor chamber", pr.Sprintf("%.0f x %.0f mm bore, %.0f mm tall",
		p.ChamberWidth, p.ChamberWidth, p.ChamberHeight))
	row("Target multiplier", pr.Sprintf("%.2fx", p.TargetMultiplier))
	row("Fan", pr.Sprintf("%.0f mm frame, %.0f m3/h free air", p.FanSize, p.FanFlowM3H))
	row("Print bed", pr.Sprintf("%.0f x %.0f x %.0f mm", p.BedX, p.BedY, p.BedZ))

	section("Derived quantities")
	row("Tube bore area", pr.Sprintf("%.1f mm2", d.TubeArea))
	row("Total intake area", pr.Sprintf("%.1f mm2 (%d tubes)", d.IntakeArea, p.TubeCount()))
	row("Chamber area", pr.Sprintf("%.1f mm2", d.ChamberArea))
	row("Speed multiplier", pr.Sprintf("%.2fx (target %.2fx, deviation %.2f)",
		d.ActualMultiplier, p.TargetMultiplier, d.Deviation))
	row("Required chamber side", pr.Sprintf("%.1f mm", d.RequiredChamberSide))
	row("Tube spacing", pr.Sprintf("%.1f x %.1f mm", d.TubeSpacingX, d.TubeSpacingY))
	row("Base plate", pr.Sprintf("%.1f x %.1f mm", d.BasePlateWidth, d.BasePlateDepth))
	row("Taper half-angle", pr.Sprintf("%.1f deg", d.TaperHalfAngleDeg))
	row("Air velocity", pr.Sprintf("%.2f m/s (tubes) to %.2f m/s (chamber)",
		d.TubeVelocity, d.ChamberVelocity))
	row("Pressure drop (est)", pr.Sprintf("%.1f Pa", d.PressureDrop))

	if !d.WithinTolerance {
		pdf.Ln(4)
		pdf.SetTextColor(180, 0, 0)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, pr.Sprintf(
			"WARNING: multiplier deviates %.2fx from target (tolerance %.2fx)",
			d.Deviation, design.MultiplierTolerance), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	section("Printed parts")
	row("manifold_base", "1 (or split, see layout)")
	row("manifold_transition", "4 quadrants, bolted (or 1 one-piece on a large printer)")
	row("manifold_sensor_chamber", "1")
	row("manifold_fan_adapter", "1")
	row("intake_tube", pr.Sprintf("%d", p.TubeCount()))
	row("retaining_nut", pr.Sprintf("%d", p.TubeCount()))
	row("pcb_holder", "1")

	section("Assembly order")
	for i, step := range []string{
		"Bolt the four transition quadrants together (pins first, then M5 bolts).",
		"Seat o-ring cord in the base groove; snap the transition onto the base.",
		"Clip the sensor PCB into the holder and screw it to the chamber rails.",
		"Seat the top o-rings; snap chamber onto transition, adapter onto chamber.",
		"Screw the fan to the adapter plate, blowing away from the chamber.",
		"Thread each intake tube through the cabinet lid into its retaining nut.",
	} {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, pr.Sprintf("%d. %s", i+1, step), "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render dimension sheet: %w", err)
	}
	return nil
}
