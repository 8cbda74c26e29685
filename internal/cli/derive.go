package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/design"
)

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the quantities derived from a design",
		Long: `Derive every computed quantity from a design: intake and chamber
areas, the resulting speed multiplier, required chamber sizing, tube
spacing, taper angle and bulk air velocities.

Reads the design named by --design, or the built-in reference design.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(rootOpts, cmd)
		},
	}

	return cmd
}

func runDerive(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	p, err := loadDesign(opts)
	if err != nil {
		formatter.Error(ErrCodeDesign, err.Error(), nil)
		return err
	}

	d, err := design.Derive(p)
	if err != nil {
		formatter.Error(ErrCodeDesign, err.Error(), nil)
		return WrapExitError(ExitFailure, "derivation failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(d)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatDerivation(p, d))
	if !d.WithinTolerance {
		fmt.Fprintf(cmd.OutOrStdout(),
			"WARNING: multiplier deviates from target by %.2f (tolerance %.2f)\n",
			d.Deviation, design.MultiplierTolerance)
	}
	return nil
}

// formatDerivation renders the human-readable derivation block.
func formatDerivation(p design.Params, d design.Derivation) string {
	var b strings.Builder
	b.WriteString("Air-manifold design derivation\n")
	fmt.Fprintf(&b, "  tube bore area:        %.1f mm²\n", d.TubeArea)
	fmt.Fprintf(&b, "  total intake area:     %.1f mm² (%d tubes)\n", d.IntakeArea, p.TubeCount())
	fmt.Fprintf(&b, "  sensor chamber area:   %.1f mm²\n", d.ChamberArea)
	fmt.Fprintf(&b, "  speed multiplier:      %.2fx (target %.2fx, deviation %.2f)\n",
		d.ActualMultiplier, p.TargetMultiplier, d.Deviation)
	fmt.Fprintf(&b, "  required chamber side: %.1f mm\n", d.RequiredChamberSide)
	fmt.Fprintf(&b, "  tube spacing:          %.1f x %.1f mm\n", d.TubeSpacingX, d.TubeSpacingY)
	fmt.Fprintf(&b, "  base plate:            %.1f x %.1f mm\n", d.BasePlateWidth, d.BasePlateDepth)
	fmt.Fprintf(&b, "  taper half-angle:      %.1f°\n", d.TaperHalfAngleDeg)
	fmt.Fprintf(&b, "  air velocity:          %.2f m/s (tubes) -> %.2f m/s (chamber)\n",
		d.TubeVelocity, d.ChamberVelocity)
	fmt.Fprintf(&b, "  pressure drop (est):   %.1f Pa\n", d.PressureDrop)
	return b.String()
}
