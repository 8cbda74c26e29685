package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/layout"
	"github.com/roach88/manifold/internal/mesh"
	"github.com/roach88/manifold/internal/solid"
)

// LayoutOptions holds flags for the layout command.
type LayoutOptions struct {
	NestedOut  string
	Resolution float64
}

// LayoutResult is the layout command's JSON payload.
type LayoutResult struct {
	BedX   float64      `json:"bed_x_mm"`
	BedY   float64      `json:"bed_y_mm"`
	BedZ   float64      `json:"bed_z_mm"`
	SplitX int          `json:"base_split_x"`
	SplitY int          `json:"base_split_y"`
	Fits   []layout.Fit `json:"fits"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Check which parts fit the print bed",
		Long: `Check every part's bounding box against the print bed in all six
axis-aligned orientations, and report how the base plate would split
into bed-sized sections.

With --nested-out, also write an STL of the transition quadrants nested
on their sides with support rails, for printing three quadrants in one
bed when none fits flat.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.NestedOut, "nested-out", "", "write the nested quadrant layout STL to this path")
	cmd.Flags().Float64Var(&opts.Resolution, "resolution", 0, "marching-cubes cell size for --nested-out, in mm (default: the design's mesh_resolution_mm)")

	return cmd
}

func runLayout(rootOpts *RootOptions, opts *LayoutOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	p, err := loadDesign(rootOpts)
	if err != nil {
		formatter.Error(ErrCodeDesign, err.Error(), nil)
		return err
	}

	fits, err := layout.Plan(p)
	if err != nil {
		formatter.Error(ErrCodeBuildFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "planning layout", err)
	}
	nx, ny := layout.BaseSplit(p)

	if opts.NestedOut != "" {
		if opts.Resolution <= 0 {
			opts.Resolution = p.MeshResolution
		}
		nested := solid.NestedQuadrantLayout(p)
		m, err := mesh.Generate(nested, opts.Resolution)
		if err != nil {
			formatter.Error(ErrCodeMeshFailed, err.Error(), nil)
			return WrapExitError(ExitFailure, "meshing nested layout", err)
		}
		if err := mesh.ExportSTL(opts.NestedOut, m); err != nil {
			formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing nested layout", err)
		}
		formatter.VerboseLog("wrote nested quadrant layout to %s", opts.NestedOut)
	}

	result := LayoutResult{
		BedX: p.BedX, BedY: p.BedY, BedZ: p.BedZ,
		SplitX: nx, SplitY: ny,
		Fits: fits,
	}
	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "print bed: %.0f x %.0f x %.0f mm\n", p.BedX, p.BedY, p.BedZ)
	for _, f := range fits {
		mark := "✓"
		note := ""
		if !f.FitsBed {
			mark = "✗"
			if f.SplitX > 1 || f.SplitY > 1 {
				note = fmt.Sprintf("  (split %dx%d or print nested)", f.SplitX, f.SplitY)
			} else {
				note = "  (print nested)"
			}
		}
		fmt.Fprintf(formatter.Writer, "%s %-32s %.0f x %.0f x %.0f mm%s\n",
			mark, f.Part, f.SizeX, f.SizeY, f.SizeZ, note)
	}
	return nil
}
