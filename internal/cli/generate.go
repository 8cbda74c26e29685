package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/catalog"
	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/layout"
	"github.com/roach88/manifold/internal/mesh"
	"github.com/roach88/manifold/internal/solid"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	OutDir     string
	Resolution float64
	Parts      []string
	SplitBase  bool
	Catalog    string
}

// GeneratedPart is the per-part result reported by generate.
type GeneratedPart struct {
	Name     string      `json:"name"`
	File     string      `json:"file,omitempty"`
	Quantity int         `json:"quantity"`
	Status   string      `json:"status"`
	Error    string      `json:"error,omitempty"`
	Stats    *mesh.Stats `json:"stats,omitempty"`
}

// GenerateResult is the overall result reported by generate.
type GenerateResult struct {
	RunID  string          `json:"run_id,omitempty"`
	OutDir string          `json:"out_dir"`
	Parts  []GeneratedPart `json:"parts"`
	Failed int             `json:"failed"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate STL files for the manifold parts",
		Long: `Generate meshes for the printable parts of the manifold and write
them as STL files. A part that fails to mesh is reported and skipped;
the remaining parts are still written.

With --catalog, the run and its per-part statistics are recorded in a
SQLite catalog for later inspection.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "out", "output directory for STL files")
	cmd.Flags().Float64Var(&opts.Resolution, "resolution", 0, "marching-cubes cell size in mm (default: the design's mesh_resolution_mm)")
	cmd.Flags().StringSliceVar(&opts.Parts, "parts", nil, "generate only the named parts (default all)")
	cmd.Flags().BoolVar(&opts.SplitBase, "split-base", false, "split the base plate into bed-sized sections")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a SQLite catalog to record this run in")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command) error {
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
	d, err := design.Derive(p)
	if err != nil {
		formatter.Error(ErrCodeDesign, err.Error(), nil)
		return WrapExitError(ExitFailure, "derivation failed", err)
	}
	if !d.WithinTolerance {
		slog.Warn("speed multiplier off target",
			"actual", d.ActualMultiplier, "target", p.TargetMultiplier,
			"deviation", d.Deviation, "tolerance", design.MultiplierTolerance)
	}
	if opts.Resolution <= 0 {
		opts.Resolution = p.MeshResolution
	}

	parts, err := buildParts(p, opts)
	if err != nil {
		formatter.Error(ErrCodeBuildFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "building parts", err)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "creating output directory", err)
	}

	result := GenerateResult{OutDir: opts.OutDir}

	// The catalog is advisory: a broken database never blocks generation.
	var store *catalog.Store
	if opts.Catalog != "" {
		store, err = catalog.Open(opts.Catalog)
		if err != nil {
			slog.Warn("catalog unavailable, run not recorded", "path", opts.Catalog, "error", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()

		result.RunID = catalog.NewRunID()
		run := catalog.Run{
			ID:               result.RunID,
			DesignFile:       designLabel(rootOpts),
			ResolutionMM:     opts.Resolution,
			TargetMultiplier: p.TargetMultiplier,
			ActualMultiplier: d.ActualMultiplier,
		}
		if err := store.WriteRun(cmd.Context(), run); err != nil {
			slog.Warn("recording run failed", "error", err)
			store = nil
			result.RunID = ""
		}
	}

	for _, pt := range parts {
		gp := generatePart(pt, opts)
		result.Parts = append(result.Parts, gp)
		if gp.Status == catalog.StatusFailed {
			result.Failed++
			slog.Error("part generation failed", "part", pt.Name, "error", gp.Error)
		} else {
			formatter.VerboseLog("wrote %s (%d triangles, %.0f mm³)",
				gp.File, gp.Stats.Triangles, gp.Stats.Volume)
		}

		if store != nil {
			rec := catalog.PartRecord{
				RunID:    result.RunID,
				Name:     gp.Name,
				File:     gp.File,
				Quantity: gp.Quantity,
				Status:   gp.Status,
			}
			if gp.Stats != nil {
				rec.Triangles = gp.Stats.Triangles
				rec.VolumeMM3 = gp.Stats.Volume
				rec.SizeX = gp.Stats.SizeX
				rec.SizeY = gp.Stats.SizeY
				rec.SizeZ = gp.Stats.SizeZ
			}
			if err := store.WritePart(cmd.Context(), rec); err != nil {
				slog.Warn("recording part failed", "part", gp.Name, "error", err)
			}
		}
	}

	if err := outputGenerateResult(formatter, result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d part(s) failed", result.Failed, len(result.Parts)))
	}
	return nil
}

// buildParts assembles the part list for a run, applying --split-base
// and --parts selection.
func buildParts(p design.Params, opts *GenerateOptions) ([]solid.Part, error) {
	parts, err := solid.Build(p)
	if err != nil {
		return nil, err
	}

	if opts.SplitBase {
		nx, ny := layout.BaseSplit(p)
		sections := solid.SplitBase(p, nx, ny)
		replaced := make([]solid.Part, 0, len(parts)+len(sections))
		for _, pt := range parts {
			if pt.Name == "manifold_base" {
				replaced = append(replaced, sections...)
				continue
			}
			replaced = append(replaced, pt)
		}
		parts = replaced
	}

	if len(opts.Parts) > 0 {
		return solid.Select(parts, opts.Parts)
	}
	return parts, nil
}

// generatePart meshes and writes a single part. Failures are captured in
// the returned record rather than aborting the run.
func generatePart(pt solid.Part, opts *GenerateOptions) GeneratedPart {
	gp := GeneratedPart{Name: pt.Name, Quantity: pt.Quantity, Status: catalog.StatusOK}

	m, err := mesh.Generate(pt.Solid, opts.Resolution)
	if err != nil {
		gp.Status = catalog.StatusFailed
		gp.Error = err.Error()
		return gp
	}
	stats := mesh.Summarize(m)
	gp.Stats = &stats

	gp.File = filepath.Join(opts.OutDir, pt.Name+".stl")
	if err := mesh.ExportSTL(gp.File, m); err != nil {
		gp.Status = catalog.StatusFailed
		gp.Error = err.Error()
		gp.File = ""
	}
	return gp
}

func outputGenerateResult(f *OutputFormatter, result GenerateResult) error {
	if f.Format == "json" {
		return f.Success(result)
	}

	for _, gp := range result.Parts {
		if gp.Status == catalog.StatusFailed {
			fmt.Fprintf(f.Writer, "✗ %-32s %s\n", gp.Name, gp.Error)
			continue
		}
		fmt.Fprintf(f.Writer, "✓ %-32s x%d  %d triangles  %.0f x %.0f x %.0f mm\n",
			gp.Name, gp.Quantity, gp.Stats.Triangles,
			gp.Stats.SizeX, gp.Stats.SizeY, gp.Stats.SizeZ)
	}
	fmt.Fprintf(f.Writer, "%d part(s) written to %s", len(result.Parts)-result.Failed, result.OutDir)
	if result.Failed > 0 {
		fmt.Fprintf(f.Writer, ", %d failed", result.Failed)
	}
	fmt.Fprintln(f.Writer)
	return nil
}
