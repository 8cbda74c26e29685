package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/design"
	"github.com/roach88/manifold/internal/report"
	"github.com/roach88/manifold/internal/solid"
)

// NewReportCommand creates the report command group.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write assembly documents for a design",
		Long: `Write the documents that go with a printed manifold: a PDF
dimension sheet, an XLSX bill of materials, and an HTML chart of the
duct area and air velocity profile.`,
	}

	cmd.AddCommand(newReportPDFCommand(rootOpts))
	cmd.AddCommand(newReportBOMCommand(rootOpts))
	cmd.AddCommand(newReportFlowCommand(rootOpts))

	return cmd
}

func newReportPDFCommand(rootOpts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:           "pdf",
		Short:         "Write the PDF dimension sheet",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd, out, func(w io.Writer, p design.Params, d design.Derivation) error {
				return report.WriteDimensionSheet(w, p, d)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dimensions.pdf", "output file")
	return cmd
}

func newReportBOMCommand(rootOpts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:           "bom",
		Short:         "Write the XLSX bill of materials",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd, out, func(w io.Writer, p design.Params, d design.Derivation) error {
				parts, err := solid.Build(p)
				if err != nil {
					return err
				}
				return report.WriteBOM(w, p, parts)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "bom.xlsx", "output file")
	return cmd
}

func newReportFlowCommand(rootOpts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:           "flow",
		Short:         "Write the HTML duct profile chart",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd, out, func(w io.Writer, p design.Params, d design.Derivation) error {
				return report.WriteFlowChart(w, p, d)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "flow.html", "output file")
	return cmd
}

// runReport shares the load-derive-write plumbing of the report
// subcommands. The writer function gets a validated design and its
// derivation and writes one document.
func runReport(rootOpts *RootOptions, cmd *cobra.Command, out string,
	write func(io.Writer, design.Params, design.Derivation) error) error {

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

	f, err := os.Create(out)
	if err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "creating output file", err)
	}
	defer f.Close()

	if err := write(f, p, d); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "writing report", err)
	}
	if err := f.Close(); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "closing output file", err)
	}

	if rootOpts.Format == "json" {
		return formatter.Success(map[string]string{"file": out})
	}
	fmt.Fprintf(formatter.Writer, "wrote %s\n", out)
	return nil
}
