package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/design"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	DesignFile string `json:"design_file"`
	Error      string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <design-file>",
		Short: "Validate a design file without generating anything",
		Long: `Validate a YAML design file against the parameter schema and the
cross-field constraints (chamber fits inside the base plate, tubes fit
the grid, seal land wide enough for the groove).

Faster than generate for iterating on a design.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := design.Load(path); err != nil {
		if opts.Format == "json" {
			formatter.Success(ValidationResult{Valid: false, DesignFile: path, Error: err.Error()})
		} else {
			formatter.Error(ErrCodeDesign, err.Error(), nil)
		}
		return WrapExitError(ExitFailure, "design validation failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, DesignFile: path})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid design\n", path)
	return nil
}
