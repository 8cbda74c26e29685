package cli

import (
	"errors"
	"os"

	"github.com/roach88/manifold/internal/design"
)

// loadDesign resolves the global --design flag: an explicit YAML file if
// given, the built-in reference design otherwise. Validation errors come
// back as ExitErrors so commands can return them directly.
func loadDesign(opts *RootOptions) (design.Params, error) {
	if opts.Design == "" {
		return design.Default(), nil
	}

	p, err := design.Load(opts.Design)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return design.Params{}, WrapExitError(ExitCommandError, "design file not found", err)
		}
		return design.Params{}, WrapExitError(ExitFailure, "invalid design file", err)
	}
	return p, nil
}

// designLabel names the parameter source for run records and verbose logs.
func designLabel(opts *RootOptions) string {
	if opts.Design == "" {
		return "builtin:default"
	}
	return opts.Design
}
