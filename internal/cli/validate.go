package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/autoscroll"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	Kind string // "scenario" | "config"
}

// ValidationResult is the JSON payload of a successful validation.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Kind  string `json:"kind"`
	Path  string `json:"path"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "Validate a scenario or auto-scroll config file",
		Long: `Validate a scenario or auto-scroll config file without running it.

Checks YAML syntax, value ranges, node names, and overflow reach.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "scenario", "file kind (scenario|config)")

	return cmd
}

func runValidate(rootOpts *RootOptions, opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	var err error
	switch opts.Kind {
	case "scenario":
		_, err = autoscroll.LoadScenarioFile(path)
	case "config":
		_, err = autoscroll.LoadConfigFile(path)
	default:
		return fmt.Errorf("invalid kind %q: must be scenario or config", opts.Kind)
	}
	if err != nil {
		return reportLoadError(formatter, err)
	}

	formatter.VerboseLog("Validated %s file %s", opts.Kind, path)
	result := ValidationResult{Valid: true, Kind: opts.Kind, Path: path}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ %s is a valid %s\n", path, opts.Kind)
	})
}
