package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/phanxgames/autoscroll"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Frames bool // print every frame that scrolled
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a scenario and print the resulting scroll offsets",
		Long: `Replay a scenario headlessly on a fixed 60fps clock.

Prints the final scroll offset of the window and every region. With
--frames, also prints each frame that applied a scroll.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Frames, "frames", false, "print every frame that scrolled")

	return cmd
}

func runScenario(rootOpts *RootOptions, opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	sc, err := autoscroll.LoadScenarioFile(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded scenario %q with %d step(s)", sc.Name, len(sc.Steps))

	trace := autoscroll.Simulate(sc, newLogger(rootOpts, cmd.ErrOrStderr()))
	return formatter.Success(trace, func(w io.Writer) {
		writeTrace(w, trace, opts.Frames)
	})
}

// reportLoadError outputs a load failure and returns the matching exit error.
func reportLoadError(formatter *OutputFormatter, err error) error {
	var verr *autoscroll.ValidationError
	if errors.As(err, &verr) {
		if outErr := formatter.Error(ErrCodeValidation, verr.Error(), verr.Field); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "invalid input", err)
	}
	if outErr := formatter.Error(ErrCodeLoad, err.Error(), ""); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "load failed", err)
}

func writeTrace(w io.Writer, trace *autoscroll.Trace, frames bool) {
	fmt.Fprintf(w, "scenario %q: %d frame(s)\n", trace.Scenario, len(trace.Frames))
	if frames {
		for _, f := range trace.Frames {
			for _, s := range f.Scrolls {
				kind := "region"
				if s.Overflow {
					kind = "overflow"
				}
				fmt.Fprintf(w, "frame %4d  %-16s %-8s %+6.0f %+6.0f\n", f.Frame, s.Region, kind, s.DeltaX, s.DeltaY)
			}
		}
	}
	final := trace.Final()
	fmt.Fprintln(w, "final offsets:")
	for _, name := range slices.Sorted(maps.Keys(final)) {
		off := final[name]
		fmt.Fprintf(w, "  %-16s %8.0f %8.0f\n", name, off.X, off.Y)
	}
}
