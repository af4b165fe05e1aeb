// Command vcdload loads a Value Change Dump file and either re-emits it
// as structured data or renders a transition table for one signal: named
// exit codes, errors printed to stderr, success printed to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit code constants.
const (
	ExitSuccess      = 0
	ExitInvalidUsage = 1
	ExitLoadError    = 2
	ExitRenderError  = 3
)

func main() {
	root := &cobra.Command{
		Use:           "vcdload",
		Short:         "Load and inspect Value Change Dump waveform files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLoadCommand())
	root.AddCommand(newViewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if _, ok := err.(usageError); ok {
		return ExitInvalidUsage
	}
	return ExitLoadError
}

// usageError marks a cobra-surfaced error as an argument/flag problem
// rather than a load or render failure, so main can pick the exit code
// without inspecting error text.
type usageError struct{ error }
