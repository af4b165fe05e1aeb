package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcdio"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	xStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	zStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newViewCommand() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Render a signal's recorded transitions as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vcd, err := vcdio.LoadFromPath(args[0])
			if err != nil {
				return err
			}

			v, err := findByReference(vcd, reference)
			if err != nil {
				return usageError{err}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTransitions(v))
			return nil
		},
	}

	cmd.Flags().StringVar(&reference, "signal", "", "reference name of the signal to render (required)")
	cmd.MarkFlagRequired("signal")
	return cmd
}

func findByReference(vcd *model.VCD, reference string) (*model.Variable, error) {
	for _, v := range vcd.Variables {
		if v.Reference == reference {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no signal with reference %q", reference)
}

func renderTransitions(v *model.Variable) string {
	times := make([]int, 0, len(v.Transitions))
	for t := range v.Transitions {
		times = append(times, t)
	}
	sort.Ints(times)

	out := headerStyle.Render(fmt.Sprintf("%s (%s, %d bit)", v.Reference, v.VarType, v.BitWidth)) + "\n"
	for _, t := range times {
		out += fmt.Sprintf("%6d  %s\n", t, styleValue(v.Transitions[t]))
	}
	return out
}

func styleValue(lv model.LogicalValue) string {
	switch {
	case lv.IsX():
		return xStyle.Render("x")
	case lv.Kind == model.KindZ:
		return zStyle.Render("z")
	default:
		return valueStyle.Render(lv.String())
	}
}
