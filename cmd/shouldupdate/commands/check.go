package commands

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.trai.ch/shouldupdate/internal/app"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (c *CLI) newCheckCmd() *cobra.Command {
	var req app.CheckRequest
	var explain bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print true when any watched path differs between the snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.ConfigPath = configPath(cmd)
			result, err := c.app.Check(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.ShouldUpdate)
			if explain && result.ShouldUpdate {
				writeChange(out, result)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.PropsBefore, "props-before", "", "Current props document")
	cmd.Flags().StringVar(&req.PropsAfter, "props-after", "", "Next props document")
	cmd.Flags().StringVar(&req.StateBefore, "state-before", "", "Current state document")
	cmd.Flags().StringVar(&req.StateAfter, "state-after", "", "Next state document")
	cmd.Flags().BoolVar(&req.Shallow, "shallow", false, "Compare by reference, overriding the watch file")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show the first changed path and both values")
	return cmd
}

func writeChange(out io.Writer, result app.CheckResult) {
	change := result.Change
	fmt.Fprintf(out, "changed: %s %s (%s)\n", change.Side, change.Path, result.Dependencies.Mode)
	fmt.Fprintf(out, "before: %s", dumpValue(change.Before, change.BeforePresent))
	fmt.Fprintf(out, "after: %s", dumpValue(change.After, change.AfterPresent))
}

func dumpValue(v any, present bool) string {
	if !present {
		return "<absent>\n"
	}
	return dumper.Sdump(v)
}
