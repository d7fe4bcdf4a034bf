package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/shouldupdate/internal/app"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	var req app.FingerprintRequest

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a digest for every watched path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.ConfigPath = configPath(cmd)
			results, err := c.app.Fingerprint(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.Side, r.Path, r.Digest)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Props, "props", "", "Props document")
	cmd.Flags().StringVar(&req.State, "state", "", "State document")
	return cmd
}
