package cmd

import (
	"context"
	"fmt"

	canape "github.com/roffe/gocanape"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "print CANape and project info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			dll, err := c.DLLVersion()
			if err != nil {
				return err
			}
			app, err := c.ApplicationVersion()
			if err != nil {
				return err
			}
			dir, err := c.ProjectDirectory()
			if err != nil {
				return err
			}
			n, err := c.ModuleCount()
			if err != nil {
				return err
			}
			state, err := c.MeasurementState()
			if err != nil {
				return err
			}
			mcd3, err := c.HasMCD3License()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-12s %s\n", bold("API:"), dll)
			fmt.Fprintf(out, "%-12s %s\n", bold("CANape:"), app)
			fmt.Fprintf(out, "%-12s %s\n", bold("Project:"), dir)
			fmt.Fprintf(out, "%-12s %d\n", bold("Modules:"), n)
			fmt.Fprintf(out, "%-12s %s\n", bold("Measurement:"), state)
			fmt.Fprintf(out, "%-12s %s\n", bold("MCD3:"), onOff(mcd3, "licensed", "not licensed"))
			return nil
		})
	},
}
