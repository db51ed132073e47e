package cmd

import (
	"context"
	"fmt"

	canape "github.com/roffe/gocanape"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cnaCmd)
	cnaCmd.AddCommand(cnaLoadCmd, cnaShowCmd)
}

var cnaCmd = &cobra.Command{
	Use:   "cna",
	Short: "CANape configuration files",
}

var cnaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "print the loaded configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			name, err := c.CNAFilename()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		})
	},
}

var cnaLoadCmd = &cobra.Command{
	Use:   "load <file.cna>",
	Short: "load a configuration file into the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			if err := c.LoadCNAFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %s\n", green(args[0]))
			return nil
		})
	},
}
