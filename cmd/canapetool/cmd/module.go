package cmd

import (
	"context"
	"fmt"
	"sort"

	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/spf13/cobra"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "project device commands",
}

func init() {
	rootCmd.AddCommand(moduleCmd)
	moduleCmd.AddCommand(moduleListCmd, moduleCreateCmd, moduleShowCmd)

	f := moduleCreateCmd.Flags()
	f.String("driver", "XCP", "driver type (XCP, CCP, CAN...)")
	f.String("channel", "CAN1", "interface channel (CAN1, FLX1, TCP...)")
	f.Bool("online", false, "switch the ECU online")
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the modules of the project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			modules, err := c.Modules()
			if err != nil {
				return err
			}
			for _, m := range modules {
				driver, err := m.DriverType()
				if err != nil {
					return err
				}
				online, err := m.IsECUOnline()
				if err != nil {
					return err
				}
				active, err := m.IsActive()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%3d %-20s %-8s %s %s\n", m.Handle(), m, driver,
					onOff(online, "online", "offline"), onOff(active, "active", "inactive"))
			}
			return nil
		})
	},
}

var moduleCreateCmd = &cobra.Command{
	Use:   "create <name> <database>",
	Short: "add a module to the project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		driverName, _ := f.GetString("driver")
		channelName, _ := f.GetString("channel")
		online, _ := f.GetBool("online")
		driver, err := cnp.ParseDriverType(driverName)
		if err != nil {
			return err
		}
		channel, err := cnp.ParseChannel(channelName)
		if err != nil {
			return err
		}
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.CreateModule(args[0], args[1], driver, channel, online, -1)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (handle %d)\n", green(args[0]), m.Handle())
			return nil
		})
	},
}

var moduleShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "print module details and DAQ tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.ModuleByName(args[0])
			if err != nil {
				return err
			}
			db, err := m.DatabasePath()
			if err != nil {
				return err
			}
			comm, err := m.CommunicationType()
			if err != nil {
				return err
			}
			objects, err := m.DatabaseObjects()
			if err != nil {
				return err
			}
			resume, err := m.HasResumeMode()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s %s\n", bold("Database:"), db)
			fmt.Fprintf(out, "%-10s %s\n", bold("Comm:"), comm)
			fmt.Fprintf(out, "%-10s %d\n", bold("Objects:"), len(objects))
			fmt.Fprintf(out, "%-10s %s\n", bold("Resume:"), onOff(resume, "supported", "unsupported"))

			tasks, err := m.EcuTasks()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(tasks))
			for name := range tasks {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(out, bold("Tasks:"))
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", tasks[name])
			}
			return nil
		})
	},
}
