package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/pkg/bar"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/spf13/cobra"
)

var recCmd = &cobra.Command{
	Use:   "rec",
	Short: "measurement recorders",
}

func init() {
	rootCmd.AddCommand(recCmd)
	recCmd.AddCommand(recListCmd, recDefineCmd, recStartCmd, recStopCmd)

	recDefineCmd.Flags().String("type", "mdf", "recorder type: mdf, blf or ilinkrt")
	recDefineCmd.Flags().String("file", "", "output file")
	recDefineCmd.Flags().StringSlice("item", nil, "module.object to record, repeatable")

	recStartCmd.Flags().Duration("duration", 10*time.Second, "how long to record")
	recStartCmd.Flags().Bool("discard", false, "do not save the recording")
	recStopCmd.Flags().Bool("discard", false, "do not save the recording")
}

func recorderType(s string) (cnp.RecorderType, error) {
	for _, t := range []cnp.RecorderType{cnp.RecorderTypeMDF, cnp.RecorderTypeBLF, cnp.RecorderTypeILinkRT} {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown recorder type %q", s)
}

var recListCmd = &cobra.Command{
	Use:   "list",
	Short: "list recorders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			recs, err := c.Recorders()
			if err != nil {
				return err
			}
			var selected cnp.RecorderID
			if r, err := c.SelectedRecorder(); err == nil {
				selected = r.ID()
			}
			for _, r := range recs {
				state, err := r.State()
				if err != nil {
					return err
				}
				enabled, err := r.IsEnabled()
				if err != nil {
					return err
				}
				file, err := r.MdfFilename()
				if err != nil {
					return err
				}
				mark := " "
				if r.ID() == selected {
					mark = yellow("*")
				}
				fmt.Fprintf(out, "%s %-20s %-10s %s %s\n", mark, r, state, onOff(enabled, "enabled", "disabled"), file)
			}
			return nil
		})
	},
}

var recDefineCmd = &cobra.Command{
	Use:   "define <name>",
	Short: "create a recorder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		typeName, _ := f.GetString("type")
		file, _ := f.GetString("file")
		items, _ := f.GetStringSlice("item")
		typ, err := recorderType(typeName)
		if err != nil {
			return err
		}
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			r, err := c.DefineRecorder(args[0], typ)
			if err != nil {
				return err
			}
			if file != "" {
				if err := r.SetMdfFilename(file); err != nil {
					return err
				}
			}
			for _, item := range items {
				module, object, ok := strings.Cut(item, ".")
				if !ok {
					return fmt.Errorf("item %q is not module.object", item)
				}
				m, err := c.ModuleByName(module)
				if err != nil {
					return err
				}
				if err := r.AddItem(m, object); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "defined %s recorder %s\n", typ, green(args[0]))
			return nil
		})
	},
}

var recStartCmd = &cobra.Command{
	Use:   "start <name>",
	Short: "start measurement and record for a while",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetDuration("duration")
		discard, _ := cmd.Flags().GetBool("discard")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			r, err := c.RecorderByName(args[0])
			if err != nil {
				return err
			}
			if err := r.Enable(); err != nil {
				return err
			}
			if err := r.Start(); err != nil {
				return err
			}
			if err := c.StartDataAcquisition(); err != nil {
				return err
			}
			spin := bar.Spinner("recording " + args[0])
			t := time.NewTicker(100 * time.Millisecond)
			defer t.Stop()
			deadline := time.After(duration)
		wait:
			for {
				select {
				case <-ctx.Done():
					break wait
				case <-deadline:
					break wait
				case <-t.C:
					spin.Add(1)
				}
			}
			spin.Finish()
			if err := c.StopDataAcquisition(); err != nil {
				return err
			}
			if err := r.Stop(!discard); err != nil {
				return err
			}
			file, err := r.MdfFilename()
			if err != nil {
				return err
			}
			if !discard {
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", green(file))
			}
			return ctx.Err()
		})
	},
}

var recStopCmd = &cobra.Command{
	Use:   "stop <name>",
	Short: "stop a running recorder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		discard, _ := cmd.Flags().GetBool("discard")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			r, err := c.RecorderByName(args[0])
			if err != nil {
				return err
			}
			return r.Stop(!discard)
		})
	},
}
