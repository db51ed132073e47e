package cmd

import (
	"context"
	"fmt"
	"time"

	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/pkg/bar"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptRunCmd)
	f := scriptRunCmd.Flags()
	f.BoolP("file", "f", false, "the script argument is a .cns file")
	f.Duration("timeout", time.Minute, "give up waiting after")
}

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "CASL scripts",
}

var scriptRunCmd = &cobra.Command{
	Use:   "run <module> <script>",
	Short: "run a script and print its result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		isFile, _ := f.GetBool("file")
		timeout, _ := f.GetDuration("timeout")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.ModuleByName(args[0])
			if err != nil {
				return err
			}
			s, err := m.ExecuteScript(args[1], isFile)
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Release(); err != nil {
					logger.Warn("failed to release script", zap.Error(err))
				}
			}()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			spin := bar.Spinner("script running")
			done := make(chan struct{})
			go func() {
				t := time.NewTicker(100 * time.Millisecond)
				defer t.Stop()
				for {
					select {
					case <-done:
						return
					case <-t.C:
						spin.Add(1)
					}
				}
			}()
			state, err := s.Wait(ctx, 50*time.Millisecond)
			close(done)
			spin.Finish()
			if err != nil {
				s.Stop()
				return err
			}

			out := cmd.OutOrStdout()
			switch state {
			case cnp.ScrFinishedReturn:
				v, err := s.ResultValue()
				if err != nil {
					return err
				}
				str, err := s.ResultString()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s value=%g string=%q\n", green(state), v, str)
			case cnp.ScrFailure, cnp.ScrTimeout:
				return fmt.Errorf("script %s", red(state))
			default:
				fmt.Fprintln(out, yellow(state))
			}
			return nil
		})
	},
}
