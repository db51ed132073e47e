package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	canape "github.com/roffe/gocanape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(daqCmd)
	daqCmd.AddCommand(daqWatchCmd)
	f := daqWatchCmd.Flags()
	f.Duration("duration", 0, "stop after, 0 runs until interrupted")
	f.Duration("interval", 500*time.Millisecond, "print interval")
	f.Duration("refresh", 5*time.Millisecond, "FIFO poll period")
	f.Bool("ui", false, "full screen view")
}

var daqCmd = &cobra.Command{
	Use:   "daq",
	Short: "data acquisition",
}

var daqWatchCmd = &cobra.Command{
	Use:   "watch <module> <task> <channel>...",
	Short: "measure channels and print their latest values",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		duration, _ := f.GetDuration("duration")
		interval, _ := f.GetDuration("interval")
		refresh, _ := f.GetDuration("refresh")
		ui, _ := f.GetBool("ui")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.ModuleByName(args[0])
			if err != nil {
				return err
			}
			task, err := m.EcuTask(args[1])
			if err != nil {
				return err
			}
			r := canape.NewFifoReader(c, task, refresh)
			defer r.Close()
			for _, name := range args[2:] {
				if err := r.AddChannel(name, 0, false); err != nil {
					return err
				}
			}

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if err := c.StartDataAcquisition(); err != nil {
				return err
			}
			defer func() {
				if err := c.StopDataAcquisition(); err != nil {
					logger.Warn("failed to stop measurement", zap.Error(err))
				}
			}()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return watchReader(gctx, r)
			})
			if ui {
				g.Go(func() error {
					defer cancel()
					return monitor(gctx, r, task, interval)
				})
			} else {
				g.Go(func() error {
					return printValues(gctx, cmd.OutOrStdout(), r, interval)
				})
			}
			return g.Wait()
		})
	},
}

// watchReader fails the group when the reader stops on an error.
func watchReader(ctx context.Context, r *canape.FifoReader) error {
	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := r.Err(); err != nil {
				return err
			}
		}
	}
}

func printValues(ctx context.Context, out io.Writer, r *canape.FifoReader, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			fmt.Fprintln(out, formatSamples(r))
		}
	}
}

func formatSamples(r *canape.FifoReader) string {
	var sb strings.Builder
	var latest time.Duration
	for _, name := range r.ChannelNames() {
		s, _ := r.Sample(name)
		if e := s.Elapsed(); e > latest {
			latest = e
		}
		v := "-"
		if !math.IsNaN(s.Value) {
			v = green(fmt.Sprintf("%g", s.Value))
		}
		fmt.Fprintf(&sb, " %s=%s", name, v)
	}
	return fmt.Sprintf("%10.3fs%s", latest.Seconds(), sb.String())
}
