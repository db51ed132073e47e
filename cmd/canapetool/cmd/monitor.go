package cmd

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jroimartin/gocui"
	canape "github.com/roffe/gocanape"
)

// monitor shows the reader channels full screen until q is pressed or
// ctx is done.
func monitor(ctx context.Context, r *canape.FifoReader, task *canape.EcuTask, interval time.Duration) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()

	g.SetManagerFunc(monitorLayout(task))
	if err := g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		return err
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
				return
			case <-t.C:
				g.Update(updateValues(r))
			}
		}
	}()

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func monitorLayout(task *canape.EcuTask) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		maxX, maxY := g.Size()
		if v, err := g.SetView("values", 0, 0, maxX-1, maxY-4); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = fmt.Sprintf("%s %s", task.Module(), task)
		}
		if v, err := g.SetView("help", 0, maxY-3, maxX-1, maxY-1); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = "Help"
			fmt.Fprint(v, "<Q, Ctrl-C> Quit")
		}
		return nil
	}
}

func updateValues(r *canape.FifoReader) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		v, err := g.View("values")
		if err != nil {
			return err
		}
		v.Clear()
		for _, name := range r.ChannelNames() {
			s, _ := r.Sample(name)
			value := "-"
			if !math.IsNaN(s.Value) {
				value = fmt.Sprintf("%g", s.Value)
			}
			fmt.Fprintf(v, " %-32s %16s  @ %.3fs\n", name, value, s.Elapsed().Seconds())
		}
		if err := r.Err(); err != nil {
			fmt.Fprintf(v, "\n error: %v\n", err)
		}
		return nil
	}
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
