package canape

import (
	"context"
	"fmt"
	"time"

	"github.com/roffe/gocanape/pkg/cnp"
)

// Script is a CASL script declared with Module.ExecuteScript.
type Script struct {
	c      *CANape
	handle cnp.ScriptHandle
	module cnp.ModuleHandle
}

func (s *Script) Handle() cnp.ScriptHandle {
	return s.handle
}

func (s *Script) State() (cnp.ScriptStatus, error) {
	return s.c.api.GetScriptState(s.c.handle, s.handle)
}

// Start (re)starts the script.
func (s *Script) Start() error {
	return s.c.api.StartScript(s.c.handle, s.handle, "", s.module)
}

// StartWithArgs starts the script with a command line.
func (s *Script) StartWithArgs(commandLine string) error {
	return s.c.api.StartScript(s.c.handle, s.handle, commandLine, s.module)
}

func (s *Script) Stop() error {
	return s.c.api.StopScript(s.c.handle, s.handle)
}

// Release removes the script from CANape's task list. Results must be
// read before.
func (s *Script) Release() error {
	return s.c.api.ReleaseScript(s.c.handle, s.handle)
}

// ResultValue is the value the script set with SetScriptResult.
func (s *Script) ResultValue() (float64, error) {
	return s.c.api.GetScriptResultValue(s.c.handle, s.handle)
}

func (s *Script) ResultString() (string, error) {
	return s.c.api.GetScriptResultString(s.c.handle, s.handle)
}

// Wait polls the script state every poll until the script finishes,
// fails or times out, or ctx is done.
func (s *Script) Wait(ctx context.Context, poll time.Duration) (cnp.ScriptStatus, error) {
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	t := time.NewTicker(poll)
	defer t.Stop()
	for {
		st, err := s.State()
		if err != nil {
			return st, err
		}
		if st.Done() {
			return st, nil
		}
		select {
		case <-ctx.Done():
			return st, fmt.Errorf("script %d still %s: %w", s.handle, st, ctx.Err())
		case <-t.C:
		}
	}
}
