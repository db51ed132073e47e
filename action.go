package canape

import (
	"context"
	"errors"
)

// Action is a unit of work on an open session. CANape is locked for its
// user while a session is open, so work is bundled into actions and run
// in one short session.
type Action func(ctx context.Context, c *CANape) error

// Chain runs actions in order within the same session, stopping at the
// first error.
func Chain(actions ...Action) Action {
	return func(ctx context.Context, c *CANape) error {
		for _, a := range actions {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := a(ctx, c); err != nil {
				return err
			}
		}
		return nil
	}
}

// Also returns an action running a and then next.
func (a Action) Also(next Action) Action {
	return Chain(a, next)
}

// Run opens a session on projectPath, runs action and exits again,
// closing CANape when closeCANape is set. The session is exited even
// when action fails.
func Run(ctx context.Context, projectPath string, closeCANape bool, action Action, opts ...Opt) error {
	c, err := Open(ctx, projectPath, opts...)
	if err != nil {
		return err
	}
	err = action(ctx, c)
	if xerr := c.Exit(closeCANape); xerr != nil {
		err = errors.Join(err, xerr)
	}
	return err
}
