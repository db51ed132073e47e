package canape

import (
	"sync/atomic"
	"testing"

	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	c, fake, _ := newSession(t)

	var starts, stops, before atomic.Int32
	unsubStart := c.Subscribe(cnp.EventDataAcqStart, func() { starts.Add(1) })
	c.Subscribe(cnp.EventDataAcqStop, func() { stops.Add(1) })
	c.Subscribe(cnp.EventBeforeDataAcqStart, func() { before.Add(1) })

	require.NoError(t, c.StartDataAcquisition())
	require.NoError(t, c.StopDataAcquisition())
	assert.EqualValues(t, 1, starts.Load())
	assert.EqualValues(t, 1, stops.Load())
	assert.EqualValues(t, 1, before.Load())

	unsubStart()
	unsubStart()
	require.NoError(t, c.StartDataAcquisition())
	require.NoError(t, c.StopDataAcquisition())
	assert.EqualValues(t, 1, starts.Load())
	assert.EqualValues(t, 2, stops.Load())

	fake.Fire(cnp.EventCloseProject)
}

func TestSubscribeMultipleHandlers(t *testing.T) {
	c, fake, _ := newSession(t)

	var a, b atomic.Int32
	c.Subscribe(cnp.EventOpenProject, func() { a.Add(1) })
	unsubB := c.Subscribe(cnp.EventOpenProject, func() { b.Add(1) })

	fake.Fire(cnp.EventOpenProject)
	unsubB()
	fake.Fire(cnp.EventOpenProject)

	assert.EqualValues(t, 2, a.Load())
	assert.EqualValues(t, 1, b.Load())
}

func TestSubscribeAfterExit(t *testing.T) {
	c, fake, _ := newSession(t)

	var calls atomic.Int32
	c.Subscribe(cnp.EventCloseCANape, func() { calls.Add(1) })
	require.NoError(t, c.Exit(false))
	fake.Fire(cnp.EventCloseCANape)
	c.dispatch(cnp.EventCloseCANape)
	assert.Zero(t, calls.Load())
}

func TestDispatchUnknownEvent(t *testing.T) {
	c, _, _ := newSession(t)
	assert.NotPanics(t, func() {
		c.dispatch(cnp.EventCode(42))
	})
}
