package canape

import (
	"math"
	"testing"
	"time"

	"github.com/roffe/gocanape/internal/cnpfake"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

func newReader(t *testing.T) (*CANape, *cnpfake.CANape, *FifoReader) {
	t.Helper()
	c, fake, m := newSession(t)
	task, err := m.EcuTask("10ms")
	require.NoError(t, err)
	r := NewFifoReader(c, task, time.Millisecond)
	t.Cleanup(func() {
		r.Close()
	})
	require.NoError(t, r.AddChannel("channel1", 0, false))
	require.NoError(t, r.AddChannel("channel2", 0, false))
	return c, fake, r
}

func TestFifoReaderChannels(t *testing.T) {
	_, _, r := newReader(t)

	require.NoError(t, r.AddChannel("channel1", 0, false))
	assert.Equal(t, []string{"channel1", "channel2"}, r.ChannelNames())

	v, ok := r.Value("channel1")
	assert.True(t, ok)
	assert.True(t, math.IsNaN(v))
	_, ok = r.Value("channel3")
	assert.False(t, ok)

	assert.ErrorIs(t, r.AddChannel("missing", 0, false), cnp.AEC_UNKNOWN_OBJECT)

	r.ClearChannels()
	assert.Empty(t, r.ChannelNames())
	_, ok = r.Sample("channel1")
	assert.False(t, ok)
}

func TestFifoReaderFollowsMeasurement(t *testing.T) {
	c, fake, r := newReader(t)

	require.NoError(t, c.StartDataAcquisition())
	fake.PushSample("XCPsim", 1, 100, 1, math.NaN())
	fake.PushSample("XCPsim", 1, 200, math.NaN(), 5)

	require.Eventually(t, func() bool {
		v1, _ := r.Value("channel1")
		v2, _ := r.Value("channel2")
		return v1 == 1 && v2 == 5
	}, waitFor, time.Millisecond)

	s, ok := r.Sample("channel1")
	require.True(t, ok)
	assert.Equal(t, cnp.Time(100), s.Timestamp)
	s, ok = r.Sample("channel2")
	require.True(t, ok)
	assert.Equal(t, cnp.Time(200), s.Timestamp)

	require.NoError(t, c.StopDataAcquisition())
	r.Stop()
	fake.PushSample("XCPsim", 1, 300, 7, 7)
	time.Sleep(10 * time.Millisecond)
	v, _ := r.Value("channel1")
	assert.Equal(t, 1.0, v)
	assert.NoError(t, r.Err())
}

func TestFifoReaderOverrun(t *testing.T) {
	c, fake, m := newSession(t)
	task, err := m.EcuTask("10ms")
	require.NoError(t, err)
	r := NewFifoReader(c, task, time.Millisecond)
	defer r.Close()
	require.NoError(t, r.AddChannel("channel1", 0, false))

	fake.SetOverrun("XCPsim", 1)
	r.Start()
	fake.PushSample("XCPsim", 1, 100, 1)
	require.Eventually(t, func() bool {
		v, _ := r.Value("channel1")
		return v == 1
	}, waitFor, time.Millisecond)

	fake.SetOverrun("XCPsim", 1)
	fake.PushSample("XCPsim", 1, 200, 2)
	require.Eventually(t, func() bool {
		v, _ := r.Value("channel1")
		return v == 2
	}, waitFor, time.Millisecond)
	assert.NoError(t, r.Err())
	assert.NoError(t, task.CheckOverrun(false))
}

func TestFifoReaderInvalidTask(t *testing.T) {
	c, _, m := newSession(t)
	r := NewFifoReader(c, &EcuTask{Description: "bogus", ID: 99, m: m}, 0)
	defer r.Close()

	r.Start()
	require.Eventually(t, func() bool {
		return r.Err() != nil
	}, waitFor, time.Millisecond)
	assert.ErrorIs(t, r.Err(), cnp.AEC_ERROR_INVALID_TASKID)
}

func TestFifoReaderRestart(t *testing.T) {
	_, _, r := newReader(t)
	r.Start()
	r.Start()
	r.Stop()
	r.Stop()
	assert.NoError(t, r.Err())
}

func TestFifoReaderClose(t *testing.T) {
	c, _, r := newReader(t)
	r.Start()
	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.AddChannel("channel3", 0, false), ErrReaderClosed)

	// Measurement events no longer reach a closed reader.
	require.NoError(t, c.StartDataAcquisition())
	require.NoError(t, c.StopDataAcquisition())
	r.Start()
	assert.NoError(t, r.Close())
}

func TestFifoReaderNoValuesSampledKeepsRunning(t *testing.T) {
	c, fake, r := newReader(t)

	fake.Fail("Asap3CheckOverrun", cnp.AEC_NO_VALUES_SAMPLED, cnp.AEC_NO_VALUES_SAMPLED)
	fake.Fail("Asap3GetFifoLevel", cnp.AEC_NO_VALUES_SAMPLED)
	require.NoError(t, c.StartDataAcquisition())
	fake.PushSample("XCPsim", 1, 100, 3, 4)

	require.Eventually(t, func() bool {
		v1, _ := r.Value("channel1")
		v2, _ := r.Value("channel2")
		return v1 == 3 && v2 == 4
	}, waitFor, time.Millisecond)
	assert.NoError(t, r.Err())
	assert.GreaterOrEqual(t, fake.CallCount("Asap3CheckOverrun"), 3)
}
