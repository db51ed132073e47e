package canape

import (
	"testing"

	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineRecorder(t *testing.T) {
	c, _, _ := newSession(t)

	n, err := c.RecorderCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	mdf, err := c.DefineRecorder("Recorder 1", cnp.RecorderTypeMDF)
	require.NoError(t, err)
	blf, err := c.DefineRecorder("Bus log", cnp.RecorderTypeBLF)
	require.NoError(t, err)

	n, err = c.RecorderCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := c.Recorders()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, mdf.ID(), all[0].ID())
	assert.Equal(t, blf.ID(), all[1].ID())

	byName, err := c.RecorderByName("Bus log")
	require.NoError(t, err)
	assert.Equal(t, blf.ID(), byName.ID())
	assert.Equal(t, "Bus log", byName.String())

	file, err := blf.MdfFilename()
	require.NoError(t, err)
	assert.Equal(t, "Bus log.blf", file)

	selected, err := c.SelectedRecorder()
	require.NoError(t, err)
	assert.Equal(t, mdf.ID(), selected.ID())
	require.NoError(t, blf.Select())
	selected, err = c.SelectedRecorder()
	require.NoError(t, err)
	assert.Equal(t, blf.ID(), selected.ID())
}

func TestDefineRecorderErrors(t *testing.T) {
	c, fake, _ := newSession(t)

	_, err := c.DefineRecorder("Recorder 1", cnp.RecorderTypeMDF)
	require.NoError(t, err)
	_, err = c.DefineRecorder("Recorder 1", cnp.RecorderTypeMDF)
	assert.ErrorIs(t, err, cnp.AEC_RECORDER_ALLREADY_EXISTS)

	_, err = c.DefineRecorder("ILink", cnp.RecorderTypeILinkRT)
	assert.ErrorIs(t, err, cnp.ACE_NOT_MISSING_LICENSE)
	fake.SetMCD3License(true)
	_, err = c.DefineRecorder("ILink", cnp.RecorderTypeILinkRT)
	assert.NoError(t, err)

	_, err = c.RecorderByIndex(5)
	assert.ErrorIs(t, err, cnp.AEC_RECORDER_INDEX_OUTOFRANGE)
	_, err = c.RecorderByIndex(-1)
	assert.ErrorIs(t, err, cnp.AEC_RECORDER_INDEX_OUTOFRANGE)
	_, err = c.RecorderByName("missing")
	assert.ErrorIs(t, err, cnp.AEC_RECORDER_NOT_FOUND)
}

func TestRecorderLifecycle(t *testing.T) {
	c, fake, m := newSession(t)

	r, err := c.DefineRecorder("Recorder 1", cnp.RecorderTypeMDF)
	require.NoError(t, err)

	require.NoError(t, r.SetMdfFilename(`C:\Measurements\run1.mf4`))
	file, err := r.MdfFilename()
	require.NoError(t, err)
	assert.Equal(t, `C:\Measurements\run1.mf4`, file)

	require.NoError(t, r.AddItem(m, "channel1"))
	assert.ErrorIs(t, r.AddItem(m, "missing"), cnp.AEC_UNKNOWN_OBJECT)

	require.NoError(t, r.Disable())
	enabled, err := r.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.ErrorIs(t, r.Start(), cnp.AEC_ILLEGAL_OPERATION)
	require.NoError(t, r.Enable())

	steps := []struct {
		name string
		do   func() error
		want cnp.RecorderState
	}{
		{"start", r.Start, cnp.RecRunning},
		{"pause", func() error { return r.Pause(true) }, cnp.RecPaused},
		{"resume", func() error { return r.Pause(false) }, cnp.RecRunning},
		{"stop", func() error { return r.Stop(true) }, cnp.RecSuspended},
	}
	for _, s := range steps {
		require.NoError(t, s.do(), s.name)
		state, err := r.State()
		require.NoError(t, err)
		assert.Equal(t, s.want, state, s.name)
	}

	rec := fake.Recorder("Recorder 1")
	require.NotNil(t, rec)
	assert.Equal(t, []string{"XCPsim.channel1"}, rec.Items)
	assert.Equal(t, 1, rec.Saved)

	require.NoError(t, r.Remove())
	_, err = r.Name()
	assert.ErrorIs(t, err, cnp.AEC_RECORDER_NOT_FOUND)
	assert.Contains(t, r.String(), "Recorder(0x")
}
