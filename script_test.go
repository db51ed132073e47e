package canape

import (
	"context"
	"testing"
	"time"

	"github.com/roffe/gocanape/internal/cnpfake"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteScript(t *testing.T) {
	_, fake, m := newSession(t)
	fake.SetScriptRunner(func(script string, isFile bool) cnpfake.ScriptResult {
		return cnpfake.ScriptResult{Status: cnp.ScrFinishedReturn, Value: 42, String: "done", Polls: 2}
	})

	s, err := m.ExecuteScript(`Write("hello");`, false)
	require.NoError(t, err)

	state, err := s.State()
	require.NoError(t, err)
	assert.Equal(t, cnp.ScrRunning, state)

	_, err = s.ResultValue()
	assert.ErrorIs(t, err, cnp.AEC_ILLEGAL_OPERATION)

	state, err = s.Wait(context.Background(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, cnp.ScrFinishedReturn, state)

	v, err := s.ResultValue()
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	str, err := s.ResultString()
	require.NoError(t, err)
	assert.Equal(t, "done", str)

	require.NoError(t, s.Release())
	_, err = s.State()
	assert.ErrorIs(t, err, cnp.AEC_INVALID_SCR_HANDLE)
}

func TestExecuteScriptErrors(t *testing.T) {
	_, _, m := newSession(t)

	tests := []struct {
		name   string
		script string
		isFile bool
		want   cnp.ErrorCode
	}{
		{"empty", " ", false, cnp.AEC_ERROR_DECALRE_SCR},
		{"not a script file", `C:\scripts\run.txt`, true, cnp.AEC_ERR_OPEN_FILE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ExecuteScript(tt.script, tt.isFile)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScriptRestart(t *testing.T) {
	_, fake, m := newSession(t)

	s, err := m.ExecuteScript(`C:\scripts\calibrate.cns`, true)
	require.NoError(t, err)
	state, err := s.Wait(context.Background(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, cnp.ScrFinishedReturn, state)

	require.NoError(t, s.StartWithArgs("-fast"))
	require.NoError(t, s.Start())
	assert.Equal(t, 2, fake.CallCount("Asap3StartScript"))
	require.NoError(t, s.Release())
}

func TestScriptWaitCancelled(t *testing.T) {
	_, fake, m := newSession(t)
	fake.SetScriptRunner(func(string, bool) cnpfake.ScriptResult {
		return cnpfake.ScriptResult{Status: cnp.ScrFinishedReturn, Polls: 1 << 20}
	})

	s, err := m.ExecuteScript(`while (1) { Sleep(100); }`, false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	state, err := s.Wait(ctx, 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, cnp.ScrRunning, state)

	require.NoError(t, s.Stop())
	state, err = s.State()
	require.NoError(t, err)
	assert.Equal(t, cnp.ScrTerminated, state)
	assert.Equal(t, 1, fake.CallCount("Asap3StopScript"))
}
