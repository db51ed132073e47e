package cnpfake

import (
	"strings"

	"github.com/roffe/gocanape/pkg/cnp"
)

// ScriptResult is what a simulated script run produces. The script
// reports ScrRunning for Polls state queries before reaching Status.
type ScriptResult struct {
	Status cnp.ScriptStatus
	Value  float64
	String string
	Polls  int
}

type script struct {
	text     string
	isFile   bool
	module   cnp.ModuleHandle
	state    cnp.ScriptStatus
	result   ScriptResult
	polls    int
	started  int
	released bool
}

// SetScriptRunner decides the outcome of every script executed from
// now on.
func (f *CANape) SetScriptRunner(fn func(script string, isFile bool) ScriptResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scriptRunner = fn
}

// script must be called with mu held.
func (f *CANape) script(fn string, s cnp.ScriptHandle) (*script, error) {
	sc, ok := f.scripts[s]
	if !ok || sc.released {
		return nil, cnp.NewError(fn, cnp.AEC_INVALID_SCR_HANDLE)
	}
	return sc, nil
}

func (sc *script) run() {
	sc.started++
	sc.polls = sc.result.Polls
	sc.state = cnp.ScrRunning
	if sc.polls == 0 {
		sc.state = sc.result.Status
	}
}

func (f *CANape) ExecuteScriptEx(h cnp.Handle, m cnp.ModuleHandle, scriptFile bool, text string) (cnp.ScriptHandle, error) {
	const fn = "Asap3ExecuteScriptEx"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	if m != cnp.InvalidModuleHandle {
		if _, err := f.module(fn, m); err != nil {
			return 0, err
		}
	}
	if strings.TrimSpace(text) == "" {
		return 0, cnp.NewError(fn, cnp.AEC_ERROR_DECALRE_SCR)
	}
	if scriptFile && !strings.HasSuffix(strings.ToLower(text), ".cns") {
		return 0, cnp.NewError(fn, cnp.AEC_ERR_OPEN_FILE)
	}
	sc := &script{text: text, isFile: scriptFile, module: m, result: f.scriptRunner(text, scriptFile)}
	sc.run()
	id := f.nextScript
	f.nextScript++
	f.scripts[id] = sc
	return id, nil
}

func (f *CANape) GetScriptState(h cnp.Handle, s cnp.ScriptHandle) (cnp.ScriptStatus, error) {
	const fn = "Asap3GetScriptState"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return 0, err
	}
	state := sc.state
	if sc.state == cnp.ScrRunning && sc.polls > 0 {
		sc.polls--
		if sc.polls == 0 {
			sc.state = sc.result.Status
		}
	}
	return state, nil
}

func (f *CANape) StartScript(h cnp.Handle, s cnp.ScriptHandle, commandLine string, m cnp.ModuleHandle) error {
	const fn = "Asap3StartScript"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return err
	}
	if sc.state == cnp.ScrRunning {
		return cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	sc.run()
	return nil
}

func (f *CANape) StopScript(h cnp.Handle, s cnp.ScriptHandle) error {
	const fn = "Asap3StopScript"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return err
	}
	if !sc.state.Done() {
		sc.state = cnp.ScrTerminated
	}
	return nil
}

func (f *CANape) ReleaseScript(h cnp.Handle, s cnp.ScriptHandle) error {
	const fn = "Asap3ReleaseScript"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return err
	}
	if sc.state == cnp.ScrRunning {
		return cnp.NewError(fn, cnp.AEC_REMOVE_SCR_HANDLE)
	}
	sc.released = true
	return nil
}

func (f *CANape) GetScriptResultValue(h cnp.Handle, s cnp.ScriptHandle) (float64, error) {
	const fn = "Asap3GetScriptResultValue"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return 0, err
	}
	if !sc.state.Done() {
		return 0, cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	return sc.result.Value, nil
}

func (f *CANape) GetScriptResultString(h cnp.Handle, s cnp.ScriptHandle) (string, error) {
	const fn = "Asap3GetScriptResultString"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return "", err
	}
	sc, err := f.script(fn, s)
	if err != nil {
		return "", err
	}
	if !sc.state.Done() {
		return "", cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	return sc.result.String, nil
}
