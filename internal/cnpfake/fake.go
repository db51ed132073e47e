// Package cnpfake simulates a running CANape behind the cnp.API
// interface so the façade and the CLI can be tested without Windows.
package cnpfake

import (
	"strings"
	"sync"

	"github.com/roffe/gocanape/pkg/cnp"
)

// InitParams records the arguments of the last Asap3Init5 call.
type InitParams struct {
	ResponseTimeout uint32
	WorkingDir      string
	FifoSize        uint32
	SampleSize      uint32
	DebugMode       bool
	ClearDeviceList bool
	HexMode         bool
	ModalMode       bool
}

// CANape is an in-memory CANape. The zero value is not usable, use New.
type CANape struct {
	mu sync.Mutex

	version cnp.Version
	app     cnp.AppVersion

	handle     cnp.Handle
	nextHandle cnp.Handle
	running    bool
	closed     bool
	exits      []bool
	init       InitParams

	cna         string
	interactive bool
	mcd3        bool
	debugWindow int
	networks    map[string]bool

	databases map[string]*Database
	devices   []*Module
	modules   []*Module

	recorders    []*Recorder
	nextRecorder cnp.RecorderID
	selected     cnp.RecorderID

	scripts      map[cnp.ScriptHandle]*script
	nextScript   cnp.ScriptHandle
	scriptRunner func(script string, isFile bool) ScriptResult

	measuring bool
	callbacks map[cnp.EventCode]cnp.CallbackFunc

	failures map[string][]cnp.ErrorCode
	calls    []string
}

// New returns a stopped CANape reporting DLL version 2.3.1.
func New() *CANape {
	return &CANape{
		version:      cnp.Version{Main: cnp.APIMainVersion, Sub: cnp.APISubVersion, Release: cnp.APIRelease, OSVersion: "Windows 10", OSRelease: 19045},
		app:          cnp.AppVersion{Main: 21, Sub: 0, ServicePack: 1, Application: "CANape"},
		nextHandle:   0x4a10,
		nextRecorder: 0x7f00,
		nextScript:   1,
		networks:     make(map[string]bool),
		databases:    make(map[string]*Database),
		scripts:      make(map[cnp.ScriptHandle]*script),
		callbacks:    make(map[cnp.EventCode]cnp.CallbackFunc),
		failures:     make(map[string][]cnp.ErrorCode),
		scriptRunner: func(string, bool) ScriptResult {
			return ScriptResult{Status: cnp.ScrFinishedReturn}
		},
	}
}

var _ cnp.API = (*CANape)(nil)

// Fail makes the next calls of the named export (for example
// "Asap3Init5") fail with the given codes, one per call.
func (f *CANape) Fail(fn string, codes ...cnp.ErrorCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[fn] = append(f.failures[fn], codes...)
}

// Calls returns the exports called so far, in order.
func (f *CANape) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallCount counts the calls of one export.
func (f *CANape) CallCount(fn string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == fn {
			n++
		}
	}
	return n
}

// Init returns the arguments of the last Asap3Init5 call.
func (f *CANape) Init() InitParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.init
}

// Running reports whether a session is open.
func (f *CANape) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// Exits returns the closeCANape argument of every Asap3Exit2 call.
func (f *CANape) Exits() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.exits...)
}

// Closed reports whether Close was called.
func (f *CANape) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// AddNetwork declares a network known to the project.
func (f *CANape) AddNetwork(name string, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.networks[name] = active
}

// SetMCD3License sets the answer of Asap3HasMCD3License.
func (f *CANape) SetMCD3License(available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mcd3 = available
}

// DebugWindowCount is the number of Asap3PopupDebugWindow calls.
func (f *CANape) DebugWindowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.debugWindow
}

// Fire delivers event to the registered callback as CANape would from
// its own thread.
func (f *CANape) Fire(event cnp.EventCode) {
	f.mu.Lock()
	fn := f.callbacks[event]
	f.mu.Unlock()
	if fn != nil {
		fn(event)
	}
}

// lock enters the simulator for one export call. The returned func
// must always be called.
func (f *CANape) lock(fn string, h cnp.Handle) (func(), error) {
	f.mu.Lock()
	f.calls = append(f.calls, fn)
	if err := f.failure(fn); err != nil {
		return f.mu.Unlock, err
	}
	if f.closed {
		return f.mu.Unlock, cnp.ErrClosed
	}
	if !f.running || h != f.handle {
		return f.mu.Unlock, cnp.NewError(fn, cnp.AEC_INVALID_ASAP3_HDL)
	}
	return f.mu.Unlock, nil
}

// failure must be called with mu held.
func (f *CANape) failure(fn string) error {
	if q := f.failures[fn]; len(q) > 0 {
		f.failures[fn] = q[1:]
		return cnp.NewError(fn, q[0])
	}
	return nil
}

func (f *CANape) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *CANape) GetVersion() (cnp.Version, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Asap3GetVersion")
	if err := f.failure("Asap3GetVersion"); err != nil {
		return cnp.Version{}, err
	}
	return f.version, nil
}

func (f *CANape) Init5(responseTimeout uint32, workingDir string, fifoSize, sampleSize uint32, debugMode, clearDeviceList, hexMode, modalMode bool) (cnp.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Asap3Init5")
	if err := f.failure("Asap3Init5"); err != nil {
		return 0, err
	}
	if f.closed {
		return 0, cnp.ErrClosed
	}
	if workingDir == "" {
		return 0, cnp.NewError("Asap3Init5", cnp.AEC_WORKDIR_ACCESS_FAILED)
	}
	f.init = InitParams{
		ResponseTimeout: responseTimeout,
		WorkingDir:      workingDir,
		FifoSize:        fifoSize,
		SampleSize:      sampleSize,
		DebugMode:       debugMode,
		ClearDeviceList: clearDeviceList,
		HexMode:         hexMode,
		ModalMode:       modalMode,
	}
	f.handle = f.nextHandle
	f.nextHandle++
	f.running = true
	f.measuring = false
	f.modules = nil
	if !clearDeviceList {
		f.modules = append(f.modules, f.devices...)
	}
	return f.handle, nil
}

func (f *CANape) Exit2(h cnp.Handle, closeCANape bool) error {
	unlock, err := f.lock("Asap3Exit2", h)
	defer unlock()
	if err != nil {
		return err
	}
	f.exits = append(f.exits, closeCANape)
	f.running = false
	f.measuring = false
	f.callbacks = make(map[cnp.EventCode]cnp.CallbackFunc)
	for _, s := range f.scripts {
		s.released = true
	}
	return nil
}

func (f *CANape) RegisterCallBack(h cnp.Handle, event cnp.EventCode, fn cnp.CallbackFunc) error {
	unlock, err := f.lock("Asap3RegisterCallBack", h)
	defer unlock()
	if err != nil {
		return err
	}
	if _, ok := f.callbacks[event]; ok {
		return cnp.NewError("Asap3RegisterCallBack", cnp.ACE_EVENT_ALLREADY_REGISERED)
	}
	f.callbacks[event] = fn
	return nil
}

func (f *CANape) UnRegisterCallBack(h cnp.Handle, event cnp.EventCode) error {
	unlock, err := f.lock("Asap3UnRegisterCallBack", h)
	defer unlock()
	if err != nil {
		return err
	}
	delete(f.callbacks, event)
	return nil
}

func (f *CANape) GetApplicationVersion(h cnp.Handle) (cnp.AppVersion, error) {
	unlock, err := f.lock("Asap3GetApplicationVersion", h)
	defer unlock()
	if err != nil {
		return cnp.AppVersion{}, err
	}
	return f.app, nil
}

func (f *CANape) GetProjectDirectory(h cnp.Handle) (string, error) {
	unlock, err := f.lock("Asap3GetProjectDirectory", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	return f.init.WorkingDir, nil
}

func (f *CANape) SetInteractiveMode(h cnp.Handle, mode bool) error {
	unlock, err := f.lock("Asap3SetInteractiveMode", h)
	defer unlock()
	if err != nil {
		return err
	}
	f.interactive = mode
	return nil
}

func (f *CANape) GetInteractiveMode(h cnp.Handle) (bool, error) {
	unlock, err := f.lock("Asap3GetInteractiveMode", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	return f.interactive, nil
}

func (f *CANape) PopupDebugWindow(h cnp.Handle) error {
	unlock, err := f.lock("Asap3PopupDebugWindow", h)
	defer unlock()
	if err != nil {
		return err
	}
	f.debugWindow++
	return nil
}

func (f *CANape) IsNetworkActivated(h cnp.Handle, name string) (bool, error) {
	unlock, err := f.lock("Asap3IsNetworkActivated", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	active, ok := f.networks[name]
	if !ok {
		return false, cnp.NewError("Asap3IsNetworkActivated", cnp.AEC_NETWORK_NOT_FOUND)
	}
	return active, nil
}

func (f *CANape) ActivateNetwork(h cnp.Handle, name string, activate bool) error {
	unlock, err := f.lock("Asap3ActivateNetwork", h)
	defer unlock()
	if err != nil {
		return err
	}
	if _, ok := f.networks[name]; !ok {
		return cnp.NewError("Asap3ActivateNetwork", cnp.AEC_NETWORK_NOT_FOUND)
	}
	f.networks[name] = activate
	return nil
}

func (f *CANape) GetMeasurementState(h cnp.Handle) (cnp.MeasurementState, error) {
	unlock, err := f.lock("Asap3GetMeasurementState", h)
	defer unlock()
	if err != nil {
		return cnp.MeasurementStopped, err
	}
	if f.measuring {
		return cnp.MeasurementRunning, nil
	}
	return cnp.MeasurementStopped, nil
}

func (f *CANape) HasMCD3License(h cnp.Handle) (bool, error) {
	unlock, err := f.lock("Asap3HasMCD3License", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	return f.mcd3, nil
}

func (f *CANape) GetCNAFilename(h cnp.Handle) (string, error) {
	unlock, err := f.lock("Asap3GetCNAFilename", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	return f.cna, nil
}

func (f *CANape) LoadCNAFile(h cnp.Handle, filename string) error {
	unlock, err := f.lock("Asap3LoadCNAFile", h)
	defer unlock()
	if err != nil {
		return err
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".cna") {
		return cnp.NewError("Asap3LoadCNAFile", cnp.AEC_CNFG_FILE_NOT_FOUND)
	}
	if f.measuring {
		return cnp.NewError("Asap3LoadCNAFile", cnp.ACE_NOT_AVAILABLE_WHILE_ACQ)
	}
	f.cna = filename
	return nil
}
