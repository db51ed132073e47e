//go:build windows

package cnp

import (
	"fmt"
	"math"
	"sync"
	"syscall"
	"unsafe"

	"go.uber.org/zap"
)

// callMu pairs every export call with the Asap3GetLastError that may
// follow it. The DLL keeps one last-error slot per process.
var callMu sync.Mutex

// DLL is the API backed by CANapAPI.dll / CANapAPI64.dll.
type DLL struct {
	lib *syscall.DLL
	log *zap.Logger

	mu      sync.Mutex
	procs   map[string]*syscall.Proc
	missing map[string]bool
	version Version
	closed  bool
}

// Open loads the CANape API library. An empty path loads
// DefaultLibrary() from the DLL search path.
func Open(path string, log *zap.Logger) (API, error) {
	if path == "" {
		path = DefaultLibrary()
	}
	if log == nil {
		log = zap.NewNop()
	}
	lib, err := syscall.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	}
	d := &DLL{
		lib:     lib,
		log:     log,
		procs:   make(map[string]*syscall.Proc),
		missing: make(map[string]bool),
	}
	for _, name := range []string{"Asap3GetLastError", "Asap3ErrorText", "Asap3GetVersion"} {
		if _, err := d.proc(name); err != nil {
			lib.Release()
			return nil, fmt.Errorf("%s does not look like the CANape API: %w", path, err)
		}
	}
	if d.version, err = d.GetVersion(); err != nil {
		lib.Release()
		return nil, err
	}
	log.Debug("loaded CANape API", zap.String("path", path), zap.Stringer("version", d.version))
	return d, nil
}

func (d *DLL) proc(name string) (*syscall.Proc, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}
	if p, ok := d.procs[name]; ok {
		return p, nil
	}
	if d.missing[name] {
		return nil, &NotImplementedError{Func: name, Version: d.version}
	}
	p, err := d.lib.FindProc(name)
	if err != nil {
		d.missing[name] = true
		d.log.Debug("function not found in CANape API", zap.String("func", name), zap.Stringer("version", d.version))
		return nil, &NotImplementedError{Func: name, Version: d.version}
	}
	d.procs[name] = p
	return p, nil
}

// call invokes a bool returning export whose first argument is the API
// handle. A false return is translated into *Error.
//
//go:uintptrescapes
func (d *DLL) call(name string, h Handle, args ...uintptr) error {
	p, err := d.proc(name)
	if err != nil {
		return err
	}
	a := make([]uintptr, 0, len(args)+1)
	a = append(a, uintptr(h))
	a = append(a, args...)

	callMu.Lock()
	defer callMu.Unlock()
	r1, _, _ := p.Call(a...)
	if r1&0xff != 0 {
		return nil
	}
	return d.lastError(name, h)
}

// lastError must be called with callMu held.
func (d *DLL) lastError(name string, h Handle) error {
	getLast, err := d.proc("Asap3GetLastError")
	if err != nil {
		return err
	}
	r1, _, _ := getLast.Call(uintptr(h))
	code := ErrorCode(r1 & 0xffff)
	if code == 0 {
		return nil
	}
	e := NewError(name, code)
	if errText, err := d.proc("Asap3ErrorText"); err == nil {
		var msg uintptr
		r1, _, _ := errText.Call(uintptr(h), uintptr(code), uintptr(unsafe.Pointer(&msg)))
		if r1&0xff != 0 && msg != 0 {
			var mem localMemory
			e.Text = DecodeString(mem.CString(msg))
		}
	}
	return e
}

func cbool(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func cstr(s string) (*byte, error) {
	b, err := EncodeString(s)
	if err != nil {
		return nil, err
	}
	return &b[0], nil
}

// fetchString runs the two call protocol: fn is called with a NULL
// buffer to learn the required size and again with a buffer of that size.
func fetchString(fn func(buf *byte, size *uint32) error) (string, error) {
	var size uint32
	if err := fn(nil, &size); err != nil && size == 0 {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size+1)
	if err := fn(&buf[0], &size); err != nil {
		return "", err
	}
	return DecodeString(buf), nil
}

func (d *DLL) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.lib.Release()
}

func (d *DLL) GetVersion() (Version, error) {
	p, err := d.proc("Asap3GetVersion")
	if err != nil {
		return Version{}, err
	}
	buf := make([]byte, SizeofVersion)
	callMu.Lock()
	r1, _, _ := p.Call(uintptr(unsafe.Pointer(&buf[0])))
	if r1&0xff == 0 {
		err = d.lastError("Asap3GetVersion", 0)
	}
	callMu.Unlock()
	if err != nil {
		return Version{}, err
	}
	return DecodeVersion(buf)
}

func (d *DLL) Init5(responseTimeout uint32, workingDir string, fifoSize, sampleSize uint32, debugMode, clearDeviceList, hexMode, modalMode bool) (Handle, error) {
	p, err := d.proc("Asap3Init5")
	if err != nil {
		return 0, err
	}
	dir, err := cstr(workingDir)
	if err != nil {
		return 0, err
	}
	var h Handle
	callMu.Lock()
	defer callMu.Unlock()
	r1, _, _ := p.Call(
		uintptr(unsafe.Pointer(&h)),
		uintptr(responseTimeout),
		uintptr(unsafe.Pointer(dir)),
		uintptr(fifoSize),
		uintptr(sampleSize),
		cbool(debugMode),
		cbool(clearDeviceList),
		cbool(hexMode),
		cbool(modalMode),
	)
	if r1&0xff == 0 {
		if err := d.lastError("Asap3Init5", h); err != nil {
			return 0, err
		}
	}
	return h, nil
}

func (d *DLL) Exit2(h Handle, closeCANape bool) error {
	unregisterCallbacks(h)
	return d.call("Asap3Exit2", h, cbool(closeCANape))
}

func (d *DLL) RegisterCallBack(h Handle, event EventCode, fn CallbackFunc) error {
	setCallback(h, event, fn)
	if err := d.call("Asap3RegisterCallBack", h, uintptr(event), eventTrampoline(), uintptr(event)); err != nil {
		setCallback(h, event, nil)
		return err
	}
	return nil
}

func (d *DLL) UnRegisterCallBack(h Handle, event EventCode) error {
	setCallback(h, event, nil)
	return d.call("Asap3UnRegisterCallBack", h, uintptr(event))
}

func (d *DLL) GetApplicationVersion(h Handle) (AppVersion, error) {
	buf := make([]byte, SizeofAppVersion)
	if err := d.call("Asap3GetApplicationVersion", h, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return AppVersion{}, err
	}
	return DecodeAppVersion(buf)
}

func (d *DLL) GetProjectDirectory(h Handle) (string, error) {
	buf := make([]byte, 1024)
	size := uint32(len(buf))
	if err := d.call("Asap3GetProjectDirectory", h, uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size))); err != nil {
		return "", err
	}
	return DecodeString(buf), nil
}

func (d *DLL) SetInteractiveMode(h Handle, mode bool) error {
	return d.call("Asap3SetInteractiveMode", h, cbool(mode))
}

func (d *DLL) GetInteractiveMode(h Handle) (bool, error) {
	var mode uint8
	err := d.call("Asap3GetInteractiveMode", h, uintptr(unsafe.Pointer(&mode)))
	return mode != 0, err
}

func (d *DLL) PopupDebugWindow(h Handle) error {
	return d.call("Asap3PopupDebugWindow", h)
}

func (d *DLL) IsNetworkActivated(h Handle, name string) (bool, error) {
	n, err := cstr(name)
	if err != nil {
		return false, err
	}
	var activated uint8
	err = d.call("Asap3IsNetworkActivated", h, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&activated)))
	return activated != 0, err
}

func (d *DLL) ActivateNetwork(h Handle, name string, activate bool) error {
	n, err := cstr(name)
	if err != nil {
		return err
	}
	return d.call("Asap3ActivateNetwork", h, uintptr(unsafe.Pointer(n)), cbool(activate))
}

func (d *DLL) GetMeasurementState(h Handle) (MeasurementState, error) {
	var state int32
	err := d.call("Asap3GetMeasurementState", h, uintptr(unsafe.Pointer(&state)))
	return MeasurementState(state), err
}

func (d *DLL) HasMCD3License(h Handle) (bool, error) {
	var available uint8
	err := d.call("Asap3HasMCD3License", h, uintptr(unsafe.Pointer(&available)))
	return available != 0, err
}

func (d *DLL) GetCNAFilename(h Handle) (string, error) {
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetCNAFilename", h, uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)))
	})
}

func (d *DLL) LoadCNAFile(h Handle, filename string) error {
	n, err := cstr(filename)
	if err != nil {
		return err
	}
	return d.call("Asap3LoadCNAFile", h, uintptr(unsafe.Pointer(n)))
}

func (d *DLL) ResetDataAcquisitionChnls(h Handle) error {
	return d.call("Asap3ResetDataAcquisitionChnls", h)
}

func (d *DLL) StartDataAcquisition(h Handle) error {
	return d.call("Asap3StartDataAcquisition", h)
}

func (d *DLL) StopDataAcquisition(h Handle) error {
	return d.call("Asap3StopDataAcquisition", h)
}

func (d *DLL) CreateModule3(h Handle, name, dbFilename string, driver DriverType, channel Channel, goOnline bool, enableCache int16) (ModuleHandle, error) {
	n, err := cstr(name)
	if err != nil {
		return InvalidModuleHandle, err
	}
	db, err := cstr(dbFilename)
	if err != nil {
		return InvalidModuleHandle, err
	}
	m := InvalidModuleHandle
	err = d.call("Asap3CreateModule3", h,
		uintptr(unsafe.Pointer(n)),
		uintptr(unsafe.Pointer(db)),
		uintptr(uint16(driver)),
		uintptr(uint16(channel)),
		cbool(goOnline),
		uintptr(uint16(enableCache)),
		uintptr(unsafe.Pointer(&m)),
	)
	return m, err
}

func (d *DLL) GetModuleCount(h Handle) (uint32, error) {
	var count uint32
	err := d.call("Asap3GetModuleCount", h, uintptr(unsafe.Pointer(&count)))
	return count, err
}

func (d *DLL) GetModuleHandle(h Handle, name string) (ModuleHandle, error) {
	n, err := cstr(name)
	if err != nil {
		return InvalidModuleHandle, err
	}
	m := InvalidModuleHandle
	err = d.call("Asap3GetModuleHandle", h, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&m)))
	return m, err
}

// outString fetches a char** result owned by the DLL.
func (d *DLL) outString(name string, h Handle, m ModuleHandle) (string, error) {
	var p uintptr
	if err := d.call(name, h, uintptr(m), uintptr(unsafe.Pointer(&p))); err != nil {
		return "", err
	}
	var mem localMemory
	return DecodeString(mem.CString(p)), nil
}

func (d *DLL) GetModuleName(h Handle, m ModuleHandle) (string, error) {
	return d.outString("Asap3GetModuleName", h, m)
}

func (d *DLL) ReleaseModule(h Handle, m ModuleHandle) error {
	return d.call("Asap3ReleaseModule", h, uintptr(m))
}

func (d *DLL) GetDatabaseInfo(h Handle, m ModuleHandle) (DBFileInfo, error) {
	buf := make([]byte, SizeofDBFileInfo)
	if err := d.call("Asap3GetDatabaseInfo", h, uintptr(m), uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return DBFileInfo{}, err
	}
	return DecodeDBFileInfo(buf)
}

func (d *DLL) IsModuleActive(h Handle, m ModuleHandle) (bool, error) {
	var active uint8
	err := d.call("Asap3IsModuleActive", h, uintptr(m), uintptr(unsafe.Pointer(&active)))
	return active != 0, err
}

func (d *DLL) ModuleActivation(h Handle, m ModuleHandle, activate bool) error {
	return d.call("Asap3ModuleActivation", h, uintptr(m), cbool(activate))
}

func (d *DLL) IsECUOnline(h Handle, m ModuleHandle) (ECUState, error) {
	var state int32
	err := d.call("Asap3IsECUOnline", h, uintptr(m), uintptr(unsafe.Pointer(&state)))
	return ECUState(state), err
}

func (d *DLL) ECUOnOffline(h Handle, m ModuleHandle, state ECUState, download bool) error {
	return d.call("Asap3ECUOnOffline", h, uintptr(m), uintptr(state), cbool(download))
}

func (d *DLL) GetCommunicationType(h Handle, m ModuleHandle) (string, error) {
	return d.outString("Asap3GetCommunicationType", h, m)
}

func (d *DLL) GetDatabaseObjects(h Handle, m ModuleHandle, typ DBOType) (string, error) {
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetDatabaseObjects", h, uintptr(m), uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)), uintptr(typ))
	})
}

func (d *DLL) GetEcuTasks2(h Handle, m ModuleHandle, maxTasks uint16) ([]TaskInfo, error) {
	buf := make([]byte, int(maxTasks)*SizeofTaskInfo2)
	var n uint16
	if err := d.call("Asap3GetEcuTasks2", h, uintptr(m), uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&n)), uintptr(maxTasks)); err != nil {
		return nil, err
	}
	if n > maxTasks {
		n = maxTasks
	}
	var mem localMemory
	return DecodeTaskInfo2(buf, int(n), &mem)
}

func (d *DLL) GetNetworkName(h Handle, m ModuleHandle) (string, error) {
	buf := make([]byte, 256)
	size := uint32(len(buf))
	if err := d.call("Asap3GetNetworkName", h, uintptr(m), uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size))); err != nil {
		return "", err
	}
	return DecodeString(buf), nil
}

func (d *DLL) GetEcuDriverType(h Handle, m ModuleHandle) (DriverType, error) {
	var driver int32
	err := d.call("Asap3GetEcuDriverType", h, uintptr(m), uintptr(unsafe.Pointer(&driver)))
	return DriverType(driver), err
}

func (d *DLL) HasResumeMode(h Handle, m ModuleHandle) (bool, error) {
	var possible uint8
	err := d.call("Asap3HasResumeMode", h, uintptr(m), uintptr(unsafe.Pointer(&possible)))
	return possible != 0, err
}

func (d *DLL) SetResumeMode(h Handle, m ModuleHandle) error {
	return d.call("Asap3SetResumeMode", h, uintptr(m))
}

func (d *DLL) GetMeasurementListEntries(h Handle, m ModuleHandle) ([]MeasurementListEntry, error) {
	var p uintptr
	if err := d.call("Asap3GetMeasurementListEntries", h, uintptr(m), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	if p == 0 {
		return nil, nil
	}
	var mem localMemory
	return DecodeMeasurementListEntries(mem.View(p, SizeofMeasurementListEntries), &mem)
}

func (d *DLL) ResetDataAcquisitionChnlsByModule(h Handle, m ModuleHandle) error {
	return d.call("Asap3ResetDataAcquisitionChnlsByModule", h, uintptr(m))
}

func (d *DLL) ReadByAddress(h Handle, m ModuleHandle, addr uint32, addrExt uint8, size uint32) ([]byte, error) {
	data := make([]byte, size+1)
	if err := d.call("Asap3ReadByAddress", h, uintptr(m), uintptr(addr), uintptr(addrExt), uintptr(size), uintptr(unsafe.Pointer(&data[0]))); err != nil {
		return nil, err
	}
	return data[:size], nil
}

func (d *DLL) WriteByAddress(h Handle, m ModuleHandle, addr uint32, addrExt uint8, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return d.call("Asap3WriteByAddress", h, uintptr(m), uintptr(addr), uintptr(addrExt), uintptr(len(data)), uintptr(unsafe.Pointer(&data[0])))
}

func (d *DLL) ExecuteScriptEx(h Handle, m ModuleHandle, scriptFile bool, script string) (ScriptHandle, error) {
	s, err := cstr(script)
	if err != nil {
		return 0, err
	}
	var sh ScriptHandle
	err = d.call("Asap3ExecuteScriptEx", h, uintptr(m), cbool(scriptFile), uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(&sh)))
	return sh, err
}

func (d *DLL) GetDBObjectInfo(h Handle, m ModuleHandle, name string) (DBObjectInfo, error) {
	n, err := cstr(name)
	if err != nil {
		return DBObjectInfo{}, err
	}
	buf := make([]byte, SizeofDBObjectInfo)
	if err := d.call("Asap3GetDBObjectInfo", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return DBObjectInfo{}, err
	}
	return DecodeDBObjectInfo(buf)
}

func (d *DLL) GetDBObjectComment(h Handle, m ModuleHandle, name string) (string, error) {
	n, err := cstr(name)
	if err != nil {
		return "", err
	}
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetDBObjectComment", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)))
	})
}

func (d *DLL) ReadObjectParameter(h Handle, m ModuleHandle, name string, format Format) (ObjectParameter, error) {
	n, err := cstr(name)
	if err != nil {
		return ObjectParameter{}, err
	}
	var (
		typ                 int32
		address             uint32
		min, max, increment float64
	)
	err = d.call("Asap3ReadObjectParameter", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(format),
		uintptr(unsafe.Pointer(&typ)),
		uintptr(unsafe.Pointer(&address)),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&increment)),
	)
	if err != nil {
		return ObjectParameter{}, err
	}
	return ObjectParameter{DataType: DataType(typ), Address: address, Min: min, Max: max, Increment: increment}, nil
}

func (d *DLL) ReadCalibrationObject2(h Handle, m ModuleHandle, name string, format Format, forceUpload bool) (CalibrationValue, error) {
	n, err := cstr(name)
	if err != nil {
		return CalibrationValue{}, err
	}
	buf := make([]byte, SizeofCalibrationObjectValue)
	if err := d.call("Asap3ReadCalibrationObject2", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(format), cbool(forceUpload), uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return CalibrationValue{}, err
	}
	var mem localMemory
	return DecodeCalibrationValue(buf, &mem)
}

func (d *DLL) WriteCalibrationObject(h Handle, m ModuleHandle, name string, format Format, value CalibrationValue) error {
	n, err := cstr(name)
	if err != nil {
		return err
	}
	var mem localMemory
	defer mem.Free()
	buf, err := EncodeCalibrationValue(value, &mem)
	if err != nil {
		return err
	}
	return d.call("Asap3WriteCalibrationObject", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(format), uintptr(unsafe.Pointer(&buf[0])))
}

func (d *DLL) SetupDataAcquisitionChnl(h Handle, m ModuleHandle, name string, format Format, taskID, pollingRate uint16, save2File bool) error {
	n, err := cstr(name)
	if err != nil {
		return err
	}
	return d.call("Asap3SetupDataAcquisitionChnl", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(format), uintptr(taskID), uintptr(pollingRate), cbool(save2File))
}

func (d *DLL) GetFifoLevel(h Handle, m ModuleHandle, taskID uint16) (int, error) {
	p, err := d.proc("Asap3GetFifoLevel")
	if err != nil {
		return 0, err
	}
	callMu.Lock()
	defer callMu.Unlock()
	r1, _, _ := p.Call(uintptr(h), uintptr(m), uintptr(taskID))
	level := int(int32(r1))
	if level < 0 {
		if err := d.lastError("Asap3GetFifoLevel", h); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return level, nil
}

func (d *DLL) GetNextSample(h Handle, m ModuleHandle, taskID uint16, count int) (Time, []float64, error) {
	var (
		ts     Time
		values uintptr
	)
	if err := d.call("Asap3GetNextSample", h, uintptr(m), uintptr(taskID), uintptr(unsafe.Pointer(&ts)), uintptr(unsafe.Pointer(&values))); err != nil {
		return 0, nil, err
	}
	var mem localMemory
	return ts, ReadFloats(&mem, values, count), nil
}

func (d *DLL) CheckOverrun(h Handle, m ModuleHandle, taskID uint16, reset bool) error {
	return d.call("Asap3CheckOverrun", h, uintptr(m), uintptr(taskID), cbool(reset))
}

func (d *DLL) GetCurrentValues(h Handle, m ModuleHandle, taskID uint16, maxValues uint16) (Time, []float64, error) {
	var ts Time
	values := make([]float64, int(maxValues)+1)
	if err := d.call("Asap3GetCurrentValues", h, uintptr(m), uintptr(taskID), uintptr(unsafe.Pointer(&ts)), uintptr(unsafe.Pointer(&values[0])), uintptr(maxValues)); err != nil {
		return 0, nil, err
	}
	return ts, values[:maxValues], nil
}

func (d *DLL) GetRecorderCount(h Handle) (uint32, error) {
	var count uint32
	err := d.call("Asap3GetRecorderCount", h, uintptr(unsafe.Pointer(&count)))
	return count, err
}

func (d *DLL) DefineRecorder(h Handle, name string, typ RecorderType) (RecorderID, error) {
	n, err := cstr(name)
	if err != nil {
		return 0, err
	}
	var id RecorderID
	err = d.call("Asap3DefineRecorder", h, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&id)), uintptr(typ))
	return id, err
}

func (d *DLL) GetRecorderByIndex(h Handle, index uint32) (RecorderID, error) {
	var id RecorderID
	err := d.call("Asap3GetRecorderByIndex", h, uintptr(index), uintptr(unsafe.Pointer(&id)))
	return id, err
}

func (d *DLL) GetRecorderByName(h Handle, name string) (RecorderID, error) {
	n, err := cstr(name)
	if err != nil {
		return 0, err
	}
	var id RecorderID
	err = d.call("Asap3GetRecorderByName", h, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&id)))
	return id, err
}

func (d *DLL) GetSelectedRecorder(h Handle) (RecorderID, error) {
	var id RecorderID
	err := d.call("Asap3GetSelectedRecorder", h, uintptr(unsafe.Pointer(&id)))
	return id, err
}

func (d *DLL) SelectRecorder(h Handle, id RecorderID) error {
	return d.call("Asap3SelectRecorder", h, uintptr(id))
}

func (d *DLL) RemoveRecorder(h Handle, id RecorderID) error {
	return d.call("Asap3RemoveRecorder", h, uintptr(id))
}

func (d *DLL) GetRecorderName(h Handle, id RecorderID) (string, error) {
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetRecorderName", h, uintptr(id), uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)))
	})
}

func (d *DLL) GetRecorderState(h Handle, id RecorderID) (RecorderState, error) {
	var state int32
	err := d.call("Asap3GetRecorderState", h, uintptr(id), uintptr(unsafe.Pointer(&state)))
	return RecorderState(state), err
}

func (d *DLL) IsRecorderEnabled(h Handle, id RecorderID) (bool, error) {
	var enabled uint8
	err := d.call("Asap3IsRecorderEnabled", h, uintptr(id), uintptr(unsafe.Pointer(&enabled)))
	return enabled != 0, err
}

func (d *DLL) EnableRecorder(h Handle, id RecorderID, enable bool) error {
	return d.call("Asap3EnableRecorder", h, uintptr(id), cbool(enable))
}

func (d *DLL) GetRecorderMdfFileName(h Handle, id RecorderID) (string, error) {
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetRecorderMdfFileName", h, uintptr(id), uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)))
	})
}

func (d *DLL) SetRecorderMdfFileName(h Handle, id RecorderID, filename string) error {
	n, err := cstr(filename)
	if err != nil {
		return err
	}
	return d.call("Asap3SetRecorderMdfFileName", h, uintptr(id), uintptr(unsafe.Pointer(n)))
}

func (d *DLL) StartRecorder(h Handle, id RecorderID) error {
	return d.call("Asap3StartRecorder", h, uintptr(id))
}

func (d *DLL) StopRecorder(h Handle, id RecorderID, save2Mdf bool) error {
	return d.call("Asap3StopRecorder", h, uintptr(id), cbool(save2Mdf))
}

func (d *DLL) PauseRecorder(h Handle, id RecorderID, pause bool) error {
	return d.call("Asap3PauseRecorder", h, uintptr(id), cbool(pause))
}

func (d *DLL) AddItemToRecorder(h Handle, m ModuleHandle, object string, id RecorderID) error {
	n, err := cstr(object)
	if err != nil {
		return err
	}
	return d.call("Asap3AddItemToRecorder", h, uintptr(m), uintptr(unsafe.Pointer(n)), uintptr(id))
}

func (d *DLL) GetScriptState(h Handle, s ScriptHandle) (ScriptStatus, error) {
	var (
		state int32
		size  uint32
	)
	err := d.call("Asap3GetScriptState", h, uintptr(s), uintptr(unsafe.Pointer(&state)), 0, uintptr(unsafe.Pointer(&size)))
	return ScriptStatus(state), err
}

func (d *DLL) StartScript(h Handle, s ScriptHandle, commandLine string, m ModuleHandle) error {
	var cl *byte
	if commandLine != "" {
		var err error
		if cl, err = cstr(commandLine); err != nil {
			return err
		}
	}
	return d.call("Asap3StartScript", h, uintptr(s), uintptr(unsafe.Pointer(cl)), uintptr(m))
}

func (d *DLL) StopScript(h Handle, s ScriptHandle) error {
	return d.call("Asap3StopScript", h, uintptr(s))
}

func (d *DLL) ReleaseScript(h Handle, s ScriptHandle) error {
	return d.call("Asap3ReleaseScript", h, uintptr(s))
}

func (d *DLL) GetScriptResultValue(h Handle, s ScriptHandle) (float64, error) {
	var v float64
	err := d.call("Asap3GetScriptResultValue", h, uintptr(s), uintptr(unsafe.Pointer(&v)))
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

func (d *DLL) GetScriptResultString(h Handle, s ScriptHandle) (string, error) {
	return fetchString(func(buf *byte, size *uint32) error {
		return d.call("Asap3GetScriptResultString", h, uintptr(s), uintptr(unsafe.Pointer(buf)), uintptr(unsafe.Pointer(size)))
	})
}

// The DLL calls back with (TAsap3Hdl, privateData). privateData carries
// the event code the callback was registered for.

type callbackKey struct {
	h     Handle
	event EventCode
}

var (
	trampolineOnce sync.Once
	trampoline     uintptr

	callbacksMu sync.RWMutex
	callbacks   = make(map[callbackKey]CallbackFunc)
)

func eventTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampoline = syscall.NewCallback(func(h, privateData uintptr) uintptr {
			event := EventCode(privateData)
			callbacksMu.RLock()
			fn := callbacks[callbackKey{Handle(h), event}]
			callbacksMu.RUnlock()
			if fn != nil {
				fn(event)
			}
			return 0
		})
	})
	return trampoline
}

func setCallback(h Handle, event EventCode, fn CallbackFunc) {
	callbacksMu.Lock()
	defer callbacksMu.Unlock()
	if fn == nil {
		delete(callbacks, callbackKey{h, event})
		return
	}
	callbacks[callbackKey{h, event}] = fn
}

func unregisterCallbacks(h Handle) {
	callbacksMu.Lock()
	defer callbacksMu.Unlock()
	for k := range callbacks {
		if k.h == h {
			delete(callbacks, k)
		}
	}
}

var _ API = (*DLL)(nil)
