package canape

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

// maxEcuTasks is the size of the task buffer passed to
// Asap3GetEcuTasks2.
const maxEcuTasks = 32

// Module is a device of the CANape project. Use CANape.CreateModule,
// CANape.ModuleByName or CANape.ModuleByIndex to get one.
type Module struct {
	c      *CANape
	handle cnp.ModuleHandle

	mu      sync.Mutex
	objects []string
}

func (m *Module) Handle() cnp.ModuleHandle {
	return m.handle
}

func (m *Module) String() string {
	name, err := m.Name()
	if err != nil {
		return fmt.Sprintf("Module(%d)", m.handle)
	}
	return name
}

// DatabaseInfo describes the database (A2L, DBC...) assigned to the
// module.
func (m *Module) DatabaseInfo() (cnp.DBFileInfo, error) {
	return m.c.api.GetDatabaseInfo(m.c.handle, m.handle)
}

// DatabasePath is the full path of the module database.
func (m *Module) DatabasePath() (string, error) {
	info, err := m.DatabaseInfo()
	if err != nil {
		return "", err
	}
	return joinWindowsPath(info.Path, info.Filename), nil
}

func joinWindowsPath(dir, file string) string {
	if dir == "" {
		return file
	}
	if strings.HasSuffix(dir, `\`) || strings.HasSuffix(dir, "/") {
		return dir + file
	}
	return dir + `\` + file
}

func (m *Module) IsActive() (bool, error) {
	return m.c.api.IsModuleActive(m.c.handle, m.handle)
}

// Activate switches the module on or off.
func (m *Module) Activate(activate bool) error {
	return m.c.api.ModuleActivation(m.c.handle, m.handle, activate)
}

func (m *Module) IsECUOnline() (bool, error) {
	state, err := m.c.api.IsECUOnline(m.c.handle, m.handle)
	if err != nil {
		return false, err
	}
	return state == cnp.TYPE_SWITCH_ONLINE, nil
}

// SwitchECUOnOffline changes the ECU state. With download set CANape
// downloads the working page when going online.
func (m *Module) SwitchECUOnOffline(online, download bool) error {
	state := cnp.TYPE_SWITCH_OFFLINE
	if online {
		state = cnp.TYPE_SWITCH_ONLINE
	}
	return m.c.api.ECUOnOffline(m.c.handle, m.handle, state, download)
}

func (m *Module) Name() (string, error) {
	return m.c.api.GetModuleName(m.c.handle, m.handle)
}

// CommunicationType is the transport of the module, e.g. "CAN" or "XCP".
func (m *Module) CommunicationType() (string, error) {
	return m.c.api.GetCommunicationType(m.c.handle, m.handle)
}

// DatabaseObjects lists every object of the module database. The list
// is fetched once and cached.
func (m *Module) DatabaseObjects() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects != nil {
		return append([]string(nil), m.objects...), nil
	}
	raw, err := m.c.api.GetDatabaseObjects(m.c.handle, m.handle, cnp.DBTYPE_ALL)
	if err != nil {
		return nil, err
	}
	raw = strings.Trim(raw, ";")
	if raw == "" {
		m.objects = []string{}
	} else {
		m.objects = strings.Split(raw, ";")
	}
	return append([]string(nil), m.objects...), nil
}

// EcuTasks returns the DAQ tasks (rasters) of the module by description.
func (m *Module) EcuTasks() (map[string]*EcuTask, error) {
	infos, err := m.c.api.GetEcuTasks2(m.c.handle, m.handle, maxEcuTasks)
	if err != nil {
		return nil, err
	}
	tasks := make(map[string]*EcuTask, len(infos))
	for _, ti := range infos {
		tasks[ti.Description] = &EcuTask{
			Description:  ti.Description,
			ID:           ti.TaskID,
			Cycle:        ti.TaskCycle,
			EventChannel: ti.EventChannel,
			m:            m,
		}
	}
	return tasks, nil
}

// EcuTask returns the task with the given description.
func (m *Module) EcuTask(description string) (*EcuTask, error) {
	tasks, err := m.EcuTasks()
	if err != nil {
		return nil, err
	}
	t, ok := tasks[description]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, description)
	}
	return t, nil
}

func (m *Module) NetworkName() (string, error) {
	return m.c.api.GetNetworkName(m.c.handle, m.handle)
}

func (m *Module) DriverType() (cnp.DriverType, error) {
	return m.c.api.GetEcuDriverType(m.c.handle, m.handle)
}

// CalibrationObject returns the object called name. A name containing
// '*' is matched against the database objects and used when exactly one
// object matches.
func (m *Module) CalibrationObject(name string) (CalibrationObject, error) {
	if strings.Contains(name, "*") {
		resolved, err := m.resolve(name)
		if err != nil {
			return nil, err
		}
		name = resolved
	}
	info, err := m.c.api.GetDBObjectInfo(m.c.handle, m.handle, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrObjectNotFound, name, err)
	}
	return newCalibrationObject(m, name, info)
}

func (m *Module) resolve(pattern string) (string, error) {
	names, err := m.DatabaseObjects()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, n := range names {
		ok, err := path.Match(pattern, n)
		if err != nil {
			return "", fmt.Errorf("bad object pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return pattern, nil
	}
	m.c.log.Debug("ambiguous object pattern", zap.String("pattern", pattern), zap.Strings("matches", matches))
	return "", fmt.Errorf("%w: %q matches %d objects", ErrAmbiguousObject, pattern, len(matches))
}

// HasResumeMode reports whether the device supports resume mode.
func (m *Module) HasResumeMode() (bool, error) {
	return m.c.api.HasResumeMode(m.c.handle, m.handle)
}

func (m *Module) SetResumeMode() error {
	return m.c.api.SetResumeMode(m.c.handle, m.handle)
}

// MeasurementListEntries returns the measurement list of the module by
// object name.
func (m *Module) MeasurementListEntries() (map[string]cnp.MeasurementListEntry, error) {
	entries, err := m.c.api.GetMeasurementListEntries(m.c.handle, m.handle)
	if err != nil {
		return nil, err
	}
	out := make(map[string]cnp.MeasurementListEntry, len(entries))
	for _, e := range entries {
		out[e.ObjectName] = e
	}
	return out, nil
}

// ResetDataAcquisitionChannels clears the measurement list of this
// module only.
func (m *Module) ResetDataAcquisitionChannels() error {
	return m.c.api.ResetDataAcquisitionChnlsByModule(m.c.handle, m.handle)
}

// ExecuteScript runs a CASL script in the context of the module. script
// is the script text, or the path of a script file when isFile is set.
func (m *Module) ExecuteScript(script string, isFile bool) (*Script, error) {
	h, err := m.c.api.ExecuteScriptEx(m.c.handle, m.handle, isFile, script)
	if err != nil {
		return nil, err
	}
	return &Script{c: m.c, handle: h, module: m.handle}, nil
}

// ReadByAddress reads size bytes of ECU memory.
func (m *Module) ReadByAddress(addr uint32, addrExt uint8, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.New("size must not be negative")
	}
	return m.c.api.ReadByAddress(m.c.handle, m.handle, addr, addrExt, uint32(size))
}

func (m *Module) WriteByAddress(addr uint32, addrExt uint8, data []byte) error {
	return m.c.api.WriteByAddress(m.c.handle, m.handle, addr, addrExt, data)
}

// ObjectComment returns the database comment of an object.
func (m *Module) ObjectComment(name string) (string, error) {
	return m.c.api.GetDBObjectComment(m.c.handle, m.handle, name)
}

// Release removes the module from the project. The Module must not be
// used afterwards.
func (m *Module) Release() error {
	if err := m.c.api.ReleaseModule(m.c.handle, m.handle); err != nil {
		return err
	}
	m.c.forget(m.handle)
	return nil
}
