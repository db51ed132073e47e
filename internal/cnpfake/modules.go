package cnpfake

import (
	"math"
	"path"
	"sort"
	"strings"

	"github.com/roffe/gocanape/pkg/cnp"
)

// Database is a simulated ASAP2 database file.
type Database struct {
	Filename string
	Objects  map[string]*Object
	Tasks    []cnp.TaskInfo
	order    []string
}

// Object is one measurement or calibration object of a database.
type Object struct {
	Name      string
	Info      cnp.DBObjectInfo
	Value     cnp.CalibrationValue
	Parameter *cnp.ObjectParameter
	Comment   string

	Reads   int
	Uploads int
	Writes  int
}

// AddDatabase registers a database file that modules can be created from.
func (f *CANape) AddDatabase(filename string) *Database {
	f.mu.Lock()
	defer f.mu.Unlock()
	db := &Database{Filename: filename, Objects: make(map[string]*Object)}
	f.databases[strings.ToLower(filename)] = db
	return db
}

// AddObject adds a calibration object holding value.
func (db *Database) AddObject(name string, info cnp.DBObjectInfo, value cnp.CalibrationValue) *Object {
	info.ValueType = value.Type
	o := &Object{Name: name, Info: info, Value: value.Clone()}
	if _, ok := db.Objects[name]; !ok {
		db.order = append(db.order, name)
	}
	db.Objects[name] = o
	return o
}

// AddCharacteristic adds a writeable calibration object.
func (db *Database) AddCharacteristic(name string, value cnp.CalibrationValue) *Object {
	return db.AddObject(name, cnp.DBObjectInfo{
		ObjectType: cnp.OTT_CALIBRATE,
		Min:        -math.MaxFloat32,
		Max:        math.MaxFloat32,
		MinEx:      -math.MaxFloat32,
		MaxEx:      math.MaxFloat32,
		Precision:  3,
	}, value)
}

// AddMeasurement adds a scalar measurement object.
func (db *Database) AddMeasurement(name, unit string) *Object {
	return db.AddObject(name, cnp.DBObjectInfo{
		ObjectType: cnp.OTT_MEASURE,
		Min:        -1000,
		Max:        1000,
		MinEx:      -1000,
		MaxEx:      1000,
		Precision:  2,
		Unit:       unit,
	}, cnp.CalibrationValue{Type: cnp.VALUE})
}

// AddTask adds a DAQ task (raster).
func (db *Database) AddTask(description string, id uint16, cycle uint32) {
	db.Tasks = append(db.Tasks, cnp.TaskInfo{Description: description, TaskID: id, TaskCycle: cycle, EventChannel: uint32(len(db.Tasks))})
}

func (db *Database) objectNames(typ cnp.DBOType) []string {
	var names []string
	for _, n := range db.order {
		o := db.Objects[n]
		switch {
		case typ == cnp.DBTYPE_ALL,
			typ == cnp.DBTYPE_MEASUREMENT && o.Info.ObjectType == cnp.OTT_MEASURE,
			typ == cnp.DBTYPE_CHARACTERISTIC && o.Info.ObjectType == cnp.OTT_CALIBRATE:
			names = append(names, n)
		}
	}
	return names
}

// Module is a device of the simulated project.
type Module struct {
	Name     string
	DB       *Database
	Driver   cnp.DriverType
	Channel  cnp.Channel
	CommType string
	Network  string

	Active          bool
	State           cnp.ECUState
	ResumeSupported bool
	ResumeSet       bool
	Memory          map[uint32]byte

	released bool
	daq      map[uint16]*task
}

func newModule(name string, db *Database, driver cnp.DriverType, channel cnp.Channel) *Module {
	return &Module{
		Name:     name,
		DB:       db,
		Driver:   driver,
		Channel:  channel,
		CommType: driver.String(),
		Network:  channel.String(),
		Active:   true,
		State:    cnp.TYPE_SWITCH_OFFLINE,
		Memory:   make(map[uint32]byte),
		daq:      make(map[uint16]*task),
	}
}

// AddDevice declares a module configured in the project. Devices are
// loaded by Asap3Init5 unless the device list is cleared.
func (f *CANape) AddDevice(name, dbFilename string, driver cnp.DriverType, channel cnp.Channel) *Module {
	f.mu.Lock()
	defer f.mu.Unlock()
	db := f.databases[strings.ToLower(dbFilename)]
	if db == nil {
		db = &Database{Filename: dbFilename, Objects: make(map[string]*Object)}
		f.databases[strings.ToLower(dbFilename)] = db
	}
	m := newModule(name, db, driver, channel)
	f.devices = append(f.devices, m)
	return m
}

// Module returns the module called name in the current session.
func (f *CANape) Module(name string) *Module {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.modules {
		if m != nil && !m.released && m.Name == name {
			return m
		}
	}
	return nil
}

// module must be called with mu held.
func (f *CANape) module(fn string, m cnp.ModuleHandle) (*Module, error) {
	if int(m) >= len(f.modules) || f.modules[m] == nil || f.modules[m].released {
		return nil, cnp.NewError(fn, cnp.AEC_INVALID_MODULE_HDL)
	}
	return f.modules[m], nil
}

func (f *CANape) CreateModule3(h cnp.Handle, name, dbFilename string, driver cnp.DriverType, channel cnp.Channel, goOnline bool, enableCache int16) (cnp.ModuleHandle, error) {
	const fn = "Asap3CreateModule3"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return cnp.InvalidModuleHandle, err
	}
	if driver == cnp.ASAP3_DRIVER_UNKNOWN {
		return cnp.InvalidModuleHandle, cnp.NewError(fn, cnp.AEC_ILLEGAL_DRIVER)
	}
	db := f.databases[strings.ToLower(dbFilename)]
	if db == nil {
		return cnp.InvalidModuleHandle, cnp.NewError(fn, cnp.AEC_ASAP2_FILE_NOT_FOUND)
	}
	for _, m := range f.modules {
		if m != nil && !m.released && m.Name == name {
			return cnp.InvalidModuleHandle, cnp.NewError(fn, cnp.AEC_INTERNAL_CANAPE_ERROR)
		}
	}
	m := newModule(name, db, driver, channel)
	if goOnline {
		m.State = cnp.TYPE_SWITCH_ONLINE
	}
	f.modules = append(f.modules, m)
	return cnp.ModuleHandle(len(f.modules) - 1), nil
}

func (f *CANape) GetModuleCount(h cnp.Handle) (uint32, error) {
	unlock, err := f.lock("Asap3GetModuleCount", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	return uint32(len(f.modules)), nil
}

func (f *CANape) GetModuleHandle(h cnp.Handle, name string) (cnp.ModuleHandle, error) {
	unlock, err := f.lock("Asap3GetModuleHandle", h)
	defer unlock()
	if err != nil {
		return cnp.InvalidModuleHandle, err
	}
	for i, m := range f.modules {
		if m != nil && !m.released && m.Name == name {
			return cnp.ModuleHandle(i), nil
		}
	}
	return cnp.InvalidModuleHandle, cnp.NewError("Asap3GetModuleHandle", cnp.AEC_UNKNOWN_MODULE_NAME)
}

func (f *CANape) GetModuleName(h cnp.Handle, m cnp.ModuleHandle) (string, error) {
	unlock, err := f.lock("Asap3GetModuleName", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	mod, err := f.module("Asap3GetModuleName", m)
	if err != nil {
		return "", err
	}
	return mod.Name, nil
}

func (f *CANape) ReleaseModule(h cnp.Handle, m cnp.ModuleHandle) error {
	unlock, err := f.lock("Asap3ReleaseModule", h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module("Asap3ReleaseModule", m)
	if err != nil {
		return err
	}
	mod.released = true
	return nil
}

func (f *CANape) GetDatabaseInfo(h cnp.Handle, m cnp.ModuleHandle) (cnp.DBFileInfo, error) {
	unlock, err := f.lock("Asap3GetDatabaseInfo", h)
	defer unlock()
	if err != nil {
		return cnp.DBFileInfo{}, err
	}
	mod, err := f.module("Asap3GetDatabaseInfo", m)
	if err != nil {
		return cnp.DBFileInfo{}, err
	}
	if mod.DB == nil {
		return cnp.DBFileInfo{}, cnp.NewError("Asap3GetDatabaseInfo", cnp.AEC_NO_DATABASE)
	}
	p := strings.ReplaceAll(mod.DB.Filename, `\`, "/")
	dir, file := path.Split(p)
	info := cnp.DBFileInfo{
		Filename: file,
		Path:     strings.ReplaceAll(strings.TrimSuffix(dir, "/"), "/", `\`),
		Type:     cnp.DBFileUnknown,
	}
	switch strings.ToLower(path.Ext(file)) {
	case ".a2l":
		info.Type = cnp.DBFileASAP2
	case ".dbc":
		info.Type = cnp.DBFileDBC
	case ".ldf":
		info.Type = cnp.DBFileLDF
	case ".arxml":
		info.Type = cnp.DBFileAutosarXML
	}
	return info, nil
}

func (f *CANape) IsModuleActive(h cnp.Handle, m cnp.ModuleHandle) (bool, error) {
	unlock, err := f.lock("Asap3IsModuleActive", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	mod, err := f.module("Asap3IsModuleActive", m)
	if err != nil {
		return false, err
	}
	return mod.Active, nil
}

func (f *CANape) ModuleActivation(h cnp.Handle, m cnp.ModuleHandle, activate bool) error {
	unlock, err := f.lock("Asap3ModuleActivation", h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module("Asap3ModuleActivation", m)
	if err != nil {
		return err
	}
	mod.Active = activate
	return nil
}

func (f *CANape) IsECUOnline(h cnp.Handle, m cnp.ModuleHandle) (cnp.ECUState, error) {
	unlock, err := f.lock("Asap3IsECUOnline", h)
	defer unlock()
	if err != nil {
		return cnp.TYPE_SWITCH_OFFLINE, err
	}
	mod, err := f.module("Asap3IsECUOnline", m)
	if err != nil {
		return cnp.TYPE_SWITCH_OFFLINE, err
	}
	return mod.State, nil
}

func (f *CANape) ECUOnOffline(h cnp.Handle, m cnp.ModuleHandle, state cnp.ECUState, download bool) error {
	unlock, err := f.lock("Asap3ECUOnOffline", h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module("Asap3ECUOnOffline", m)
	if err != nil {
		return err
	}
	if !mod.Active {
		return cnp.NewError("Asap3ECUOnOffline", cnp.AEC_ILLEGAL_OPERATION)
	}
	mod.State = state
	return nil
}

func (f *CANape) GetCommunicationType(h cnp.Handle, m cnp.ModuleHandle) (string, error) {
	unlock, err := f.lock("Asap3GetCommunicationType", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	mod, err := f.module("Asap3GetCommunicationType", m)
	if err != nil {
		return "", err
	}
	return mod.CommType, nil
}

func (f *CANape) GetDatabaseObjects(h cnp.Handle, m cnp.ModuleHandle, typ cnp.DBOType) (string, error) {
	unlock, err := f.lock("Asap3GetDatabaseObjects", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	mod, err := f.module("Asap3GetDatabaseObjects", m)
	if err != nil {
		return "", err
	}
	names := mod.DB.objectNames(typ)
	if len(names) == 0 {
		return "", nil
	}
	return strings.Join(names, ";") + ";", nil
}

func (f *CANape) GetEcuTasks2(h cnp.Handle, m cnp.ModuleHandle, maxTasks uint16) ([]cnp.TaskInfo, error) {
	unlock, err := f.lock("Asap3GetEcuTasks2", h)
	defer unlock()
	if err != nil {
		return nil, err
	}
	mod, err := f.module("Asap3GetEcuTasks2", m)
	if err != nil {
		return nil, err
	}
	tasks := append([]cnp.TaskInfo(nil), mod.DB.Tasks...)
	if len(tasks) > int(maxTasks) {
		tasks = tasks[:maxTasks]
	}
	return tasks, nil
}

func (f *CANape) GetNetworkName(h cnp.Handle, m cnp.ModuleHandle) (string, error) {
	unlock, err := f.lock("Asap3GetNetworkName", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	mod, err := f.module("Asap3GetNetworkName", m)
	if err != nil {
		return "", err
	}
	return mod.Network, nil
}

func (f *CANape) GetEcuDriverType(h cnp.Handle, m cnp.ModuleHandle) (cnp.DriverType, error) {
	unlock, err := f.lock("Asap3GetEcuDriverType", h)
	defer unlock()
	if err != nil {
		return cnp.ASAP3_DRIVER_UNKNOWN, err
	}
	mod, err := f.module("Asap3GetEcuDriverType", m)
	if err != nil {
		return cnp.ASAP3_DRIVER_UNKNOWN, err
	}
	return mod.Driver, nil
}

func (f *CANape) HasResumeMode(h cnp.Handle, m cnp.ModuleHandle) (bool, error) {
	unlock, err := f.lock("Asap3HasResumeMode", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	mod, err := f.module("Asap3HasResumeMode", m)
	if err != nil {
		return false, err
	}
	return mod.ResumeSupported, nil
}

func (f *CANape) SetResumeMode(h cnp.Handle, m cnp.ModuleHandle) error {
	unlock, err := f.lock("Asap3SetResumeMode", h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module("Asap3SetResumeMode", m)
	if err != nil {
		return err
	}
	if !mod.ResumeSupported {
		return cnp.NewError("Asap3SetResumeMode", cnp.AEC_ERROR_RESUME_SUPPORTED)
	}
	mod.ResumeSet = true
	return nil
}

func (f *CANape) GetMeasurementListEntries(h cnp.Handle, m cnp.ModuleHandle) ([]cnp.MeasurementListEntry, error) {
	unlock, err := f.lock("Asap3GetMeasurementListEntries", h)
	defer unlock()
	if err != nil {
		return nil, err
	}
	mod, err := f.module("Asap3GetMeasurementListEntries", m)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(mod.daq))
	for id := range mod.daq {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	var entries []cnp.MeasurementListEntry
	for _, id := range ids {
		for _, ch := range mod.daq[uint16(id)].channels {
			entries = append(entries, cnp.MeasurementListEntry{
				TaskID:     uint16(id),
				Rate:       uint32(ch.rate),
				SaveFlag:   ch.save,
				ObjectName: ch.name,
			})
		}
	}
	return entries, nil
}

func (f *CANape) ReadByAddress(h cnp.Handle, m cnp.ModuleHandle, addr uint32, addrExt uint8, size uint32) ([]byte, error) {
	unlock, err := f.lock("Asap3ReadByAddress", h)
	defer unlock()
	if err != nil {
		return nil, err
	}
	mod, err := f.module("Asap3ReadByAddress", m)
	if err != nil {
		return nil, err
	}
	if mod.State != cnp.TYPE_SWITCH_ONLINE {
		return nil, cnp.NewError("Asap3ReadByAddress", cnp.AEC_NO_RESPONSE_FROM_ECU)
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = mod.Memory[addr+uint32(i)]
	}
	return data, nil
}

func (f *CANape) WriteByAddress(h cnp.Handle, m cnp.ModuleHandle, addr uint32, addrExt uint8, data []byte) error {
	unlock, err := f.lock("Asap3WriteByAddress", h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module("Asap3WriteByAddress", m)
	if err != nil {
		return err
	}
	if mod.State != cnp.TYPE_SWITCH_ONLINE {
		return cnp.NewError("Asap3WriteByAddress", cnp.AEC_WRITE_DATA_FAILED)
	}
	for i, b := range data {
		mod.Memory[addr+uint32(i)] = b
	}
	return nil
}
