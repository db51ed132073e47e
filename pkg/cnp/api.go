package cnp

// CallbackFunc is invoked from CANape's thread when a registered event
// fires.
type CallbackFunc func(EventCode)

// API is the set of CANapAPI functions used by this module. Every
// method maps onto one Asap3* export; a false return of the export is
// reported as *Error.
type API interface {
	// session
	GetVersion() (Version, error)
	Init5(responseTimeout uint32, workingDir string, fifoSize, sampleSize uint32, debugMode, clearDeviceList, hexMode, modalMode bool) (Handle, error)
	Exit2(h Handle, closeCANape bool) error
	RegisterCallBack(h Handle, event EventCode, fn CallbackFunc) error
	UnRegisterCallBack(h Handle, event EventCode) error
	GetApplicationVersion(h Handle) (AppVersion, error)
	GetProjectDirectory(h Handle) (string, error)
	SetInteractiveMode(h Handle, mode bool) error
	GetInteractiveMode(h Handle) (bool, error)
	PopupDebugWindow(h Handle) error
	IsNetworkActivated(h Handle, name string) (bool, error)
	ActivateNetwork(h Handle, name string, activate bool) error
	GetMeasurementState(h Handle) (MeasurementState, error)
	HasMCD3License(h Handle) (bool, error)
	GetCNAFilename(h Handle) (string, error)
	LoadCNAFile(h Handle, filename string) error
	ResetDataAcquisitionChnls(h Handle) error
	StartDataAcquisition(h Handle) error
	StopDataAcquisition(h Handle) error

	// modules
	CreateModule3(h Handle, name, dbFilename string, driver DriverType, channel Channel, goOnline bool, enableCache int16) (ModuleHandle, error)
	GetModuleCount(h Handle) (uint32, error)
	GetModuleHandle(h Handle, name string) (ModuleHandle, error)
	GetModuleName(h Handle, m ModuleHandle) (string, error)
	ReleaseModule(h Handle, m ModuleHandle) error
	GetDatabaseInfo(h Handle, m ModuleHandle) (DBFileInfo, error)
	IsModuleActive(h Handle, m ModuleHandle) (bool, error)
	ModuleActivation(h Handle, m ModuleHandle, activate bool) error
	IsECUOnline(h Handle, m ModuleHandle) (ECUState, error)
	ECUOnOffline(h Handle, m ModuleHandle, state ECUState, download bool) error
	GetCommunicationType(h Handle, m ModuleHandle) (string, error)
	// GetDatabaseObjects returns the raw ';' separated object list.
	GetDatabaseObjects(h Handle, m ModuleHandle, typ DBOType) (string, error)
	GetEcuTasks2(h Handle, m ModuleHandle, maxTasks uint16) ([]TaskInfo, error)
	GetNetworkName(h Handle, m ModuleHandle) (string, error)
	GetEcuDriverType(h Handle, m ModuleHandle) (DriverType, error)
	HasResumeMode(h Handle, m ModuleHandle) (bool, error)
	SetResumeMode(h Handle, m ModuleHandle) error
	GetMeasurementListEntries(h Handle, m ModuleHandle) ([]MeasurementListEntry, error)
	ResetDataAcquisitionChnlsByModule(h Handle, m ModuleHandle) error
	ReadByAddress(h Handle, m ModuleHandle, addr uint32, addrExt uint8, size uint32) ([]byte, error)
	WriteByAddress(h Handle, m ModuleHandle, addr uint32, addrExt uint8, data []byte) error
	ExecuteScriptEx(h Handle, m ModuleHandle, scriptFile bool, script string) (ScriptHandle, error)

	// calibration
	GetDBObjectInfo(h Handle, m ModuleHandle, name string) (DBObjectInfo, error)
	GetDBObjectComment(h Handle, m ModuleHandle, name string) (string, error)
	ReadObjectParameter(h Handle, m ModuleHandle, name string, format Format) (ObjectParameter, error)
	ReadCalibrationObject2(h Handle, m ModuleHandle, name string, format Format, forceUpload bool) (CalibrationValue, error)
	WriteCalibrationObject(h Handle, m ModuleHandle, name string, format Format, value CalibrationValue) error

	// daq
	SetupDataAcquisitionChnl(h Handle, m ModuleHandle, name string, format Format, taskID, pollingRate uint16, save2File bool) error
	GetFifoLevel(h Handle, m ModuleHandle, taskID uint16) (int, error)
	// GetNextSample pops one sample holding count channel values.
	GetNextSample(h Handle, m ModuleHandle, taskID uint16, count int) (Time, []float64, error)
	CheckOverrun(h Handle, m ModuleHandle, taskID uint16, reset bool) error
	GetCurrentValues(h Handle, m ModuleHandle, taskID uint16, maxValues uint16) (Time, []float64, error)

	// recorders
	GetRecorderCount(h Handle) (uint32, error)
	DefineRecorder(h Handle, name string, typ RecorderType) (RecorderID, error)
	GetRecorderByIndex(h Handle, index uint32) (RecorderID, error)
	GetRecorderByName(h Handle, name string) (RecorderID, error)
	GetSelectedRecorder(h Handle) (RecorderID, error)
	SelectRecorder(h Handle, id RecorderID) error
	RemoveRecorder(h Handle, id RecorderID) error
	GetRecorderName(h Handle, id RecorderID) (string, error)
	GetRecorderState(h Handle, id RecorderID) (RecorderState, error)
	IsRecorderEnabled(h Handle, id RecorderID) (bool, error)
	EnableRecorder(h Handle, id RecorderID, enable bool) error
	GetRecorderMdfFileName(h Handle, id RecorderID) (string, error)
	SetRecorderMdfFileName(h Handle, id RecorderID, filename string) error
	StartRecorder(h Handle, id RecorderID) error
	StopRecorder(h Handle, id RecorderID, save2Mdf bool) error
	PauseRecorder(h Handle, id RecorderID, pause bool) error
	AddItemToRecorder(h Handle, m ModuleHandle, object string, id RecorderID) error

	// scripts
	GetScriptState(h Handle, s ScriptHandle) (ScriptStatus, error)
	StartScript(h Handle, s ScriptHandle, commandLine string, m ModuleHandle) error
	StopScript(h Handle, s ScriptHandle) error
	ReleaseScript(h Handle, s ScriptHandle) error
	GetScriptResultValue(h Handle, s ScriptHandle) (float64, error)
	GetScriptResultString(h Handle, s ScriptHandle) (string, error)

	// Close unloads the library.
	Close() error
}
