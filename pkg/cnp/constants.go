package cnp

import "fmt"

const (
	// API version this binding was written against.
	APIMainVersion = 2
	APISubVersion  = 3
	APIRelease     = 1

	MaxPath      = 260
	MaxOSVersion = 50

	InvalidModuleHandle ModuleHandle = 0xFFFF
)

// Object filter bits for Asap3GetDatabaseObjectsByType.
const (
	TDBE_VALUE_SCALAR   uint32 = 0x00000001
	TDBE_VALUE_CURVE    uint32 = 0x00000002
	TDBE_VALUE_MAP      uint32 = 0x00000004
	TDBE_VALUE_AXIS     uint32 = 0x00000008
	TDBE_VALUE_ASCII    uint32 = 0x00000010
	TDBE_VALUE_VALBLK   uint32 = 0x00000020
	TDBE_VALUE_TEMPLATE uint32 = 0x00000040

	TDBE_VALUE_ALL                 = TDBE_VALUE_SCALAR | TDBE_VALUE_CURVE | TDBE_VALUE_MAP | TDBE_VALUE_AXIS | TDBE_VALUE_ASCII | TDBE_VALUE_VALBLK
	TDBE_VALUE_INCLUDING_TEMPLATES = TDBE_VALUE_ALL | TDBE_VALUE_TEMPLATE
)

type ApplicationType uint32

const (
	ApplicationUndefined   ApplicationType = 0
	ApplicationCANape      ApplicationType = 1
	ApplicationAppLocation ApplicationType = 3
)

// Channel is the logical communication channel passed to Asap3CreateModule.
type Channel int16

const (
	DEV_CAN1  Channel = 1
	DEV_CAN2  Channel = 2
	DEV_CAN3  Channel = 3
	DEV_CAN4  Channel = 4
	DEV_CAN5  Channel = 5
	DEV_CAN6  Channel = 6
	DEV_CAN7  Channel = 7
	DEV_CAN8  Channel = 8
	DEV_CAN20 Channel = 20

	DEV_FLX1 Channel = 31
	DEV_FLX2 Channel = 32
	DEV_FLX3 Channel = 33
	DEV_FLX4 Channel = 34
	DEV_FLX5 Channel = 35
	DEV_FLX6 Channel = 36
	DEV_FLX7 Channel = 37
	DEV_FLX8 Channel = 38

	DEV_LIN1 Channel = 61
	DEV_LIN2 Channel = 62
	DEV_LIN3 Channel = 63
	DEV_LIN4 Channel = 64
	DEV_LIN5 Channel = 65
	DEV_LIN6 Channel = 66
	DEV_LIN7 Channel = 67
	DEV_LIN8 Channel = 68

	DEV_VX_CAN1 Channel = 81
	DEV_VX_CAN2 Channel = 82
	DEV_VX_CAN3 Channel = 83
	DEV_VX_CAN4 Channel = 84
	DEV_VX_TCP  Channel = 85
	DEV_VX_UDP  Channel = 86

	DEV_SXI1 Channel = 91
	DEV_SXI2 Channel = 92
	DEV_SXI3 Channel = 93
	DEV_SXI4 Channel = 94
	DEV_SXI5 Channel = 95
	DEV_SXI6 Channel = 96
	DEV_SXI7 Channel = 97
	DEV_SXI8 Channel = 98

	DEV_USB Channel = 110

	DEV_CANFD1 Channel = 121
	DEV_CANFD2 Channel = 122
	DEV_CANFD3 Channel = 123
	DEV_CANFD4 Channel = 124
	DEV_CANFD5 Channel = 125
	DEV_CANFD6 Channel = 126
	DEV_CANFD7 Channel = 127
	DEV_CANFD8 Channel = 128
	DEV_CANFD9 Channel = 129

	DEV_TCP          Channel = 255
	DEV_UDP          Channel = 256
	DEV_USERDEFINED  Channel = 261
	DEV_VX_ETHERNET1 Channel = 271
	DEV_VX_ETHERNET2 Channel = 272
	DEV_DAIO_DLL     Channel = 280
)

func (c Channel) String() string {
	switch {
	case c >= DEV_CAN1 && c <= DEV_CAN8, c == DEV_CAN20:
		return fmt.Sprintf("CAN%d", int16(c))
	case c >= DEV_FLX1 && c <= DEV_FLX8:
		return fmt.Sprintf("FLX%d", int16(c-DEV_FLX1+1))
	case c >= DEV_LIN1 && c <= DEV_LIN8:
		return fmt.Sprintf("LIN%d", int16(c-DEV_LIN1+1))
	case c >= DEV_VX_CAN1 && c <= DEV_VX_CAN4:
		return fmt.Sprintf("VX_CAN%d", int16(c-DEV_VX_CAN1+1))
	case c >= DEV_SXI1 && c <= DEV_SXI8:
		return fmt.Sprintf("SXI%d", int16(c-DEV_SXI1+1))
	case c >= DEV_CANFD1 && c <= DEV_CANFD9:
		return fmt.Sprintf("CANFD%d", int16(c-DEV_CANFD1+1))
	}
	switch c {
	case DEV_VX_TCP:
		return "VX_TCP"
	case DEV_VX_UDP:
		return "VX_UDP"
	case DEV_USB:
		return "USB"
	case DEV_TCP:
		return "TCP"
	case DEV_UDP:
		return "UDP"
	case DEV_USERDEFINED:
		return "USERDEFINED"
	case DEV_VX_ETHERNET1:
		return "VX_ETHERNET1"
	case DEV_VX_ETHERNET2:
		return "VX_ETHERNET2"
	case DEV_DAIO_DLL:
		return "DAIO_DLL"
	}
	return fmt.Sprintf("Channel(%d)", int16(c))
}

// ParseChannel accepts the names produced by Channel.String.
func ParseChannel(s string) (Channel, error) {
	for c := Channel(1); c <= DEV_DAIO_DLL; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// DriverType is the value of parameter driverType of Asap3CreateModule.
type DriverType int16

const (
	ASAP3_DRIVER_UNKNOWN      DriverType = 0   // Default value for error case, must not be used
	ASAP3_DRIVER_CCP          DriverType = 1   // CAN calibration protocol
	ASAP3_DRIVER_XCP          DriverType = 2   // XCP
	ASAP3_DRIVER_CAN          DriverType = 20  // CAN
	ASAP3_DRIVER_HEXEDIT      DriverType = 40  // Pure offline driver
	ASAP3_DRIVER_ANALOG       DriverType = 50  // Analog measurement data
	ASAP3_DRIVER_CANOPEN      DriverType = 60  // CANopen
	ASAP3_DRIVER_CANDELA      DriverType = 70  // CANdela Diagnostic
	ASAP3_DRIVER_ENVIRONMENT  DriverType = 80  // Environment, access to global variables
	ASAP3_DRIVER_LIN          DriverType = 90  // LIN
	ASAP3_DRIVER_FLX          DriverType = 100 // FlexRay
	ASAP3_DRIVER_FUNC         DriverType = 110 // Functional diagnostic driver
	ASAP3_DRIVER_NIDAQMX      DriverType = 120 // NI DAQ driver
	ASAP3_DRIVER_XCP_RAMSCOPE DriverType = 130 // XCP driver for Ramscope
	ASAP3_DRIVER_SYSTEM       DriverType = 140 // System driver
	ASAP3_DRIVER_ETH          DriverType = 150 // Ethernet driver
	ASAP3_DAIO_SYSTEM         DriverType = 160 // DAIO system driver
	ASAP3_DRIVER_SOME_IP      DriverType = 170 // SOME/IP driver
	ASAP3_DRIVER_DLT          DriverType = 180 // DLT driver
)

var driverTypeNames = map[DriverType]string{
	ASAP3_DRIVER_UNKNOWN:      "UNKNOWN",
	ASAP3_DRIVER_CCP:          "CCP",
	ASAP3_DRIVER_XCP:          "XCP",
	ASAP3_DRIVER_CAN:          "CAN",
	ASAP3_DRIVER_HEXEDIT:      "HEXEDIT",
	ASAP3_DRIVER_ANALOG:       "ANALOG",
	ASAP3_DRIVER_CANOPEN:      "CANOPEN",
	ASAP3_DRIVER_CANDELA:      "CANDELA",
	ASAP3_DRIVER_ENVIRONMENT:  "ENVIRONMENT",
	ASAP3_DRIVER_LIN:          "LIN",
	ASAP3_DRIVER_FLX:          "FLX",
	ASAP3_DRIVER_FUNC:         "FUNC",
	ASAP3_DRIVER_NIDAQMX:      "NIDAQMX",
	ASAP3_DRIVER_XCP_RAMSCOPE: "XCP_RAMSCOPE",
	ASAP3_DRIVER_SYSTEM:       "SYSTEM",
	ASAP3_DRIVER_ETH:          "ETH",
	ASAP3_DAIO_SYSTEM:         "DAIO_SYSTEM",
	ASAP3_DRIVER_SOME_IP:      "SOME_IP",
	ASAP3_DRIVER_DLT:          "DLT",
}

func (d DriverType) String() string {
	if s, ok := driverTypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DriverType(%d)", int16(d))
}

// ParseDriverType accepts the names produced by DriverType.String.
func ParseDriverType(s string) (DriverType, error) {
	for d, name := range driverTypeNames {
		if name == s {
			return d, nil
		}
	}
	return ASAP3_DRIVER_UNKNOWN, fmt.Errorf("unknown driver type %q", s)
}

// Format of ECU measurement or calibration data.
type Format uint32

const (
	ECU_INTERNAL            Format = 0
	PHYSICAL_REPRESENTATION Format = 1
)

// ValueType selects the variant of a calibration object value.
type ValueType uint32

const (
	VALUE   ValueType = 0 // scalar
	CURVE   ValueType = 1
	MAP     ValueType = 2
	AXIS    ValueType = 3
	ASCII   ValueType = 4
	VAL_BLK ValueType = 5
)

func (v ValueType) String() string {
	switch v {
	case VALUE:
		return "VALUE"
	case CURVE:
		return "CURVE"
	case MAP:
		return "MAP"
	case AXIS:
		return "AXIS"
	case ASCII:
		return "ASCII"
	case VAL_BLK:
		return "VAL_BLK"
	}
	return fmt.Sprintf("ValueType(%d)", uint32(v))
}

// ObjectType tells measurement objects from calibration objects.
type ObjectType uint32

const (
	OTT_MEASURE   ObjectType = 0
	OTT_CALIBRATE ObjectType = 1 // calibration and writeable measurement objects
	OTT_UNKNOWN   ObjectType = 2
)

func (o ObjectType) String() string {
	switch o {
	case OTT_MEASURE:
		return "MEASURE"
	case OTT_CALIBRATE:
		return "CALIBRATE"
	}
	return "UNKNOWN"
}

// DataType is the ECU data type of a characteristic.
type DataType uint32

const (
	TYPE_UNKNOWN  DataType = 0
	TYPE_INT      DataType = 1
	TYPE_FLOAT    DataType = 2
	TYPE_DOUBLE   DataType = 3
	TYPE_SIGNED   DataType = 4
	TYPE_UNSIGNED DataType = 5
	TYPE_STRING   DataType = 6
	TYPE_INT64    DataType = 7
	TYPE_UINT64   DataType = 8
	TYPE_UWORD    DataType = 9
	TYPE_WORD     DataType = 10
	TYPE_UINT     DataType = 11
	TYPE_UBYTE    DataType = 12
	TYPE_SBYTE    DataType = 13
	TYPE_FLOAT16  DataType = 14
)

var dataTypeNames = [...]string{
	"UNKNOWN", "INT", "FLOAT", "DOUBLE", "SIGNED", "UNSIGNED", "STRING",
	"INT64", "UINT64", "UWORD", "WORD", "UINT", "UBYTE", "SBYTE", "FLOAT16",
}

func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", uint32(d))
}

// DBOType selects database objects by kind.
type DBOType uint32

const (
	DBTYPE_MEASUREMENT    DBOType = 1
	DBTYPE_CHARACTERISTIC DBOType = 2
	DBTYPE_ALL            DBOType = 3
)

// ECUState is the on/offline state of an ECU.
type ECUState uint32

const (
	TYPE_SWITCH_ONLINE  ECUState = 0
	TYPE_SWITCH_OFFLINE ECUState = 1
)

type RecorderType uint32

const (
	RecorderTypeMDF     RecorderType = 0
	RecorderTypeILinkRT RecorderType = 1
	RecorderTypeBLF     RecorderType = 2
)

func (r RecorderType) String() string {
	switch r {
	case RecorderTypeMDF:
		return "MDF"
	case RecorderTypeILinkRT:
		return "ILinkRT"
	case RecorderTypeBLF:
		return "BLF"
	}
	return fmt.Sprintf("RecorderType(%d)", uint32(r))
}

type RecorderState uint32

const (
	RecConfigure RecorderState = 0 // configured
	RecActive    RecorderState = 1 // active and ready to run
	RecRunning   RecorderState = 2
	RecPaused    RecorderState = 3 // paused, measurement still running
	RecSuspended RecorderState = 4 // stopped
)

func (r RecorderState) String() string {
	switch r {
	case RecConfigure:
		return "Configure"
	case RecActive:
		return "Active"
	case RecRunning:
		return "Running"
	case RecPaused:
		return "Paused"
	case RecSuspended:
		return "Suspended"
	}
	return fmt.Sprintf("RecorderState(%d)", uint32(r))
}

type MeasurementState uint32

const (
	MeasurementStopped       MeasurementState = 0
	MeasurementInit          MeasurementState = 1 // started, measurement thread not yet running
	MeasurementStopOnStart   MeasurementState = 2
	MeasurementExit          MeasurementState = 3 // stopped but not finished
	MeasurementThreadRunning MeasurementState = 4
	MeasurementRunning       MeasurementState = 5
)

func (m MeasurementState) String() string {
	switch m {
	case MeasurementStopped:
		return "Stopped"
	case MeasurementInit:
		return "Init"
	case MeasurementStopOnStart:
		return "StopOnStart"
	case MeasurementExit:
		return "Exit"
	case MeasurementThreadRunning:
		return "ThreadRunning"
	case MeasurementRunning:
		return "Running"
	}
	return fmt.Sprintf("MeasurementState(%d)", uint32(m))
}

// EventCode identifies the CANape notifications delivered through
// Asap3RegisterCallBack.
type EventCode uint32

const (
	EventDataAcqStart       EventCode = 0
	EventDataAcqStop        EventCode = 1
	EventBeforeDataAcqStart EventCode = 2
	EventCloseProject       EventCode = 3
	EventOpenProject        EventCode = 4
	EventCloseCANape        EventCode = 5
)

// EventCodes lists every event CANape can deliver.
var EventCodes = []EventCode{
	EventDataAcqStart,
	EventDataAcqStop,
	EventBeforeDataAcqStart,
	EventCloseProject,
	EventOpenProject,
	EventCloseCANape,
}

func (e EventCode) String() string {
	switch e {
	case EventDataAcqStart:
		return "ON_DATA_ACQ_START"
	case EventDataAcqStop:
		return "ON_DATA_ACQ_STOP"
	case EventBeforeDataAcqStart:
		return "ON_BEFORE_DATA_ACQ_START"
	case EventCloseProject:
		return "ON_CLOSEPROJECT"
	case EventOpenProject:
		return "ON_OPENPROJECT"
	case EventCloseCANape:
		return "ON_CLOSECANAPE"
	}
	return fmt.Sprintf("EventCode(%d)", uint32(e))
}

type DBFileType uint8

const (
	DBFileUnknown DBFileType = iota
	DBFileASAP2
	DBFileDB
	DBFileDBB
	DBFileDBC
	DBFileCANdela
	DBFileODF
	DBFileEDS
	DBFileEHR
	DBFileROB
	DBFileLST
	DBFileLDF
	DBFileCDM
	DBFileMDF
	DBFileXML
	DBFileUpdate
	DBFileCDP
	DBFileLostVariable
	DBFilePDX
	DBFileAutosarXML
	DBFileSystem
	DBFileAnonymous
)

var dbFileTypeNames = [...]string{
	"UNKNOWN", "ASAP2", "DB", "DBB", "DBC", "CANDELA", "ODF", "EDS", "EHR",
	"ROB", "LST", "LDF", "CDM", "MDF", "XML", "Update", "CDP", "LostVariable",
	"PDX", "AutosarXML", "System", "Anonymous",
}

func (t DBFileType) String() string {
	if int(t) < len(dbFileTypeNames) {
		return dbFileTypeNames[t]
	}
	return fmt.Sprintf("DBFileType(%d)", uint8(t))
}

// ScriptStatus is the state of a CASL script started through the API.
type ScriptStatus uint32

const (
	ScrReady          ScriptStatus = 1
	ScrStarting       ScriptStatus = 2
	ScrRunning        ScriptStatus = 3
	ScrSleeping       ScriptStatus = 4
	ScrSuspended      ScriptStatus = 5
	ScrTerminated     ScriptStatus = 6
	ScrFinishedReturn ScriptStatus = 7
	ScrFinishedCancel ScriptStatus = 8
	ScrFailure        ScriptStatus = 9
	ScrTimeout        ScriptStatus = 10
)

var scriptStatusNames = map[ScriptStatus]string{
	ScrReady:          "Ready",
	ScrStarting:       "Starting",
	ScrRunning:        "Running",
	ScrSleeping:       "Sleeping",
	ScrSuspended:      "Suspended",
	ScrTerminated:     "Terminated",
	ScrFinishedReturn: "FinishedReturn",
	ScrFinishedCancel: "FinishedCancel",
	ScrFailure:        "Failure",
	ScrTimeout:        "Timeout",
}

func (s ScriptStatus) String() string {
	if name, ok := scriptStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ScriptStatus(%d)", uint32(s))
}

// Done reports whether the script reached a final state.
func (s ScriptStatus) Done() bool {
	switch s {
	case ScrTerminated, ScrFinishedReturn, ScrFinishedCancel, ScrFailure, ScrTimeout:
		return true
	}
	return false
}
