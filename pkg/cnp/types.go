package cnp

import (
	"fmt"
	"time"
)

type (
	// Handle is the opaque TAsap3Hdl of an initialised API session.
	Handle uintptr
	// ModuleHandle identifies a module (device) inside a session.
	ModuleHandle uint16
	// RecorderID is the opaque TRecorderID of a recorder.
	RecorderID uintptr
	// ScriptHandle identifies a script started with Asap3ExecuteScriptEx.
	ScriptHandle uint32
	// Time is a CANape timestamp in ticks of TimeResolution.
	Time uint32
)

// TimeResolution is the length of one Time tick.
const TimeResolution = 10 * time.Microsecond

// Duration converts t to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t) * TimeResolution
}

// Version is the DLL version reported by Asap3GetVersion.
type Version struct {
	Main      int32
	Sub       int32
	Release   int32
	OSVersion string
	OSRelease int32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Main, v.Sub, v.Release)
}

// AppVersion is the version of the running server application.
type AppVersion struct {
	Main        int32
	Sub         int32
	ServicePack int32
	Application string
}

func (v AppVersion) String() string {
	return fmt.Sprintf("%s %d.%d SP%d", v.Application, v.Main, v.Sub, v.ServicePack)
}

// DBFileInfo describes the database file assigned to a module.
type DBFileInfo struct {
	Filename string
	Path     string
	Type     DBFileType
}

// DBObjectInfo describes a measurement or calibration object.
type DBObjectInfo struct {
	ObjectType ObjectType
	ValueType  ValueType
	Min        float64
	Max        float64
	MinEx      float64
	MaxEx      float64
	Precision  uint8
	Unit       string
}

// ObjectParameter is the result of Asap3ReadObjectParameter.
type ObjectParameter struct {
	DataType  DataType
	Address   uint32
	Min       float64
	Max       float64
	Increment float64
}

// TaskInfo describes a data acquisition task (raster) of a module.
type TaskInfo struct {
	Description  string
	TaskID       uint16
	TaskCycle    uint32 // ms, 0 if not cyclic or unknown
	EventChannel uint32
}

// MeasurementListEntry is one line of CANape's measurement list.
type MeasurementListEntry struct {
	TaskID     uint16
	Rate       uint32
	SaveFlag   bool
	Disabled   bool
	ObjectName string
}

// FifoSize configures the FIFO depth of one task, see Asap3SetupFifo.
type FifoSize struct {
	Module    ModuleHandle
	TaskID    uint16
	NoSamples uint16
}

// CalibrationValue is the Go form of TCalibrationObjectValue. Which
// fields are meaningful depends on Type.
type CalibrationValue struct {
	Type ValueType

	// VALUE
	Scalar float64

	// AXIS uses Axis; CURVE uses Axis and Values.
	Axis []float64

	// MAP uses XAxis, YAxis and Values; VAL_BLK uses Values.
	XAxis      []float64
	YAxis      []float64
	XDimension int16
	YDimension int16

	Values []float64

	// ASCII. Len is the capacity reported by CANape.
	ASCII string
	Len   int16
}

// Dimension is the number of points of an AXIS or CURVE value.
func (v *CalibrationValue) Dimension() int {
	return len(v.Axis)
}

// Clone returns a deep copy of v.
func (v CalibrationValue) Clone() CalibrationValue {
	c := v
	c.Axis = cloneFloats(v.Axis)
	c.XAxis = cloneFloats(v.XAxis)
	c.YAxis = cloneFloats(v.YAxis)
	c.Values = cloneFloats(v.Values)
	return c
}

func cloneFloats(f []float64) []float64 {
	if f == nil {
		return nil
	}
	out := make([]float64, len(f))
	copy(out, f)
	return out
}
