package cnp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructSizes(t *testing.T) {
	assert.Equal(t, 66, SizeofVersion)
	assert.Equal(t, 42, SizeofAppVersion)
	assert.Equal(t, 521, SizeofDBFileInfo)
	assert.Equal(t, 301, SizeofDBObjectInfo)
	assert.Equal(t, 6, SizeofFifoSize)

	if PtrSize == 8 {
		assert.Equal(t, 18, SizeofTaskInfo2)
		assert.Equal(t, 22, SizeofMeasurementListEntry)
		assert.Equal(t, 12, SizeofMeasurementListEntries)
		assert.Equal(t, 32, SizeofCalibrationObjectValue)
	} else {
		assert.Equal(t, 14, SizeofTaskInfo2)
		assert.Equal(t, 18, SizeofMeasurementListEntry)
		assert.Equal(t, 8, SizeofMeasurementListEntries)
		assert.Equal(t, 20, SizeofCalibrationObjectValue)
	}
}

func TestDecodeVersion(t *testing.T) {
	b := EncodeVersion(Version{Main: 2, Sub: 3, Release: 1, OSVersion: "Windows 10", OSRelease: 19045})
	require.Len(t, b, SizeofVersion)
	// OS release sits right behind the fixed size OS string
	assert.Equal(t, uint32(19045), le.Uint32(b[12+MaxOSVersion:]))

	v, err := DecodeVersion(b)
	require.NoError(t, err)
	assert.Equal(t, "2.3.1", v.String())
	assert.Equal(t, "Windows 10", v.OSVersion)
	assert.Equal(t, int32(19045), v.OSRelease)

	_, err = DecodeVersion(b[:10])
	assert.Error(t, err)
}

func TestDecodeAppVersion(t *testing.T) {
	b := make([]byte, SizeofAppVersion)
	le.PutUint32(b[0:], 21)
	le.PutUint32(b[4:], 0)
	le.PutUint32(b[8:], 2)
	copy(b[12:], "CANape")

	v, err := DecodeAppVersion(b)
	require.NoError(t, err)
	assert.Equal(t, AppVersion{Main: 21, ServicePack: 2, Application: "CANape"}, v)
	assert.Equal(t, "CANape 21.0 SP2", v.String())
}

func TestDecodeDBFileInfo(t *testing.T) {
	b := make([]byte, SizeofDBFileInfo)
	copy(b, "XCPsim.a2l")
	copy(b[MaxPath:], `C:\Users\Public\Documents\Vector\CANape Examples 21.0\XCPDemo`)
	b[2*MaxPath] = byte(DBFileASAP2)

	info, err := DecodeDBFileInfo(b)
	require.NoError(t, err)
	assert.Equal(t, "XCPsim.a2l", info.Filename)
	assert.Equal(t, `C:\Users\Public\Documents\Vector\CANape Examples 21.0\XCPDemo`, info.Path)
	assert.Equal(t, DBFileASAP2, info.Type)
}

func TestDBObjectInfo(t *testing.T) {
	want := DBObjectInfo{
		ObjectType: OTT_CALIBRATE,
		ValueType:  MAP,
		Min:        -10,
		Max:        10,
		MinEx:      -100,
		MaxEx:      100,
		Precision:  3,
		Unit:       "°C",
	}
	b := EncodeDBObjectInfo(want)
	require.Len(t, b, SizeofDBObjectInfo)
	// latin-1 degree sign
	assert.Equal(t, byte(0xb0), b[4+4+32+1])

	got, err := DecodeDBObjectInfo(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeTaskInfo2(t *testing.T) {
	mem := newArena()
	b := make([]byte, 3*SizeofTaskInfo2)
	c := &cursor{b: b}
	for i, desc := range []string{"10ms", "100ms", ""} {
		if desc != "" {
			c.putPtr(mem.putString(desc))
		} else {
			c.putPtr(0)
		}
		c.putU16(uint16(i + 1))
		c.putU32(uint32(10 * (i + 1)))
		c.putU32(uint32(i))
	}

	tasks, err := DecodeTaskInfo2(b, 3, mem)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, TaskInfo{Description: "10ms", TaskID: 1, TaskCycle: 10, EventChannel: 0}, tasks[0])
	assert.Equal(t, TaskInfo{Description: "100ms", TaskID: 2, TaskCycle: 20, EventChannel: 1}, tasks[1])
	assert.Equal(t, "", tasks[2].Description)

	_, err = DecodeTaskInfo2(b, 4, mem)
	assert.Error(t, err)
}

func TestDecodeMeasurementListEntries(t *testing.T) {
	mem := newArena()

	entry := func(task uint16, rate uint32, save, disabled bool, name string) uintptr {
		addr, b, _ := mem.Alloc(SizeofMeasurementListEntry)
		c := &cursor{b: b}
		c.putU16(task)
		c.putU32(rate)
		if save {
			c.putU32(1)
		} else {
			c.putU32(0)
		}
		if disabled {
			c.putU32(1)
		} else {
			c.putU32(0)
		}
		c.putPtr(mem.putString(name))
		return addr
	}

	table, tb, _ := mem.Alloc(2 * PtrSize)
	tc := &cursor{b: tb}
	tc.putPtr(entry(3, 10, true, false, "channel1"))
	tc.putPtr(entry(4, 0, false, true, "ampl"))

	b := make([]byte, SizeofMeasurementListEntries)
	c := &cursor{b: b}
	c.putU32(2)
	c.putPtr(table)

	entries, err := DecodeMeasurementListEntries(b, mem)
	require.NoError(t, err)
	assert.Equal(t, []MeasurementListEntry{
		{TaskID: 3, Rate: 10, SaveFlag: true, ObjectName: "channel1"},
		{TaskID: 4, Disabled: true, ObjectName: "ampl"},
	}, entries)

	empty := make([]byte, SizeofMeasurementListEntries)
	entries, err = DecodeMeasurementListEntries(empty, mem)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncodeFifoSizes(t *testing.T) {
	b := EncodeFifoSizes([]FifoSize{{Module: 1, TaskID: 2, NoSamples: 128}, {Module: 0xFFFF, TaskID: 3, NoSamples: 0x0102}})
	assert.Equal(t, []byte{1, 0, 2, 0, 128, 0, 0xff, 0xff, 3, 0, 0x02, 0x01}, b)
}

func TestCalibrationValueLayout(t *testing.T) {
	mem := newArena()
	v := CalibrationValue{
		Type:       MAP,
		XDimension: 2,
		YDimension: 3,
		XAxis:      []float64{0, 1},
		YAxis:      []float64{10, 20, 30},
		Values:     []float64{1, 2, 3, 4, 5, 6},
	}
	b, err := EncodeCalibrationValue(v, mem)
	require.NoError(t, err)
	require.Len(t, b, SizeofCalibrationObjectValue)

	c := &cursor{b: b}
	assert.Equal(t, uint32(MAP), c.u32())
	assert.Equal(t, uint16(2), c.u16())
	assert.Equal(t, uint16(3), c.u16())
	assert.Equal(t, []float64{0, 1}, ReadFloats(mem, c.ptr(), 2))
	assert.Equal(t, []float64{10, 20, 30}, ReadFloats(mem, c.ptr(), 3))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, ReadFloats(mem, c.ptr(), 6))
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		name    string
		value   CalibrationValue
		want    CalibrationValue
		wantErr bool
	}{
		{
			name:  "scalar",
			value: CalibrationValue{Type: VALUE, Scalar: 3.25},
			want:  CalibrationValue{Type: VALUE, Scalar: 3.25},
		},
		{
			name:  "axis",
			value: CalibrationValue{Type: AXIS, Axis: []float64{1, 2, 4, 8}},
			want:  CalibrationValue{Type: AXIS, Axis: []float64{1, 2, 4, 8}},
		},
		{
			name:  "curve",
			value: CalibrationValue{Type: CURVE, Axis: []float64{0, 50, 100}, Values: []float64{0.5, 0.7, 0.9}},
			want:  CalibrationValue{Type: CURVE, Axis: []float64{0, 50, 100}, Values: []float64{0.5, 0.7, 0.9}},
		},
		{
			name:  "ascii keeps capacity",
			value: CalibrationValue{Type: ASCII, ASCII: "abc", Len: 10},
			want:  CalibrationValue{Type: ASCII, ASCII: "abc", Len: 10},
		},
		{
			name:  "ascii without capacity",
			value: CalibrationValue{Type: ASCII, ASCII: "hello"},
			want:  CalibrationValue{Type: ASCII, ASCII: "hello", Len: 5},
		},
		{
			name:  "value block",
			value: CalibrationValue{Type: VAL_BLK, XDimension: 2, YDimension: 2, Values: []float64{1, 2, 3, 4}},
			want:  CalibrationValue{Type: VAL_BLK, XDimension: 2, YDimension: 2, Values: []float64{1, 2, 3, 4}},
		},
		{
			name:    "curve length mismatch",
			value:   CalibrationValue{Type: CURVE, Axis: []float64{0, 1}, Values: []float64{1}},
			wantErr: true,
		},
		{
			name:    "map length mismatch",
			value:   CalibrationValue{Type: MAP, XDimension: 2, YDimension: 2, Values: []float64{1, 2, 3}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			value:   CalibrationValue{Type: ValueType(42)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newArena()
			b, err := EncodeCalibrationValue(tt.value, mem)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := DecodeCalibrationValue(b, mem)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCalibrationValueEmptyArrays(t *testing.T) {
	b := make([]byte, SizeofCalibrationObjectValue)
	le.PutUint32(b, uint32(AXIS))
	v, err := DecodeCalibrationValue(b, newArena())
	require.NoError(t, err)
	assert.Equal(t, []float64{}, v.Axis)
}

func TestReadFloats(t *testing.T) {
	mem := newArena()
	addr, err := writeFloats(mem, []float64{math.Inf(1), -0.5, math.MaxFloat64})
	require.NoError(t, err)
	got := ReadFloats(mem, addr, 3)
	assert.Equal(t, []float64{math.Inf(1), -0.5, math.MaxFloat64}, got)
	assert.Empty(t, ReadFloats(mem, 0, 3))
}
