package cnp

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// The API header is compiled with #pragma pack(1); every structure below
// is laid out without padding. Pointer width follows the host.

// PtrSize is the width of a native pointer in bytes.
const PtrSize = bits.UintSize / 8

const (
	SizeofVersion      = 4*3 + MaxOSVersion + 4
	SizeofAppVersion   = 4*3 + 30
	SizeofDBFileInfo   = 2*MaxPath + 1
	SizeofDBObjectInfo = 4 + 4 + 8*4 + 1 + MaxPath
	SizeofFifoSize     = 2 + 2 + 2

	SizeofTaskInfo2              = PtrSize + 2 + 4 + 4
	SizeofMeasurementListEntry   = 2 + 4 + 4 + 4 + PtrSize
	SizeofMeasurementListEntries = 4 + PtrSize
	// s_map is the largest member of the TCalibrationObjectValue union.
	SizeofCalibrationObjectValue = 4 + 2 + 2 + 3*PtrSize
)

// Memory gives access to native memory referenced by pointers stored in
// API structures.
type Memory interface {
	// Alloc returns the address of a zeroed buffer of n bytes and a
	// writable view of it. The buffer stays valid until the memory is
	// released by its owner.
	Alloc(n int) (uintptr, []byte, error)
	// View returns n bytes of memory at addr.
	View(addr uintptr, n int) []byte
	// CString returns the bytes at addr up to, not including, the first NUL.
	CString(addr uintptr) []byte
}

var le = binary.LittleEndian

type cursor struct {
	b   []byte
	off int
}

func (c *cursor) u8() uint8 {
	v := c.b[c.off]
	c.off++
	return v
}

func (c *cursor) u16() uint16 {
	v := le.Uint16(c.b[c.off:])
	c.off += 2
	return v
}

func (c *cursor) u32() uint32 {
	v := le.Uint32(c.b[c.off:])
	c.off += 4
	return v
}

func (c *cursor) f64() float64 {
	v := math.Float64frombits(le.Uint64(c.b[c.off:]))
	c.off += 8
	return v
}

func (c *cursor) ptr() uintptr {
	var v uintptr
	if PtrSize == 8 {
		v = uintptr(le.Uint64(c.b[c.off:]))
	} else {
		v = uintptr(le.Uint32(c.b[c.off:]))
	}
	c.off += PtrSize
	return v
}

func (c *cursor) str(n int) string {
	s := DecodeString(c.b[c.off : c.off+n])
	c.off += n
	return s
}

// putStr writes s into a fixed char[n] field, truncated to keep the
// terminating NUL.
func (c *cursor) putStr(n int, s string) {
	enc, err := EncodeString(s)
	if err != nil {
		enc = []byte(s)
	}
	copy(c.b[c.off:c.off+n-1], enc)
	c.off += n
}

func (c *cursor) putU16(v uint16) {
	le.PutUint16(c.b[c.off:], v)
	c.off += 2
}

func (c *cursor) putU32(v uint32) {
	le.PutUint32(c.b[c.off:], v)
	c.off += 4
}

func (c *cursor) putF64(v float64) {
	le.PutUint64(c.b[c.off:], math.Float64bits(v))
	c.off += 8
}

func (c *cursor) putPtr(v uintptr) {
	if PtrSize == 8 {
		le.PutUint64(c.b[c.off:], uint64(v))
	} else {
		le.PutUint32(c.b[c.off:], uint32(v))
	}
	c.off += PtrSize
}

func need(b []byte, n int, what string) error {
	if len(b) < n {
		return fmt.Errorf("%s: short buffer, got %d bytes want %d", what, len(b), n)
	}
	return nil
}

// DecodeVersion decodes a version_t.
func DecodeVersion(b []byte) (Version, error) {
	if err := need(b, SizeofVersion, "version_t"); err != nil {
		return Version{}, err
	}
	c := &cursor{b: b}
	return Version{
		Main:      int32(c.u32()),
		Sub:       int32(c.u32()),
		Release:   int32(c.u32()),
		OSVersion: c.str(MaxOSVersion),
		OSRelease: int32(c.u32()),
	}, nil
}

// EncodeVersion is the inverse of DecodeVersion.
func EncodeVersion(v Version) []byte {
	b := make([]byte, SizeofVersion)
	c := &cursor{b: b}
	c.putU32(uint32(v.Main))
	c.putU32(uint32(v.Sub))
	c.putU32(uint32(v.Release))
	c.putStr(MaxOSVersion, v.OSVersion)
	c.putU32(uint32(v.OSRelease))
	return b
}

// DecodeAppVersion decodes an Appversion.
func DecodeAppVersion(b []byte) (AppVersion, error) {
	if err := need(b, SizeofAppVersion, "Appversion"); err != nil {
		return AppVersion{}, err
	}
	c := &cursor{b: b}
	return AppVersion{
		Main:        int32(c.u32()),
		Sub:         int32(c.u32()),
		ServicePack: int32(c.u32()),
		Application: c.str(30),
	}, nil
}

// DecodeDBFileInfo decodes a DBFileInfo.
func DecodeDBFileInfo(b []byte) (DBFileInfo, error) {
	if err := need(b, SizeofDBFileInfo, "DBFileInfo"); err != nil {
		return DBFileInfo{}, err
	}
	c := &cursor{b: b}
	return DBFileInfo{
		Filename: c.str(MaxPath),
		Path:     c.str(MaxPath),
		Type:     DBFileType(c.u8()),
	}, nil
}

// DecodeDBObjectInfo decodes a DBObjectInfo.
func DecodeDBObjectInfo(b []byte) (DBObjectInfo, error) {
	if err := need(b, SizeofDBObjectInfo, "DBObjectInfo"); err != nil {
		return DBObjectInfo{}, err
	}
	c := &cursor{b: b}
	return DBObjectInfo{
		ObjectType: ObjectType(c.u32()),
		ValueType:  ValueType(c.u32()),
		Min:        c.f64(),
		Max:        c.f64(),
		MinEx:      c.f64(),
		MaxEx:      c.f64(),
		Precision:  c.u8(),
		Unit:       c.str(MaxPath),
	}, nil
}

// EncodeDBObjectInfo is the inverse of DecodeDBObjectInfo.
func EncodeDBObjectInfo(info DBObjectInfo) []byte {
	b := make([]byte, SizeofDBObjectInfo)
	c := &cursor{b: b}
	c.putU32(uint32(info.ObjectType))
	c.putU32(uint32(info.ValueType))
	c.putF64(info.Min)
	c.putF64(info.Max)
	c.putF64(info.MinEx)
	c.putF64(info.MaxEx)
	b[c.off] = info.Precision
	c.off++
	c.putStr(MaxPath, info.Unit)
	return b
}

// DecodeTaskInfo2 decodes count consecutive TTaskInfo2 records.
func DecodeTaskInfo2(b []byte, count int, mem Memory) ([]TaskInfo, error) {
	if err := need(b, count*SizeofTaskInfo2, "TTaskInfo2"); err != nil {
		return nil, err
	}
	tasks := make([]TaskInfo, 0, count)
	c := &cursor{b: b}
	for i := 0; i < count; i++ {
		desc := c.ptr()
		t := TaskInfo{
			TaskID:       c.u16(),
			TaskCycle:    c.u32(),
			EventChannel: c.u32(),
		}
		if desc != 0 {
			t.Description = DecodeString(mem.CString(desc))
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// DecodeMeasurementListEntries decodes a MeasurementListEntries structure
// and the entries it points to.
func DecodeMeasurementListEntries(b []byte, mem Memory) ([]MeasurementListEntry, error) {
	if err := need(b, SizeofMeasurementListEntries, "MeasurementListEntries"); err != nil {
		return nil, err
	}
	c := &cursor{b: b}
	count := int(c.u32())
	table := c.ptr()
	if count == 0 || table == 0 {
		return nil, nil
	}
	pc := &cursor{b: mem.View(table, count*PtrSize)}
	entries := make([]MeasurementListEntry, 0, count)
	for i := 0; i < count; i++ {
		addr := pc.ptr()
		if addr == 0 {
			continue
		}
		ec := &cursor{b: mem.View(addr, SizeofMeasurementListEntry)}
		e := MeasurementListEntry{
			TaskID:   ec.u16(),
			Rate:     ec.u32(),
			SaveFlag: ec.u32() != 0,
			Disabled: ec.u32() != 0,
		}
		if name := ec.ptr(); name != 0 {
			e.ObjectName = DecodeString(mem.CString(name))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// EncodeFifoSizes encodes a tFifoSize array.
func EncodeFifoSizes(sizes []FifoSize) []byte {
	b := make([]byte, len(sizes)*SizeofFifoSize)
	c := &cursor{b: b}
	for _, s := range sizes {
		c.putU16(uint16(s.Module))
		c.putU16(s.TaskID)
		c.putU16(s.NoSamples)
	}
	return b
}

// ReadFloats reads n doubles from native memory.
func ReadFloats(mem Memory, addr uintptr, n int) []float64 {
	if n <= 0 || addr == 0 {
		return []float64{}
	}
	out := make([]float64, n)
	c := &cursor{b: mem.View(addr, n*8)}
	for i := range out {
		out[i] = c.f64()
	}
	return out
}

func writeFloats(mem Memory, f []float64) (uintptr, error) {
	if len(f) == 0 {
		return 0, nil
	}
	addr, b, err := mem.Alloc(len(f) * 8)
	if err != nil {
		return 0, err
	}
	c := &cursor{b: b}
	for _, v := range f {
		c.putF64(v)
	}
	return addr, nil
}

// DecodeCalibrationValue decodes a TCalibrationObjectValue, copying the
// arrays it references out of native memory.
func DecodeCalibrationValue(b []byte, mem Memory) (CalibrationValue, error) {
	if err := need(b, SizeofCalibrationObjectValue, "TCalibrationObjectValue"); err != nil {
		return CalibrationValue{}, err
	}
	c := &cursor{b: b}
	v := CalibrationValue{Type: ValueType(c.u32())}
	switch v.Type {
	case VALUE:
		v.Scalar = c.f64()
	case AXIS:
		dim := int(int16(c.u16()))
		v.Axis = ReadFloats(mem, c.ptr(), dim)
	case ASCII:
		v.Len = int16(c.u16())
		if p := c.ptr(); p != 0 {
			v.ASCII = DecodeString(mem.CString(p))
		}
	case CURVE:
		dim := int(int16(c.u16()))
		v.Axis = ReadFloats(mem, c.ptr(), dim)
		v.Values = ReadFloats(mem, c.ptr(), dim)
	case MAP:
		v.XDimension = int16(c.u16())
		v.YDimension = int16(c.u16())
		x, y := int(v.XDimension), int(v.YDimension)
		v.XAxis = ReadFloats(mem, c.ptr(), x)
		v.YAxis = ReadFloats(mem, c.ptr(), y)
		v.Values = ReadFloats(mem, c.ptr(), x*y)
	case VAL_BLK:
		v.XDimension = int16(c.u16())
		v.YDimension = int16(c.u16())
		v.Values = ReadFloats(mem, c.ptr(), int(v.XDimension)*int(v.YDimension))
	default:
		return v, fmt.Errorf("TCalibrationObjectValue: unknown value type %d", uint32(v.Type))
	}
	return v, nil
}

// EncodeCalibrationValue encodes v as a TCalibrationObjectValue. Arrays
// are copied into buffers allocated from mem.
func EncodeCalibrationValue(v CalibrationValue, mem Memory) ([]byte, error) {
	b := make([]byte, SizeofCalibrationObjectValue)
	c := &cursor{b: b}
	c.putU32(uint32(v.Type))

	putArray := func(f []float64) error {
		addr, err := writeFloats(mem, f)
		if err != nil {
			return err
		}
		c.putPtr(addr)
		return nil
	}

	switch v.Type {
	case VALUE:
		c.putF64(v.Scalar)
	case AXIS:
		c.putU16(uint16(len(v.Axis)))
		if err := putArray(v.Axis); err != nil {
			return nil, err
		}
	case ASCII:
		s, err := EncodeString(v.ASCII)
		if err != nil {
			return nil, fmt.Errorf("TCalibrationObjectValue: %w", err)
		}
		n := v.Len
		if n == 0 {
			n = int16(len(s) - 1)
		}
		c.putU16(uint16(n))
		addr, buf, err := mem.Alloc(len(s))
		if err != nil {
			return nil, err
		}
		copy(buf, s)
		c.putPtr(addr)
	case CURVE:
		if len(v.Values) != len(v.Axis) {
			return nil, fmt.Errorf("TCalibrationObjectValue: curve axis has %d points but %d values", len(v.Axis), len(v.Values))
		}
		c.putU16(uint16(len(v.Axis)))
		if err := putArray(v.Axis); err != nil {
			return nil, err
		}
		if err := putArray(v.Values); err != nil {
			return nil, err
		}
	case MAP:
		if len(v.Values) != int(v.XDimension)*int(v.YDimension) {
			return nil, fmt.Errorf("TCalibrationObjectValue: map %dx%d has %d values", v.XDimension, v.YDimension, len(v.Values))
		}
		c.putU16(uint16(v.XDimension))
		c.putU16(uint16(v.YDimension))
		for _, f := range [][]float64{v.XAxis, v.YAxis, v.Values} {
			if err := putArray(f); err != nil {
				return nil, err
			}
		}
	case VAL_BLK:
		if len(v.Values) != int(v.XDimension)*int(v.YDimension) {
			return nil, fmt.Errorf("TCalibrationObjectValue: value block %dx%d has %d values", v.XDimension, v.YDimension, len(v.Values))
		}
		c.putU16(uint16(v.XDimension))
		c.putU16(uint16(v.YDimension))
		if err := putArray(v.Values); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("TCalibrationObjectValue: unknown value type %d", uint32(v.Type))
	}
	return b, nil
}
