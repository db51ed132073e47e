package canape

import (
	"fmt"
	"sync"

	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

// CalibrationObject is the common part of every calibration or
// measurement object. Use a type switch on the concrete kinds
// (*ScalarObject, *AxisObject, *CurveObject, *MapObject, *ASCIIObject,
// *ValueBlockObject) to access the value.
type CalibrationObject interface {
	Name() string
	ObjectType() cnp.ObjectType
	ValueType() cnp.ValueType
	// DataType is the ECU data type, TYPE_UNKNOWN if CANape cannot tell.
	DataType() cnp.DataType
	Min() float64
	Max() float64
	MinEx() float64
	MaxEx() float64
	Precision() uint8
	Unit() string
	ForceUpload() bool
	SetForceUpload(force bool)
}

func newCalibrationObject(m *Module, name string, info cnp.DBObjectInfo) (CalibrationObject, error) {
	var obj interface {
		CalibrationObject
		base() *calibrationObject
	}
	switch info.ValueType {
	case cnp.VALUE:
		obj = &ScalarObject{}
	case cnp.AXIS:
		obj = &AxisObject{}
	case cnp.CURVE:
		obj = &CurveObject{}
	case cnp.MAP:
		obj = &MapObject{}
	case cnp.ASCII:
		obj = &ASCIIObject{}
	case cnp.VAL_BLK:
		obj = &ValueBlockObject{}
	default:
		return nil, fmt.Errorf("%w: %s has %s", ErrUnknownValueType, name, info.ValueType)
	}
	b := obj.base()
	b.m, b.name, b.info, b.forceUpload = m, name, info, true
	return obj, nil
}

type calibrationObject struct {
	m    *Module
	name string
	info cnp.DBObjectInfo

	mu          sync.Mutex
	forceUpload bool

	dataTypeOnce sync.Once
	dataType     cnp.DataType
}

func (o *calibrationObject) base() *calibrationObject { return o }

func (o *calibrationObject) Name() string               { return o.name }
func (o *calibrationObject) ObjectType() cnp.ObjectType { return o.info.ObjectType }
func (o *calibrationObject) ValueType() cnp.ValueType   { return o.info.ValueType }
func (o *calibrationObject) Min() float64               { return o.info.Min }
func (o *calibrationObject) Max() float64               { return o.info.Max }
func (o *calibrationObject) MinEx() float64             { return o.info.MinEx }
func (o *calibrationObject) MaxEx() float64             { return o.info.MaxEx }
func (o *calibrationObject) Precision() uint8           { return o.info.Precision }
func (o *calibrationObject) Unit() string               { return o.info.Unit }

func (o *calibrationObject) String() string {
	return fmt.Sprintf("%s(%s)", o.info.ValueType, o.name)
}

func (o *calibrationObject) DataType() cnp.DataType {
	o.dataTypeOnce.Do(func() {
		p, err := o.m.c.api.ReadObjectParameter(o.m.c.handle, o.m.handle, o.name, cnp.PHYSICAL_REPRESENTATION)
		if err != nil {
			o.m.c.log.Debug("object parameter unavailable", zap.String("object", o.name), zap.Error(err))
			o.dataType = cnp.TYPE_UNKNOWN
			return
		}
		o.dataType = p.DataType
	})
	return o.dataType
}

// ForceUpload reports whether reads fetch the value from the ECU
// instead of CANape's cache. The default is true.
func (o *calibrationObject) ForceUpload() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.forceUpload
}

func (o *calibrationObject) SetForceUpload(force bool) {
	o.mu.Lock()
	o.forceUpload = force
	o.mu.Unlock()
}

func (o *calibrationObject) read(types ...cnp.ValueType) (cnp.CalibrationValue, error) {
	v, err := o.m.c.api.ReadCalibrationObject2(o.m.c.handle, o.m.handle, o.name, cnp.PHYSICAL_REPRESENTATION, o.ForceUpload())
	if err != nil {
		return cnp.CalibrationValue{}, err
	}
	for _, t := range types {
		if v.Type == t {
			return v, nil
		}
	}
	return cnp.CalibrationValue{}, fmt.Errorf("%w: %s returned %s", ErrUnknownValueType, o.name, v.Type)
}

func (o *calibrationObject) write(v cnp.CalibrationValue) error {
	if o.info.ObjectType != cnp.OTT_CALIBRATE {
		return fmt.Errorf("%w: %s", ErrNotCalibratable, o.name)
	}
	return o.m.c.api.WriteCalibrationObject(o.m.c.handle, o.m.handle, o.name, cnp.PHYSICAL_REPRESENTATION, v)
}

// update re-reads the object, lets edit change it and writes the whole
// value back.
func (o *calibrationObject) update(edit func(v *cnp.CalibrationValue) error, types ...cnp.ValueType) error {
	if o.info.ObjectType != cnp.OTT_CALIBRATE {
		return fmt.Errorf("%w: %s", ErrNotCalibratable, o.name)
	}
	v, err := o.read(types...)
	if err != nil {
		return err
	}
	if err := edit(&v); err != nil {
		return err
	}
	return o.write(v)
}

func (o *calibrationObject) checkLen(part string, want, got int) error {
	if want != got {
		return &DimensionError{Object: o.name, Part: part, Want: want, Got: got}
	}
	return nil
}

// lazyInt caches the first successful result of a getter.
type lazyInt struct {
	mu  sync.Mutex
	ok  bool
	val int
}

func (l *lazyInt) get(fn func() (int, error)) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ok {
		return l.val, nil
	}
	v, err := fn()
	if err != nil {
		return 0, err
	}
	l.val, l.ok = v, true
	return v, nil
}

func copyFloats(f []float64) []float64 {
	out := make([]float64, len(f))
	copy(out, f)
	return out
}

// ScalarObject is a single value.
type ScalarObject struct {
	calibrationObject
}

func (o *ScalarObject) Value() (float64, error) {
	v, err := o.read(cnp.VALUE)
	if err != nil {
		return 0, err
	}
	return v.Scalar, nil
}

func (o *ScalarObject) SetValue(value float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		v.Scalar = value
		return nil
	}, cnp.VALUE)
}

// AxisObject is a standalone axis.
type AxisObject struct {
	calibrationObject
	dim lazyInt
}

// Dimension is the number of axis points.
func (o *AxisObject) Dimension() (int, error) {
	return o.dim.get(func() (int, error) {
		v, err := o.read(cnp.AXIS)
		if err != nil {
			return 0, err
		}
		return len(v.Axis), nil
	})
}

func (o *AxisObject) Axis() ([]float64, error) {
	v, err := o.read(cnp.AXIS)
	if err != nil {
		return nil, err
	}
	return copyFloats(v.Axis), nil
}

func (o *AxisObject) SetAxis(axis []float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		if err := o.checkLen("axis", len(v.Axis), len(axis)); err != nil {
			return err
		}
		v.Axis = copyFloats(axis)
		return nil
	}, cnp.AXIS)
}

// CurveObject is a one dimensional characteristic with its axis.
type CurveObject struct {
	calibrationObject
	dim lazyInt
}

func (o *CurveObject) Dimension() (int, error) {
	return o.dim.get(func() (int, error) {
		v, err := o.read(cnp.CURVE)
		if err != nil {
			return 0, err
		}
		return len(v.Axis), nil
	})
}

func (o *CurveObject) Axis() ([]float64, error) {
	v, err := o.read(cnp.CURVE)
	if err != nil {
		return nil, err
	}
	return copyFloats(v.Axis), nil
}

func (o *CurveObject) SetAxis(axis []float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		if err := o.checkLen("axis", len(v.Axis), len(axis)); err != nil {
			return err
		}
		v.Axis = copyFloats(axis)
		return nil
	}, cnp.CURVE)
}

func (o *CurveObject) Values() ([]float64, error) {
	v, err := o.read(cnp.CURVE)
	if err != nil {
		return nil, err
	}
	return copyFloats(v.Values), nil
}

func (o *CurveObject) SetValues(values []float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		if err := o.checkLen("values", len(v.Values), len(values)); err != nil {
			return err
		}
		v.Values = copyFloats(values)
		return nil
	}, cnp.CURVE)
}

// MapObject is a two dimensional characteristic. Values are indexed
// [x][y].
type MapObject struct {
	calibrationObject
	xDim lazyInt
	yDim lazyInt
}

func (o *MapObject) XDimension() (int, error) {
	return o.xDim.get(func() (int, error) {
		v, err := o.read(cnp.MAP, cnp.VAL_BLK)
		if err != nil {
			return 0, err
		}
		return int(v.XDimension), nil
	})
}

func (o *MapObject) YDimension() (int, error) {
	return o.yDim.get(func() (int, error) {
		v, err := o.read(cnp.MAP, cnp.VAL_BLK)
		if err != nil {
			return 0, err
		}
		return int(v.YDimension), nil
	})
}

func (o *MapObject) XAxis() ([]float64, error) {
	v, err := o.read(cnp.MAP)
	if err != nil {
		return nil, err
	}
	return copyFloats(v.XAxis), nil
}

func (o *MapObject) SetXAxis(axis []float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		if err := o.checkLen("x axis", int(v.XDimension), len(axis)); err != nil {
			return err
		}
		v.XAxis = copyFloats(axis)
		return nil
	}, cnp.MAP)
}

func (o *MapObject) YAxis() ([]float64, error) {
	v, err := o.read(cnp.MAP)
	if err != nil {
		return nil, err
	}
	return copyFloats(v.YAxis), nil
}

func (o *MapObject) SetYAxis(axis []float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		if err := o.checkLen("y axis", int(v.YDimension), len(axis)); err != nil {
			return err
		}
		v.YAxis = copyFloats(axis)
		return nil
	}, cnp.MAP)
}

func (o *MapObject) Values() ([][]float64, error) {
	v, err := o.read(cnp.MAP, cnp.VAL_BLK)
	if err != nil {
		return nil, err
	}
	return toMatrix(v.Values, int(v.XDimension), int(v.YDimension)), nil
}

func (o *MapObject) SetValues(values [][]float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		flat, err := o.fromMatrix(values, int(v.XDimension), int(v.YDimension))
		if err != nil {
			return err
		}
		v.Values = flat
		return nil
	}, cnp.MAP, cnp.VAL_BLK)
}

// ASCIIObject is a fixed capacity string.
type ASCIIObject struct {
	calibrationObject
	length lazyInt
}

// Len is the capacity of the string in bytes.
func (o *ASCIIObject) Len() (int, error) {
	return o.length.get(func() (int, error) {
		v, err := o.read(cnp.ASCII)
		if err != nil {
			return 0, err
		}
		return int(v.Len), nil
	})
}

func (o *ASCIIObject) ASCII() (string, error) {
	v, err := o.read(cnp.ASCII)
	if err != nil {
		return "", err
	}
	return v.ASCII, nil
}

func (o *ASCIIObject) SetASCII(s string) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		b, err := cnp.EncodeString(s)
		if err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
		if n := len(b) - 1; v.Len > 0 && n > int(v.Len) {
			return fmt.Errorf("%w: %s holds %d bytes, got %d", ErrStringTooLong, o.name, v.Len, n)
		}
		v.ASCII = s
		return nil
	}, cnp.ASCII)
}

// ValueBlockObject is an array or matrix of values without axes. Values
// are indexed [x][y].
type ValueBlockObject struct {
	calibrationObject
	xDim lazyInt
	yDim lazyInt
}

func (o *ValueBlockObject) XDimension() (int, error) {
	return o.xDim.get(func() (int, error) {
		v, err := o.read(cnp.VAL_BLK)
		if err != nil {
			return 0, err
		}
		return int(v.XDimension), nil
	})
}

func (o *ValueBlockObject) YDimension() (int, error) {
	return o.yDim.get(func() (int, error) {
		v, err := o.read(cnp.VAL_BLK)
		if err != nil {
			return 0, err
		}
		return int(v.YDimension), nil
	})
}

func (o *ValueBlockObject) Values() ([][]float64, error) {
	v, err := o.read(cnp.VAL_BLK)
	if err != nil {
		return nil, err
	}
	return toMatrix(v.Values, int(v.XDimension), int(v.YDimension)), nil
}

func (o *ValueBlockObject) SetValues(values [][]float64) error {
	return o.update(func(v *cnp.CalibrationValue) error {
		flat, err := o.fromMatrix(values, int(v.XDimension), int(v.YDimension))
		if err != nil {
			return err
		}
		v.Values = flat
		return nil
	}, cnp.VAL_BLK)
}

func toMatrix(flat []float64, x, y int) [][]float64 {
	out := make([][]float64, x)
	for i := range out {
		out[i] = make([]float64, y)
		lo, hi := min(i*y, len(flat)), min((i+1)*y, len(flat))
		copy(out[i], flat[lo:hi])
	}
	return out
}

func (o *calibrationObject) fromMatrix(values [][]float64, x, y int) ([]float64, error) {
	if err := o.checkLen("x dimension", x, len(values)); err != nil {
		return nil, err
	}
	flat := make([]float64, 0, x*y)
	for i, row := range values {
		if err := o.checkLen(fmt.Sprintf("row %d", i), y, len(row)); err != nil {
			return nil, err
		}
		flat = append(flat, row...)
	}
	return flat, nil
}
