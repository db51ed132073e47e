package canape

import (
	"testing"

	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustObject(t *testing.T, m *Module, name string) CalibrationObject {
	t.Helper()
	obj, err := m.CalibrationObject(name)
	require.NoError(t, err)
	return obj
}

func TestCalibrationObjectKinds(t *testing.T) {
	_, _, m := newSession(t)

	tests := []struct {
		name string
		want any
		typ  cnp.ValueType
	}{
		{"ampl", &ScalarObject{}, cnp.VALUE},
		{"axis0", &AxisObject{}, cnp.AXIS},
		{"KL1", &CurveObject{}, cnp.CURVE},
		{"KF1", &MapObject{}, cnp.MAP},
		{"testString", &ASCIIObject{}, cnp.ASCII},
		{"map1_2_2", &ValueBlockObject{}, cnp.VAL_BLK},
		{"channel1", &ScalarObject{}, cnp.VALUE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := mustObject(t, m, tt.name)
			assert.IsType(t, tt.want, obj)
			assert.Equal(t, tt.name, obj.Name())
			assert.Equal(t, tt.typ, obj.ValueType())
			assert.True(t, obj.ForceUpload())
		})
	}
}

func TestCalibrationObjectInfo(t *testing.T) {
	_, _, m := newSession(t)

	obj := mustObject(t, m, "channel1")
	assert.Equal(t, cnp.OTT_MEASURE, obj.ObjectType())
	assert.Equal(t, "V", obj.Unit())
	assert.Equal(t, -1000.0, obj.Min())
	assert.Equal(t, 1000.0, obj.Max())
	assert.Equal(t, -1000.0, obj.MinEx())
	assert.Equal(t, 1000.0, obj.MaxEx())
	assert.Equal(t, uint8(2), obj.Precision())
}

func TestCalibrationObjectDataType(t *testing.T) {
	_, fake, m := newSession(t)
	fake.Module("XCPsim").DB.Objects["ampl"].Parameter = &cnp.ObjectParameter{DataType: cnp.TYPE_FLOAT, Address: 0x2000}

	obj := mustObject(t, m, "ampl")
	assert.Equal(t, cnp.TYPE_FLOAT, obj.DataType())
	assert.Equal(t, cnp.TYPE_FLOAT, obj.DataType())
	assert.Equal(t, 1, fake.CallCount("Asap3ReadObjectParameter"))

	noParam := mustObject(t, m, "KL1")
	assert.Equal(t, cnp.TYPE_UNKNOWN, noParam.DataType())
}

func TestScalarObject(t *testing.T) {
	_, fake, m := newSession(t)
	obj := mustObject(t, m, "ampl").(*ScalarObject)

	v, err := obj.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	require.NoError(t, obj.SetValue(3.25))
	v, err = obj.Value()
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)

	o := fake.Module("XCPsim").DB.Objects["ampl"]
	assert.Equal(t, 1, o.Writes)
	assert.Equal(t, 3, o.Uploads, "every read and every write re-read uploads")
}

func TestForceUpload(t *testing.T) {
	_, fake, m := newSession(t)
	obj := mustObject(t, m, "ampl").(*ScalarObject)

	require.NoError(t, m.SwitchECUOnOffline(false, false))
	_, err := obj.Value()
	assert.ErrorIs(t, err, cnp.AEC_UPLOAD)

	obj.SetForceUpload(false)
	assert.False(t, obj.ForceUpload())
	v, err := obj.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Zero(t, fake.Module("XCPsim").DB.Objects["ampl"].Uploads)
}

func TestMeasurementObjectNotCalibratable(t *testing.T) {
	_, fake, m := newSession(t)
	obj := mustObject(t, m, "channel1").(*ScalarObject)

	err := obj.SetValue(1)
	assert.ErrorIs(t, err, ErrNotCalibratable)
	assert.Zero(t, fake.CallCount("Asap3WriteCalibrationObject"))
}

func TestAxisObject(t *testing.T) {
	_, _, m := newSession(t)
	obj := mustObject(t, m, "axis0").(*AxisObject)

	dim, err := obj.Dimension()
	require.NoError(t, err)
	assert.Equal(t, 3, dim)

	require.NoError(t, obj.SetAxis([]float64{1, 2, 3}))
	axis, err := obj.Axis()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, axis)

	var dimErr *DimensionError
	err = obj.SetAxis([]float64{1, 2})
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, DimensionError{Object: "axis0", Part: "axis", Want: 3, Got: 2}, *dimErr)
	assert.Equal(t, "axis0: axis has 3 elements, got 2", err.Error())
}

func TestCurveObject(t *testing.T) {
	_, fake, m := newSession(t)
	obj := mustObject(t, m, "KL1").(*CurveObject)

	dim, err := obj.Dimension()
	require.NoError(t, err)
	assert.Equal(t, 4, dim)

	require.NoError(t, obj.SetValues([]float64{1, 2, 3, 4}))
	values, err := obj.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, values)
	axis, err := obj.Axis()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, axis, "writing values keeps the axis")

	require.NoError(t, obj.SetAxis([]float64{0, 5, 10, 15}))
	values, err = obj.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, values, "writing the axis keeps the values")

	var dimErr *DimensionError
	assert.ErrorAs(t, obj.SetValues([]float64{1}), &dimErr)
	assert.ErrorAs(t, obj.SetAxis(nil), &dimErr)
	assert.Equal(t, 2, fake.Module("XCPsim").DB.Objects["KL1"].Writes)
}

func TestMapObject(t *testing.T) {
	_, _, m := newSession(t)
	obj := mustObject(t, m, "KF1").(*MapObject)

	x, err := obj.XDimension()
	require.NoError(t, err)
	y, err := obj.YDimension()
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)

	values, err := obj.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, values)

	require.NoError(t, obj.SetValues([][]float64{{6, 5, 4}, {3, 2, 1}}))
	values, err = obj.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{6, 5, 4}, {3, 2, 1}}, values)

	require.NoError(t, obj.SetXAxis([]float64{100, 200}))
	require.NoError(t, obj.SetYAxis([]float64{-1, 0, 1}))
	xAxis, err := obj.XAxis()
	require.NoError(t, err)
	yAxis, err := obj.YAxis()
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200}, xAxis)
	assert.Equal(t, []float64{-1, 0, 1}, yAxis)

	tests := []struct {
		name   string
		values [][]float64
		part   string
	}{
		{"too few rows", [][]float64{{1, 2, 3}}, "x dimension"},
		{"short row", [][]float64{{1, 2, 3}, {1, 2}}, "row 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dimErr *DimensionError
			require.ErrorAs(t, obj.SetValues(tt.values), &dimErr)
			assert.Equal(t, tt.part, dimErr.Part)
		})
	}

	var dimErr *DimensionError
	assert.ErrorAs(t, obj.SetXAxis([]float64{1, 2, 3}), &dimErr)
	assert.ErrorAs(t, obj.SetYAxis([]float64{1}), &dimErr)
}

func TestASCIIObject(t *testing.T) {
	_, _, m := newSession(t)
	obj := mustObject(t, m, "testString").(*ASCIIObject)

	n, err := obj.Len()
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	s, err := obj.ASCII()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	require.NoError(t, obj.SetASCII("hello world"))
	s, err = obj.ASCII()
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)

	assert.ErrorIs(t, obj.SetASCII("this string is far too long"), ErrStringTooLong)
	assert.Error(t, obj.SetASCII("日本"), "characters outside the charset")
}

func TestValueBlockObject(t *testing.T) {
	_, _, m := newSession(t)
	obj := mustObject(t, m, "map1_2_2").(*ValueBlockObject)

	x, err := obj.XDimension()
	require.NoError(t, err)
	y, err := obj.YDimension()
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)

	values, err := obj.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, values)

	require.NoError(t, obj.SetValues([][]float64{{0, 0}, {0, 1}}))
	values, err = obj.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}}, values)

	var dimErr *DimensionError
	assert.ErrorAs(t, obj.SetValues([][]float64{{1, 2, 3}, {4, 5, 6}}), &dimErr)
}

func TestMapObjectReadsValueBlock(t *testing.T) {
	_, fake, m := newSession(t)
	// databases may describe a value block as a map
	o := fake.Module("XCPsim").DB.Objects["map1_2_2"]
	o.Info.ValueType = cnp.MAP

	obj := mustObject(t, m, "map1_2_2").(*MapObject)
	values, err := obj.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, values)
	require.NoError(t, obj.SetValues([][]float64{{4, 3}, {2, 1}}))
	assert.Equal(t, []float64{4, 3, 2, 1}, o.Value.Values)
}

func TestUnexpectedValueType(t *testing.T) {
	_, fake, m := newSession(t)
	obj := mustObject(t, m, "ampl").(*ScalarObject)
	fake.Module("XCPsim").DB.Objects["ampl"].Value = cnp.CalibrationValue{Type: cnp.AXIS, Axis: []float64{1}}

	_, err := obj.Value()
	assert.ErrorIs(t, err, ErrUnknownValueType)
}

func TestUnknownValueType(t *testing.T) {
	_, fake, m := newSession(t)
	fake.Module("XCPsim").DB.Objects["ampl"].Info.ValueType = cnp.ValueType(99)

	_, err := m.CalibrationObject("ampl")
	assert.ErrorIs(t, err, ErrUnknownValueType)
}
