package cmd

import (
	"bytes"
	"context"
	"testing"

	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/internal/cnpfake"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1", []float64{1}, false},
		{"1, 2.5 ,-3", []float64{1, 2.5, -3}, false},
		{"1,,2,", []float64{1, 2}, false},
		{"1,x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFloats(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMatrix(t *testing.T) {
	got, err := parseMatrix("1,2;3,4")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
	assert.Equal(t, "1, 2.5", formatFloats([]float64{1, 2.5}))
}

func TestRecorderType(t *testing.T) {
	typ, err := recorderType("blf")
	require.NoError(t, err)
	assert.Equal(t, cnp.RecorderTypeBLF, typ)
	typ, err = recorderType("ILINKRT")
	require.NoError(t, err)
	assert.Equal(t, cnp.RecorderTypeILinkRT, typ)
	_, err = recorderType("csv")
	assert.Error(t, err)
}

func TestWriteObject(t *testing.T) {
	fake := cnpfake.New()
	db := fake.AddDatabase("XCPsim.a2l")
	db.AddCharacteristic("ampl", cnp.CalibrationValue{Type: cnp.VALUE, Scalar: 1})
	db.AddCharacteristic("KL1", cnp.CalibrationValue{Type: cnp.CURVE, Axis: []float64{0, 1}, Values: []float64{10, 20}})

	c, err := canape.Open(context.Background(), `C:\Projects\XCPsim`, canape.WithAPI(fake), canape.WithKillOpenInstances(false))
	require.NoError(t, err)
	defer c.Exit(false)
	m, err := c.CreateModule("XCPsim", "XCPsim.a2l", cnp.ASAP3_DRIVER_XCP, cnp.DEV_CAN1, true, -1)
	require.NoError(t, err)

	ampl, err := m.CalibrationObject("ampl")
	require.NoError(t, err)
	require.NoError(t, writeObject(ampl, "values", "2.5"))
	assert.Error(t, writeObject(ampl, "values", "abc"))

	curve, err := m.CalibrationObject("KL1")
	require.NoError(t, err)
	require.NoError(t, writeObject(curve, "axis", "5,6"))
	require.NoError(t, writeObject(curve, "values", "7,8"))

	var buf bytes.Buffer
	require.NoError(t, printObject(&buf, curve))
	assert.Contains(t, buf.String(), "5, 6")
	assert.Contains(t, buf.String(), "7, 8")

	buf.Reset()
	require.NoError(t, printObject(&buf, ampl))
	assert.Contains(t, buf.String(), "value:")
}
