package canape

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roffe/gocanape/internal/cnpfake"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testProject = `C:\Users\Public\Documents\Vector\CANape Examples 21.0\XCPDemo`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newFake() *cnpfake.CANape {
	f := cnpfake.New()
	db := f.AddDatabase("XCPsim.a2l")
	db.AddCharacteristic("ampl", cnp.CalibrationValue{Type: cnp.VALUE, Scalar: 1.5})
	db.AddCharacteristic("axis0", cnp.CalibrationValue{Type: cnp.AXIS, Axis: []float64{0, 10, 20}})
	db.AddCharacteristic("KL1", cnp.CalibrationValue{
		Type:   cnp.CURVE,
		Axis:   []float64{0, 1, 2, 3},
		Values: []float64{10, 20, 30, 40},
	})
	db.AddCharacteristic("KF1", cnp.CalibrationValue{
		Type:       cnp.MAP,
		XDimension: 2,
		YDimension: 3,
		XAxis:      []float64{1, 2},
		YAxis:      []float64{10, 20, 30},
		Values:     []float64{1, 2, 3, 4, 5, 6},
	})
	db.AddCharacteristic("testString", cnp.CalibrationValue{Type: cnp.ASCII, ASCII: "hello", Len: 16})
	db.AddCharacteristic("map1_2_2", cnp.CalibrationValue{
		Type:       cnp.VAL_BLK,
		XDimension: 2,
		YDimension: 2,
		Values:     []float64{1, 2, 3, 4},
	})
	db.AddMeasurement("channel1", "V")
	db.AddMeasurement("channel2", "A")
	db.AddMeasurement("channel3", "")
	db.AddTask("10ms", 1, 10)
	db.AddTask("100ms", 2, 100)
	f.AddDatabase("PowerTrain.dbc")
	return f
}

func openFake(t *testing.T, fake *cnpfake.CANape, opts ...Opt) *CANape {
	t.Helper()
	opts = append([]Opt{WithAPI(fake), WithKillOpenInstances(false)}, opts...)
	c, err := Open(context.Background(), testProject, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Exit(false)
	})
	return c
}

// newSession opens a session with the XCPsim module online.
func newSession(t *testing.T) (*CANape, *cnpfake.CANape, *Module) {
	t.Helper()
	fake := newFake()
	c := openFake(t, fake)
	m, err := c.CreateModule("XCPsim", "XCPsim.a2l", cnp.ASAP3_DRIVER_XCP, cnp.DEV_CAN1, true, -1)
	require.NoError(t, err)
	return c, fake, m
}

func TestOpenDefaults(t *testing.T) {
	fake := newFake()
	openFake(t, fake)

	assert.Equal(t, cnpfake.InitParams{
		WorkingDir:      testProject,
		FifoSize:        128,
		SampleSize:      256,
		ClearDeviceList: true,
	}, fake.Init())
	assert.True(t, fake.Running())
	assert.Equal(t, len(cnp.EventCodes), fake.CallCount("Asap3RegisterCallBack"))
}

func TestOpenOptions(t *testing.T) {
	fake := newFake()
	openFake(t, fake,
		WithFifoSize(1000),
		WithSampleSize(64),
		WithTimeout(2500*time.Millisecond),
		WithClearDeviceList(false),
		WithModalMode(true),
		WithDebugMode(true),
	)
	assert.Equal(t, cnpfake.InitParams{
		ResponseTimeout: 2500,
		WorkingDir:      testProject,
		FifoSize:        1000,
		SampleSize:      64,
		DebugMode:       true,
		ModalMode:       true,
	}, fake.Init())
}

func TestOpenInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Opt
	}{
		{"fifo size", WithFifoSize(0)},
		{"sample size", WithSampleSize(0)},
		{"timeout", WithTimeout(-time.Second)},
		{"api", WithAPI(nil)},
		{"retries", WithInitRetries(0, time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFake()
			_, err := Open(context.Background(), testProject, WithAPI(fake), WithKillOpenInstances(false), tt.opt)
			assert.Error(t, err)
			assert.Zero(t, fake.CallCount("Asap3Init5"))
		})
	}
}

func TestOpenRetriesInit(t *testing.T) {
	fake := newFake()
	fake.Fail("Asap3Init5", cnp.AEC_TIMEOUT_RESPONSE, cnp.AEC_NOSERVER_ERRCODE)
	openFake(t, fake, WithInitRetries(3, time.Millisecond))
	assert.Equal(t, 3, fake.CallCount("Asap3Init5"))
	assert.True(t, fake.Running())
}

func TestOpenDoesNotRetryFatalErrors(t *testing.T) {
	fake := newFake()
	fake.Fail("Asap3Init5", cnp.AEC_WRONG_CANAPE_VERSION)
	_, err := Open(context.Background(), testProject, WithAPI(fake), WithKillOpenInstances(false), WithInitRetries(5, time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, cnp.AEC_WRONG_CANAPE_VERSION)
	assert.Equal(t, 1, fake.CallCount("Asap3Init5"))
	assert.False(t, fake.Closed(), "an injected API must not be closed")
}

func TestOpenGivesUpAfterAttempts(t *testing.T) {
	fake := newFake()
	fake.Fail("Asap3Init5", cnp.AEC_TIMEOUT_RESPONSE, cnp.AEC_TIMEOUT_RESPONSE)
	_, err := Open(context.Background(), testProject, WithAPI(fake), WithKillOpenInstances(false), WithInitRetries(2, time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, cnp.AEC_TIMEOUT_RESPONSE)
	assert.Equal(t, 2, fake.CallCount("Asap3Init5"))
}

func TestOpenEmptyProject(t *testing.T) {
	fake := newFake()
	_, err := Open(context.Background(), "", WithAPI(fake), WithKillOpenInstances(false))
	require.Error(t, err)
	code, ok := cnp.Code(err)
	require.True(t, ok)
	assert.Equal(t, cnp.AEC_WORKDIR_ACCESS_FAILED, code)
}

func TestOpenCallbackFailure(t *testing.T) {
	fake := newFake()
	fake.Fail("Asap3RegisterCallBack", cnp.AEC_INTERNAL_CANAPE_ERROR)
	_, err := Open(context.Background(), testProject, WithAPI(fake), WithKillOpenInstances(false))
	require.Error(t, err)
	assert.False(t, fake.Running(), "session must be exited again")
	assert.Equal(t, []bool{false}, fake.Exits())
}

func TestExit(t *testing.T) {
	fake := newFake()
	c, err := Open(context.Background(), testProject, WithAPI(fake), WithKillOpenInstances(false))
	require.NoError(t, err)

	require.NoError(t, c.Exit(true))
	assert.Equal(t, []bool{true}, fake.Exits())
	assert.False(t, fake.Running())
	assert.False(t, fake.Closed())

	assert.ErrorIs(t, c.Exit(true), ErrClosed)
	assert.Len(t, fake.Exits(), 1)
}

func TestVersions(t *testing.T) {
	fake := newFake()
	c := openFake(t, fake)

	dll, err := c.DLLVersion()
	require.NoError(t, err)
	assert.Equal(t, "2.3.1", dll.String())

	pkgDLL, err := DLLVersion(WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, dll, pkgDLL)

	app, err := c.ApplicationVersion()
	require.NoError(t, err)
	assert.Equal(t, "CANape", app.Application)
	assert.EqualValues(t, 21, app.Main)

	dir, err := c.ProjectDirectory()
	require.NoError(t, err)
	assert.Equal(t, testProject, dir)
}

func TestModules(t *testing.T) {
	fake := newFake()
	fake.AddDevice("Engine", "PowerTrain.dbc", cnp.ASAP3_DRIVER_CAN, cnp.DEV_CAN2)
	c := openFake(t, fake, WithClearDeviceList(false))

	n, err := c.ModuleCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	xcp, err := c.CreateModule("XCPsim", "XCPsim.a2l", cnp.ASAP3_DRIVER_XCP, cnp.DEV_CAN1, false, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, xcp.Handle())

	byName, err := c.ModuleByName("XCPsim")
	require.NoError(t, err)
	assert.Same(t, xcp, byName)

	byIndex, err := c.ModuleByIndex(0)
	require.NoError(t, err)
	name, err := byIndex.Name()
	require.NoError(t, err)
	assert.Equal(t, "Engine", name)
	again, err := c.ModuleByIndex(0)
	require.NoError(t, err)
	assert.Same(t, byIndex, again)

	all, err := c.Modules()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Same(t, byIndex, all[0])
	assert.Same(t, xcp, all[1])

	_, err = c.ModuleByName("missing")
	assert.ErrorIs(t, err, cnp.AEC_UNKNOWN_MODULE_NAME)
}

func TestModuleByIndexInvalid(t *testing.T) {
	c, _, m := newSession(t)

	for _, idx := range []int{-1, 5, 0x10000} {
		_, err := c.ModuleByIndex(idx)
		assert.ErrorIs(t, err, cnp.AEC_INVALID_MODULE_HDL, "index %d", idx)
	}

	require.NoError(t, m.Release())
	_, err := c.ModuleByIndex(0)
	assert.ErrorIs(t, err, cnp.AEC_INVALID_MODULE_HDL)

	all, err := c.Modules()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateModuleErrors(t *testing.T) {
	tests := []struct {
		name   string
		db     string
		driver cnp.DriverType
		want   cnp.ErrorCode
	}{
		{"unknown driver", "XCPsim.a2l", cnp.ASAP3_DRIVER_UNKNOWN, cnp.AEC_ILLEGAL_DRIVER},
		{"missing database", "missing.a2l", cnp.ASAP3_DRIVER_XCP, cnp.AEC_ASAP2_FILE_NOT_FOUND},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openFake(t, newFake())
			_, err := c.CreateModule("m", tt.db, tt.driver, cnp.DEV_CAN1, false, -1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessionSettings(t *testing.T) {
	fake := newFake()
	fake.AddNetwork("CAN1", false)
	fake.SetMCD3License(true)
	c := openFake(t, fake)

	require.NoError(t, c.SetInteractiveMode(true))
	mode, err := c.InteractiveMode()
	require.NoError(t, err)
	assert.True(t, mode)

	require.NoError(t, c.PopupDebugWindow())
	assert.Equal(t, 1, fake.DebugWindowCount())

	active, err := c.IsNetworkActivated("CAN1")
	require.NoError(t, err)
	assert.False(t, active)
	require.NoError(t, c.ActivateNetwork("CAN1", true))
	active, err = c.IsNetworkActivated("CAN1")
	require.NoError(t, err)
	assert.True(t, active)
	_, err = c.IsNetworkActivated("FlexRay")
	assert.ErrorIs(t, err, cnp.AEC_NETWORK_NOT_FOUND)

	lic, err := c.HasMCD3License()
	require.NoError(t, err)
	assert.True(t, lic)
}

func TestCNAFile(t *testing.T) {
	c := openFake(t, newFake())

	name, err := c.CNAFilename()
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, c.LoadCNAFile(`C:\Projects\demo.cna`))
	name, err = c.CNAFilename()
	require.NoError(t, err)
	assert.Equal(t, `C:\Projects\demo.cna`, name)

	assert.ErrorIs(t, c.LoadCNAFile(`C:\Projects\demo.ini`), cnp.AEC_CNFG_FILE_NOT_FOUND)
}

func TestDataAcquisition(t *testing.T) {
	c, fake, _ := newSession(t)

	state, err := c.MeasurementState()
	require.NoError(t, err)
	assert.Equal(t, cnp.MeasurementStopped, state)

	require.NoError(t, c.StartDataAcquisition())
	assert.True(t, fake.Measuring())
	state, err = c.MeasurementState()
	require.NoError(t, err)
	assert.Equal(t, cnp.MeasurementRunning, state)
	assert.ErrorIs(t, c.StartDataAcquisition(), cnp.AEC_ACQUIS_ALREADY_RUNNING)
	assert.ErrorIs(t, c.ResetDataAcquisitionChannels(), cnp.ACE_NOT_AVAILABLE_WHILE_ACQ)

	require.NoError(t, c.StopDataAcquisition())
	assert.False(t, fake.Measuring())
	require.NoError(t, c.ResetDataAcquisitionChannels())
	assert.ErrorIs(t, c.StopDataAcquisition(), cnp.AEC_ACQUIS_NOT_STARTED)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{cnp.NewError("Asap3Init5", cnp.AEC_TIMEOUT_RESPONSE), true},
		{cnp.NewError("Asap3Init5", cnp.AEC_NOSERVER_ERRCODE), true},
		{cnp.NewError("Asap3Init5", cnp.AEC_TCP_SERV_CONNECT_FAILED), true},
		{cnp.NewError("Asap3Init5", cnp.AEC_WORKDIR_ACCESS_FAILED), false},
		{errors.New("boom"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryable(tt.err), "%v", tt.err)
	}
}
