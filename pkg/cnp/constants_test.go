package cnp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestChannel(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{DEV_CAN1, "CAN1"},
		{DEV_CAN20, "CAN20"},
		{DEV_FLX3, "FLX3"},
		{DEV_LIN8, "LIN8"},
		{DEV_VX_CAN2, "VX_CAN2"},
		{DEV_CANFD9, "CANFD9"},
		{DEV_TCP, "TCP"},
		{DEV_DAIO_DLL, "DAIO_DLL"},
		{Channel(500), "Channel(500)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ch.String())
			if tt.ch <= DEV_DAIO_DLL {
				got, err := ParseChannel(tt.want)
				require.NoError(t, err)
				assert.Equal(t, tt.ch, got)
			}
		})
	}
	_, err := ParseChannel("CAN99")
	assert.Error(t, err)
}

func TestDriverType(t *testing.T) {
	d, err := ParseDriverType("XCP")
	require.NoError(t, err)
	assert.Equal(t, ASAP3_DRIVER_XCP, d)
	assert.Equal(t, "SOME_IP", ASAP3_DRIVER_SOME_IP.String())
	assert.Equal(t, "DriverType(3)", DriverType(3).String())

	_, err = ParseDriverType("XCPonFOO")
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "VAL_BLK", VAL_BLK.String())
	assert.Equal(t, "CALIBRATE", OTT_CALIBRATE.String())
	assert.Equal(t, "UNKNOWN", OTT_UNKNOWN.String())
	assert.Equal(t, "UWORD", TYPE_UWORD.String())
	assert.Equal(t, "Running", RecRunning.String())
	assert.Equal(t, "Running", MeasurementRunning.String())
	assert.Equal(t, "ON_CLOSECANAPE", EventCloseCANape.String())
	assert.Equal(t, "AutosarXML", DBFileAutosarXML.String())
	assert.Equal(t, "FinishedReturn", ScrFinishedReturn.String())
	assert.Len(t, EventCodes, 6)
}

func TestScriptStatusDone(t *testing.T) {
	for _, s := range []ScriptStatus{ScrReady, ScrStarting, ScrRunning, ScrSleeping, ScrSuspended} {
		assert.False(t, s.Done(), s.String())
	}
	for _, s := range []ScriptStatus{ScrTerminated, ScrFinishedReturn, ScrFinishedCancel, ScrFailure, ScrTimeout} {
		assert.True(t, s.Done(), s.String())
	}
}

func TestCharset(t *testing.T) {
	b, err := EncodeString("Drehzahl °C")
	require.NoError(t, err)
	assert.Equal(t, byte(0xb0), b[len(b)-3])
	assert.Equal(t, byte(0), b[len(b)-1])
	assert.Equal(t, "Drehzahl °C", DecodeString(b))

	SetCharset(charmap.Windows1252)
	defer SetCharset(charmap.ISO8859_1)
	assert.Equal(t, "€", DecodeString([]byte{0x80, 0}))

	_, err = EncodeString("日本")
	assert.Error(t, err)
}

func TestDefaultLibrary(t *testing.T) {
	if PtrSize == 8 {
		assert.Equal(t, "CANapAPI64.dll", DefaultLibrary())
	} else {
		assert.Equal(t, "CANapAPI.dll", DefaultLibrary())
	}
}
