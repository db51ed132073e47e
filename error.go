package canape

import (
	"errors"
	"fmt"

	"github.com/roffe/gocanape/pkg/cnp"
)

var (
	ErrClosed           = errors.New("CANape session is closed")
	ErrObjectNotFound   = errors.New("calibration object not found")
	ErrAmbiguousObject  = errors.New("object name matches more than one database object")
	ErrNotCalibratable  = errors.New("object is a measurement object and cannot be calibrated")
	ErrUnknownValueType = errors.New("unknown calibration object value type")
	ErrStringTooLong    = errors.New("string exceeds the capacity of the ASCII object")
	ErrTaskNotFound     = errors.New("ECU task not found")
	ErrReaderClosed     = errors.New("FIFO reader is closed")
)

// DimensionError is returned when a write does not match the stored
// dimension of a calibration object.
type DimensionError struct {
	Object string
	Part   string
	Want   int
	Got    int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s has %d elements, got %d", e.Object, e.Part, e.Want, e.Got)
}

// IsNoValuesSampled reports whether err means the DAQ FIFO was empty.
func IsNoValuesSampled(err error) bool {
	return errors.Is(err, cnp.AEC_NO_VALUES_SAMPLED)
}

// retryable tells init errors worth another Asap3Init5 attempt.
func retryable(err error) bool {
	code, ok := cnp.Code(err)
	if !ok {
		return false
	}
	switch code {
	case cnp.AEC_TIMEOUT_RESPONSE, cnp.AEC_NOSERVER_ERRCODE, cnp.AEC_TCP_SERV_CONNECT_FAILED:
		return true
	}
	return false
}
