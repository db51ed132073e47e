package canape

import (
	"fmt"
	"time"

	"github.com/roffe/gocanape/pkg/cnp"
)

// EcuTask is a DAQ raster of a module.
type EcuTask struct {
	Description  string
	ID           uint16
	Cycle        uint32 // ms, 0 if not cyclic
	EventChannel uint32

	m *Module
}

// Sample is one measured value with its CANape timestamp.
type Sample struct {
	Timestamp cnp.Time
	Value     float64
}

// Elapsed is the timestamp as a duration since measurement start.
func (s Sample) Elapsed() time.Duration {
	return s.Timestamp.Duration()
}

func (t *EcuTask) String() string {
	return fmt.Sprintf("%s (id %d, %d ms)", t.Description, t.ID, t.Cycle)
}

// Module returns the module the task belongs to.
func (t *EcuTask) Module() *Module {
	return t.m
}

// SetupChannel adds a measurement object to the task. pollingRate is
// the sampling period in ms for polled tasks, save adds the channel to
// the recorded file.
func (t *EcuTask) SetupChannel(name string, pollingRate uint16, save bool) error {
	return t.m.c.api.SetupDataAcquisitionChnl(t.m.c.handle, t.m.handle, name, cnp.PHYSICAL_REPRESENTATION, t.ID, pollingRate, save)
}

// FifoLevel is the number of samples waiting in the task FIFO.
func (t *EcuTask) FifoLevel() (int, error) {
	return t.m.c.api.GetFifoLevel(t.m.c.handle, t.m.handle, t.ID)
}

// NextSample pops the oldest sample of the FIFO, one Sample per channel
// in setup order.
func (t *EcuTask) NextSample(count int) ([]Sample, error) {
	ts, values, err := t.m.c.api.GetNextSample(t.m.c.handle, t.m.handle, t.ID, count)
	if err != nil {
		return nil, err
	}
	return samples(ts, values), nil
}

// CheckOverrun returns an error carrying AEC_ACQ_STP_OVERFLOW when the
// FIFO overflowed. With reset the overrun flag is cleared instead.
func (t *EcuTask) CheckOverrun(reset bool) error {
	return t.m.c.api.CheckOverrun(t.m.c.handle, t.m.handle, t.ID, reset)
}

// CurrentValues returns the latest values of the task without touching
// the FIFO.
func (t *EcuTask) CurrentValues(count int) ([]Sample, error) {
	if count < 0 || count > 0xffff {
		return nil, fmt.Errorf("invalid value count %d", count)
	}
	ts, values, err := t.m.c.api.GetCurrentValues(t.m.c.handle, t.m.handle, t.ID, uint16(count))
	if err != nil {
		return nil, err
	}
	return samples(ts, values), nil
}

func samples(ts cnp.Time, values []float64) []Sample {
	out := make([]Sample, len(values))
	for i, v := range values {
		out[i] = Sample{Timestamp: ts, Value: v}
	}
	return out
}
