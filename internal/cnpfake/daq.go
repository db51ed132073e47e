package cnpfake

import (
	"math"

	"github.com/roffe/gocanape/pkg/cnp"
)

type channel struct {
	name string
	rate uint16
	save bool
}

type sample struct {
	ts     cnp.Time
	values []float64
}

type task struct {
	channels []channel
	fifo     []sample
	last     *sample
	overrun  bool
}

// module DAQ task, created on first use. Must be called with mu held.
func (m *Module) task(fn string, id uint16) (*task, error) {
	if t, ok := m.daq[id]; ok {
		return t, nil
	}
	for _, ti := range m.DB.Tasks {
		if ti.TaskID == id {
			t := &task{}
			m.daq[id] = t
			return t, nil
		}
	}
	return nil, cnp.NewError(fn, cnp.AEC_ERROR_INVALID_TASKID)
}

// PushSample queues one DAQ sample of a module task. values are in the
// order the channels were set up.
func (f *CANape) PushSample(module string, taskID uint16, ts cnp.Time, values ...float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.modules {
		if m == nil || m.released || m.Name != module {
			continue
		}
		t, err := m.task("PushSample", taskID)
		if err != nil {
			panic(err)
		}
		s := sample{ts: ts, values: append([]float64(nil), values...)}
		t.fifo = append(t.fifo, s)
		t.last = &s
		if int(f.init.FifoSize) > 0 && len(t.fifo) > int(f.init.FifoSize) {
			t.fifo = t.fifo[1:]
			t.overrun = true
		}
		return
	}
	panic("cnpfake: unknown module " + module)
}

// SetOverrun flags a FIFO overrun on a module task.
func (f *CANape) SetOverrun(module string, taskID uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.modules {
		if m != nil && m.Name == module {
			if t, err := m.task("SetOverrun", taskID); err == nil {
				t.overrun = true
			}
		}
	}
}

// Measuring reports whether data acquisition runs.
func (f *CANape) Measuring() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.measuring
}

// Channels lists the DAQ channels set up for a module task.
func (f *CANape) Channels(module string, taskID uint16) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, m := range f.modules {
		if m != nil && m.Name == module {
			if t, ok := m.daq[taskID]; ok {
				for _, c := range t.channels {
					names = append(names, c.name)
				}
			}
		}
	}
	return names
}

// fire runs the callbacks of events after mu has been released.
func (f *CANape) fire(events ...cnp.EventCode) {
	for _, e := range events {
		f.Fire(e)
	}
}

func (f *CANape) ResetDataAcquisitionChnls(h cnp.Handle) error {
	unlock, err := f.lock("Asap3ResetDataAcquisitionChnls", h)
	defer unlock()
	if err != nil {
		return err
	}
	if f.measuring {
		return cnp.NewError("Asap3ResetDataAcquisitionChnls", cnp.ACE_NOT_AVAILABLE_WHILE_ACQ)
	}
	for _, m := range f.modules {
		if m != nil {
			m.daq = make(map[uint16]*task)
		}
	}
	return nil
}

func (f *CANape) ResetDataAcquisitionChnlsByModule(h cnp.Handle, m cnp.ModuleHandle) error {
	const fn = "Asap3ResetDataAcquisitionChnlsByModule"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module(fn, m)
	if err != nil {
		return err
	}
	if f.measuring {
		return cnp.NewError(fn, cnp.ACE_NOT_AVAILABLE_WHILE_ACQ)
	}
	mod.daq = make(map[uint16]*task)
	return nil
}

func (f *CANape) StartDataAcquisition(h cnp.Handle) error {
	err := func() error {
		unlock, err := f.lock("Asap3StartDataAcquisition", h)
		defer unlock()
		if err != nil {
			return err
		}
		if f.measuring {
			return cnp.NewError("Asap3StartDataAcquisition", cnp.AEC_ACQUIS_ALREADY_RUNNING)
		}
		f.measuring = true
		return nil
	}()
	if err != nil {
		return err
	}
	f.fire(cnp.EventBeforeDataAcqStart, cnp.EventDataAcqStart)
	return nil
}

func (f *CANape) StopDataAcquisition(h cnp.Handle) error {
	err := func() error {
		unlock, err := f.lock("Asap3StopDataAcquisition", h)
		defer unlock()
		if err != nil {
			return err
		}
		if !f.measuring {
			return cnp.NewError("Asap3StopDataAcquisition", cnp.AEC_ACQUIS_NOT_STARTED)
		}
		f.measuring = false
		return nil
	}()
	if err != nil {
		return err
	}
	f.fire(cnp.EventDataAcqStop)
	return nil
}

func (f *CANape) SetupDataAcquisitionChnl(h cnp.Handle, m cnp.ModuleHandle, name string, format cnp.Format, taskID, pollingRate uint16, save2File bool) error {
	const fn = "Asap3SetupDataAcquisitionChnl"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, _, err := f.object(fn, h, m, name)
	if err != nil {
		return err
	}
	if f.measuring {
		return cnp.NewError(fn, cnp.ACE_NOT_AVAILABLE_WHILE_ACQ)
	}
	t, err := mod.task(fn, taskID)
	if err != nil {
		return err
	}
	for _, c := range t.channels {
		if c.name == name {
			return cnp.NewError(fn, cnp.AEC_OBJECT_ALLREADY_DEFINED)
		}
	}
	t.channels = append(t.channels, channel{name: name, rate: pollingRate, save: save2File})
	return nil
}

func (f *CANape) GetFifoLevel(h cnp.Handle, m cnp.ModuleHandle, taskID uint16) (int, error) {
	const fn = "Asap3GetFifoLevel"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	mod, err := f.module(fn, m)
	if err != nil {
		return 0, err
	}
	t, err := mod.task(fn, taskID)
	if err != nil {
		return 0, err
	}
	return len(t.fifo), nil
}

func resize(values []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < len(values) {
			out[i] = values[i]
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

func (f *CANape) GetNextSample(h cnp.Handle, m cnp.ModuleHandle, taskID uint16, count int) (cnp.Time, []float64, error) {
	const fn = "Asap3GetNextSample"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, nil, err
	}
	mod, err := f.module(fn, m)
	if err != nil {
		return 0, nil, err
	}
	t, err := mod.task(fn, taskID)
	if err != nil {
		return 0, nil, err
	}
	if len(t.fifo) == 0 {
		return 0, nil, cnp.NewError(fn, cnp.AEC_NO_VALUES_SAMPLED)
	}
	s := t.fifo[0]
	t.fifo = t.fifo[1:]
	return s.ts, resize(s.values, count), nil
}

func (f *CANape) CheckOverrun(h cnp.Handle, m cnp.ModuleHandle, taskID uint16, reset bool) error {
	const fn = "Asap3CheckOverrun"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, err := f.module(fn, m)
	if err != nil {
		return err
	}
	t, err := mod.task(fn, taskID)
	if err != nil {
		return err
	}
	if !t.overrun {
		return nil
	}
	if reset {
		t.overrun = false
		return nil
	}
	return cnp.NewError(fn, cnp.AEC_ACQ_STP_OVERFLOW)
}

func (f *CANape) GetCurrentValues(h cnp.Handle, m cnp.ModuleHandle, taskID uint16, maxValues uint16) (cnp.Time, []float64, error) {
	const fn = "Asap3GetCurrentValues"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, nil, err
	}
	mod, err := f.module(fn, m)
	if err != nil {
		return 0, nil, err
	}
	t, err := mod.task(fn, taskID)
	if err != nil {
		return 0, nil, err
	}
	if t.last == nil {
		return 0, nil, cnp.NewError(fn, cnp.AEC_NO_VALUES_SAMPLED)
	}
	return t.last.ts, resize(t.last.values, int(maxValues)), nil
}
