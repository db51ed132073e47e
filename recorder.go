package canape

import (
	"fmt"

	"github.com/roffe/gocanape/pkg/cnp"
)

// Recorder writes measured signals to an MDF or BLF file.
type Recorder struct {
	c  *CANape
	id cnp.RecorderID
}

func (c *CANape) RecorderCount() (int, error) {
	n, err := c.api.GetRecorderCount(c.handle)
	return int(n), err
}

// DefineRecorder creates a new recorder.
func (c *CANape) DefineRecorder(name string, typ cnp.RecorderType) (*Recorder, error) {
	id, err := c.api.DefineRecorder(c.handle, name, typ)
	if err != nil {
		return nil, err
	}
	return &Recorder{c: c, id: id}, nil
}

func (c *CANape) RecorderByIndex(index int) (*Recorder, error) {
	if index < 0 {
		return nil, cnp.NewError("Asap3GetRecorderByIndex", cnp.AEC_RECORDER_INDEX_OUTOFRANGE)
	}
	id, err := c.api.GetRecorderByIndex(c.handle, uint32(index))
	if err != nil {
		return nil, err
	}
	return &Recorder{c: c, id: id}, nil
}

func (c *CANape) RecorderByName(name string) (*Recorder, error) {
	id, err := c.api.GetRecorderByName(c.handle, name)
	if err != nil {
		return nil, err
	}
	return &Recorder{c: c, id: id}, nil
}

// SelectedRecorder returns the recorder CANape currently records with.
func (c *CANape) SelectedRecorder() (*Recorder, error) {
	id, err := c.api.GetSelectedRecorder(c.handle)
	if err != nil {
		return nil, err
	}
	return &Recorder{c: c, id: id}, nil
}

// Recorders returns every defined recorder.
func (c *CANape) Recorders() ([]*Recorder, error) {
	n, err := c.RecorderCount()
	if err != nil {
		return nil, err
	}
	out := make([]*Recorder, 0, n)
	for i := 0; i < n; i++ {
		r, err := c.RecorderByIndex(i)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (r *Recorder) ID() cnp.RecorderID {
	return r.id
}

func (r *Recorder) String() string {
	name, err := r.Name()
	if err != nil {
		return fmt.Sprintf("Recorder(%#x)", uintptr(r.id))
	}
	return name
}

func (r *Recorder) Name() (string, error) {
	return r.c.api.GetRecorderName(r.c.handle, r.id)
}

func (r *Recorder) State() (cnp.RecorderState, error) {
	return r.c.api.GetRecorderState(r.c.handle, r.id)
}

func (r *Recorder) IsEnabled() (bool, error) {
	return r.c.api.IsRecorderEnabled(r.c.handle, r.id)
}

func (r *Recorder) Enable() error {
	return r.c.api.EnableRecorder(r.c.handle, r.id, true)
}

func (r *Recorder) Disable() error {
	return r.c.api.EnableRecorder(r.c.handle, r.id, false)
}

// MdfFilename is the file the next recording is written to.
func (r *Recorder) MdfFilename() (string, error) {
	return r.c.api.GetRecorderMdfFileName(r.c.handle, r.id)
}

func (r *Recorder) SetMdfFilename(filename string) error {
	return r.c.api.SetRecorderMdfFileName(r.c.handle, r.id, filename)
}

// Start starts recording. The measurement must be running.
func (r *Recorder) Start() error {
	return r.c.api.StartRecorder(r.c.handle, r.id)
}

// Stop stops recording, saving the data to the MDF file when
// saveToMdf is set.
func (r *Recorder) Stop(saveToMdf bool) error {
	return r.c.api.StopRecorder(r.c.handle, r.id, saveToMdf)
}

func (r *Recorder) Pause(pause bool) error {
	return r.c.api.PauseRecorder(r.c.handle, r.id, pause)
}

// AddItem adds a measurement object of module to the recorder.
func (r *Recorder) AddItem(m *Module, object string) error {
	return r.c.api.AddItemToRecorder(r.c.handle, m.handle, object, r.id)
}

// Select makes r the recorder used by the measurement.
func (r *Recorder) Select() error {
	return r.c.api.SelectRecorder(r.c.handle, r.id)
}

// Remove deletes the recorder. r must not be used afterwards.
func (r *Recorder) Remove() error {
	return r.c.api.RemoveRecorder(r.c.handle, r.id)
}
