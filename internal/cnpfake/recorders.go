package cnpfake

import (
	"github.com/roffe/gocanape/pkg/cnp"
)

// Recorder is a simulated CANape recorder.
type Recorder struct {
	ID      cnp.RecorderID
	Name    string
	Type    cnp.RecorderType
	Enabled bool
	State   cnp.RecorderState
	MdfFile string
	Items   []string
	Saved   int
}

// Recorder returns the recorder called name.
func (f *CANape) Recorder(name string) *Recorder {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.recorders {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// recorder must be called with mu held.
func (f *CANape) recorder(fn string, id cnp.RecorderID) (*Recorder, error) {
	for _, r := range f.recorders {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, cnp.NewError(fn, cnp.AEC_RECORDER_NOT_FOUND)
}

func (f *CANape) GetRecorderCount(h cnp.Handle) (uint32, error) {
	unlock, err := f.lock("Asap3GetRecorderCount", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	return uint32(len(f.recorders)), nil
}

func (f *CANape) DefineRecorder(h cnp.Handle, name string, typ cnp.RecorderType) (cnp.RecorderID, error) {
	const fn = "Asap3DefineRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	for _, r := range f.recorders {
		if r.Name == name {
			return 0, cnp.NewError(fn, cnp.AEC_RECORDER_ALLREADY_EXISTS)
		}
	}
	if typ == cnp.RecorderTypeILinkRT && !f.mcd3 {
		return 0, cnp.NewError(fn, cnp.ACE_NOT_MISSING_LICENSE)
	}
	if typ > cnp.RecorderTypeBLF {
		return 0, cnp.NewError(fn, cnp.AEC_WRONG_TYPE)
	}
	r := &Recorder{
		ID:      f.nextRecorder,
		Name:    name,
		Type:    typ,
		Enabled: true,
		State:   cnp.RecConfigure,
		MdfFile: name + ".mf4",
	}
	if typ == cnp.RecorderTypeBLF {
		r.MdfFile = name + ".blf"
	}
	f.nextRecorder += 0x10
	f.recorders = append(f.recorders, r)
	if f.selected == 0 {
		f.selected = r.ID
	}
	return r.ID, nil
}

func (f *CANape) GetRecorderByIndex(h cnp.Handle, index uint32) (cnp.RecorderID, error) {
	unlock, err := f.lock("Asap3GetRecorderByIndex", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	if int(index) >= len(f.recorders) {
		return 0, cnp.NewError("Asap3GetRecorderByIndex", cnp.AEC_RECORDER_INDEX_OUTOFRANGE)
	}
	return f.recorders[index].ID, nil
}

func (f *CANape) GetRecorderByName(h cnp.Handle, name string) (cnp.RecorderID, error) {
	unlock, err := f.lock("Asap3GetRecorderByName", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	for _, r := range f.recorders {
		if r.Name == name {
			return r.ID, nil
		}
	}
	return 0, cnp.NewError("Asap3GetRecorderByName", cnp.AEC_RECORDER_NOT_FOUND)
}

func (f *CANape) GetSelectedRecorder(h cnp.Handle) (cnp.RecorderID, error) {
	unlock, err := f.lock("Asap3GetSelectedRecorder", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	if f.selected == 0 {
		return 0, cnp.NewError("Asap3GetSelectedRecorder", cnp.AEC_RECORDER_NOT_FOUND)
	}
	return f.selected, nil
}

func (f *CANape) SelectRecorder(h cnp.Handle, id cnp.RecorderID) error {
	unlock, err := f.lock("Asap3SelectRecorder", h)
	defer unlock()
	if err != nil {
		return err
	}
	if _, err := f.recorder("Asap3SelectRecorder", id); err != nil {
		return err
	}
	f.selected = id
	return nil
}

func (f *CANape) RemoveRecorder(h cnp.Handle, id cnp.RecorderID) error {
	const fn = "Asap3RemoveRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	for i, r := range f.recorders {
		if r.ID != id {
			continue
		}
		if r.State == cnp.RecRunning || r.State == cnp.RecPaused {
			return cnp.NewError(fn, cnp.AEC_REMOVE_RECORDER_ERR)
		}
		f.recorders = append(f.recorders[:i], f.recorders[i+1:]...)
		if f.selected == id {
			f.selected = 0
			if len(f.recorders) > 0 {
				f.selected = f.recorders[0].ID
			}
		}
		return nil
	}
	return cnp.NewError(fn, cnp.AEC_RECORDER_NOT_FOUND)
}

func (f *CANape) GetRecorderName(h cnp.Handle, id cnp.RecorderID) (string, error) {
	unlock, err := f.lock("Asap3GetRecorderName", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	r, err := f.recorder("Asap3GetRecorderName", id)
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

func (f *CANape) GetRecorderState(h cnp.Handle, id cnp.RecorderID) (cnp.RecorderState, error) {
	unlock, err := f.lock("Asap3GetRecorderState", h)
	defer unlock()
	if err != nil {
		return 0, err
	}
	r, err := f.recorder("Asap3GetRecorderState", id)
	if err != nil {
		return 0, err
	}
	return r.State, nil
}

func (f *CANape) IsRecorderEnabled(h cnp.Handle, id cnp.RecorderID) (bool, error) {
	unlock, err := f.lock("Asap3IsRecorderEnabled", h)
	defer unlock()
	if err != nil {
		return false, err
	}
	r, err := f.recorder("Asap3IsRecorderEnabled", id)
	if err != nil {
		return false, err
	}
	return r.Enabled, nil
}

func (f *CANape) EnableRecorder(h cnp.Handle, id cnp.RecorderID, enable bool) error {
	unlock, err := f.lock("Asap3EnableRecorder", h)
	defer unlock()
	if err != nil {
		return err
	}
	r, err := f.recorder("Asap3EnableRecorder", id)
	if err != nil {
		return err
	}
	r.Enabled = enable
	return nil
}

func (f *CANape) GetRecorderMdfFileName(h cnp.Handle, id cnp.RecorderID) (string, error) {
	unlock, err := f.lock("Asap3GetRecorderMdfFileName", h)
	defer unlock()
	if err != nil {
		return "", err
	}
	r, err := f.recorder("Asap3GetRecorderMdfFileName", id)
	if err != nil {
		return "", err
	}
	return r.MdfFile, nil
}

func (f *CANape) SetRecorderMdfFileName(h cnp.Handle, id cnp.RecorderID, filename string) error {
	const fn = "Asap3SetRecorderMdfFileName"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	r, err := f.recorder(fn, id)
	if err != nil {
		return err
	}
	if filename == "" {
		return cnp.NewError(fn, cnp.AEC_ERROR_SETRECFILENAME)
	}
	r.MdfFile = filename
	return nil
}

func (f *CANape) StartRecorder(h cnp.Handle, id cnp.RecorderID) error {
	const fn = "Asap3StartRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	r, err := f.recorder(fn, id)
	if err != nil {
		return err
	}
	if !r.Enabled {
		return cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	r.State = cnp.RecRunning
	return nil
}

func (f *CANape) StopRecorder(h cnp.Handle, id cnp.RecorderID, save2Mdf bool) error {
	const fn = "Asap3StopRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	r, err := f.recorder(fn, id)
	if err != nil {
		return err
	}
	if r.State != cnp.RecRunning && r.State != cnp.RecPaused {
		return cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	r.State = cnp.RecSuspended
	if save2Mdf {
		r.Saved++
	}
	return nil
}

func (f *CANape) PauseRecorder(h cnp.Handle, id cnp.RecorderID, pause bool) error {
	const fn = "Asap3PauseRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	r, err := f.recorder(fn, id)
	if err != nil {
		return err
	}
	switch {
	case pause && r.State == cnp.RecRunning:
		r.State = cnp.RecPaused
	case !pause && r.State == cnp.RecPaused:
		r.State = cnp.RecRunning
	default:
		return cnp.NewError(fn, cnp.AEC_ILLEGAL_OPERATION)
	}
	return nil
}

func (f *CANape) AddItemToRecorder(h cnp.Handle, m cnp.ModuleHandle, object string, id cnp.RecorderID) error {
	const fn = "Asap3AddItemToRecorder"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	mod, o, err := f.object(fn, h, m, object)
	if err != nil {
		return err
	}
	r, err := f.recorder(fn, id)
	if err != nil {
		return err
	}
	r.Items = append(r.Items, mod.Name+"."+o.Name)
	return nil
}
