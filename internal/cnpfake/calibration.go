package cnpfake

import (
	"github.com/roffe/gocanape/pkg/cnp"
)

// object must be called with mu held.
func (f *CANape) object(fn string, h cnp.Handle, m cnp.ModuleHandle, name string) (*Module, *Object, error) {
	mod, err := f.module(fn, m)
	if err != nil {
		return nil, nil, err
	}
	o, ok := mod.DB.Objects[name]
	if !ok {
		return mod, nil, cnp.NewError(fn, cnp.AEC_UNKNOWN_OBJECT)
	}
	return mod, o, nil
}

func (f *CANape) GetDBObjectInfo(h cnp.Handle, m cnp.ModuleHandle, name string) (cnp.DBObjectInfo, error) {
	const fn = "Asap3GetDBObjectInfo"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return cnp.DBObjectInfo{}, err
	}
	_, o, err := f.object(fn, h, m, name)
	if err != nil {
		return cnp.DBObjectInfo{}, err
	}
	return o.Info, nil
}

func (f *CANape) GetDBObjectComment(h cnp.Handle, m cnp.ModuleHandle, name string) (string, error) {
	const fn = "Asap3GetDBObjectComment"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return "", err
	}
	_, o, err := f.object(fn, h, m, name)
	if err != nil {
		return "", err
	}
	return o.Comment, nil
}

func (f *CANape) ReadObjectParameter(h cnp.Handle, m cnp.ModuleHandle, name string, format cnp.Format) (cnp.ObjectParameter, error) {
	const fn = "Asap3ReadObjectParameter"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return cnp.ObjectParameter{}, err
	}
	_, o, err := f.object(fn, h, m, name)
	if err != nil {
		return cnp.ObjectParameter{}, err
	}
	if o.Parameter == nil {
		return cnp.ObjectParameter{}, cnp.NewError(fn, cnp.AEC_FUNCTION_NOT_SUPPORTED)
	}
	return *o.Parameter, nil
}

func (f *CANape) ReadCalibrationObject2(h cnp.Handle, m cnp.ModuleHandle, name string, format cnp.Format, forceUpload bool) (cnp.CalibrationValue, error) {
	const fn = "Asap3ReadCalibrationObject2"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return cnp.CalibrationValue{}, err
	}
	mod, o, err := f.object(fn, h, m, name)
	if err != nil {
		return cnp.CalibrationValue{}, err
	}
	if forceUpload {
		if mod.State != cnp.TYPE_SWITCH_ONLINE {
			return cnp.CalibrationValue{}, cnp.NewError(fn, cnp.AEC_UPLOAD)
		}
		o.Uploads++
	}
	o.Reads++
	return o.Value.Clone(), nil
}

func (f *CANape) WriteCalibrationObject(h cnp.Handle, m cnp.ModuleHandle, name string, format cnp.Format, value cnp.CalibrationValue) error {
	const fn = "Asap3WriteCalibrationObject"
	unlock, err := f.lock(fn, h)
	defer unlock()
	if err != nil {
		return err
	}
	_, o, err := f.object(fn, h, m, name)
	if err != nil {
		return err
	}
	if o.Info.ObjectType != cnp.OTT_CALIBRATE {
		return cnp.NewError(fn, cnp.AEC_NOT_WRITE_ACCESS)
	}
	if value.Type != o.Value.Type {
		return cnp.NewError(fn, cnp.AEC_OBJECT_TYPE_DOESNT_MATCH)
	}
	if !sameShape(o.Value, value) {
		return cnp.NewError(fn, cnp.AEC_NO_AXIS_PTS_NOT_VALID)
	}
	if value.Type == cnp.ASCII && len(value.ASCII) > int(o.Value.Len) {
		return cnp.NewError(fn, cnp.AEC_PAR_SIZE_OVERFLOW)
	}
	v := value.Clone()
	if v.Type == cnp.ASCII {
		v.Len = o.Value.Len
	}
	o.Value = v
	o.Writes++
	return nil
}

func sameShape(a, b cnp.CalibrationValue) bool {
	switch a.Type {
	case cnp.AXIS:
		return len(a.Axis) == len(b.Axis)
	case cnp.CURVE:
		return len(a.Axis) == len(b.Axis) && len(a.Values) == len(b.Values)
	case cnp.MAP:
		return a.XDimension == b.XDimension && a.YDimension == b.YDimension &&
			len(a.XAxis) == len(b.XAxis) && len(a.YAxis) == len(b.YAxis) && len(a.Values) == len(b.Values)
	case cnp.VAL_BLK:
		return a.XDimension == b.XDimension && a.YDimension == b.YDimension && len(a.Values) == len(b.Values)
	}
	return true
}
