// Package canape automates a running Vector CANape through its ASAP3
// style API (CANapAPI.dll).
package canape

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avast/retry-go"
	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

// CANape is one API session with a CANape instance.
type CANape struct {
	api    cnp.API
	handle cnp.Handle
	log    *zap.Logger
	opts   *options
	ownAPI bool

	mu      sync.Mutex
	modules map[cnp.ModuleHandle]*Module
	closed  bool

	events eventHandlers
}

// Open starts (or attaches to) CANape with projectPath as working
// directory. CANape is locked for other users until Exit is called.
func Open(ctx context.Context, projectPath string, opts ...Opt) (*CANape, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("canape option error: %w", err)
		}
	}

	api, own, err := loadAPI(o)
	if err != nil {
		return nil, err
	}

	if o.killOpenInstances {
		if err := killInstances(o.log); err != nil {
			o.log.Warn("failed to terminate running CANape instances", zap.Error(err))
		}
	}

	var handle cnp.Handle
	err = retry.Do(
		func() error {
			h, err := api.Init5(
				uint32(o.timeout.Milliseconds()),
				projectPath,
				o.fifoSize,
				o.sampleSize,
				o.debugMode,
				o.clearDeviceList,
				false,
				o.modalMode,
			)
			if err != nil {
				return err
			}
			handle = h
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(o.initAttempts),
		retry.Delay(o.initDelay),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			o.log.Warn("CANape init failed", zap.Uint("attempt", n+1), zap.Error(err))
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if own {
			api.Close()
		}
		return nil, fmt.Errorf("failed to initialise CANape: %w", err)
	}

	c := &CANape{
		api:     api,
		handle:  handle,
		log:     o.log,
		opts:    o,
		ownAPI:  own,
		modules: make(map[cnp.ModuleHandle]*Module),
	}

	for _, ev := range cnp.EventCodes {
		if err := api.RegisterCallBack(handle, ev, c.dispatch); err != nil {
			var nie *cnp.NotImplementedError
			if errors.As(err, &nie) {
				c.log.Debug("event callbacks not available", zap.Error(err))
				break
			}
			c.Exit(false)
			return nil, fmt.Errorf("failed to register %s callback: %w", ev, err)
		}
	}

	c.log.Info("CANape session opened", zap.String("project", projectPath), zap.Uint64("handle", uint64(handle)))
	return c, nil
}

func loadAPI(o *options) (cnp.API, bool, error) {
	if o.api != nil {
		return o.api, false, nil
	}
	path := o.libraryPath
	if path == "" {
		if p, err := LibraryPath(); err == nil {
			path = p
		} else {
			o.log.Debug("CANape installation not found in registry", zap.Error(err))
		}
	}
	api, err := cnp.Open(path, o.log)
	if err != nil {
		return nil, false, err
	}
	return api, true, nil
}

// DLLVersion reports the version of the loaded CANape API.
func DLLVersion(opts ...Opt) (cnp.Version, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return cnp.Version{}, fmt.Errorf("canape option error: %w", err)
		}
	}
	api, own, err := loadAPI(o)
	if err != nil {
		return cnp.Version{}, err
	}
	if own {
		defer api.Close()
	}
	return api.GetVersion()
}

// API returns the native API the session talks to.
func (c *CANape) API() cnp.API {
	return c.api
}

func (c *CANape) Handle() cnp.Handle {
	return c.handle
}

func (c *CANape) DLLVersion() (cnp.Version, error) {
	return c.api.GetVersion()
}

// ApplicationVersion returns the version of the running CANape.
func (c *CANape) ApplicationVersion() (cnp.AppVersion, error) {
	return c.api.GetApplicationVersion(c.handle)
}

func (c *CANape) ProjectDirectory() (string, error) {
	return c.api.GetProjectDirectory(c.handle)
}

// CreateModule adds a device to the project. enableCache is -1 for
// CANape's default, 0 to disable and 1 to enable the calibration cache.
func (c *CANape) CreateModule(name, dbFilename string, driver cnp.DriverType, channel cnp.Channel, goOnline bool, enableCache int16) (*Module, error) {
	h, err := c.api.CreateModule3(c.handle, name, dbFilename, driver, channel, goOnline, enableCache)
	if err != nil {
		return nil, err
	}
	c.log.Debug("module created", zap.String("name", name), zap.Stringer("driver", driver), zap.Stringer("channel", channel))
	return c.module(h), nil
}

func (c *CANape) ModuleCount() (int, error) {
	n, err := c.api.GetModuleCount(c.handle)
	return int(n), err
}

// ModuleByName returns the module with the given name.
func (c *CANape) ModuleByName(name string) (*Module, error) {
	h, err := c.api.GetModuleHandle(c.handle, name)
	if err != nil {
		return nil, err
	}
	return c.module(h), nil
}

// ModuleByIndex returns the module at index, including modules created
// by another application.
func (c *CANape) ModuleByIndex(index int) (*Module, error) {
	if index < 0 || index > 0xffff {
		return nil, cnp.NewError("Asap3GetModuleName", cnp.AEC_INVALID_MODULE_HDL)
	}
	h := cnp.ModuleHandle(index)
	if _, err := c.api.GetModuleName(c.handle, h); err != nil {
		c.mu.Lock()
		delete(c.modules, h)
		c.mu.Unlock()
		c.log.Debug("invalid module index", zap.Int("index", index), zap.Error(err))
		return nil, cnp.NewError("Asap3GetModuleName", cnp.AEC_INVALID_MODULE_HDL)
	}
	return c.module(h), nil
}

// Modules returns every valid module of the project.
func (c *CANape) Modules() ([]*Module, error) {
	n, err := c.ModuleCount()
	if err != nil {
		return nil, err
	}
	out := make([]*Module, 0, n)
	for i := 0; i < n; i++ {
		m, err := c.ModuleByIndex(i)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *CANape) module(h cnp.ModuleHandle) *Module {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.modules[h]; ok {
		return m
	}
	m := &Module{c: c, handle: h}
	c.modules[h] = m
	return m
}

func (c *CANape) forget(h cnp.ModuleHandle) {
	c.mu.Lock()
	delete(c.modules, h)
	c.mu.Unlock()
}

// SetInteractiveMode enables or disables user interaction with CANape
// while the API session is active.
func (c *CANape) SetInteractiveMode(mode bool) error {
	return c.api.SetInteractiveMode(c.handle, mode)
}

func (c *CANape) InteractiveMode() (bool, error) {
	return c.api.GetInteractiveMode(c.handle)
}

func (c *CANape) PopupDebugWindow() error {
	return c.api.PopupDebugWindow(c.handle)
}

func (c *CANape) IsNetworkActivated(name string) (bool, error) {
	return c.api.IsNetworkActivated(c.handle, name)
}

func (c *CANape) ActivateNetwork(name string, activate bool) error {
	return c.api.ActivateNetwork(c.handle, name, activate)
}

// ResetDataAcquisitionChannels clears the measurement list of every
// module.
func (c *CANape) ResetDataAcquisitionChannels() error {
	return c.api.ResetDataAcquisitionChnls(c.handle)
}

func (c *CANape) StartDataAcquisition() error {
	return c.api.StartDataAcquisition(c.handle)
}

func (c *CANape) StopDataAcquisition() error {
	return c.api.StopDataAcquisition(c.handle)
}

func (c *CANape) MeasurementState() (cnp.MeasurementState, error) {
	return c.api.GetMeasurementState(c.handle)
}

func (c *CANape) HasMCD3License() (bool, error) {
	return c.api.HasMCD3License(c.handle)
}

// CNAFilename returns the loaded configuration file. CANape reports it
// only in non-modal mode.
func (c *CANape) CNAFilename() (string, error) {
	return c.api.GetCNAFilename(c.handle)
}

func (c *CANape) LoadCNAFile(filename string) error {
	return c.api.LoadCNAFile(c.handle, filename)
}

// Exit ends the session, closing CANape too when closeCANape is set.
func (c *CANape) Exit(closeCANape bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	c.modules = make(map[cnp.ModuleHandle]*Module)
	c.mu.Unlock()

	err := c.api.Exit2(c.handle, closeCANape)
	if c.ownAPI {
		if cerr := c.api.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	c.events.clear()
	c.log.Info("CANape session closed", zap.Bool("close_canape", closeCANape))
	return err
}
