package canape

import (
	"errors"
	"time"

	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

type options struct {
	fifoSize          uint32
	sampleSize        uint32
	timeout           time.Duration
	clearDeviceList   bool
	modalMode         bool
	killOpenInstances bool
	debugMode         bool
	api               cnp.API
	libraryPath       string
	log               *zap.Logger
	initAttempts      uint
	initDelay         time.Duration
}

func defaultOptions() *options {
	return &options{
		fifoSize:          128,
		sampleSize:        256,
		clearDeviceList:   true,
		killOpenInstances: true,
		log:               zap.NewNop(),
		initAttempts:      1,
		initDelay:         time.Second,
	}
}

type Opt func(o *options) error

// WithFifoSize sets the number of samples each DAQ FIFO holds.
func WithFifoSize(n uint32) Opt {
	return func(o *options) error {
		if n == 0 {
			return errors.New("fifo size must be greater than zero")
		}
		o.fifoSize = n
		return nil
	}
}

// WithSampleSize sets the size of one sample buffer. The measurement
// memory is fifo size * sample size.
func WithSampleSize(n uint32) Opt {
	return func(o *options) error {
		if n == 0 {
			return errors.New("sample size must be greater than zero")
		}
		o.sampleSize = n
		return nil
	}
}

// WithTimeout sets the response timeout of the API, 0 uses CANape's default.
func WithTimeout(d time.Duration) Opt {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = d
		return nil
	}
}

// WithClearDeviceList removes the devices of CANape.ini from the
// project when true, keeps them when false.
func WithClearDeviceList(clear bool) Opt {
	return func(o *options) error {
		o.clearDeviceList = clear
		return nil
	}
}

// WithModalMode starts CANape modal, the API client is then the only
// user of the running instance.
func WithModalMode(modal bool) Opt {
	return func(o *options) error {
		o.modalMode = modal
		return nil
	}
}

// WithKillOpenInstances terminates running CANape processes before the
// new session starts.
func WithKillOpenInstances(kill bool) Opt {
	return func(o *options) error {
		o.killOpenInstances = kill
		return nil
	}
}

// WithDebugMode opens CANape's debug window during Init.
func WithDebugMode(debug bool) Opt {
	return func(o *options) error {
		o.debugMode = debug
		return nil
	}
}

// WithAPI uses api instead of loading the CANape DLL.
func WithAPI(api cnp.API) Opt {
	return func(o *options) error {
		if api == nil {
			return errors.New("api is nil")
		}
		o.api = api
		return nil
	}
}

// WithLibraryPath loads the CANape API from path.
func WithLibraryPath(path string) Opt {
	return func(o *options) error {
		o.libraryPath = path
		return nil
	}
}

func WithLogger(log *zap.Logger) Opt {
	return func(o *options) error {
		if log == nil {
			log = zap.NewNop()
		}
		o.log = log
		return nil
	}
}

// WithInitRetries retries Asap3Init5 up to attempts times while CANape
// is not reachable yet, waiting delay between attempts.
func WithInitRetries(attempts uint, delay time.Duration) Opt {
	return func(o *options) error {
		if attempts == 0 {
			return errors.New("init attempts must be at least 1")
		}
		o.initAttempts = attempts
		o.initDelay = delay
		return nil
	}
}
