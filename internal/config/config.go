// Package config loads the canapetool session file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/pkg/cnp"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	tags := map[string]func(string) error{
		"driver": func(s string) error {
			_, err := cnp.ParseDriverType(s)
			return err
		},
		"channel": func(s string) error {
			_, err := cnp.ParseChannel(s)
			return err
		},
	}
	for tag, parse := range tags {
		parse := parse
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return parse(fl.Field().String()) == nil
		}); err != nil {
			panic(fmt.Sprintf("config: register %q validation: %v", tag, err))
		}
	}
	return v
}

// Config describes one CANape session.
type Config struct {
	Project         string        `yaml:"project" validate:"required"`
	Library         string        `yaml:"library"`
	Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`
	FifoSize        uint32        `yaml:"fifo_size"`
	SampleSize      uint32        `yaml:"sample_size"`
	Modal           bool          `yaml:"modal"`
	Debug           bool          `yaml:"debug"`
	ClearDeviceList *bool         `yaml:"clear_device_list"`
	KeepInstances   bool          `yaml:"keep_instances"`
	CloseCANape     bool          `yaml:"close_canape"`
	InitRetries     Retries       `yaml:"init_retries"`
	Modules         []Module      `yaml:"modules" validate:"dive"`
}

type Retries struct {
	Attempts uint          `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay" validate:"gte=0"`
}

// Module is created when the session opens.
type Module struct {
	Name     string `yaml:"name" validate:"required"`
	Database string `yaml:"database" validate:"required"`
	Driver   string `yaml:"driver" validate:"required,driver"`
	Channel  string `yaml:"channel" validate:"required,channel"`
	Online   bool   `yaml:"online"`
	Cache    *bool  `yaml:"cache"`
}

// Load reads a session file. Unknown keys are rejected. The result is
// not validated since flags may still fill in missing values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options translates the file into session options.
func (c *Config) Options() []canape.Opt {
	opts := []canape.Opt{
		canape.WithModalMode(c.Modal),
		canape.WithDebugMode(c.Debug),
		canape.WithKillOpenInstances(!c.KeepInstances),
	}
	if c.Library != "" {
		opts = append(opts, canape.WithLibraryPath(c.Library))
	}
	if c.Timeout > 0 {
		opts = append(opts, canape.WithTimeout(c.Timeout))
	}
	if c.FifoSize > 0 {
		opts = append(opts, canape.WithFifoSize(c.FifoSize))
	}
	if c.SampleSize > 0 {
		opts = append(opts, canape.WithSampleSize(c.SampleSize))
	}
	if c.ClearDeviceList != nil {
		opts = append(opts, canape.WithClearDeviceList(*c.ClearDeviceList))
	}
	if c.InitRetries.Attempts > 0 {
		opts = append(opts, canape.WithInitRetries(c.InitRetries.Attempts, c.InitRetries.Delay))
	}
	return opts
}

// CreateModules creates the configured modules on an open session.
func (c *Config) CreateModules(s *canape.CANape) ([]*canape.Module, error) {
	out := make([]*canape.Module, 0, len(c.Modules))
	for _, mc := range c.Modules {
		driver, err := cnp.ParseDriverType(mc.Driver)
		if err != nil {
			return out, err
		}
		channel, err := cnp.ParseChannel(mc.Channel)
		if err != nil {
			return out, err
		}
		cache := int16(-1)
		if mc.Cache != nil {
			cache = 0
			if *mc.Cache {
				cache = 1
			}
		}
		m, err := s.CreateModule(mc.Name, mc.Database, driver, channel, mc.Online, cache)
		if err != nil {
			return out, fmt.Errorf("module %s: %w", mc.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}
