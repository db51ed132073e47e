package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	canape "github.com/roffe/gocanape"
	"github.com/roffe/gocanape/internal/cnpfake"
	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionYAML = `
project: C:\Projects\XCPsim
timeout: 30s
fifo_size: 512
sample_size: 1024
modal: true
clear_device_list: false
keep_instances: true
init_retries:
  attempts: 3
  delay: 2s
modules:
  - name: XCPsim
    database: XCPsim.a2l
    driver: XCP
    channel: CAN1
    online: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sessionYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, `C:\Projects\XCPsim`, cfg.Project)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, uint32(512), cfg.FifoSize)
	require.NotNil(t, cfg.ClearDeviceList)
	assert.False(t, *cfg.ClearDeviceList)
	assert.True(t, cfg.KeepInstances)
	assert.Equal(t, Retries{Attempts: 3, Delay: 2 * time.Second}, cfg.InitRetries)
	require.Len(t, cfg.Modules, 1)
	assert.Equal(t, Module{Name: "XCPsim", Database: "XCPsim.a2l", Driver: "XCP", Channel: "CAN1", Online: true}, cfg.Modules[0])
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("project: x\nfifo: 10\n"))
	assert.ErrorContains(t, err, "field fifo not found")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sessionYAML), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "XCPsim", cfg.Modules[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing project", "timeout: 1s", "Project"},
		{"negative timeout", "project: p\ntimeout: -1s", "Timeout"},
		{"unknown driver", "project: p\nmodules:\n  - {name: m, database: m.a2l, driver: SPI, channel: CAN1}", "Driver"},
		{"unknown channel", "project: p\nmodules:\n  - {name: m, database: m.a2l, driver: XCP, channel: CAN99}", "Channel"},
		{"missing database", "project: p\nmodules:\n  - {name: m, driver: XCP, channel: CAN1}", "Database"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			err = cfg.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestNewValidatorTags(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })
	assert.NoError(t, v.Var("XCP", "driver"))
	assert.Error(t, v.Var("SPI", "driver"))
	assert.NoError(t, v.Var("CAN1", "channel"))
	assert.Error(t, v.Var("CAN99", "channel"))
}

func TestOptionsAndModules(t *testing.T) {
	cfg, err := Parse([]byte(sessionYAML))
	require.NoError(t, err)

	fake := cnpfake.New()
	fake.AddDatabase("XCPsim.a2l")
	opts := append(cfg.Options(), canape.WithAPI(fake))
	c, err := canape.Open(context.Background(), cfg.Project, opts...)
	require.NoError(t, err)
	defer c.Exit(false)

	params := fake.Init()
	assert.Equal(t, uint32(30000), params.ResponseTimeout)
	assert.Equal(t, uint32(512), params.FifoSize)
	assert.Equal(t, uint32(1024), params.SampleSize)
	assert.True(t, params.ModalMode)
	assert.False(t, params.ClearDeviceList)

	modules, err := cfg.CreateModules(c)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	m := fake.Module("XCPsim")
	require.NotNil(t, m)
	assert.Equal(t, cnp.ASAP3_DRIVER_XCP, m.Driver)
	assert.Equal(t, cnp.DEV_CAN1, m.Channel)
	assert.Equal(t, cnp.TYPE_SWITCH_ONLINE, m.State)
}
