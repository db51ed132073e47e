package canape

import (
	"context"
	"errors"
	"testing"

	"github.com/roffe/gocanape/pkg/cnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(steps *[]string, name string, err error) Action {
	return func(ctx context.Context, c *CANape) error {
		*steps = append(*steps, name)
		return err
	}
}

func TestChain(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name    string
		actions func(steps *[]string) Action
		want    []string
		wantErr error
	}{
		{
			name: "all",
			actions: func(s *[]string) Action {
				return Chain(record(s, "a", nil), record(s, "b", nil), record(s, "c", nil))
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "stops at error",
			actions: func(s *[]string) Action {
				return Chain(record(s, "a", nil), record(s, "b", errBoom), record(s, "c", nil))
			},
			want:    []string{"a", "b"},
			wantErr: errBoom,
		},
		{
			name: "also",
			actions: func(s *[]string) Action {
				return record(s, "a", nil).Also(record(s, "b", nil))
			},
			want: []string{"a", "b"},
		},
		{
			name: "empty",
			actions: func(s *[]string) Action {
				return Chain()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var steps []string
			err := tt.actions(&steps)(context.Background(), nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, steps)
		})
	}
}

func TestChainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var steps []string
	a := Chain(
		func(ctx context.Context, c *CANape) error {
			steps = append(steps, "a")
			cancel()
			return nil
		},
		record(&steps, "b", nil),
	)
	assert.ErrorIs(t, a(ctx, nil), context.Canceled)
	assert.Equal(t, []string{"a"}, steps)
}

func TestRun(t *testing.T) {
	fake := newFake()
	var modules int
	err := Run(context.Background(), testProject, true, func(ctx context.Context, c *CANape) error {
		if _, err := c.CreateModule("XCPsim", "XCPsim.a2l", cnp.ASAP3_DRIVER_XCP, cnp.DEV_CAN1, false, -1); err != nil {
			return err
		}
		n, err := c.ModuleCount()
		modules = n
		return err
	}, WithAPI(fake), WithKillOpenInstances(false))
	require.NoError(t, err)
	assert.Equal(t, 1, modules)
	assert.Equal(t, []bool{true}, fake.Exits())
}

func TestRunExitsOnError(t *testing.T) {
	fake := newFake()
	errBoom := errors.New("boom")
	err := Run(context.Background(), testProject, false, func(context.Context, *CANape) error {
		return errBoom
	}, WithAPI(fake), WithKillOpenInstances(false))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []bool{false}, fake.Exits())
}

func TestRunJoinsExitError(t *testing.T) {
	fake := newFake()
	errBoom := errors.New("boom")
	fake.Fail("Asap3Exit2", cnp.AEC_NOSERVER_ERRCODE)
	err := Run(context.Background(), testProject, false, func(context.Context, *CANape) error {
		return errBoom
	}, WithAPI(fake), WithKillOpenInstances(false))
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, cnp.AEC_NOSERVER_ERRCODE)
}

func TestRunOpenFails(t *testing.T) {
	fake := newFake()
	fake.Fail("Asap3Init5", cnp.AEC_WORKDIR_ACCESS_FAILED)
	called := false
	err := Run(context.Background(), testProject, false, func(context.Context, *CANape) error {
		called = true
		return nil
	}, WithAPI(fake), WithKillOpenInstances(false))
	assert.ErrorIs(t, err, cnp.AEC_WORKDIR_ACCESS_FAILED)
	assert.False(t, called)
	assert.Empty(t, fake.Exits())
}
