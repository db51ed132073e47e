package canape

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

// FifoReader keeps the latest sample of a set of DAQ channels of one
// task. It follows CANape's measurement: reading starts on
// ON_DATA_ACQ_START and stops on ON_DATA_ACQ_STOP.
type FifoReader struct {
	c       *CANape
	task    *EcuTask
	refresh time.Duration
	log     *zap.Logger
	unsubs  []func()

	mu       sync.Mutex
	names    []string
	channels map[string]Sample
	err      error

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewFifoReader creates a reader for task polling the FIFO every
// refresh period.
func NewFifoReader(c *CANape, task *EcuTask, refresh time.Duration) *FifoReader {
	if refresh <= 0 {
		refresh = time.Millisecond
	}
	r := &FifoReader{
		c:        c,
		task:     task,
		refresh:  refresh,
		log:      c.log.With(zap.String("task", task.Description)),
		channels: make(map[string]Sample),
	}
	r.unsubs = []func(){
		c.Subscribe(cnp.EventDataAcqStart, r.Start),
		c.Subscribe(cnp.EventDataAcqStop, func() { r.stop() }),
	}
	return r
}

func (r *FifoReader) Task() *EcuTask {
	return r.task
}

// AddChannel sets up a DAQ channel on the task and starts tracking it.
// Adding a known channel again is a no-op.
func (r *FifoReader) AddChannel(name string, pollingRate uint16, save bool) error {
	if r.isClosed() {
		return ErrReaderClosed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.channels[name]; ok {
		return nil
	}
	if err := r.task.SetupChannel(name, pollingRate, save); err != nil {
		return err
	}
	r.names = append(r.names, name)
	r.channels[name] = Sample{Timestamp: 0, Value: math.NaN()}
	return nil
}

// ClearChannels forgets every channel. The DAQ setup in CANape is not
// changed.
func (r *FifoReader) ClearChannels() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = nil
	r.channels = make(map[string]Sample)
}

func (r *FifoReader) ChannelNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

// Sample returns the latest sample of a channel. The value is NaN until
// the first sample arrived.
func (r *FifoReader) Sample(name string) (Sample, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.channels[name]
	return s, ok
}

func (r *FifoReader) Value(name string) (float64, bool) {
	s, ok := r.Sample(name)
	if !ok {
		return math.NaN(), false
	}
	return s.Value, true
}

// Err reports the error that stopped the last run, if any.
func (r *FifoReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Start begins polling without waiting for ON_DATA_ACQ_START. A running
// poll is replaced. Start does not block.
func (r *FifoReader) Start() {
	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()

	r.runMu.Lock()
	defer r.runMu.Unlock()
	if r.closed {
		return
	}
	prevDone := r.done
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel, r.done = cancel, done

	go func() {
		defer close(done)
		if prevDone != nil {
			<-prevDone
		}
		r.run(ctx)
	}()
}

// Stop ends polling and waits for the poll goroutine to exit.
func (r *FifoReader) Stop() {
	if done := r.stop(); done != nil {
		<-done
	}
}

// stop cancels the poll goroutine without waiting, event handlers run
// on CANape's thread and must not block on the API.
func (r *FifoReader) stop() chan struct{} {
	r.runMu.Lock()
	defer r.runMu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	return r.done
}

// Close unsubscribes from CANape events and stops polling.
func (r *FifoReader) Close() error {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.Stop()
	r.runMu.Lock()
	r.closed = true
	r.runMu.Unlock()
	return nil
}

func (r *FifoReader) isClosed() bool {
	r.runMu.Lock()
	defer r.runMu.Unlock()
	return r.closed
}

func (r *FifoReader) run(ctx context.Context) {
	if err := r.task.CheckOverrun(true); err != nil && !IsNoValuesSampled(err) {
		r.fail(err)
		return
	}
	t := time.NewTicker(r.refresh)
	defer t.Stop()
	for {
		if err := r.drain(ctx); err != nil {
			r.fail(err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// drain pops every queued sample. AEC_NO_VALUES_SAMPLED from any call
// means nothing to read this tick.
func (r *FifoReader) drain(ctx context.Context) error {
	if err := r.task.CheckOverrun(false); err != nil {
		switch {
		case IsNoValuesSampled(err):
			return nil
		case !errors.Is(err, cnp.AEC_ACQ_STP_OVERFLOW):
			return err
		}
		r.log.Warn("DAQ FIFO overrun, samples lost")
		if err := r.task.CheckOverrun(true); err != nil && !IsNoValuesSampled(err) {
			return err
		}
	}
	level, err := r.task.FifoLevel()
	if err != nil {
		if IsNoValuesSampled(err) {
			return nil
		}
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < level && ctx.Err() == nil; i++ {
		samples, err := r.task.NextSample(len(r.names))
		if err != nil {
			if IsNoValuesSampled(err) {
				return nil
			}
			return err
		}
		for j, name := range r.names {
			if j < len(samples) && !math.IsNaN(samples[j].Value) {
				r.channels[name] = samples[j]
			}
		}
	}
	return nil
}

func (r *FifoReader) fail(err error) {
	if IsNoValuesSampled(err) {
		return
	}
	r.log.Error("FIFO reader stopped", zap.Error(err))
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}
