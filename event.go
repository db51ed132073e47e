package canape

import (
	"sync"

	"github.com/roffe/gocanape/pkg/cnp"
	"go.uber.org/zap"
)

type eventHandlers struct {
	mu   sync.Mutex
	next uint64
	subs map[cnp.EventCode]map[uint64]func()
}

// Subscribe calls fn every time CANape reports event. Handlers run on
// CANape's callback thread and must not call the API synchronously,
// start a goroutine for that. The returned func removes the handler.
func (c *CANape) Subscribe(event cnp.EventCode, fn func()) func() {
	e := &c.events
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.subs == nil {
		e.subs = make(map[cnp.EventCode]map[uint64]func())
	}
	if e.subs[event] == nil {
		e.subs[event] = make(map[uint64]func())
	}
	id := e.next
	e.next++
	e.subs[event][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.subs[event], id)
		})
	}
}

func (c *CANape) dispatch(event cnp.EventCode) {
	e := &c.events
	e.mu.Lock()
	handlers := make([]func(), 0, len(e.subs[event]))
	for _, fn := range e.subs[event] {
		handlers = append(handlers, fn)
	}
	e.mu.Unlock()

	c.log.Debug("CANape event", zap.Stringer("event", event), zap.Int("handlers", len(handlers)))
	for _, fn := range handlers {
		fn()
	}
}

func (e *eventHandlers) clear() {
	e.mu.Lock()
	e.subs = nil
	e.mu.Unlock()
}
