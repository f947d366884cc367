// Package event provides the ledger's event dispatch. Listeners
// register for an event type and receive every matching payload emitted
// afterwards. Dispatch is synchronous and in subscription order, so
// observers (persistence, tests) see events deterministically and only
// for operations that actually succeeded.
package event

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mintline/mintline/pkg/types"
)

// Handler receives an event payload (one of the record structs in
// pkg/types/events.go).
type Handler func(payload any)

// Manager routes emitted events to subscribed handlers. A Manager is
// owned by whoever constructs the ledger; there is no global instance.
type Manager struct {
	mu       sync.RWMutex
	handlers map[types.EventType][]Handler
	log      *zap.Logger
}

// NewManager creates an empty event manager.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		handlers: make(map[types.EventType][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the given event type.
func (m *Manager) Subscribe(eventType types.EventType, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	m.log.Debug("event listener added", zap.String("type", string(eventType)))
}

// Emit delivers the payload to every handler subscribed to the type.
// Handlers run synchronously on the emitting goroutine.
func (m *Manager) Emit(eventType types.EventType, payload any) {
	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		m.log.Debug("no listeners for event", zap.String("type", string(eventType)))
		return
	}

	m.log.Debug("emitting event", zap.String("type", string(eventType)))
	for _, handler := range handlers {
		handler(payload)
	}
}
