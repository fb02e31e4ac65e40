package ptyhost

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/corvid-systems/ptyhost/internal/logging"
	"github.com/corvid-systems/ptyhost/internal/workerpool"
)

// Manager is a convenience registry for hosts that juggle more than one
// named PTY session at a time (a multiplexed terminal server, say) and
// would otherwise have to track *Conn values and IDs themselves.
//
// Manager owns a bounded worker pool used only to dispatch the OnOutput/
// OnClose callbacks of every session: the callback is caller-supplied code
// that may be slow or may panic, and running it inline on the per-session
// read goroutine would let one misbehaving callback stall that session's
// byte stream. The read goroutine itself is not pool-dispatched — it must
// always be draining Read, so it runs as a plain unbounded goroutine, one
// per live session, exactly like the exit watchers in internal/unixpty and
// internal/winpty.
type Manager struct {
	pool *workerpool.Pool

	mu       sync.RWMutex
	sessions map[string]*managedSession
}

type managedSession struct {
	conn     Conn
	onClose  func(err error)
	closeMu  sync.Once
}

// NewManager creates a Manager whose callback dispatch pool runs up to
// maxCallbackWorkers concurrent OnOutput/OnClose invocations, queuing up to
// queueSize beyond that before Submit starts rejecting work.
func NewManager(maxCallbackWorkers, queueSize int) *Manager {
	return &Manager{
		pool:     workerpool.New(maxCallbackWorkers, queueSize),
		sessions: make(map[string]*managedSession),
	}
}

// StartSession spawns opts inside a new PTY, registers it under id, and
// begins forwarding its output to onOutput until it exits or is stopped,
// at which point onClose is submitted once. Both callbacks run on the
// Manager's worker pool, never on the caller's goroutine; like an output
// callback, onClose is dropped (and never runs) if the pool's queue is
// full or CloseAll has already stopped the pool.
func (m *Manager) StartSession(ctx context.Context, id string, opts SpawnOptions, onOutput func(data []byte), onClose func(err error)) error {
	m.mu.Lock()
	if _, exists := m.sessions[id]; exists {
		m.mu.Unlock()
		return fmt.Errorf("ptyhost: session %q already exists", id)
	}
	m.mu.Unlock()

	conn, err := Spawn(ctx, opts)
	if err != nil {
		return fmt.Errorf("ptyhost: start session %q: %w", id, err)
	}

	ms := &managedSession{conn: conn, onClose: onClose}

	m.mu.Lock()
	m.sessions[id] = ms
	m.mu.Unlock()

	go m.readLoop(id, ms, onOutput)
	return nil
}

func (m *Manager) readLoop(id string, ms *managedSession, onOutput func(data []byte)) {
	buf := make([]byte, 4096)
	var loopErr error

	for {
		n, err := ms.conn.Read(buf)
		if n > 0 && onOutput != nil {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if !m.pool.Submit(id, func() { onOutput(chunk) }) {
				logging.L("manager").Warn("dropped output callback, pool saturated", logging.KeyConnID, id)
			}
		}
		if err != nil {
			if err != io.EOF {
				loopErr = err
			}
			break
		}
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	ms.conn.Close()

	if ms.onClose != nil {
		finalErr := loopErr
		ms.closeMu.Do(func() {
			m.pool.Submit(id, func() { ms.onClose(finalErr) })
		})
	}
}

// WriteToSession writes data to the named session's PTY input.
func (m *Manager) WriteToSession(id string, data []byte) error {
	ms, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("ptyhost: session %q not found", id)
	}
	_, err := ms.conn.Write(data)
	return err
}

// ResizeSession resizes the named session's terminal dimensions.
func (m *Manager) ResizeSession(id string, cols, rows uint16) error {
	ms, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("ptyhost: session %q not found", id)
	}
	return ms.conn.Resize(cols, rows)
}

// StopSession kills the named session. The read goroutine, once it
// observes the resulting exit, removes the session from the registry and
// submits its onClose callback.
func (m *Manager) StopSession(id string) error {
	ms, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("ptyhost: session %q not found", id)
	}
	return ms.conn.Kill()
}

// GetSession returns the live Conn registered under id, if any.
func (m *Manager) GetSession(id string) (Conn, bool) {
	ms, ok := m.lookup(id)
	if !ok {
		return nil, false
	}
	return ms.conn, true
}

// SessionCount returns the number of currently registered sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll kills every registered session and drains the callback pool,
// waiting up to ctx's deadline for in-flight callbacks to finish.
func (m *Manager) CloseAll(ctx context.Context) {
	m.mu.Lock()
	sessions := make([]*managedSession, 0, len(m.sessions))
	for _, ms := range m.sessions {
		sessions = append(sessions, ms)
	}
	m.sessions = make(map[string]*managedSession)
	m.mu.Unlock()

	for _, ms := range sessions {
		ms.conn.Kill()
	}

	m.pool.StopAccepting()
	m.pool.Drain(ctx)
}

func (m *Manager) lookup(id string) (*managedSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ms, ok := m.sessions[id]
	return ms, ok
}
