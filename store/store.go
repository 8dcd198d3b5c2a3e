/*
Package store manages the single process wide datastore connection.

The connection is attempted once, in the background, when the Manager is
started. Callers either check the current State or wait on the Manager until
the attempt resolves. Failed is terminal, there is no reconnect.
*/
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Noah-Huppert/golog"
)

// ErrNotReady indicates the connection attempt has not finished yet
var ErrNotReady = errors.New("datastore connection is not ready")

// ErrConnectionUnavailable indicates the connection attempt failed
var ErrConnectionUnavailable = errors.New("datastore connection is unavailable")

// State of the datastore connection
type State int

const (
	// StateUninitialized is the state before Start is called
	StateUninitialized State = iota

	// StateConnecting indicates the connection attempt is in progress
	StateConnecting

	// StateReady indicates the connection is usable
	StateReady

	// StateFailed indicates the connection attempt failed
	StateFailed
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Collection is a named group of documents
type Collection interface {
	// InsertOne stores a document and returns the identifier assigned to it
	InsertOne(ctx context.Context, doc interface{}) (interface{}, error)
}

// Database is an open datastore handle
type Database interface {
	// Collection returns the named collection
	Collection(name string) Collection

	// Disconnect closes the handle
	Disconnect(ctx context.Context) error
}

// Dialer opens a Database
type Dialer interface {
	// Dial connects to the datastore identified by uri. It must only return
	// once the datastore has acknowledged the connection.
	Dial(ctx context.Context, uri string) (Database, error)
}

// Manager owns the lifecycle of the shared Database handle
type Manager struct {
	// logger logs connection state changes
	logger golog.Logger

	// dialer opens the connection
	dialer Dialer

	// startOnce ensures only one connection attempt is made
	startOnce sync.Once

	// ready is closed once the connection attempt resolves, in either direction
	ready chan struct{}

	// onStateChange is called with every new state, may be nil
	onStateChange func(State)

	// mu guards the fields below
	mu sync.RWMutex

	// state is the current connection state
	state State

	// db is set when state is StateReady
	db Database

	// err is set when state is StateFailed
	err error
}

// NewManager creates a Manager in the StateUninitialized state
func NewManager(logger golog.Logger, dialer Dialer) *Manager {
	return &Manager{
		logger: logger,
		dialer: dialer,
		ready:  make(chan struct{}),
		state:  StateUninitialized,
	}
}

// OnStateChange registers a function called whenever the state changes. Must be
// called before Start.
func (m *Manager) OnStateChange(fn func(State)) {
	m.onStateChange = fn
}

// Start begins the connection attempt in a new goroutine. Only the first call
// has any effect. The state is StateConnecting when Start returns.
func (m *Manager) Start(ctx context.Context, uri string) {
	m.startOnce.Do(func() {
		m.setState(StateConnecting, nil, nil)

		go m.connect(ctx, uri)
	})
}

// connect runs the connection attempt and publishes its result
func (m *Manager) connect(ctx context.Context, uri string) {
	defer close(m.ready)

	db, err := m.dialer.Dial(ctx, uri)
	if err != nil {
		m.logger.Errorf("failed to connect to datastore: %s", err.Error())
		m.setState(StateFailed, nil, err)
		return
	}

	m.logger.Info("connected to datastore")
	m.setState(StateReady, db, nil)
}

// setState records a state transition
func (m *Manager) setState(state State, db Database, err error) {
	m.mu.Lock()
	m.state = state
	m.db = db
	m.err = err
	m.mu.Unlock()

	if m.onStateChange != nil {
		m.onStateChange(state)
	}
}

// State returns the current connection state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// Await blocks until the connection attempt resolves or ctx is done. It
// returns ctx.Err() in the latter case. Await does not report whether the
// attempt succeeded, use State or Collection for that.
func (m *Manager) Await(ctx context.Context) error {
	// A resolved attempt wins over a done ctx
	select {
	case <-m.ready:
		return nil
	default:
	}

	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connect starts the connection attempt if needed and waits for it to
// resolve. Returns the handle on success or the connection error.
func (m *Manager) Connect(ctx context.Context, uri string) (Database, error) {
	m.Start(ctx, uri)

	if err := m.Await(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for datastore connection: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateReady {
		return nil, fmt.Errorf("%w: %s", ErrConnectionUnavailable, m.err.Error())
	}

	return m.db, nil
}

// Collection returns the named collection. Fails with ErrNotReady if the
// connection attempt has not resolved and ErrConnectionUnavailable if it failed.
func (m *Manager) Collection(name string) (Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch m.state {
	case StateReady:
		return m.db.Collection(name), nil
	case StateFailed:
		return nil, ErrConnectionUnavailable
	default:
		return nil, ErrNotReady
	}
}

// AwaitCollection waits for the connection attempt to resolve, bounded by ctx,
// then behaves like Collection. If ctx ends first ErrNotReady is returned.
func (m *Manager) AwaitCollection(ctx context.Context, name string) (Collection, error) {
	if err := m.Await(ctx); err != nil {
		return nil, ErrNotReady
	}

	return m.Collection(name)
}

// Disconnect closes the handle if the connection is ready
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateReady {
		return nil
	}

	if err := m.db.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from datastore: %w", err)
	}

	return nil
}
