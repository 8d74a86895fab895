package flagx

import (
	"sync"

	"github.com/eggybyte-technology/flagx/errors"
	"github.com/eggybyte-technology/flagx/log"
)

// Manager holds the active versioned flag registry for a running process
// and provides unified access to it. The registry itself stays immutable;
// the manager only swaps which registry (or version view of it) is active.
// Managers are safe for concurrent use.
type Manager interface {
	// Current returns the active registry view.
	Current() Versioned

	// Pin restricts the active view to the given version ceiling.
	Pin(version int)

	// Replace swaps the registry wholesale for a newly built one.
	Replace(v Versioned)

	// Snapshot returns a copy of the active view's explicit flag values.
	Snapshot() map[string]any

	// Bind decodes the active view into a struct with flag tags and
	// default values. See Bind for tag semantics.
	Bind(target any, opts ...BindOption) error

	// OnUpdate subscribes to registry update events.
	// Returns an unsubscribe function.
	OnUpdate(fn func(Versioned)) (unsubscribe func())
}

// Options holds configuration for the manager.
type Options struct {
	Logger  log.Logger // Logger for registry operations (required)
	Initial Versioned  // Initial registry (default: empty)
}

// BindOption configures binding behavior.
type BindOption interface {
	apply(*bindConfig)
}

type bindConfig struct {
	validate bool
}

type bindOptionFunc func(*bindConfig)

func (f bindOptionFunc) apply(cfg *bindConfig) {
	f(cfg)
}

// WithValidation runs go-playground validation on the bound struct after
// decoding.
func WithValidation() BindOption {
	return bindOptionFunc(func(cfg *bindConfig) {
		cfg.validate = true
	})
}

type manager struct {
	logger log.Logger

	mu      sync.RWMutex
	current Versioned

	subsMu     sync.RWMutex
	updateSubs map[int]func(Versioned)
	nextSubID  int
}

// NewManager creates a new flag registry manager.
func NewManager(opts Options) (Manager, error) {
	if opts.Logger == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "logger is required")
	}

	initial := opts.Initial
	if initial == nil {
		initial = NewVersionedBuilder().Build()
	}

	m := &manager{
		logger:     opts.Logger,
		current:    initial,
		updateSubs: make(map[int]func(Versioned)),
	}

	m.logger.Info("flag registry loaded",
		log.Int("flags", len(initial.explicit())),
		log.Int("versions", len(initial.ChildSets())))
	return m, nil
}

// Current returns the active registry view.
func (m *manager) Current() Versioned {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Pin restricts the active view to the given version ceiling.
func (m *manager) Pin(version int) {
	m.mu.Lock()
	m.current = m.current.At(version)
	current := m.current
	m.mu.Unlock()

	m.logger.Info("flag registry pinned", log.Int("version", version))
	m.notifySubscribers(current)
}

// Replace swaps the registry wholesale.
func (m *manager) Replace(v Versioned) {
	if v == nil {
		v = NewVersionedBuilder().Build()
	}

	m.mu.Lock()
	m.current = v
	m.mu.Unlock()

	m.logger.Info("flag registry updated",
		log.Int("flags", len(v.explicit())),
		log.Int("versions", len(v.ChildSets())))
	m.notifySubscribers(v)
}

// Snapshot returns a copy of the active view's explicit flag values.
func (m *manager) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.explicit().Clone()
}

// Bind decodes the active view into a struct.
func (m *manager) Bind(target any, opts ...BindOption) error {
	if target == nil {
		return errors.New(errors.CodeInvalidArgument, "target cannot be nil")
	}

	var cfg bindConfig
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if err := Bind(m.Current(), target); err != nil {
		return err
	}

	if cfg.validate {
		return ValidateStruct(nil, target)
	}
	return nil
}

// OnUpdate subscribes to registry update events.
func (m *manager) OnUpdate(fn func(Versioned)) func() {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	subID := m.nextSubID
	m.nextSubID++
	m.updateSubs[subID] = fn

	return func() {
		m.subsMu.Lock()
		defer m.subsMu.Unlock()
		delete(m.updateSubs, subID)
	}
}

// notifySubscribers notifies all subscribers of a registry update.
func (m *manager) notifySubscribers(v Versioned) {
	m.subsMu.RLock()
	subs := make([]func(Versioned), 0, len(m.updateSubs))
	for _, sub := range m.updateSubs {
		subs = append(subs, sub)
	}
	m.subsMu.RUnlock()

	for _, sub := range subs {
		go sub(v)
	}
}
