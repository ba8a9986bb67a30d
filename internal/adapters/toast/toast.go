package toast

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// DefaultDuration is how long the notification stays visible
const DefaultDuration = 3 * time.Second

// stopper is the part of *time.Timer the toast needs
type stopper interface {
	Stop() bool
}

// afterFunc schedules f after d, like time.AfterFunc
type afterFunc func(d time.Duration, f func()) stopper

// Toast is a ports.Notifier for headless sessions. Each Notify shows the
// toast and cancels the hide scheduled by the previous one.
type Toast struct {
	mu       sync.Mutex
	state    domain.Toast
	pending  stopper
	duration time.Duration
	schedule afterFunc
	onChange func(visible bool)
	logger   *zap.Logger
}

// Ensure Toast implements ports.Notifier
var _ ports.Notifier = (*Toast)(nil)

// Option configures a Toast
type Option func(*Toast)

// WithOnChange registers a callback run whenever visibility flips
func WithOnChange(fn func(visible bool)) Option {
	return func(t *Toast) {
		t.onChange = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *Toast) {
		t.logger = logger
	}
}

// New creates a hidden toast that hides itself duration after each Notify
func New(duration time.Duration, opts ...Option) *Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	t := &Toast{
		duration: duration,
		schedule: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Notify shows the toast and schedules it to hide
func (t *Toast) Notify() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
	}

	wasVisible := t.state.Visible()
	gen := t.state.Show()
	t.pending = t.schedule(t.duration, func() { t.hide(gen) })

	t.logger.Debug("toast shown", zap.Uint64("generation", gen))
	if !wasVisible && t.onChange != nil {
		t.onChange(true)
	}
}

func (t *Toast) hide(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.state.Hide(gen) {
		return
	}
	t.pending = nil
	t.logger.Debug("toast hidden", zap.Uint64("generation", gen))
	if t.onChange != nil {
		t.onChange(false)
	}
}

// Visible reports whether the toast is showing
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Visible()
}

// Stop cancels any pending hide and hides the toast
func (t *Toast) Stop() {
	t.mu.Lock()
	gen := t.state.Generation()
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.mu.Unlock()
	t.hide(gen)
}
