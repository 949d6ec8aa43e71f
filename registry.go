package eventz

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Registry during creation.
type Option func(*config)

// config holds internal configuration for registry creation.
type config struct {
	clock    clockz.Clock
	logger   *slog.Logger
	recorder MetricsRecorder
}

// WithClock sets the clock used to time invocations.
// Default is clockz.RealClock.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the structured logger. Slot creation and Clear are
// logged at debug level. Default is no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRecorder sets the MetricsRecorder that receives dispatch
// measurements. Default is NoopMetrics.
func WithRecorder(recorder MetricsRecorder) Option {
	return func(c *config) {
		c.recorder = recorder
	}
}

// WithMeterProvider records dispatch measurements as OpenTelemetry
// instruments created from provider. It is shorthand for
// WithRecorder(NewMetricsRecorder(provider)).
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		c.recorder = NewMetricsRecorder(provider)
	}
}

// Registry maps keys to typed event slots and dispatches them.
//
// A slot is created lazily by the first operation that names its key,
// and that operation's listener signature becomes the key's signature
// until Clear. Every later operation on the key must use the same
// signature or it fails with a *TypeMismatchError.
//
// Thread Safety:
// All state is guarded by one read-write mutex. Listeners are called
// with the mutex released, so they may use the registry themselves.
type Registry struct {
	clock    clockz.Clock
	logger   *slog.Logger
	recorder MetricsRecorder
	slots    map[Key]slot
	mu       sync.RWMutex

	// Metrics field - zero initialization provides safe defaults
	metrics Metrics
}

// New creates an empty registry with the specified options.
//
// Example:
//
//	events := eventz.New(
//	    eventz.WithLogger(slog.Default()),
//	    eventz.WithMeterProvider(otel.GetMeterProvider()),
//	)
func New(opts ...Option) *Registry {
	cfg := config{
		clock:    clockz.RealClock,
		recorder: NoopMetrics{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Registry{
		clock:    cfg.clock,
		logger:   cfg.logger,
		recorder: cfg.recorder,
		slots:    make(map[Key]slot),
	}
}

// Clear removes every slot and returns how many keys were dropped.
// Keys are free to be committed to a new signature afterwards.
// Outstanding Hook handles return ErrHookNotFound.
func (r *Registry) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.slots)
	r.slots = make(map[Key]slot)

	if r.logger != nil {
		r.logger.Debug("event registry cleared", slog.Int("keys", count))
	}
	return count
}

// Has reports whether key holds a slot, even an empty one.
func (r *Registry) Has(key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.slots[key]
	return ok
}

// Len returns the number of keys holding a slot.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.slots)
}

// Keys returns every key holding a slot, sorted by text.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.slots))
	for k := range r.slots {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Compare(a.text, b.text)
	})
	return keys
}

// ListenerCount returns the number of registrations for key.
// Unlike the listener operations, it never creates a slot.
func (r *Registry) ListenerCount(key Key) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[key]
	if !ok {
		return 0
	}
	return s.count()
}

// Signature returns the listener signature key is committed to,
// e.g. "func(string, int)". The second result is false for a key
// that holds no slot.
func (r *Registry) Signature(key Key) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[key]
	if !ok {
		return "", false
	}
	return s.signature(), true
}

// Metrics returns current registry metrics.
func (r *Registry) Metrics() Metrics {
	r.mu.RLock()
	keys := int64(len(r.slots))
	var listeners int64
	for _, s := range r.slots {
		listeners += int64(s.count())
	}
	r.mu.RUnlock()

	return Metrics{
		Keys:                keys,
		RegisteredListeners: listeners,
		Invocations:         atomic.LoadInt64(&r.metrics.Invocations),
		ListenerCalls:       atomic.LoadInt64(&r.metrics.ListenerCalls),
		TypeMismatches:      atomic.LoadInt64(&r.metrics.TypeMismatches),
	}
}

// acquire returns the slot for key viewed as *event[F], creating an
// empty one if the key is absent. A slot of another signature yields a
// *TypeMismatchError and leaves the registry untouched.
// Callers must hold r.mu for writing and pass the error to mismatched
// once they have released it.
func acquire[F any](r *Registry, key Key) (*event[F], error) {
	s, ok := r.slots[key]
	if !ok {
		e := &event[F]{}
		r.slots[key] = e
		if r.logger != nil {
			r.logger.Debug("event slot created",
				slog.String("key", key.Text()),
				slog.String("signature", e.signature()),
			)
		}
		return e, nil
	}

	e, ok := s.(*event[F])
	if !ok {
		return nil, &TypeMismatchError{
			Key:       key,
			Existing:  s.signature(),
			Requested: signatureOf[F](),
		}
	}
	return e, nil
}

// mismatched counts and records err if it is a *TypeMismatchError, then
// returns it unchanged. It must run without r.mu held, since the recorder
// may call back into the registry.
func (r *Registry) mismatched(err error) error {
	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		atomic.AddInt64(&r.metrics.TypeMismatches, 1)
		r.recorder.RecordTypeMismatch(context.Background(), mismatch.Key, mismatch.Existing, mismatch.Requested)
	}
	return err
}

func addListener[F any](r *Registry, key Key, fn F) (Hook, error) {
	if isNilFunc(fn) {
		return Hook{}, ErrNilListener
	}

	r.mu.Lock()
	e, err := acquire[F](r, key)
	if err != nil {
		r.mu.Unlock()
		return Hook{}, r.mismatched(err)
	}
	id := uuid.NewString()
	e.add(id, fn)
	r.mu.Unlock()

	return Hook{
		unhook: func() error {
			return r.removeHook(key, id)
		},
	}, nil
}

// removeHook removes the registration with the given id, whatever the
// slot's signature.
func (r *Registry) removeHook(key Key, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key]
	if !ok || !s.removeID(id) {
		return ErrHookNotFound
	}
	return nil
}

func removeListener[F any](r *Registry, key Key, fn F) error {
	r.mu.Lock()
	e, err := acquire[F](r, key)
	// Not registered is not an error.
	if err == nil && !isNilFunc(fn) {
		e.remove(fn)
	}
	r.mu.Unlock()

	return r.mismatched(err)
}

func removeAllListeners[F any](r *Registry, key Key) error {
	r.mu.Lock()
	e, err := acquire[F](r, key)
	if err == nil {
		e.removeAll()
	}
	r.mu.Unlock()

	return r.mismatched(err)
}

// listeners returns the snapshot an invocation iterates over.
func listeners[F any](r *Registry, key Key) ([]F, error) {
	r.mu.Lock()
	e, err := acquire[F](r, key)
	var fns []F
	if err == nil {
		fns = e.snapshot()
	}
	r.mu.Unlock()

	return fns, r.mismatched(err)
}

// invoked records an invocation that returned normally.
func (r *Registry) invoked(key Key, calls int, start time.Time) {
	atomic.AddInt64(&r.metrics.Invocations, 1)
	atomic.AddInt64(&r.metrics.ListenerCalls, int64(calls))
	r.recorder.RecordInvoke(context.Background(), key, calls, r.clock.Now().Sub(start))
}
