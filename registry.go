package eventchannel

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry owns the channels of a process, one per (tag type, argument list).
// Channels are created on first use and live as long as the Registry.
type Registry struct {
	id           string
	logger       *slog.Logger
	metrics      *Metrics
	errorHandler ErrorHandler

	mu       sync.Mutex
	channels map[reflect.Type]any
	topics   map[string]reflect.Type
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide Registry. It is built on first use
// with slog.Default() and no metrics, and is never torn down.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New creates a Registry with the given options.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:       uuid.NewString(),
		logger:   slog.Default(),
		channels: make(map[reflect.Type]any),
		topics:   make(map[string]reflect.Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("registry", r.id)
	return r
}

// ID returns the unique identifier of this Registry.
func (r *Registry) ID() string {
	return r.id
}

// Len returns the number of active channels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels)
}

// Topics returns the topics of all active channels, sorted.
func (r *Registry) Topics() []string {
	r.mu.Lock()
	topics := make([]string, 0, len(r.channels))
	for _, ch := range r.channels {
		topics = append(topics, ch.(interface{ Topic() string }).Topic())
	}
	r.mu.Unlock()
	sort.Strings(topics)
	return topics
}

// Lookup returns the channel identified by K and A, creating it on the first call.
// Concurrent first calls observe the same channel.
func Lookup[K Event, A any](r *Registry) *Channel[K, A] {
	key := reflect.TypeOf((*Channel[K, A])(nil))

	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok := r.channels[key]; ok {
		return ch.(*Channel[K, A])
	}

	ch := newChannel[K, A](r)
	r.channels[key] = ch
	if other, ok := r.topics[ch.topic]; ok && other != key {
		r.logger.Warn("topic shared by distinct channels", "topic", ch.topic, "channel", key.String(), "other", other.String())
	} else {
		r.topics[ch.topic] = key
	}
	r.metrics.activated(len(r.channels))
	ch.logger.Debug("channel activated", "channel", key.String())
	return ch
}

// reportError calls the configured ErrorHandler, if any.
func (r *Registry) reportError(err error) {
	if r.errorHandler != nil {
		r.errorHandler(err)
	}
}
