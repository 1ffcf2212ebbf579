package eventchannel

import (
	"log/slog"
	"sync"
)

// Channel is the listener set of one declared event. K is the tag type
// that gives the channel its identity and A is the argument list every
// notification carries (None, a single value, or a Pair).
//
// Channels live in a Registry and are never destroyed. Obtain one with
// Lookup or through the Declare0/Declare1/Declare2 wrappers.
type Channel[K Event, A any] struct {
	registry *Registry
	topic    string
	logger   *slog.Logger

	mu        sync.RWMutex
	listeners []*Listener[A] // distinct by pointer
}

func newChannel[K Event, A any](r *Registry) *Channel[K, A] {
	topic := topicOf[K]()
	return &Channel[K, A]{
		registry: r,
		topic:    topic,
		logger:   r.logger.With("topic", topic),
	}
}

// Topic returns the name reported by the channel's tag type.
func (c *Channel[K, A]) Topic() string {
	return c.topic
}

// Len returns the number of registered listeners.
func (c *Channel[K, A]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listeners)
}

// Contains reports whether l is registered.
func (c *Channel[K, A]) Contains(l *Listener[A]) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(l) >= 0
}

// indexOf must be called with mu held.
func (c *Channel[K, A]) indexOf(l *Listener[A]) int {
	for i, existing := range c.listeners {
		if existing == l {
			return i
		}
	}
	return -1
}

// snapshot returns a point-in-time copy of the listener set for Push.
func (c *Channel[K, A]) snapshot() []*Listener[A] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	listeners := make([]*Listener[A], len(c.listeners))
	copy(listeners, c.listeners)
	return listeners
}
