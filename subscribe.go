package eventchannel

import "sync"

// Subscription represents a registered listener.
// Call Close to remove the listener from its channel, typically with
// defer or from the owner's own Close method.
type Subscription struct {
	topic  string
	once   sync.Once
	detach func()
}

// Close removes the listener from its channel.
// It is safe to call multiple times, concurrently, or on a nil Subscription.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.detach != nil {
			s.detach()
		}
	})
}

// Topic returns the topic of the channel the listener was added to.
func (s *Subscription) Topic() string {
	if s == nil {
		return ""
	}
	return s.topic
}

// Add registers l and returns a Subscription that removes it again.
// Adding a listener that is already registered does not create a second
// entry; closing any Subscription obtained for l removes the one entry.
// A nil listener is not rejected here; Push reports it.
func (c *Channel[K, A]) Add(l *Listener[A]) *Subscription {
	c.mu.Lock()
	added := c.indexOf(l) < 0
	if added {
		c.listeners = append(c.listeners, l)
	}
	n := len(c.listeners)
	c.mu.Unlock()

	if added {
		c.registry.metrics.listenerAdded(c.topic)
		c.logger.Debug("listener added", "listeners", n)
	}

	return &Subscription{
		topic:  c.topic,
		detach: func() { c.Remove(l) },
	}
}

// Remove unregisters l. Removing a listener that is not registered is a no-op.
func (c *Channel[K, A]) Remove(l *Listener[A]) {
	c.mu.Lock()
	i := c.indexOf(l)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	next := make([]*Listener[A], 0, len(c.listeners)-1)
	next = append(next, c.listeners[:i]...)
	next = append(next, c.listeners[i+1:]...)
	c.listeners = next
	n := len(next)
	c.mu.Unlock()

	c.registry.metrics.listenerRemoved(c.topic)
	c.logger.Debug("listener removed", "listeners", n)
}

// Subscribe registers fn under a fresh Listener handle.
func (c *Channel[K, A]) Subscribe(fn func(A)) *Subscription {
	return c.Add(NewListener(fn))
}
