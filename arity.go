package eventchannel

import "sync"

// lazy resolves a channel on first touch. Declaring a channel does not
// activate it; the first add, remove, push or length query does.
type lazy[K Event, A any] struct {
	registry *Registry
	once     sync.Once
	ch       *Channel[K, A]
}

func (l *lazy[K, A]) channel() *Channel[K, A] {
	l.once.Do(func() {
		l.ch = Lookup[K, A](l.registry)
	})
	return l.ch
}

// Channel0 is a declared channel whose notifications carry no arguments.
type Channel0[K Event] struct {
	lazy[K, None]
}

// Declare0 declares the argument-less channel identified by K on r.
func Declare0[K Event](r *Registry) *Channel0[K] {
	c := &Channel0[K]{}
	c.registry = r
	return c
}

// Channel returns the underlying channel, activating it.
func (c *Channel0[K]) Channel() *Channel[K, None] { return c.channel() }

// AddListener registers l; see Channel.Add.
func (c *Channel0[K]) AddListener(l *Listener[None]) *Subscription { return c.channel().Add(l) }

// RemoveListener unregisters l; see Channel.Remove.
func (c *Channel0[K]) RemoveListener(l *Listener[None]) { c.channel().Remove(l) }

// Subscribe registers fn under a fresh handle.
func (c *Channel0[K]) Subscribe(fn func()) *Subscription { return c.channel().Add(Func0(fn)) }

// PushEvent notifies every registered listener; see Channel.Push.
func (c *Channel0[K]) PushEvent() error { return c.channel().Push(None{}) }

// Len returns the number of registered listeners.
func (c *Channel0[K]) Len() int { return c.channel().Len() }

// Channel1 is a declared channel whose notifications carry one value.
type Channel1[K Event, T any] struct {
	lazy[K, T]
}

// Declare1 declares the single-argument channel identified by K on r.
func Declare1[K Event, T any](r *Registry) *Channel1[K, T] {
	c := &Channel1[K, T]{}
	c.registry = r
	return c
}

// Channel returns the underlying channel, activating it.
func (c *Channel1[K, T]) Channel() *Channel[K, T] { return c.channel() }

// AddListener registers l; see Channel.Add.
func (c *Channel1[K, T]) AddListener(l *Listener[T]) *Subscription { return c.channel().Add(l) }

// RemoveListener unregisters l; see Channel.Remove.
func (c *Channel1[K, T]) RemoveListener(l *Listener[T]) { c.channel().Remove(l) }

// Subscribe registers fn under a fresh handle.
func (c *Channel1[K, T]) Subscribe(fn func(T)) *Subscription { return c.channel().Subscribe(fn) }

// PushEvent notifies every registered listener with v; see Channel.Push.
func (c *Channel1[K, T]) PushEvent(v T) error { return c.channel().Push(v) }

// Len returns the number of registered listeners.
func (c *Channel1[K, T]) Len() int { return c.channel().Len() }

// Channel2 is a declared channel whose notifications carry two values.
type Channel2[K Event, T1, T2 any] struct {
	lazy[K, Pair[T1, T2]]
}

// Declare2 declares the two-argument channel identified by K on r.
func Declare2[K Event, T1, T2 any](r *Registry) *Channel2[K, T1, T2] {
	c := &Channel2[K, T1, T2]{}
	c.registry = r
	return c
}

// Channel returns the underlying channel, activating it.
func (c *Channel2[K, T1, T2]) Channel() *Channel[K, Pair[T1, T2]] { return c.channel() }

// AddListener registers l; see Channel.Add.
func (c *Channel2[K, T1, T2]) AddListener(l *Listener[Pair[T1, T2]]) *Subscription {
	return c.channel().Add(l)
}

// RemoveListener unregisters l; see Channel.Remove.
func (c *Channel2[K, T1, T2]) RemoveListener(l *Listener[Pair[T1, T2]]) { c.channel().Remove(l) }

// Subscribe registers fn under a fresh handle.
func (c *Channel2[K, T1, T2]) Subscribe(fn func(T1, T2)) *Subscription {
	return c.channel().Add(Func2(fn))
}

// PushEvent notifies every registered listener with a and b; see Channel.Push.
func (c *Channel2[K, T1, T2]) PushEvent(a T1, b T2) error {
	return c.channel().Push(Pair[T1, T2]{First: a, Second: b})
}

// Len returns the number of registered listeners.
func (c *Channel2[K, T1, T2]) Len() int { return c.channel().Len() }
