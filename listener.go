package eventchannel

// None is the argument list of a channel that carries no values.
type None = struct{}

// Pair is the argument list of a channel that carries two values.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Listener is a stable handle around a callback.
// Channels compare listeners by pointer, so the same *Listener added
// twice is registered once. Keep the handle to remove it later.
type Listener[A any] struct {
	fn func(A)
}

// NewListener wraps fn in a Listener handle.
func NewListener[A any](fn func(A)) *Listener[A] {
	return &Listener[A]{fn: fn}
}

// Func0 wraps a callback for a channel without arguments.
func Func0(fn func()) *Listener[None] {
	if fn == nil {
		return &Listener[None]{}
	}
	return &Listener[None]{fn: func(None) { fn() }}
}

// Func1 wraps a callback for a single-argument channel.
func Func1[T any](fn func(T)) *Listener[T] {
	return NewListener(fn)
}

// Func2 wraps a callback for a two-argument channel.
func Func2[T1, T2 any](fn func(T1, T2)) *Listener[Pair[T1, T2]] {
	if fn == nil {
		return &Listener[Pair[T1, T2]]{}
	}
	return &Listener[Pair[T1, T2]]{fn: func(p Pair[T1, T2]) { fn(p.First, p.Second) }}
}

// valid reports whether l can be invoked.
func (l *Listener[A]) valid() bool {
	return l != nil && l.fn != nil
}
