package eventchannel

import (
	"errors"
	"fmt"
)

// ErrInvalidListener is matched by every InvalidListenerError.
var ErrInvalidListener = errors.New("eventchannel: invalid listener")

const nilListenerMessage = "a nil listener exists, most likely an owner didn't remove it as listener before cleanup"

// InvalidListenerError is returned by Push when the listener set holds a
// nil entry. The broadcast stops at Position; listeners before it were
// already invoked, listeners after it were not.
type InvalidListenerError struct {
	Topic    string
	Position int
}

func (e *InvalidListenerError) Error() string {
	return fmt.Sprintf("eventchannel: topic %q position %d: %s", e.Topic, e.Position, nilListenerMessage)
}

// Unwrap lets errors.Is match ErrInvalidListener.
func (e *InvalidListenerError) Unwrap() error {
	return ErrInvalidListener
}
