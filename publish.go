package eventchannel

// Push invokes every listener registered when the call begins, once each,
// with args. Listeners run synchronously on the caller's goroutine and
// all of them have returned when Push returns. Listeners added or removed
// while a broadcast runs are not seen by that broadcast.
//
// If the set holds a nil listener Push stops there and returns an
// *InvalidListenerError; listeners after the nil entry are not invoked.
// The error is also passed to the registry's ErrorHandler, if any.
func (c *Channel[K, A]) Push(args A) error {
	listeners := c.snapshot()
	c.registry.metrics.pushed(c.topic)

	for i, l := range listeners {
		if !l.valid() {
			err := &InvalidListenerError{Topic: c.topic, Position: i}
			c.registry.metrics.invalid(c.topic)
			c.logger.Error("broadcast aborted", "position", i, "listeners", len(listeners), "error", err)
			c.registry.reportError(err)
			return err
		}
		l.fn(args)
		c.registry.metrics.delivered(c.topic)
	}
	return nil
}
