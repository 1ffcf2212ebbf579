package eventchannel

// Event is the constraint every channel tag type must satisfy.
// The tag's Go type is the channel identity; Topic only names the
// channel in logs and metrics.
// IMPORTANT: Topic() must be a value receiver method so that
// var zero K works without a nil pointer dereference.
type Event interface {
	Topic() string
}

func topicOf[K Event]() string {
	var zero K
	return zero.Topic()
}
