package eventchannel

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Shadow struct{}

func (Shadow) Topic() string { return "ping" }

func TestNewDefault(t *testing.T) {
	r := New()
	assert.NotEmpty(t, r.ID())
	assert.Nil(t, r.metrics)
	assert.Nil(t, r.errorHandler)
	assert.Equal(t, 0, r.Len())
}

func TestNewUniqueIDs(t *testing.T) {
	ids := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New().ID()
		_, dup := ids[id]
		require.False(t, dup, "duplicate ID at iteration %d: %s", i, id)
		ids[id] = struct{}{}
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, Lookup[Ping, int](Default()), Lookup[Ping, int](Default()))
}

func TestLookupActivatesOnce(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())

	first := Lookup[Ping, int](r)
	second := Lookup[Ping, int](r)
	assert.Same(t, first, second)
	assert.Equal(t, 1, r.Len())
}

func TestLookupIdentityIncludesArguments(t *testing.T) {
	r := New()
	ints := Lookup[Ping, int](r)
	strs := Lookup[Ping, string](r)

	var intCalls int
	ints.Subscribe(func(int) { intCalls++ })
	require.NoError(t, strs.Push("x"))

	assert.Equal(t, 0, intCalls)
	assert.Equal(t, 2, r.Len())
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, b := New(), New()

	var calls int
	Lookup[Ping, int](a).Subscribe(func(int) { calls++ })
	require.NoError(t, Lookup[Ping, int](b).Push(1))

	assert.Equal(t, 0, calls)
}

func TestConcurrentFirstLookup(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	n := 50
	got := make([]*Channel[MorningAlarm, time.Time], n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = Lookup[MorningAlarm, time.Time](r)
		}(i)
	}
	wg.Wait()

	for _, ch := range got {
		assert.Same(t, got[0], ch)
	}
	assert.Equal(t, 1, r.Len())
}

func TestTopics(t *testing.T) {
	r := New()
	Lookup[MorningAlarm, time.Time](r)
	Lookup[EveningAlarm, time.Time](r)
	Lookup[Ping, None](r)

	assert.Equal(t, []string{"alarm.evening", "alarm.morning", "ping"}, r.Topics())
}

func TestSharedTopicIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	Lookup[Ping, int](r)
	Lookup[Shadow, int](r)

	assert.Contains(t, buf.String(), "topic shared by distinct channels")
	assert.Equal(t, 2, r.Len())
}

func TestErrorHandlerReceivesPushFailure(t *testing.T) {
	var handled error
	r := New(WithErrorHandler(func(err error) { handled = err }))

	ch := Lookup[Ping, int](r)
	ch.Add(nil)
	err := ch.Push(1)

	require.Error(t, err)
	assert.True(t, errors.Is(handled, ErrInvalidListener))
	assert.Same(t, err, handled)
}

func TestInvalidListenerIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	ch := Lookup[Ping, int](r)
	ch.Add(nil)
	_ = ch.Push(1)

	assert.Contains(t, buf.String(), `"msg":"broadcast aborted"`)
	assert.Contains(t, buf.String(), `"topic":"ping"`)
	assert.Contains(t, buf.String(), r.ID())
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	r := New(WithLogger(nil))
	require.NotNil(t, r.logger)
}
