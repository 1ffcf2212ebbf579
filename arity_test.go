package eventchannel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Cleared struct{}

func (Cleared) Topic() string { return "alarm.cleared" }

type Snoozed struct{}

func (Snoozed) Topic() string { return "alarm.snoozed" }

func TestDeclareIsLazy(t *testing.T) {
	r := New()
	ch := Declare1[MorningAlarm, time.Time](r)
	assert.Equal(t, 0, r.Len())

	require.NoError(t, ch.PushEvent(time.Now()))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"alarm.morning"}, r.Topics())
}

func TestDeclaredChannelsShareTheRegistryChannel(t *testing.T) {
	r := New()
	a := Declare1[MorningAlarm, time.Time](r)
	b := Declare1[MorningAlarm, time.Time](r)

	var calls int
	a.Subscribe(func(time.Time) { calls++ })
	require.NoError(t, b.PushEvent(time.Now()))

	assert.Equal(t, 1, calls)
	assert.Same(t, a.Channel(), b.Channel())
	assert.Same(t, Lookup[MorningAlarm, time.Time](r), a.Channel())
}

func TestChannel0(t *testing.T) {
	ch := Declare0[Cleared](New())

	var calls int
	l := Func0(func() { calls++ })
	ch.AddListener(l)
	ch.AddListener(l)
	assert.Equal(t, 1, ch.Len())

	require.NoError(t, ch.PushEvent())
	assert.Equal(t, 1, calls)

	ch.RemoveListener(l)
	require.NoError(t, ch.PushEvent())
	assert.Equal(t, 1, calls)

	sub := ch.Subscribe(func() { calls++ })
	require.NoError(t, ch.PushEvent())
	sub.Close()
	require.NoError(t, ch.PushEvent())
	assert.Equal(t, 2, calls)
}

func TestChannel1(t *testing.T) {
	ch := Declare1[EveningAlarm, time.Time](New())
	want := time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC)

	var got time.Time
	l := Func1(func(ts time.Time) { got = ts })
	sub := ch.AddListener(l)
	require.NoError(t, ch.PushEvent(want))
	assert.True(t, got.Equal(want))

	sub.Close()
	assert.Equal(t, 0, ch.Len())
	ch.RemoveListener(l)
}

func TestChannel2(t *testing.T) {
	ch := Declare2[Snoozed, time.Time, time.Duration](New())
	at := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)

	var gotAt time.Time
	var gotFor time.Duration
	l := Func2(func(ts time.Time, d time.Duration) {
		gotAt, gotFor = ts, d
	})
	ch.AddListener(l)

	var calls int
	ch.Subscribe(func(time.Time, time.Duration) { calls++ })

	require.NoError(t, ch.PushEvent(at, 9*time.Minute))
	assert.True(t, gotAt.Equal(at))
	assert.Equal(t, 9*time.Minute, gotFor)
	assert.Equal(t, 1, calls)

	ch.RemoveListener(l)
	assert.Equal(t, 1, ch.Len())
}

func TestArityHelpersWithNilFuncAreInvalid(t *testing.T) {
	r := New()

	zero := Declare0[Cleared](r)
	zero.AddListener(Func0(nil))
	assert.ErrorIs(t, zero.PushEvent(), ErrInvalidListener)

	two := Declare2[Snoozed, time.Time, time.Duration](r)
	two.AddListener(Func2[time.Time, time.Duration](nil))
	assert.ErrorIs(t, two.PushEvent(time.Now(), time.Minute), ErrInvalidListener)
}
