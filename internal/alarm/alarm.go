// Package alarm declares the alarm clock channels and the consumers that
// listen on them.
package alarm

import (
	"log/slog"
	"sync"
	"time"

	"github.com/vincentAlen/eventchannel"
)

// MorningAlarm carries the time the morning alarm is due.
type MorningAlarm struct{}

func (MorningAlarm) Topic() string { return "alarm.morning" }

// EveningAlarm carries the time the evening alarm is due.
type EveningAlarm struct{}

func (EveningAlarm) Topic() string { return "alarm.evening" }

// Snoozed carries the alarm time and the snooze interval.
type Snoozed struct{}

func (Snoozed) Topic() string { return "alarm.snoozed" }

// Cleared carries no arguments; it resets every alarm.
type Cleared struct{}

func (Cleared) Topic() string { return "alarm.cleared" }

// Channels groups the alarm channels declared on one registry.
type Channels struct {
	Morning *eventchannel.Channel1[MorningAlarm, time.Time]
	Evening *eventchannel.Channel1[EveningAlarm, time.Time]
	Snoozed *eventchannel.Channel2[Snoozed, time.Time, time.Duration]
	Cleared *eventchannel.Channel0[Cleared]
}

// Declare declares the alarm channels on r.
func Declare(r *eventchannel.Registry) *Channels {
	return &Channels{
		Morning: eventchannel.Declare1[MorningAlarm, time.Time](r),
		Evening: eventchannel.Declare1[EveningAlarm, time.Time](r),
		Snoozed: eventchannel.Declare2[Snoozed, time.Time, time.Duration](r),
		Cleared: eventchannel.Declare0[Cleared](r),
	}
}

// Clock rings on morning alarms and on snoozes.
// It registers method listeners and keeps their handles so Close can
// remove exactly those.
type Clock struct {
	channels *Channels
	logger   *slog.Logger

	ring   *eventchannel.Listener[time.Time]
	snooze *eventchannel.Listener[eventchannel.Pair[time.Time, time.Duration]]

	mu   sync.Mutex
	rang []time.Time
}

// NewClock creates a Clock listening on ch. Call Close when done with it.
// A nil logger falls back to slog.Default.
func NewClock(ch *Channels, logger *slog.Logger) *Clock {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Clock{
		channels: ch,
		logger:   logger,
	}
	c.ring = eventchannel.Func1(c.Ring)
	c.snooze = eventchannel.Func2(c.Snooze)
	ch.Morning.AddListener(c.ring)
	ch.Snoozed.AddListener(c.snooze)
	return c
}

// Ring records that the alarm went off at t.
func (c *Clock) Ring(t time.Time) {
	c.mu.Lock()
	c.rang = append(c.rang, t)
	c.mu.Unlock()
	c.logger.Info("alarm rang", "at", t.Format(time.DateTime))
}

// Snooze rings again once the interval is over.
func (c *Clock) Snooze(t time.Time, d time.Duration) {
	c.logger.Info("alarm snoozed", "at", t.Format(time.DateTime), "for", d)
	c.Ring(t.Add(d))
}

// MorningArrived broadcasts the morning alarm.
func (c *Clock) MorningArrived(at time.Time) error {
	return c.channels.Morning.PushEvent(at)
}

// Rang returns the times the clock rang, oldest first.
func (c *Clock) Rang() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Time, len(c.rang))
	copy(out, c.rang)
	return out
}

// Close stops the clock from listening.
func (c *Clock) Close() {
	c.channels.Morning.RemoveListener(c.ring)
	c.channels.Snoozed.RemoveListener(c.snooze)
}

// Recorder keeps a log of evening alarms and clears.
// Its listeners are plain funcs held through subscriptions.
type Recorder struct {
	channels *Channels
	logger   *slog.Logger
	subs     []*eventchannel.Subscription

	mu       sync.Mutex
	evenings []time.Time
	cleared  int
}

// NewRecorder creates a Recorder listening on ch. Call Close when done with it.
// A nil logger falls back to slog.Default.
func NewRecorder(ch *Channels, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		channels: ch,
		logger:   logger,
	}
	record := func(t time.Time) {
		r.mu.Lock()
		r.evenings = append(r.evenings, t)
		r.mu.Unlock()
		r.logger.Info("evening recorded", "at", t.Format(time.DateTime))
	}
	r.subs = append(r.subs,
		ch.Evening.Subscribe(record),
		ch.Cleared.Subscribe(func() {
			r.mu.Lock()
			r.cleared++
			r.mu.Unlock()
			r.logger.Info("alarms cleared")
		}),
	)
	return r
}

// EveningArrived broadcasts the evening alarm.
func (r *Recorder) EveningArrived(at time.Time) error {
	return r.channels.Evening.PushEvent(at)
}

// Evenings returns the recorded evening alarms, oldest first.
func (r *Recorder) Evenings() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Time, len(r.evenings))
	copy(out, r.evenings)
	return out
}

// Cleared returns how many times the alarms were cleared.
func (r *Recorder) Cleared() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleared
}

// Close stops the recorder from listening.
func (r *Recorder) Close() {
	for _, sub := range r.subs {
		sub.Close()
	}
}
