package app

import "time"

// Scheduler abstracts the two timed callbacks a session owns: the periodic
// countdown tick and the one-shot post-answer advance. Both return cancel
// functions so session teardown can revoke callbacks before they touch a
// discarded session.
type Scheduler interface {
	// Every invokes fn once per interval until the returned stop is called.
	Every(interval time.Duration, fn func()) (stop func())
	// After invokes fn once after delay unless the returned cancel is called first.
	After(delay time.Duration, fn func()) (cancel func())
}

// ClockScheduler is the production Scheduler backed by the wall clock.
type ClockScheduler struct{}

func NewClockScheduler() ClockScheduler {
	return ClockScheduler{}
}

func (ClockScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once bool
	return func() {
		if once {
			return
		}
		once = true
		ticker.Stop()
		close(done)
	}
}

func (ClockScheduler) After(delay time.Duration, fn func()) func() {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}
