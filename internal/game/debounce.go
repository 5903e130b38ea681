package game

import "time"

type timerScheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func())
}

// debouncer runs fire once a burst of notify calls has been quiet for the
// configured period. Each notify replaces the pending countdown.
type debouncer struct {
	timers timerScheduler
	quiet  time.Duration
	fire   func()
	stop   func()
}

func newDebouncer(timers timerScheduler, quiet time.Duration, fire func()) *debouncer {
	return &debouncer{timers: timers, quiet: quiet, fire: fire}
}

func (d *debouncer) notify() {
	d.cancel()
	d.stop = d.timers.AfterFunc(d.quiet, func() {
		d.stop = nil
		d.fire()
	})
}

func (d *debouncer) cancel() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}

func (d *debouncer) pending() bool { return d.stop != nil }
