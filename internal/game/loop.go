package game

import (
	"sort"
	"time"
)

// EventLoop is a single-threaded scheduler for timers, frame requests and
// resize listeners. It never starts goroutines: the owner drives it by
// calling Advance once per tick.
type EventLoop struct {
	now       time.Duration
	seq       uint64
	timers    []*loopTimer
	frames    []*frameRequest
	running   []*frameRequest
	listeners []*resizeListener
}

type loopTimer struct {
	seq      uint64
	deadline time.Duration
	fn       func()
	stopped  bool
}

type frameRequest struct {
	id        FrameID
	fn        func(time.Duration)
	cancelled bool
}

type resizeListener struct {
	fn      func()
	removed bool
}

// NewEventLoop returns a loop whose clock starts at start.
func NewEventLoop(start time.Duration) *EventLoop {
	return &EventLoop{now: start}
}

func (l *EventLoop) Now() time.Duration { return l.now }

func (l *EventLoop) nextSeq() uint64 {
	l.seq++
	return l.seq
}

// AfterFunc schedules fn to run on the first Advance at or after now+d.
// The returned stop func is safe to call any number of times.
func (l *EventLoop) AfterFunc(d time.Duration, fn func()) (stop func()) {
	if d < 0 {
		d = 0
	}
	t := &loopTimer{seq: l.nextSeq(), deadline: l.now + d, fn: fn}
	l.timers = append(l.timers, t)
	return func() {
		if t.stopped {
			return
		}
		t.stopped = true
		l.timers = removeTimer(l.timers, t)
	}
}

// RequestFrame queues fn for the next Advance. Requests made while frames
// are running are deferred to the following tick.
func (l *EventLoop) RequestFrame(fn func(now time.Duration)) FrameID {
	req := &frameRequest{id: FrameID(l.nextSeq()), fn: fn}
	l.frames = append(l.frames, req)
	return req.id
}

// CancelFrame drops a pending frame request. Unknown ids are ignored.
func (l *EventLoop) CancelFrame(id FrameID) {
	for _, req := range l.running {
		if req.id == id {
			req.cancelled = true
			return
		}
	}
	for i, req := range l.frames {
		if req.id == id {
			req.cancelled = true
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// AddResizeListener registers fn for NotifyResize.
func (l *EventLoop) AddResizeListener(fn func()) (remove func()) {
	r := &resizeListener{fn: fn}
	l.listeners = append(l.listeners, r)
	return func() {
		if r.removed {
			return
		}
		r.removed = true
		for i, cur := range l.listeners {
			if cur == r {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// NotifyResize calls every registered resize listener in registration order.
func (l *EventLoop) NotifyResize() {
	listeners := append([]*resizeListener(nil), l.listeners...)
	for _, r := range listeners {
		if !r.removed {
			r.fn()
		}
	}
}

// Advance moves the clock to now, fires due timers in deadline order and then
// runs the frame callbacks that were pending when the tick started.
// The clock never moves backwards.
func (l *EventLoop) Advance(now time.Duration) {
	if now > l.now {
		l.now = now
	}

	var due []*loopTimer
	pending := l.timers[:0]
	for _, t := range l.timers {
		if t.deadline <= l.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	l.timers = pending
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.stopped = true
		t.fn()
	}

	l.running, l.frames = l.frames, nil
	for _, req := range l.running {
		if req.cancelled {
			continue
		}
		req.cancelled = true
		req.fn(l.now)
	}
	l.running = nil
}

// Pending reports how many timers, frame requests and resize listeners are live.
func (l *EventLoop) Pending() (timers, frames, listeners int) {
	return len(l.timers), len(l.frames), len(l.listeners)
}

func removeTimer(timers []*loopTimer, t *loopTimer) []*loopTimer {
	for i, cur := range timers {
		if cur == t {
			return append(timers[:i], timers[i+1:]...)
		}
	}
	return timers
}
