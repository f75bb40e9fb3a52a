package watcher

import (
	"time"
)

// debouncer merges the events of a Source per path. An event is
// delivered once its path has been quiet for the delay.
type debouncer struct {
	src   Source
	delay time.Duration

	events chan Event
	errors chan error
}

type pendingEvent struct {
	ev  Event
	due time.Time
}

func newDebouncer(src Source, delay time.Duration) *debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	d := &debouncer{
		src:    src,
		delay:  delay,
		events: make(chan Event, 16),
		errors: make(chan error, 16),
	}
	go d.run()
	return d
}

func (d *debouncer) Events() <-chan Event { return d.events }
func (d *debouncer) Errors() <-chan error { return d.errors }

// Close closes the source. Pending events are dropped.
func (d *debouncer) Close() error {
	return d.src.Close()
}

func (d *debouncer) run() {
	defer close(d.errors)
	defer close(d.events)

	pending := make(map[string]*pendingEvent)
	timer := time.NewTimer(d.delay)
	timer.Stop()
	defer timer.Stop()

	in, errs := d.src.Events(), d.src.Errors()
	for in != nil || errs != nil {
		select {
		case ev, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			p, exists := pending[ev.Path]
			if !exists {
				p = &pendingEvent{ev: ev}
				pending[ev.Path] = p
			} else {
				p.ev.Op |= ev.Op
				p.ev.Time = ev.Time
			}
			p.due = time.Now().Add(d.delay)
			d.arm(timer, pending)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			select {
			case d.errors <- err:
			default:
			}

		case now := <-timer.C:
			for path, p := range pending {
				if !p.due.After(now) {
					d.events <- p.ev
					delete(pending, path)
				}
			}
			d.arm(timer, pending)
		}
	}
}

// arm resets timer to the earliest deadline in pending.
func (d *debouncer) arm(timer *time.Timer, pending map[string]*pendingEvent) {
	if len(pending) == 0 {
		timer.Stop()
		return
	}
	var next time.Time
	for _, p := range pending {
		if next.IsZero() || p.due.Before(next) {
			next = p.due
		}
	}
	timer.Reset(time.Until(next))
}

var _ Source = (*debouncer)(nil)
