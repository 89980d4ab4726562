package autoscroll

import "time"

// engagement records when continuous interaction with a region began.
type engagement struct {
	start time.Time
}

// engagementLedger tracks engagements across frame passes. Entries not
// touched during a pass are dropped when the pass ends, so a region that
// goes a whole frame without interaction starts over.
type engagementLedger struct {
	entries map[any]engagement
	touched map[any]struct{}
}

func newEngagementLedger() *engagementLedger {
	return &engagementLedger{
		entries: make(map[any]engagement),
		touched: make(map[any]struct{}),
	}
}

// markAndGet touches key for the current pass and returns its engagement,
// creating one that starts at now if key is not yet engaged.
func (l *engagementLedger) markAndGet(key any, now time.Time) engagement {
	l.touched[key] = struct{}{}
	e, ok := l.entries[key]
	if !ok {
		e = engagement{start: now}
		l.entries[key] = e
	}
	return e
}

// beginPass forgets which keys were touched in the previous pass.
func (l *engagementLedger) beginPass() {
	clear(l.touched)
}

// endPass drops every entry not touched since beginPass.
func (l *engagementLedger) endPass() {
	for key := range l.entries {
		if _, ok := l.touched[key]; !ok {
			delete(l.entries, key)
		}
	}
}

// reset drops all entries.
func (l *engagementLedger) reset() {
	clear(l.entries)
	clear(l.touched)
}

// size returns the number of engaged keys.
func (l *engagementLedger) size() int {
	return len(l.entries)
}
