package core

import "sort"

// scheduled is one pending event in a Queue.
type scheduled[T any] struct {
	at  float64
	seq uint64
	ev  T
}

// Queue holds deferred events keyed by simulated time. It is owned by the
// engine that schedules into it: events only fire from Advance, so clearing
// the queue (or dropping the engine) guarantees nothing fires later.
type Queue[T any] struct {
	now     float64
	seq     uint64
	pending []scheduled[T]
}

// Schedule enqueues ev to fire after delay seconds of simulated time.
// Negative delays fire on the next Advance.
func (q *Queue[T]) Schedule(delay float64, ev T) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	q.pending = append(q.pending, scheduled[T]{at: q.now + delay, seq: q.seq, ev: ev})
}

// Advance moves the queue clock forward by dt and returns the events that
// became due, ordered by due time and then by scheduling order.
func (q *Queue[T]) Advance(dt float64) []T {
	if dt > 0 {
		q.now += dt
	}
	if len(q.pending) == 0 {
		return nil
	}

	var due []scheduled[T]
	keep := q.pending[:0]
	for _, p := range q.pending {
		if p.at <= q.now {
			due = append(due, p)
		} else {
			keep = append(keep, p)
		}
	}
	q.pending = keep
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})

	out := make([]T, len(due))
	for i, p := range due {
		out[i] = p.ev
	}
	return out
}

// Pending returns the number of events not yet fired.
func (q *Queue[T]) Pending() int {
	return len(q.pending)
}

// Clear cancels every pending event.
func (q *Queue[T]) Clear() {
	q.pending = q.pending[:0]
}
