package field

import (
	"sort"
	"time"
)

// maxSettleRounds bounds Settle so a task that always reschedules itself
// cannot hang the caller.
const maxSettleRounds = 10000

type task struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// Loop is a single-threaded task queue driven by virtual time. Hosts use it
// for work a browser would defer with a timer: paste reconciliation runs as a
// zero delay task, focus caret restoration after a short delay.
//
// Nothing runs until the owner calls RunReady, Advance or Settle, which keeps
// deferred behaviour deterministic.
type Loop struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

// NewLoop returns an empty loop at time zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's virtual clock.
func (l *Loop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once d has elapsed on the virtual clock. The
// returned function cancels the task if it has not run yet.
func (l *Loop) After(d time.Duration, fn func()) (cancel func()) {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &task{at: l.now + d, seq: l.seq, fn: fn}
	l.tasks = append(l.tasks, t)
	return func() { t.cancelled = true }
}

// Pending returns the number of scheduled, uncancelled tasks.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// RunReady runs every task due at the current time, including tasks that
// become due while running. It returns the number of tasks run.
func (l *Loop) RunReady() int {
	ran := 0
	for {
		t := l.pop(l.now)
		if t == nil {
			return ran
		}
		t.fn()
		ran++
	}
}

// Advance moves the clock forward by d, running tasks in due order.
func (l *Loop) Advance(d time.Duration) int {
	target := l.now + d
	ran := 0
	for {
		t := l.pop(target)
		if t == nil {
			break
		}
		if t.at > l.now {
			l.now = t.at
		}
		t.fn()
		ran++
	}
	l.now = target
	return ran
}

// Settle runs tasks, advancing the clock as needed, until none are left.
func (l *Loop) Settle() (int, error) {
	ran := 0
	for round := 0; round < maxSettleRounds; round++ {
		t := l.pop(-1)
		if t == nil {
			return ran, nil
		}
		if t.at > l.now {
			l.now = t.at
		}
		t.fn()
		ran++
	}
	return ran, ErrSettleLimit
}

// pop removes and returns the earliest task due at or before limit. A
// negative limit accepts any task.
func (l *Loop) pop(limit time.Duration) *task {
	l.compact()
	if len(l.tasks) == 0 {
		return nil
	}
	sort.SliceStable(l.tasks, func(i, j int) bool {
		if l.tasks[i].at != l.tasks[j].at {
			return l.tasks[i].at < l.tasks[j].at
		}
		return l.tasks[i].seq < l.tasks[j].seq
	})
	t := l.tasks[0]
	if limit >= 0 && t.at > limit {
		return nil
	}
	l.tasks = l.tasks[1:]
	return t
}

func (l *Loop) compact() {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = nil
	}
	l.tasks = kept
}
