package deck

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrLoopStopped = errors.New("session loop stopped")

const queueSize = 64

// Loop is the event loop of one session: every event, timer and query runs
// as a task on a single goroutine, so the Session itself needs no locking.
type Loop struct {
	session *Session
	tasks   chan func(*Session)
	stopped chan struct{}
	once    sync.Once
}

// NewLoop creates the session and its loop. The session is reset (dealt a
// deck) as the first task once Run starts.
func NewLoop(id string, surface Surface, gen Generator, opts Options) *Loop {
	l := &Loop{
		tasks:   make(chan func(*Session), queueSize),
		stopped: make(chan struct{}),
	}
	l.session = NewSession(id, surface, gen, l, opts)
	l.tasks <- (*Session).Reset
	return l
}

func (l *Loop) ID() string { return l.session.ID() }

// Run drains the task queue until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	defer l.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopped:
			return
		case task := <-l.tasks:
			task(l.session)
		}
	}
}

func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stopped) })
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} { return l.stopped }

// Do queues task. It blocks while the queue is full and returns false if
// the loop has stopped.
func (l *Loop) Do(task func(*Session)) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.tasks <- task:
		return true
	case <-l.stopped:
		return false
	}
}

// Query runs fn on the loop and waits for its result.
func Query[T any](ctx context.Context, l *Loop, fn func(*Session) T) (T, error) {
	var zero T
	result := make(chan T, 1)
	if !l.Do(func(s *Session) { result <- fn(s) }) {
		return zero, ErrLoopStopped
	}
	select {
	case v := <-result:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-l.stopped:
		return zero, ErrLoopStopped
	}
}

// AfterFunc implements Scheduler: f runs as a loop task after d.
func (l *Loop) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, func() {
		l.Do(func(*Session) { f() })
	})
	return func() { t.Stop() }
}
