package scheduler

import (
	"sync"
	"time"
)

// Scheduler schedules a function to run once after a delay. The returned
// Task can be canceled before the function fires; a canceled task never
// runs. This makes "tear down before the timer fires" an explicit
// operation instead of a side effect of discarding a timer handle.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// Task is a single pending scheduled call.
type Task interface {
	// Cancel stops the task. It reports whether the cancel happened before
	// the function started running. Canceling twice is safe.
	Cancel() bool
}

// TimerScheduler runs tasks on real timers.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (s *TimerScheduler) After(d time.Duration, fn func()) Task {
	t := &timerTask{}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.canceled {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		fn()
	})
	return t
}

type timerTask struct {
	mu       sync.Mutex
	timer    *time.Timer
	canceled bool
	fired    bool
}

func (t *timerTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.canceled || t.fired {
		return false
	}
	t.canceled = true
	t.timer.Stop()
	return true
}

// ManualScheduler collects tasks and fires them only when told to. It
// exists so tests can step the clock deterministically.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending reports how many tasks are scheduled and not yet fired or canceled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.done() {
			n++
		}
	}
	return n
}

// FireAll runs every pending task in scheduling order.
func (s *ManualScheduler) FireAll() {
	s.mu.Lock()
	pending := make([]*manualTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.done() {
			pending = append(pending, t)
		}
	}
	s.mu.Unlock()

	for _, t := range pending {
		t.fire()
	}
}

type manualTask struct {
	mu       sync.Mutex
	delay    time.Duration
	fn       func()
	canceled bool
	fired    bool
}

func (t *manualTask) done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canceled || t.fired
}

func (t *manualTask) fire() {
	t.mu.Lock()
	if t.canceled || t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()
	fn()
}

func (t *manualTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.canceled || t.fired {
		return false
	}
	t.canceled = true
	return true
}
