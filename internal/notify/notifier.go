package notify

import (
	"sync"
	"time"

	"drink-coffee/pkg/logger"
	"drink-coffee/pkg/scheduler"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notice stays visible before it auto-dismisses.
const DefaultTTL = 3 * time.Second

// Level classifies a notice for the presentation layer.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a short-lived user-facing message.
type Notice struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher is the mutation-side view of the notifier.
type Publisher interface {
	Push(message string, level Level)
}

// Notifier holds the active notices. Each push schedules a single-shot
// dismissal; Close cancels every pending dismissal so nothing fires after
// teardown.
type Notifier struct {
	logger *logger.Logger
	sched  scheduler.Scheduler
	ttl    time.Duration

	mu      sync.Mutex
	notices map[string]*entry
	order   []string
	closed  bool
}

type entry struct {
	notice Notice
	task   scheduler.Task
}

// New creates a notifier. A non-positive ttl falls back to DefaultTTL.
func New(sched scheduler.Scheduler, ttl time.Duration, log *logger.Logger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		logger:  log.WithComponent("notifier"),
		sched:   sched,
		ttl:     ttl,
		notices: make(map[string]*entry),
	}
}

// Push publishes a notice that dismisses itself after the TTL. It never
// blocks the caller; a push after Close is dropped.
func (n *Notifier) Push(message string, level Level) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	notice := Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	}

	e := &entry{notice: notice}
	e.task = n.sched.After(n.ttl, func() { n.dismiss(notice.ID) })
	n.notices[notice.ID] = e
	n.order = append(n.order, notice.ID)

	n.logger.Debug("Notice published", "notice_id", notice.ID, "level", level)
}

// Active returns the live notices, oldest first.
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notice, 0, len(n.order))
	for _, id := range n.order {
		if e, ok := n.notices[id]; ok {
			out = append(out, e.notice)
		}
	}
	return out
}

// Close cancels all pending dismissals and drops the notices. Pushes after
// Close are ignored, so no timer can mutate a torn-down notifier.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for _, e := range n.notices {
		e.task.Cancel()
	}
	n.notices = make(map[string]*entry)
	n.order = nil
}

func (n *Notifier) dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.notices[id]; !ok {
		return
	}
	delete(n.notices, id)
	for i, existing := range n.order {
		if existing == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}
