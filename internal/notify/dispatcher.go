package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is a one-line, user-facing message about something that happened.
type Event struct {
	ID       string    `json:"id"`
	Level    Level     `json:"level"`
	Message  string    `json:"message"`
	Action   string    `json:"action,omitempty"`
	Entity   string    `json:"entity,omitempty"`
	EntityID string    `json:"entityId,omitempty"`
	At       time.Time `json:"at"`
}

type Sink interface {
	Publish(ev Event)
}

// Dispatcher fans events out to sinks on a background worker. A full queue
// drops the event; notifications never block or fail an operation.
type Dispatcher struct {
	log   *zap.Logger
	sinks []Sink
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		log:   log.Named("notify"),
		sinks: sinks,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.log.Info(ev.Message,
			zap.String("level", string(ev.Level)),
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.String("entity_id", ev.EntityID),
		)
		for _, s := range d.sinks {
			s.Publish(ev)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if ev.Level == "" {
		ev.Level = LevelInfo
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event", zap.String("message", ev.Message))
	}
}

// Close drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
