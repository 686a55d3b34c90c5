package value

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names one lifecycle path of a Probe.
type Event int

const (
	EventConstructed Event = iota
	EventCopied
	EventMoved
	EventCopyAssigned
	EventMoveAssigned
)

var eventNames = [...]string{
	EventConstructed:  "constructed",
	EventCopied:       "copied",
	EventMoved:        "moved",
	EventCopyAssigned: "copy assigned",
	EventMoveAssigned: "move assigned",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

var tracer atomic.Pointer[zap.Logger]

func init() {
	tracer.Store(zap.NewNop())
}

// SetLogger routes lifecycle events to l and returns a function restoring the
// previous logger. A nil l silences tracing.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := tracer.Swap(l.Named("probe"))
	return func() { tracer.Store(prev) }
}

func trace(e Event, id, from uuid.UUID) {
	log := tracer.Load()
	if ce := log.Check(zap.DebugLevel, "Probe "+e.String()); ce != nil {
		fields := []zap.Field{zap.Stringer("event", e), zap.Stringer("id", id)}
		if from != uuid.Nil {
			fields = append(fields, zap.Stringer("from", from))
		}
		ce.Write(fields...)
	}
}
