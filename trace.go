package seq

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Tracer receives diagnostic messages from a container.  Containers that
// derive new containers (Clone, Rest) hand them a SubTracer so that the
// messages of related containers share an id prefix.
type Tracer interface {
	SubTracer(description string, v ...any) Tracer
	Msg(format string, v ...any)
}

// TraceFunc defines the function prototype of a tracing function.
// Per container functions can be configured with the container's
// WithTraceFunc option.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all containers.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

// ZapTraceFunc returns a TraceFunc that writes trace messages to l at
// debug level.
func ZapTraceFunc(l *zap.Logger) TraceFunc {
	s := l.Sugar()
	return func(format string, v ...any) {
		s.Debugf(format, v...)
	}
}

type tracer struct {
	kind        string
	description string
	ids         []uint32
	subids      *atomic.Uint32
	traceFunc   TraceFunc
}

// NewTracer returns a Tracer for the container of the given kind and id.
// If f is nil, DefaultTracer is called at the time each message is traced.
func NewTracer(kind string, id uint32, description string, f TraceFunc, v ...any) Tracer {
	t := &tracer{
		kind:        kind,
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		subids:      &atomic.Uint32{},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *tracer) emit(format string, v ...any) {
	if t.traceFunc != nil {
		t.traceFunc(format, v...)
		return
	}
	DefaultTracer(format, v...)
}

func (t *tracer) start() {
	t.emit("%s: START [%s #%s] %s", time.Now().Format(time.RFC3339), t.kind, t.id(), t.description)
}

func (t *tracer) SubTracer(description string, v ...any) Tracer {
	t2 := &tracer{
		kind:        t.kind,
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), t.subids.Add(1)),
		subids:      &atomic.Uint32{},
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *tracer) Msg(format string, v ...any) {
	args := []any{
		time.Now().Format(time.RFC3339), t.kind, t.id(), t.description,
	}
	args = append(args, v...)
	t.emit("%s: MSG [%s #%s] %s: "+format, args...)
}

// NullTracer discards every message.
type NullTracer struct{}

func (t NullTracer) SubTracer(string, ...any) Tracer { return t }
func (t NullTracer) Msg(string, ...any)              {}
