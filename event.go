package tabledat

import (
	"sort"

	"github.com/mgutz/logxi/v1"
)

// EventReceiver is the observability hook a Table reports every statement
// to. The kvs of an event always carry "table" and "sql".
type EventReceiver interface {
	// EventKv is called before a statement is handed to the connection.
	EventKv(eventName string, kvs map[string]string)
	// EventErrKv is called when the connection returns an error.
	EventErrKv(eventName string, err error, kvs map[string]string)
	// TimingKv is called after the connection returns.
	TimingKv(eventName string, nanoseconds int64, kvs map[string]string)
}

// NullEventReceiver discards all events.
type NullEventReceiver struct{}

// EventKv implements EventReceiver.
func (NullEventReceiver) EventKv(eventName string, kvs map[string]string) {}

// EventErrKv implements EventReceiver.
func (NullEventReceiver) EventErrKv(eventName string, err error, kvs map[string]string) {}

// TimingKv implements EventReceiver.
func (NullEventReceiver) TimingKv(eventName string, nanoseconds int64, kvs map[string]string) {}

// LogEventReceiver writes events to a logxi logger. Statements are logged at
// debug, timings at trace and errors at error level.
type LogEventReceiver struct {
	log log.Logger
}

// NewLogEventReceiver creates a LogEventReceiver. A nil logger uses the
// package logger named "tabledat".
func NewLogEventReceiver(l log.Logger) *LogEventReceiver {
	if l == nil {
		l = logger
	}
	return &LogEventReceiver{log: l}
}

// EventKv implements EventReceiver.
func (ler *LogEventReceiver) EventKv(eventName string, kvs map[string]string) {
	if ler.log.IsDebug() {
		ler.log.Debug(eventName, kvArgs(kvs)...)
	}
}

// EventErrKv implements EventReceiver.
func (ler *LogEventReceiver) EventErrKv(eventName string, err error, kvs map[string]string) {
	ler.log.Error(eventName, append([]interface{}{"err", err}, kvArgs(kvs)...)...)
}

// TimingKv implements EventReceiver.
func (ler *LogEventReceiver) TimingKv(eventName string, nanoseconds int64, kvs map[string]string) {
	if ler.log.IsTrace() {
		ler.log.Trace(eventName, append([]interface{}{"ns", nanoseconds}, kvArgs(kvs)...)...)
	}
}

// kvArgs flattens kvs into logxi key/value args in key order.
func kvArgs(kvs map[string]string) []interface{} {
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(kvs)*2)
	for _, k := range keys {
		args = append(args, k, kvs[k])
	}
	return args
}
