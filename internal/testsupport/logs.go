package testsupport

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecorder is an slog.Handler that keeps every record for assertions.
type LogRecorder struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

// NewLogRecorder returns an empty recorder accepting all levels.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{mu: &sync.Mutex{}, records: &[]slog.Record{}}
}

// Logger returns a logger writing into the recorder.
func (r *LogRecorder) Logger() *slog.Logger {
	return slog.New(r)
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, record slog.Record) error {
	record = record.Clone()
	record.AddAttrs(r.attrs...)
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, record)
	return nil
}

func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *r
	clone.attrs = append(append([]slog.Attr(nil), r.attrs...), attrs...)
	return &clone
}

func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Count returns how many records carried msg.
func (r *LogRecorder) Count(msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range *r.records {
		if rec.Message == msg {
			n++
		}
	}
	return n
}

// Attr returns the value of key on the first record carrying msg.
func (r *LogRecorder) Attr(msg, key string) (slog.Value, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range *r.records {
		if rec.Message != msg {
			continue
		}
		var found slog.Value
		ok := false
		rec.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				found, ok = a.Value, true
				return false
			}
			return true
		})
		return found, ok
	}
	return slog.Value{}, false
}
