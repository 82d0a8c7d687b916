// Package telemetry writes agent events as JSON lines under an artifacts directory.
//
// Events carry sizes, counts, durations and ids only; raw user text and tool payloads are
// never written.
package telemetry

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDir is the artifacts directory used when none is configured.
const DefaultDir = ".agent"

// EventsFile is the JSONL file name inside the artifacts directory.
const EventsFile = "events.jsonl"

// Emitter appends events to <dir>/events.jsonl. A nil or disabled Emitter drops every event.
type Emitter struct {
	dir     string
	enabled bool
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewEmitter returns an emitter writing under dir (DefaultDir when empty).
// Write failures are reported to logger and otherwise ignored.
func NewEmitter(dir string, enabled bool, logger *slog.Logger) *Emitter {
	if dir == "" {
		dir = DefaultDir
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{dir: dir, enabled: enabled, logger: logger}
}

// Enabled reports whether Emit writes anything.
func (e *Emitter) Enabled() bool { return e != nil && e.enabled }

// Path is the events file location.
func (e *Emitter) Path() string { return filepath.Join(e.dir, EventsFile) }

// Emit writes a single JSON line augmented with RFC3339Nano time and the event name.
func (e *Emitter) Emit(name string, fields map[string]any) {
	if !e.Enabled() {
		return
	}

	// Shallow copy so callers' maps aren't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		e.logger.Warn("telemetry: marshal", "event", name, "err", err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		e.logger.Warn("telemetry: mkdir", "dir", e.dir, "err", err)
		return
	}
	path := e.Path()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		e.logger.Warn("telemetry: open", "path", path, "err", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		e.logger.Warn("telemetry: write", "path", path, "err", err)
	}
}
