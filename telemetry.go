package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	eventSessionStart     = "session_start"
	eventPreloaderDone    = "preloader_finished"
	eventSectionViewed    = "section_viewed"
	eventContactSubmitted = "contact_submitted"
	eventEmailCopied      = "email_copied"
)

type telemetryEvent struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Section   string            `json:"section,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// telemetryLogger appends product events as JSON lines. A nil logger drops
// everything.
type telemetryLogger struct {
	path      string
	sessionID string
	now       func() time.Time
	mu        sync.Mutex
}

func newTelemetryLogger(path string) *telemetryLogger {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &telemetryLogger{
		path:      path,
		sessionID: uuid.NewString(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (t *telemetryLogger) Emit(event telemetryEvent) {
	if t == nil || strings.TrimSpace(event.Event) == "" {
		return
	}
	if event.SessionID == "" {
		event.SessionID = t.sessionID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = t.now()
	}
	if len(event.Extra) == 0 {
		event.Extra = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}
