package intent

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Action is what the user asked to do with a record.
type Action string

const (
	ActionSave     Action = "save"
	ActionDownload Action = "download"
)

// Kind names the type of record an intent refers to.
type Kind string

const (
	KindSearchResult Kind = "search-result"
	KindImage        Kind = "image"
)

// Intent records a user action that has no backend yet.
type Intent struct {
	Action    Action    `json:"action"`
	Kind      Kind      `json:"kind"`
	SessionID string    `json:"sessionId,omitempty"`
	Record    any       `json:"record"`
	At        time.Time `json:"at"`
}

// Recorder takes note of intents. Implementations perform no I/O on the
// record itself.
type Recorder interface {
	Record(ctx context.Context, intent Intent) error
	Close() error
}

// LogRecorder writes each intent as a structured log line.
type LogRecorder struct {
	logger *slog.Logger
}

func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(ctx context.Context, intent Intent) error {
	r.logger.InfoContext(ctx, "intent recorded",
		"action", intent.Action,
		"kind", intent.Kind,
		"session_id", intent.SessionID,
		"record", intent.Record)
	return nil
}

func (r *LogRecorder) Close() error {
	return nil
}

const (
	TypeLog   = "log"
	TypeRedis = "redis"
)

// NewRecorder builds the recorder named by recorderType.
func NewRecorder(ctx context.Context, recorderType, address, channel string) (Recorder, error) {
	switch recorderType {
	case TypeLog, "":
		return NewLogRecorder(nil), nil
	case TypeRedis:
		return NewRedisRecorder(ctx, address, channel)
	default:
		return nil, fmt.Errorf("unsupported intent recorder: %s", recorderType)
	}
}
