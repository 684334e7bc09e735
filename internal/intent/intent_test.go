package intent

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

func TestLogRecorder_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewLogRecorder(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := recorder.Record(context.Background(), Intent{
		Action:    ActionDownload,
		Kind:      KindImage,
		SessionID: "abc",
		Record:    models.GeneratedImage{ID: "img-1", Prompt: "a cat"},
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "intent recorded", line["msg"])
	assert.Equal(t, "download", line["action"])
	assert.Equal(t, "image", line["kind"])
	assert.Equal(t, "abc", line["session_id"])
}

func TestRedisRecorder_PublishesIntent(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	recorder, err := NewRedisRecorder(ctx, server.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = recorder.Close() })

	subscriber := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = subscriber.Close() })
	sub := subscriber.Subscribe(ctx, DefaultChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	result := models.SearchResult{Title: "Quantum", Source: "Nature"}
	require.NoError(t, recorder.Record(ctx, Intent{
		Action: ActionSave,
		Kind:   KindSearchResult,
		Record: result,
		At:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}))

	select {
	case msg := <-sub.Channel():
		var got struct {
			Action Action              `json:"action"`
			Kind   Kind                `json:"kind"`
			Record models.SearchResult `json:"record"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, ActionSave, got.Action)
		assert.Equal(t, KindSearchResult, got.Kind)
		assert.Equal(t, result, got.Record)
	case <-time.After(2 * time.Second):
		t.Fatal("no intent published")
	}
}

func TestRedisRecorder_ConnectFailure(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisRecorder(context.Background(), addr, "")
	assert.Error(t, err)
}

func TestNewRecorder(t *testing.T) {
	ctx := context.Background()

	r, err := NewRecorder(ctx, TypeLog, "", "")
	require.NoError(t, err)
	assert.IsType(t, &LogRecorder{}, r)

	server := miniredis.RunT(t)
	r, err = NewRecorder(ctx, TypeRedis, server.Addr(), "custom")
	require.NoError(t, err)
	assert.IsType(t, &RedisRecorder{}, r)
	require.NoError(t, r.Close())

	_, err = NewRecorder(ctx, "kafka", "", "")
	assert.Error(t, err)
}
