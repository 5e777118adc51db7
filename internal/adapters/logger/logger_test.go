package logger_adapter

import (
	"bytes"
	"car-catalog-service/internal/core/port"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFluent struct {
	tags     []string
	messages []map[string]interface{}
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, message.(map[string]interface{}))
	return nil
}

func TestSlogAdapter_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"trace_id": "abc"}).Error("query failed", errors.New("boom"), port.Fields{"method": "Search"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "query failed", entry["msg"])
	assert.Equal(t, "abc", entry["trace_id"])
	assert.Equal(t, "Search", entry["method"])
	assert.Equal(t, "boom", entry["error"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn, IsJSON: true})

	logger.Info("hidden", nil)
	logger.Debug("hidden", nil)
	assert.Zero(t, buf.Len())

	logger.Warn("shown", nil)
	assert.NotZero(t, buf.Len())
}

func TestFluentLoggerAdapter_MergesFieldsAndFiltersLevel(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	child := adapter.WithFields(port.Fields{"component": "app"})
	child.Debug("dropped", nil)
	child.Info("kept", port.Fields{"port": "3000"})

	require.Len(t, client.messages, 1)
	assert.Equal(t, "info", client.tags[0])
	assert.Equal(t, "kept", client.messages[0]["message"])
	assert.Equal(t, "app", client.messages[0]["component"])
	assert.Equal(t, "3000", client.messages[0]["port"])
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter_FansOut(t *testing.T) {
	first, second := &fakeFluent{}, &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(first, slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, slog.LevelDebug)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t"}).Warn("slow query", nil)

	require.Len(t, first.messages, 1)
	require.Len(t, second.messages, 1)
	assert.Equal(t, "t", second.messages[0]["trace_id"])

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}
