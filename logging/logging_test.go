package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/logging"
)

func TestJSONHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h, err := logging.NewHandler(&buf, "json", "debug")
	require.NoError(t, err)

	log := logging.New(slog.New(h)).With("ctx", "abc")
	log.Debug(context.Background(), "command", "text", "solve")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "command", rec["msg"])
	assert.Equal(t, "abc", rec["ctx"])
	assert.Equal(t, "solve", rec["text"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	h, err := logging.NewHandler(&buf, "text", "warn")
	require.NoError(t, err)

	log := logging.New(slog.New(h))
	log.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())
	log.Error(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewHandlerErrors(t *testing.T) {
	_, err := logging.NewHandler(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)
	_, err = logging.NewHandler(&bytes.Buffer{}, "text", "loud")
	assert.Error(t, err)
}

func TestDiscardAndDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Discard().Error(context.Background(), "dropped")
		logging.New(nil).With("k", 1)
	})
}
