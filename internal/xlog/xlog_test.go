package xlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"debug":   slog.LevelDebug,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatLogfmt, got)

	got, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, got)
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownLogFormat)
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	logger.Info("hello", "key", "value")
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"key":"value"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "loud", "json")
	require.ErrorIs(t, err, ErrUnknownLogLevel)
}
