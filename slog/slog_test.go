//go:build go1.21

package slog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/brainpower/checkarg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsBind(t *testing.T) {
	var opts Options
	p := checkarg.New("test")
	require.NoError(t, p.Bind(&opts))

	assert.Equal(t, ""+
		"Usage: test [options]\n"+
		"\n"+
		"Options:\n"+
		"       --log-json         log in JSON format\n"+
		"       --log-level=LEVEL  minimum log level (debug, info, warn, error)\n",
		p.HelpString(),
	)

	require.NoError(t, p.Parse([]string{"/bin", "--log-level", "debug", "--log-json"}))
	assert.Equal(t, slog.LevelDebug, opts.LogLevel)
	assert.True(t, opts.LogJSON)
}

func TestOptionsBadLevel(t *testing.T) {
	var opts Options
	p := checkarg.New("test", checkarg.WithErrOutput(nil))
	require.NoError(t, p.Bind(&opts))

	err := p.Parse([]string{"/bin", "--log-level=loud"})
	assert.Equal(t, checkarg.CallbackFailed, checkarg.CodeOf(err))
}

func TestConfigure(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	b := &bytes.Buffer{}
	opts := Options{LogLevel: slog.LevelWarn, LogJSON: true}
	logger := opts.ConfigureWithHandlerOptions(b, nil)
	assert.Same(t, logger, slog.Default())

	slog.Info("dropped")
	slog.Warn("kept", "n", 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(b.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, float64(1), rec["n"])
}

func TestConfigureText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	b := &bytes.Buffer{}
	opts := Options{}
	opts.ConfigureWithHandlerOptions(b, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	slog.Debug("dropped")
	slog.Info("hello")
	assert.Equal(t, "level=INFO msg=hello\n", b.String())
}
