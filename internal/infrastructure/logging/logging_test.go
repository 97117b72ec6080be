package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LevelFilter(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected []string
		hidden   []string
	}{
		{
			name:     "info hides debug",
			level:    "info",
			expected: []string{"info line", "! warning line", "✘ error line", "✔ success line"},
			hidden:   []string{"debug line"},
		},
		{
			name:     "error hides success",
			level:    "error",
			expected: []string{"✘ error line"},
			hidden:   []string{"info line", "success line", "warning line"},
		},
		{
			name:     "unknown level falls back to info",
			level:    "loud",
			expected: []string{"info line"},
			hidden:   []string{"debug line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewConsoleLogger(&buf, tt.level)
			l.Debug("debug %s", "line")
			l.Info("info %s", "line")
			l.Warning("warning %s", "line")
			l.Error("error %s", "line")
			l.Success("success %s", "line")

			out := buf.String()
			for _, s := range tt.expected {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.hidden {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtinypng.log")

	l, err := NewFileLogger(path, "debug", 10, true)
	require.NoError(t, err)
	l.Success("a.png shrunk")
	l.Debug("details")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[SUCCESS] a.png shrunk")
	assert.Contains(t, string(data), "[DEBUG] details")
}

func TestFileLogger_TruncatesOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtinypng.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 1024*1024+1), 0644))

	l, err := NewFileLogger(path, "info", 1, true)
	require.NoError(t, err)
	l.Info("fresh")
	l.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(1024), "log must be truncated")
}

func TestFileLogger_Disabled(t *testing.T) {
	l, err := NewFileLogger(filepath.Join(t.TempDir(), "off.log"), "info", 10, false)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	var disabled *FileLogger

	m := NewMultiLogger(NewConsoleLogger(&a, "info"), disabled, nil, NewConsoleLogger(&b, "info"))
	require.Len(t, m.loggers, 2)

	m.Error("boom")
	assert.Equal(t, "✘ boom\n", a.String())
	assert.Equal(t, "✘ boom\n", b.String())
	assert.NoError(t, m.Close())
}
