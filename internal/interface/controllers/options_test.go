package controllers

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "defaults to current directory",
			args:     nil,
			expected: Options{Paths: []string{"."}},
		},
		{
			name: "short flags",
			args: []string{"-k", "key", "-r", "-W", "120", "-H", "80", "-m", "fit", "-A", "ua", "-md", "img"},
			expected: Options{
				Key: "key", Recursive: true, Width: "120", Height: "80", Method: "fit",
				UserAgent: "ua", MatchDot: true, Paths: []string{"img"},
			},
		},
		{
			name: "long flags",
			args: []string{"--key=key", "--recursive", "--width", "120", "--method", "scale", "--matchdot", "--workers", "8", "--tui", "--strict-key", "a.png", "b.png"},
			expected: Options{
				Key: "key", Recursive: true, Width: "120", Method: "scale", MatchDot: true,
				Workers: 8, TUI: true, StrictKey: true, Paths: []string{"a.png", "b.png"},
			},
		},
		{
			name:     "flags after paths",
			args:     []string{"assets", "-r", "more", "--width", "10"},
			expected: Options{Recursive: true, Width: "10", Paths: []string{"assets", "more"}},
		},
		{
			name:     "double dash ends flags",
			args:     []string{"-r", "--", "-odd.png", "--width"},
			expected: Options{Recursive: true, Paths: []string{"-odd.png", "--width"}},
		},
		{
			name:     "version and help",
			args:     []string{"-v", "--help"},
			expected: Options{Version: true, Help: true, Paths: []string{"."}},
		},
		{
			name:     "config",
			args:     []string{"-c", "/tmp/x.yaml", "--write-config"},
			expected: Options{ConfigPath: "/tmp/x.yaml", WriteConfig: true, Paths: []string{"."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions(tt.args)
			if err != nil {
				t.Fatalf("ParseOptions: %v", err)
			}
			if !reflect.DeepEqual(*opts, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, *opts)
			}
		})
	}
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--quality", "80"}},
		{name: "missing value", args: []string{"dir", "--key"}},
		{name: "bad workers", args: []string{"-j", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOptions(tt.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)

	out := buf.String()
	for _, want := range []string{"-k, --key", "-W, --width", "-md, --matchdot", "--write-config", "thumb"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage must mention %q", want)
		}
	}
}
