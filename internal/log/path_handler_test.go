package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a JSON logger rewriting /home/alice and its output buffer.
func newTestLogger(home string) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewPathHandlerWithHome(inner, home)), &buf
}

// TestPathHandler_RewritesHomeDirectory tests rewriting of string attributes.
func TestPathHandler_RewritesHomeDirectory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "path under home", value: "/home/alice/corpus0", want: `"dir":"~/corpus0"`},
		{name: "home itself", value: "/home/alice", want: `"dir":"~"`},
		{name: "path outside home", value: "/srv/corpus0", want: `"dir":"/srv/corpus0"`},
		{name: "sibling with same prefix", value: "/home/alice2/corpus", want: `"dir":"/home/alice2/corpus"`},
		{name: "relative path", value: "corpus0", want: `"dir":"corpus0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newTestLogger("/home/alice")
			logger.Info("corpus built", "dir", tt.value)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected output to contain %s, got %s", tt.want, buf.String())
			}
		})
	}
}

// TestPathHandler_NonStringValues tests that other kinds are handled.
func TestPathHandler_NonStringValues(t *testing.T) {
	t.Parallel()

	t.Run("integers pass through", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger("/home/alice")
		logger.Info("corpus built", "pages", 4)

		if !strings.Contains(buf.String(), `"pages":4`) {
			t.Errorf("expected pages=4, got %s", buf.String())
		}
	})

	t.Run("errors are rewritten", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger("/home/alice")
		logger.Error("build failed", "error", errors.New("open /home/alice/corpus/1.html: permission denied"))

		if strings.Contains(buf.String(), "/home/alice") {
			t.Errorf("expected home directory to be rewritten, got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "~/corpus/1.html") {
			t.Errorf("expected rewritten path, got %s", buf.String())
		}
	})

	t.Run("groups are rewritten recursively", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger("/home/alice")
		logger.Info("run", slog.Group("input", slog.String("dir", "/home/alice/corpus0")))

		if !strings.Contains(buf.String(), `"input":{"dir":"~/corpus0"}`) {
			t.Errorf("expected grouped path to be rewritten, got %s", buf.String())
		}
	})

	t.Run("message is rewritten", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger("/home/alice")
		logger.Info("reading /home/alice/corpus0")

		if !strings.Contains(buf.String(), `"msg":"reading ~/corpus0"`) {
			t.Errorf("expected message to be rewritten, got %s", buf.String())
		}
	})
}

// TestPathHandler_WithAttrsAndGroup tests derived handlers keep rewriting.
func TestPathHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger("/home/alice")
	logger.With("config", "/home/alice/.linkrank").WithGroup("run").Info("start", "dir", "/home/alice/c")

	out := buf.String()
	if !strings.Contains(out, `"config":"~/.linkrank"`) {
		t.Errorf("expected With attribute to be rewritten, got %s", out)
	}
	if !strings.Contains(out, `"run":{"dir":"~/c"}`) {
		t.Errorf("expected grouped attribute to be rewritten, got %s", out)
	}
}

// TestPathHandler_EmptyHome tests that rewriting can be disabled.
func TestPathHandler_EmptyHome(t *testing.T) {
	t.Parallel()

	for _, home := range []string{"", "/"} {
		logger, buf := newTestLogger(home)
		logger.Info("corpus built", "dir", "/home/alice/corpus0")

		if !strings.Contains(buf.String(), `"dir":"/home/alice/corpus0"`) {
			t.Errorf("home %q: expected path unchanged, got %s", home, buf.String())
		}
	}
}

// TestNewLogger tests logger construction and level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Info("hidden")
		logger.Warn("shown")

		if strings.Contains(buf.String(), "hidden") {
			t.Error("expected info message to be suppressed")
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Error("expected warn message to be logged")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Error("expected debug message to be logged")
		}
	})

	t.Run("json logger writes json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, false)
		logger.Warn("careful")

		if !strings.HasPrefix(buf.String(), "{") {
			t.Errorf("expected JSON output, got %s", buf.String())
		}
	})
}
