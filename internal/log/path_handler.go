package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomePrefix replaces the home directory in rewritten values.
const HomePrefix = "~"

// PathHandler wraps an slog.Handler and rewrites string attribute values
// that start with the home directory.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the cleaned home directory. Empty disables rewriting.
	home string
}

// NewPathHandler creates a PathHandler wrapping handler, using the current
// user's home directory. If handler is nil, slog.Default().Handler() is used.
func NewPathHandler(handler slog.Handler) *PathHandler {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return NewPathHandlerWithHome(handler, home)
}

// NewPathHandlerWithHome creates a PathHandler that rewrites the given home
// directory. The root directory is never treated as a home directory.
func NewPathHandlerWithHome(handler slog.Handler, home string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if home != "" {
		home = filepath.Clean(home)
		if home == string(filepath.Separator) || home == "." {
			home = ""
		}
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, h.rewrite(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	case slog.KindString:
		return slog.String(a.Key, h.rewrite(a.Value.String()))
	case slog.KindAny:
		// Errors often embed the path of the file that failed.
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, h.rewrite(err.Error()))
		}
	}
	return a
}

// rewrite replaces every occurrence of the home directory followed by a
// separator, or the home directory as the whole value.
func (h *PathHandler) rewrite(s string) string {
	if h.home == "" {
		return s
	}
	if s == h.home {
		return HomePrefix
	}
	return strings.ReplaceAll(s, h.home+string(filepath.Separator), HomePrefix+string(filepath.Separator))
}

// NewLogger creates a new text slog.Logger with path rewriting.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewPathHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a new JSON slog.Logger with path rewriting.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewPathHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

// handlerOptions returns the handler options for the given verbosity.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
