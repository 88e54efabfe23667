// Package logging builds the structured loggers handed to the simulation components.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
)

// Config controls the console handler.
type Config struct {
	Level      slog.Level
	Color      bool
	TimeFormat string
}

// DefaultTimeFormat is used when Config.TimeFormat is empty.
const DefaultTimeFormat = "15:04:05.000"

var levelStyles = map[slog.Level]color.Style{
	slog.LevelDebug: {color.FgGray},
	slog.LevelInfo:  {color.FgCyan},
	slog.LevelWarn:  {color.FgYellow, color.OpBold},
	slog.LevelError: {color.FgRed, color.OpBold},
}

// New returns a logger writing single-line records to w.
func New(w io.Writer, cfg Config) *slog.Logger {
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}
	return slog.New(&ConsoleHandler{
		out: w,
		cfg: cfg,
		mu:  &sync.Mutex{},
	})
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a flag value onto a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConsoleHandler is a slog.Handler printing "time LEVEL message key=value..." lines,
// colouring the level with gookit/color when enabled.
type ConsoleHandler struct {
	out    io.Writer
	cfg    Config
	mu     *sync.Mutex
	attrs  []groupedAttr
	groups []string
}

type groupedAttr struct {
	prefix string
	attr   slog.Attr
}

// Enabled reports whether records at level l are written.
func (h *ConsoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.cfg.Level
}

// Handle formats and writes one record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(h.cfg.TimeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, ga := range h.attrs {
		writeAttr(&b, ga.prefix, ga.attr)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a handler that prefixes every record with attrs.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	prefix := strings.Join(h.groups, ".")
	next.attrs = append([]groupedAttr{}, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, groupedAttr{prefix: prefix, attr: a})
	}
	return &next
}

// WithGroup returns a handler that qualifies subsequent keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

func (h *ConsoleHandler) levelLabel(l slog.Level) string {
	label := fmt.Sprintf("%-5s", l.String())
	if !h.cfg.Color {
		return label
	}
	style, ok := levelStyles[l]
	if !ok {
		return label
	}
	return style.Sprint(label)
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, inner := range a.Value.Group() {
			writeAttr(b, key, inner)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if strings.ContainsAny(s, " =\"") {
			s = fmt.Sprintf("%q", s)
		}
		b.WriteString(s)
	case slog.KindDuration:
		b.WriteString(a.Value.Duration().Round(time.Microsecond).String())
	default:
		b.WriteString(a.Value.String())
	}
}
