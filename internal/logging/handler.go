package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// timeFormat is short enough to keep probe logs readable in a terminal.
const timeFormat = "15:04:05"

// palette colors one handler's output. The zero value prints plain text.
type palette struct {
	time  *color.Color
	key   *color.Color
	level map[slog.Level]*color.Color
}

func newPalette() palette {
	p := palette{
		time: color.New(color.FgHiBlack),
		key:  color.New(color.FgCyan),
		level: map[slog.Level]*color.Color{
			LevelTrace:      color.New(color.FgHiBlack),
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
	}
	for _, c := range p.level {
		c.EnableColor()
	}
	p.time.EnableColor()
	p.key.EnableColor()
	return p
}

func (p palette) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// levelColor returns the color of the nearest named level at or below l.
func (p palette) levelColor(l slog.Level) *color.Color {
	switch {
	case p.level == nil:
		return nil
	case l >= slog.LevelError:
		return p.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return p.level[slog.LevelDebug]
	default:
		return p.level[LevelTrace]
	}
}

// Handler is a slog.Handler for terminals: one line per record, colored
// when the writer supports it. Each record is written with a single Write.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	colors palette
	preset []byte
	groups []string
}

// NewHandler returns a Handler writing to out. A nil opts logs at info.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats r as "TIME LEVEL message key=value ...".
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.colors.paint(h.colors.time, r.Time.Format(timeFormat)))
		buf.WriteByte(' ')
	}

	level := LevelName(r.Level)
	pad := strings.Repeat(" ", max(0, 5-len(level)))
	buf.WriteString(h.colors.paint(h.colors.levelColor(r.Level), level))
	buf.WriteString(pad)
	buf.WriteByte(' ')

	buf.WriteString(r.Message)
	buf.Write(h.preset)

	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, prefix, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.colors.paint(h.colors.key, prefix+a.Key))
	buf.WriteByte('=')
	buf.WriteString(formatValue(a.Value))
}

// formatValue quotes strings that would break key=value parsing and
// rounds durations to the millisecond.
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindDuration:
		d := v.Duration()
		if d >= time.Millisecond {
			d = d.Round(time.Millisecond)
		}
		return d.String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
		return quoteIfNeeded(fmt.Sprint(v.Any()))
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// WithAttrs returns a Handler that renders attrs on every record. They
// are formatted once here rather than per record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.Write(h.preset)
	prefix := h.groupPrefix()
	for _, a := range attrs {
		h.appendAttr(&buf, prefix, a)
	}

	clone := *h
	clone.preset = buf.Bytes()
	return &clone
}

// WithGroup returns a Handler that prefixes later keys with "name.".
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}
