// Package logsink forwards log records to the platform log, one plain line
// per record, under a fixed tag per originating component.
//
// The system log is logcat on Android, where each record goes out under its
// own tag and priority, and stderr elsewhere.
package logsink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// TagKey is the attribute carrying the component tag.
const TagKey = "tag"

// Component tags.
const (
	TagRenderer  = "Renderer"
	TagShader    = "Shader"
	TagUtility   = "Utility"
	TagGame      = "Game"
	TagCharacter = "Character"
	TagPuzzle    = "Puzzle"
	TagAudio     = "Audio"
	TagPlatform  = "Platform"
	TagConfig    = "Config"
)

const defaultTag = "firstgame"

// lineSink receives one formatted record without the level/tag prefix.
type lineSink func(level slog.Level, tag, line string) error

// Handler is a slog.Handler writing "<L>/<Tag>: message k=v" lines, or
// handing tag and line to the system log when built with one.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	sink  lineSink
	level slog.Leveler
	tag   string
	attrs []slog.Attr
	group string
}

func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{mu: &sync.Mutex{}, w: w, level: level, tag: defaultTag}
}

func newSinkHandler(sink lineSink, level slog.Leveler) *Handler {
	h := NewHandler(nil, level)
	h.sink = sink
	return h
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	tag := h.tag
	var extra []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == TagKey && h.group == "" {
			tag = a.Value.String()
			return true
		}
		extra = append(extra, a)
		return true
	})

	var body bytes.Buffer
	body.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&body, "", a)
	}
	for _, a := range extra {
		writeAttr(&body, h.group, a)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sink != nil {
		return h.sink(r.Level, tag, body.String())
	}
	var buf bytes.Buffer
	buf.WriteString(levelLetter(r.Level))
	buf.WriteByte('/')
	buf.WriteString(tag)
	buf.WriteString(": ")
	buf.Write(body.Bytes())
	buf.WriteByte('\n')
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if a.Key == TagKey && h.group == "" {
			nh.tag = a.Value.String()
			continue
		}
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(buf, key, ga)
		}
		return
	}
	fmt.Fprintf(buf, " %s=%v", key, a.Value.Any())
}

func levelLetter(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "E"
	case l >= slog.LevelWarn:
		return "W"
	case l >= slog.LevelInfo:
		return "I"
	default:
		return "D"
	}
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Setup installs the sink as the process-wide default logger. A nil w
// selects the system log.
func Setup(w io.Writer, level slog.Level) {
	if w == nil {
		slog.SetDefault(slog.New(systemHandler(level)))
		return
	}
	slog.SetDefault(slog.New(NewHandler(w, level)))
}

// Android log priorities, as in android/log.h.
const (
	priorityDebug = 3
	priorityInfo  = 4
	priorityWarn  = 5
	priorityError = 6
)

func priorityFor(l slog.Level) int {
	switch {
	case l >= slog.LevelError:
		return priorityError
	case l >= slog.LevelWarn:
		return priorityWarn
	case l >= slog.LevelInfo:
		return priorityInfo
	default:
		return priorityDebug
	}
}

// For returns the default logger tagged with component. Call it after Setup;
// the returned logger keeps the handler that was current at call time.
func For(component string) *slog.Logger {
	return slog.Default().With(TagKey, component)
}
