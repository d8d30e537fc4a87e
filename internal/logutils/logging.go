// Package logutils sets up the log/slog logger used by all components.
//
// The log level is read from the INGRESS_LOG_LEVEL environment variable.
// Components can be configured separately, e.g. "info,worker=debug,registry=error".
package logutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ComponentKey is the slog attribute key used to identify the component.
const ComponentKey = "component"

const envLogLevel = "INGRESS_LOG_LEVEL"

// levelOff is above every level a component logs at.
const levelOff = slog.LevelError + 1

// levelTable maps a component to its minimum level.
// The empty component holds the level for records without a component.
type levelTable map[string]slog.Level

func (t levelTable) min(component string) slog.Level {
	if l, ok := t[component]; ok {
		return l
	}
	if l, ok := t[""]; ok {
		return l
	}
	return levelOff
}

var levelNames = map[string]slog.Level{
	"none":    levelOff,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseLevels parses a comma separated list of "level" and "component=level" entries.
// The last bare level wins.
func parseLevels(s string) (levelTable, error) {
	table := levelTable{}
	for entry := range strings.SplitSeq(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		var component string
		name := entry
		if c, n, ok := strings.Cut(entry, "="); ok {
			component, name = strings.TrimSpace(c), strings.TrimSpace(n)
		}
		level, ok := levelNames[strings.ToLower(name)]
		if !ok {
			if component != "" {
				return nil, fmt.Errorf("component %s: unknown log level: %s", component, name)
			}
			return nil, fmt.Errorf("unknown log level: %s", name)
		}
		table[component] = level
	}
	return table, nil
}

// componentFilter drops records below the level configured for its component.
type componentFilter struct {
	slog.Handler
	levels    levelTable
	component string
}

var _ slog.Handler = &componentFilter{}

func (h *componentFilter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.levels.min(h.component)
}

func (h *componentFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.component
	for _, a := range attrs {
		if a.Key == ComponentKey {
			component = a.Value.String()
		}
	}
	return &componentFilter{Handler: h.Handler.WithAttrs(attrs), levels: h.levels, component: component}
}

func (h *componentFilter) WithGroup(name string) slog.Handler {
	return &componentFilter{Handler: h.Handler.WithGroup(name), levels: h.levels, component: h.component}
}

// NewLogger creates a logger writing to w, configured by INGRESS_LOG_LEVEL.
// An invalid configuration is reported on stderr and disables logging.
func NewLogger(w io.Writer) *slog.Logger {
	levels, err := parseLevels(os.Getenv(envLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", envLogLevel, err)
		levels = levelTable{}
	}
	// filtering happens in componentFilter
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(&componentFilter{Handler: text, levels: levels})
}

// DefaultLogger logs to stderr.
var DefaultLogger = NewLogger(os.Stderr)
