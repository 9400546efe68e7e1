package xlsplit

import (
	"io"
	"log/slog"
)

// Options holds configuration for the Editor.
type Options struct {
	splitter  TableSplitter
	logger    *slog.Logger
	listeners []CommandListener
	gap       int
}

func defaultOptions() *Options {
	return &Options{
		splitter: NewGridSplitter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		gap:      1,
	}
}

// Option configures the Editor.
type Option func(*Options)

// WithSplitter sets the collaborator that rewrites tables (default: GridSplitter).
func WithSplitter(s TableSplitter) Option {
	return func(o *Options) { o.splitter = s }
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithListener adds a listener notified around each command execution.
func WithListener(l CommandListener) Option {
	return func(o *Options) { o.listeners = append(o.listeners, l) }
}

// WithGap sets the number of blank rows or columns SplitRange leaves between
// the written tables (default: 1).
func WithGap(gap int) Option {
	return func(o *Options) {
		if gap >= 0 {
			o.gap = gap
		}
	}
}
