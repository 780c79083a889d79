package conversion

import (
	"io"
	"log/slog"
)

// DefaultMaxNestingDepth bounds pipe search for the convenience conversion helpers.
const DefaultMaxNestingDepth = 3

type Options struct {
	MaxNestingDepth  int          // depth used by Convert helpers that take no explicit depth
	Logger           *slog.Logger // diagnostics sink; discarded when nil
	SerializedSearch bool         // when true, only one pipe search runs at a time per engine
	DisableHunt      bool         // when true, the depth-first fallback search is skipped
	FactoryLenient   bool         // when true, factories are asked for lenient (non-strict) converters
}

type Option func(*Options)

func WithMaxNestingDepth(n int) Option { return func(o *Options) { o.MaxNestingDepth = n } }
func WithLogger(l *slog.Logger) Option  { return func(o *Options) { o.Logger = l } }
func WithSerializedSearch(v bool) Option {
	return func(o *Options) { o.SerializedSearch = v }
}
func WithHuntSearch(v bool) Option { return func(o *Options) { o.DisableHunt = !v } }
func WithFactoryStrict(v bool) Option {
	return func(o *Options) { o.FactoryLenient = !v }
}

func defaultOptions() Options {
	return Options{MaxNestingDepth: DefaultMaxNestingDepth}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
