package termui

import (
	"io"

	"golang.org/x/exp/slog"

	termuilog "github.com/mic006/termui/log"
)

// Options configures a Terminal and its MainLoop, following the
// functional-defaults convention (vaxis.Options / vaxis.Init) the codebase
// this library descends from uses throughout.
type Options struct {
	// Logger receives lifecycle diagnostics (raw mode entered/restored,
	// signals received, fd registration). Defaults to a discard logger.
	Logger *slog.Logger

	// MaxSimultaneousEvents bounds how many ready descriptors a single
	// wait_and_dispatch call processes, matching the source's
	// nbSimultaneousEvents default of 8.
	MaxSimultaneousEvents int
}

func (o Options) withDefaults() Options {
	if o.MaxSimultaneousEvents <= 0 {
		o.MaxSimultaneousEvents = 8
	}
	if o.Logger == nil {
		o.Logger = termuilog.New(io.Discard, slog.LevelInfo)
	}
	return o
}
