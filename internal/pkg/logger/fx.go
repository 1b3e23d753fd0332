package logger

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxWriter bridges fx's console event logger onto zerolog so the dependency
// graph's lifecycle events land in the same stream as everything else.
type fxWriter struct {
	l zerolog.Logger
}

var _ io.Writer = (*fxWriter)(nil)

func Fx() fxevent.Logger {
	w := fxWriter{
		l: log.Logger.
			With().
			Str("component", "fx").
			Logger(),
	}
	return &fxevent.ConsoleLogger{
		W: w,
	}
}

func (w fxWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if n > 0 && p[n-1] == '\n' {
		// fx terminates each event with a newline; zerolog adds its own.
		p = p[0 : n-1]
	}
	w.l.Info().CallerSkipFrame(0).Msg(string(p))
	return
}
