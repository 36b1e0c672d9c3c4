package debug

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var theLog atomic.Pointer[slog.Logger]

func init() {
	theLog.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))
}

func level() slog.Level {
	if d.Build || d.Print {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Logger returns the shared logger. Builders and printers capture it at
// construction time.
func Logger() *slog.Logger {
	return theLog.Load()
}

// SetLogger replaces the shared logger; nil is ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	theLog.Store(l)
}
