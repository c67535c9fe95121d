package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingWriter returns a size-rotated file writer for path.
func NewRotatingWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// NewServerLogger builds the JSON slog logger used by the server. With an
// empty logFile it writes to stdout only; otherwise output goes to both
// stdout and a rotating file. The returned closer must be called on exit.
func NewServerLogger(logFile string, level slog.Level) (*SlogLogger, io.Closer) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if logFile != "" {
		rw := NewRotatingWriter(logFile)
		w = io.MultiWriter(os.Stdout, rw)
		closer = rw
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
