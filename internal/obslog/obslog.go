// Package obslog sets up the module's logger and bridges it to the
// core engine's plain diagnostic-sink shape: text to stderr for a
// human, JSON to a file for later grepping, fanned out with
// github.com/samber/slog-multi.
package obslog

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Setup creates a dual-output logger: text to stderr, JSON to logFile.
// Returns the logger and a cleanup to close the file. If the file
// can't be opened, it falls back to stderr only rather than failing
// startup over a logging concern.
func Setup(logFile string, level slog.Level) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("failed to open log file, using stderr only", "error", err, "file", logFile)
		return slog.New(stderrHandler), func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	logger := slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
	return logger, file.Close
}

// SetupWithWriters builds a logger over caller-supplied writers, for
// tests that want to inspect output without touching the filesystem.
func SetupWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
}

// LogDiagnostics reports a nucdata.Store's construction diagnostics
// (or any other plain-string sink the engine produces) through logger,
// one warning per entry. The engine itself never logs; this is the
// one place diagnostics meet a logger, and it lives outside every
// core package.
func LogDiagnostics(logger *slog.Logger, source string, diagnostics []string) {
	for _, d := range diagnostics {
		logger.Warn("ingestion diagnostic", "source", source, "detail", d)
	}
}
