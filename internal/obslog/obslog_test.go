package obslog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWritersFansOutToBoth(t *testing.T) {
	var stderrBuf, fileBuf bytes.Buffer
	logger := SetupWithWriters(&stderrBuf, &fileBuf, slog.LevelInfo)

	logger.Info("hello", "n", 42)

	assert.Contains(t, stderrBuf.String(), "hello")
	assert.Contains(t, stderrBuf.String(), "n=42")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(fileBuf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, float64(42), entry["n"])
}

func TestLogDiagnosticsEmitsOnePerEntry(t *testing.T) {
	var stderrBuf, fileBuf bytes.Buffer
	logger := SetupWithWriters(&stderrBuf, &fileBuf, slog.LevelInfo)

	LogDiagnostics(logger, "activation.csv", []string{"row 3 dropped", "row 9 dropped"})

	lines := strings.Split(strings.TrimSpace(fileBuf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, stderrBuf.String(), "row 3 dropped")
	assert.Contains(t, stderrBuf.String(), "activation.csv")
}
