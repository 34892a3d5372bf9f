package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("should not appear")
	Warn("should not appear either")

	assert.Empty(t, buf.String())
}

func TestLogger_VerboseEmitsLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	Debug("fetched %d restaurants", 10)
	Info("applying filter")
	Warn("fetch failed")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] fetched 10 restaurants")
	assert.Contains(t, out, "[INFO] applying filter")
	assert.Contains(t, out, "[WARN] fetch failed")
}
