package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger(&buf, false)

	log.Debug("hidden")
	log.WithField("date_key", "2024-0-15").Info("selected")

	out := buf.String()
	assert.NotContains(t, out, "hidden", "debug should be off when not verbose")
	assert.Contains(t, out, "date_key=2024-0-15")
}
