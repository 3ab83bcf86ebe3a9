package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("batch started")

	assert.Contains(t, buf.String(), "batch started")
}

func TestForComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	log := ForComponent(NewWithWriter(buf), "calculator")

	log.Info().Msg("ready")

	output := buf.String()
	assert.Contains(t, output, `"component":"calculator"`)
	assert.Contains(t, output, "ready")
}
