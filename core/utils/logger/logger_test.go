package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeWriterFraming(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSafeWriter(&buf)

	_, err := sw.Write([]byte("no newline"))
	assert.NoError(t, err)
	_, err = sw.Write([]byte("with newline\n"))
	assert.NoError(t, err)

	assert.Equal(t, "\rno newline\n\rwith newline\n", buf.String())
}

func TestDisabledEventsAreNilSafe(t *testing.T) {
	assert.False(t, IsDebugEnabled())
	assert.False(t, IsVerboseEnabled())

	ev := Debug()
	assert.Nil(t, ev)
	assert.NotPanics(t, func() {
		ev.Component("host").PlanToken("tok").Metadata("k", "v").Msgf("dropped %d", 1)
		Verbose().Msgf("dropped")
	})
}

func TestEventWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Warning().Component("query").Metadata("segment", "flag").Msgf("malformed %s", "query")

	out := buf.String()
	assert.Contains(t, out, "malformed query")
	assert.Contains(t, out, "query")
	assert.Contains(t, out, "flag")
}

func TestEventMetadataIsNotAFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Error().Metadata("segment", "q=%20%s").Msgf("bad %d", 2)

	out := buf.String()
	assert.Contains(t, out, "bad 2")
	assert.Contains(t, out, "q=%20%s")
}
