package splice

import (
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func TestRenderInspection(t *testing.T) {
	out, err := RenderInspection(Inspect("https://example.com:8443/p?b=2&a=1#frag"))
	require.NoError(t, err)

	for _, want := range []string{"scheme", "https", "example.com", "8443", "/p", "a=1", "b=2", "frag", "rfc3986", "valid"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "query param "), strings.Index(out, "rfc3986"))
	assert.Contains(t, out, "absent") // userinfo
}

func TestRenderInspectionMalformed(t *testing.T) {
	out, err := RenderInspection(Inspect("http://[::1/p?flag"))
	require.NoError(t, err)
	assert.Contains(t, out, "malformed")
	assert.Contains(t, out, "invalid")
}

func TestRenderResults(t *testing.T) {
	results := []*Result{
		{Index: 0, Input: "http://a.com", Output: "http://b.com"},
		{Index: 1, Input: "http://c.com\x01", Err: errors.New("boom")},
	}

	out, err := RenderResults(results)
	require.NoError(t, err)
	assert.Contains(t, out, "http://a.com")
	assert.Contains(t, out, "http://b.com")
	assert.Contains(t, out, `http://c.com\x01`)
	assert.Contains(t, out, "boom")
}

func TestRenderErrorStats(t *testing.T) {
	stats := NewErrorStats()

	out, err := RenderErrorStats(stats)
	require.NoError(t, err)
	assert.Empty(t, out)

	stats.Record(ErrEmptyPlan, "a.com")
	out, err = RenderErrorStats(stats)
	require.NoError(t, err)
	assert.Contains(t, out, "plan")
	assert.Contains(t, out, "a.com")
}
