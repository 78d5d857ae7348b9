package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/slicingmelon/urisplice/core/engine/splice"
	"github.com/slicingmelon/urisplice/core/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
	logger.SetOutput(io.Discard)
}

func newTestRunner(t *testing.T, args ...string) (*Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	r := NewRunner()
	r.Out = out
	require.NoError(t, r.InitializeWithArgs(args))
	return r, out
}

func TestRunnerPlainOutput(t *testing.T) {
	path := writeTempFile(t, "uris.txt", "http://a.com/x?q=1\nhttp://b.com/y\nhttp://c.com\n")

	r, out := newTestRunner(t, "-l", path, "-rh", "cdn.example.net", "-aq", "cb=1", "-w", "2")
	require.NoError(t, r.Run())

	assert.Equal(t, []string{
		"http://cdn.example.net/x?q=1&cb=1",
		"http://cdn.example.net/y?cb=1",
		"http://cdn.example.net?cb=1",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestRunnerOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.txt")

	r, _ := newTestRunner(t, "-u", "example.com/p", "-as", "https", "-o", target)
	require.NoError(t, r.Run())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p\n", string(data))
}

func TestRunnerInspect(t *testing.T) {
	r, out := newTestRunner(t, "-u", "https://user@example.com:8443/p?a=1#frag")
	require.True(t, r.RunnerOptions.Inspect)
	require.NoError(t, r.Run())

	for _, want := range []string{"scheme", "https", "userinfo", "user", "8443", "a=1", "frag"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRunnerPrintToken(t *testing.T) {
	r, out := newTestRunner(t, "-u", "http://a.com/p", "-rp", "/q", "-pt")
	require.NoError(t, r.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "http://a.com/q", lines[1])

	plan, err := splice.DecodePlanToken(lines[0])
	require.NoError(t, err)
	assert.Equal(t, []splice.Edit{{Op: splice.OpReplacePath, Value: "/q"}}, plan.Edits)

	// replay
	r, out = newTestRunner(t, "-u", "http://b.com/p", "-t", lines[0])
	require.NoError(t, r.Run())
	assert.Equal(t, "http://b.com/q", strings.TrimSpace(out.String()))
}

func TestRunnerStrictFailures(t *testing.T) {
	r, out := newTestRunner(t, "-u", "http://a.com/p", "-ap", " bad", "-strict")

	err := r.RunContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 URIs failed")
	assert.Contains(t, out.String(), "invalid-uri")
	assert.Equal(t, 1, r.Processor.Stats().KindCount(splice.ErrKindInvalidURI))
}

func TestRunnerSubstituteHosts(t *testing.T) {
	hosts := writeTempFile(t, "hosts.txt", "one.example.net\nhttps://two.example.net\n")

	r, out := newTestRunner(t, "-u", "https://origin.com/login", "-shf", hosts, "-af", "x")
	require.Len(t, r.URIs, 3)
	require.NoError(t, r.Run())

	assert.Equal(t, []string{
		"https://origin.com/login#x",
		"https://one.example.net/login#x",
		"https://two.example.net/login#x",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestRunnerInitializeErrors(t *testing.T) {
	r := NewRunner()
	err := r.InitializeWithArgs([]string{"-l", filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to collect URIs")
}
