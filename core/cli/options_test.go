package cli

import (
	"testing"

	"github.com/slicingmelon/urisplice/core/engine/splice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsBuildsPlanInOrder(t *testing.T) {
	opts, err := parseFlags([]string{
		"-u", "http://origin.com/a?x=1",
		"-af", "top",
		"-aq", "cb=1;v=2",
		"-qd", ";",
		"-ap", "/child",
		"-rp", "/base",
		"-rh", "cdn.example.net",
		"-rs", "https",
		"-strict",
	})
	require.NoError(t, err)
	require.NotNil(t, opts.Plan)

	ops := make([]splice.Op, 0, len(opts.Plan.Edits))
	for _, e := range opts.Plan.Edits {
		ops = append(ops, e.Op)
	}
	assert.Equal(t, []splice.Op{
		splice.OpReplaceScheme,
		splice.OpReplaceHost,
		splice.OpReplacePath,
		splice.OpAppendPath,
		splice.OpAppendQuery,
		splice.OpAppendFragment,
	}, ops)
	assert.True(t, opts.Plan.Strict)
	assert.False(t, opts.Inspect)

	out, err := opts.Plan.Apply(opts.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.net/base/child?x=1;cb=1;v=2#top", out)
}

func TestParseFlagsLongNames(t *testing.T) {
	opts, err := parseFlags([]string{
		"-url", "example.com/p",
		"-append-scheme", "ftp",
		"-scheme-separator", ":",
		"-workers", "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)

	out, err := opts.Plan.Apply(opts.URL)
	require.NoError(t, err)
	assert.Equal(t, "ftp:example.com/p", out)
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags([]string{"-u", "http://a.com"})
	require.NoError(t, err)

	assert.Equal(t, splice.DefaultWorkers, opts.Workers)
	assert.Equal(t, "://", opts.SchemeSeparator)
	assert.Equal(t, "&", opts.QueryDelimiter)
	assert.False(t, opts.Strict)
	assert.Nil(t, opts.Plan)
	assert.True(t, opts.Inspect, "no edits falls back to inspection")
}

func TestParseFlagsStrictOnOff(t *testing.T) {
	opts, err := parseFlags([]string{"-u", "http://a.com", "-ap", "/x", "-strict=on"})
	require.NoError(t, err)
	assert.True(t, opts.Plan.Strict)

	opts, err = parseFlags([]string{"-u", "http://a.com", "-ap", "/x", "-strict=0"})
	require.NoError(t, err)
	assert.False(t, opts.Plan.Strict)

	_, err = parseFlags([]string{"-u", "http://a.com", "-strict=maybe"})
	assert.Error(t, err)
}

func TestParseFlagsDropEdits(t *testing.T) {
	opts, err := parseFlags([]string{"-u", "http://a.com/p?x=1#f", "-ds", "-dq"})
	require.NoError(t, err)

	out, err := opts.Plan.Apply(opts.URL)
	require.NoError(t, err)
	assert.Equal(t, "a.com/p#f", out)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", []string{"-ap", "/x"}, "either URI"},
		{"both inputs", []string{"-u", "http://a", "-l", "f.txt"}, "cannot use both URI"},
		{"substitute without url", []string{"-l", "f.txt", "-shf", "h.txt"}, "required when using substitute"},
		{"bad separator", []string{"-u", "http://a", "-sep", "//"}, "invalid scheme separator"},
		{"bad delimiter", []string{"-u", "http://a", "-qd", ","}, "invalid query delimiter"},
		{"scheme conflict", []string{"-u", "http://a", "-as", "x", "-rs", "y"}, "-as and -rs"},
		{"authority conflict", []string{"-u", "http://a", "-aa", "x", "-ra", "y"}, "-aa and -ra"},
		{"query conflict", []string{"-u", "http://a", "-rq", "a=1", "-dq"}, "-rq and -dq"},
		{"malformed params", []string{"-u", "http://a", "-aq", "a=1&flag"}, "invalid append-query params"},
		{"token with edits", []string{"-u", "http://a", "-t", "abc", "-ap", "/x"}, "cannot be combined"},
		{"bad token", []string{"-u", "http://a", "-t", "!!!"}, "invalid plan token"},
		{"print token without plan", []string{"-u", "http://a", "-pt"}, "needs at least one edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseFlagsPlanToken(t *testing.T) {
	plan := &splice.Plan{Edits: []splice.Edit{
		{Op: splice.OpReplaceHost, Value: "cdn.example.net"},
		{Op: splice.OpAppendFragment, Value: "x"},
	}}
	token, err := splice.EncodePlanToken(plan)
	require.NoError(t, err)

	opts, err := parseFlags([]string{"-u", "http://a.com/p", "-t", token, "-strict"})
	require.NoError(t, err)
	require.NotNil(t, opts.Plan)
	assert.Equal(t, plan.Edits, opts.Plan.Edits)
	assert.True(t, opts.Plan.Strict)
}

func TestParseFlagsMalformedParamsKeepKind(t *testing.T) {
	_, err := parseFlags([]string{"-u", "http://a", "-rq", "flag"})
	require.Error(t, err)
	assert.Equal(t, splice.ErrKindMalformedQuery, splice.KindOf(err))
}
