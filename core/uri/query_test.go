package uri

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"ampersand", "a=1&b=2", map[string]string{"a": "1", "b": "2"}},
		{"semicolon", "a=1;b=2", map[string]string{"a": "1", "b": "2"}},
		{"mixed", "a=1;b=2&c=3", map[string]string{"a": "1", "b": "2", "c": "3"}},
		{"first equals only", "expr=a=b", map[string]string{"expr": "a=b"}},
		{"empty value", "a=&b=2", map[string]string{"a": "", "b": "2"}},
		{"duplicate overwrites", "a=1&a=2", map[string]string{"a": "2"}},
		{"not decoded", "q=a%20b+c", map[string]string{"q": "a%20b+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParseQuery(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestParseQueryMalformed(t *testing.T) {
	values, err := Query("http://host/p?a=1&flag&b=2")
	assert.Nil(t, values)
	require.Error(t, err)
	assert.True(t, IsMalformedQuery(err))

	var mqe *MalformedQueryError
	require.ErrorAs(t, err, &mqe)
	assert.Equal(t, "flag", mqe.Segment)
	assert.Equal(t, 1, mqe.Index)

	wrapped := fmt.Errorf("inspect: %w", err)
	assert.True(t, IsMalformedQuery(wrapped))
	assert.False(t, IsMalformedQuery(ErrComponentAbsent))
}

func TestParseQueryEmptySegments(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		index int
	}{
		{"trailing separator", "a=1&", 1},
		{"double separator", "a=1&&b=2", 1},
		{"leading separator", "&a=1", 0},
		{"semicolon", "a=1;;b=2", 1},
		{"lone separator", "&", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParseQuery(tt.raw)
			assert.Nil(t, values)

			var mqe *MalformedQueryError
			require.ErrorAs(t, err, &mqe)
			assert.Equal(t, "", mqe.Segment)
			assert.Equal(t, tt.index, mqe.Index)
		})
	}

	_, err := Query("http://h/p?a=1&")
	assert.True(t, IsMalformedQuery(err))

	values, err := Query("http://h/p?")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestQueryAbsent(t *testing.T) {
	values, err := Query("http://host/p#frag")
	require.NoError(t, err)
	assert.Empty(t, values)
}

type version struct{ major, minor int }

func (v version) String() string { return fmt.Sprintf("%d.%d", v.major, v.minor) }

func TestQueryToString(t *testing.T) {
	params := Params{
		"s":   "text",
		"i":   42,
		"i64": int64(-7),
		"u8":  uint8(255),
		"f":   2.5,
		"b":   true,
		"v":   version{1, 2},
		"n":   nil,
		"d":   time.Second,
	}

	assert.Equal(t, "b=true&d=1s&f=2.5&i=42&i64=-7&n=&s=text&u8=255&v=1.2", QueryToString(params, ""))
	assert.Equal(t, "a=1;b=2", QueryToString(Params{"b": 2, "a": 1}, ";"))
	assert.Equal(t, "", QueryToString(nil, "&"))
	assert.Equal(t, "", QueryToString(Params{}, "&"))
}
