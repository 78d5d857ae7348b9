package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIP(t *testing.T) {
	assert.True(t, IsIP("127.0.0.1"))
	assert.True(t, IsIP("127.0.0.1:8080"))
	assert.True(t, IsIP("[::1]:443"))
	assert.True(t, IsIP("::1"))
	assert.True(t, IsIP("[::1]"))
	assert.False(t, IsIP("example.com"))
}

func TestIsDNSName(t *testing.T) {
	assert.True(t, IsDNSName("example.com"))
	assert.True(t, IsDNSName("cdn-1.example.com:8443"))
	assert.False(t, IsDNSName("127.0.0.1"))
	assert.False(t, IsDNSName(""))
	assert.False(t, IsDNSName("bad host.com"))
}

func TestIsHost(t *testing.T) {
	assert.True(t, IsHost("example.com"))
	assert.True(t, IsHost("10.0.0.1"))
	assert.False(t, IsHost("not a host"))
}

func TestSanitizeNonPrintableBytes(t *testing.T) {
	assert.Equal(t, "a\\x09b\\x00c\n", SanitizeNonPrintableBytes([]byte("a\tb\x00c\n")))
	assert.Equal(t, "http://x/\\x7f", SanitizeString("http://x/\x7f"))
}

func TestLimitStringWithSuffix(t *testing.T) {
	assert.Equal(t, "short", LimitStringWithSuffix("short", 10))
	assert.Equal(t, "abcdef[..]", LimitStringWithSuffix("abcdefghijklmnop", 10))
	assert.Equal(t, "abcdefghij", LimitStringWithSuffix("abcdefghij", 3))
}
