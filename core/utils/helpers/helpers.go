/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package helpers

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/slicingmelon/urisplice/core/utils/logger"
)

// RFC 1035
var rxDNSName = regexp.MustCompile(`^([a-zA-Z0-9_]{1}[a-zA-Z0-9\-._]{0,61}[a-zA-Z0-9]{1}\.)*` +
	`([a-zA-Z0-9_]{1}[a-zA-Z0-9\-._]{0,61}[a-zA-Z0-9]{1}\.?)$`)

// IsIP reports whether str is an IP address, with or without a port.
func IsIP(str string) bool {
	host, _, err := net.SplitHostPort(str)
	if err != nil {
		return net.ParseIP(strings.Trim(str, "[]")) != nil
	}
	return net.ParseIP(host) != nil
}

// IsDNSName reports whether str (optionally host:port) is a DNS name and not an IP.
func IsDNSName(str string) bool {
	host, port, err := net.SplitHostPort(str)
	if err != nil {
		host = str
	} else {
		logger.Verbose().Msgf("Split host: %q port: %q", host, port)
	}

	if host == "" {
		return false
	}

	if len(strings.ReplaceAll(host, ".", "")) > 255 {
		logger.Verbose().Msgf("Hostname too long (>255 chars): %q", host)
		return false
	}

	return !IsIP(host) && rxDNSName.MatchString(host)
}

// IsHost reports whether str can stand in as the host of an authority.
func IsHost(str string) bool {
	return IsIP(str) || IsDNSName(str)
}

// SanitizeNonPrintableBytes sanitizes non-printable bytes in a byte slice
// and returns a string with the sanitized bytes for better terminal output
func SanitizeNonPrintableBytes(input []byte) string {
	var sb strings.Builder
	sb.Grow(len(input))

	for _, b := range input {
		// Keep printable ASCII (32-126), LF (10), CR (13)
		if (b >= 32 && b <= 126) || b == 10 || b == 13 {
			sb.WriteByte(b)
		} else if b == 9 {
			sb.WriteString("\\x09")
		} else {
			sb.WriteString(fmt.Sprintf("\\x%02x", b))
		}
	}
	return sb.String()
}

// SanitizeString is SanitizeNonPrintableBytes for strings.
func SanitizeString(s string) string {
	return SanitizeNonPrintableBytes([]byte(s))
}

// LimitStringWithSuffix cuts s to maxLen bytes, marking the cut with "[..]".
func LimitStringWithSuffix(s string, maxLen int) string {
	if len(s) <= maxLen || maxLen < 5 {
		return s
	}

	return s[:maxLen-4] + "[..]"
}
