/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import "strings"

// authorityParts is the userinfo@host:port split of an authority.
type authorityParts struct {
	userInfo    string
	hasUserInfo bool
	host        string
	ipv6        bool
	port        string
	hasPort     bool
	malformed   bool // '[' without a closing ']'
}

func splitAuthority(authority string) authorityParts {
	var a authorityParts
	rest := authority

	if at := userInfoEnd(authority); at >= 0 {
		a.userInfo = authority[:at]
		a.hasUserInfo = true
		rest = authority[at+1:]
	}

	if strings.HasPrefix(rest, "[") {
		a.ipv6 = true
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			a.malformed = true
			return a
		}
		a.host = rest[1:end]
		rest = rest[end+1:]
	} else {
		end := indexOrLen(rest, ":")
		a.host = rest[:end]
		rest = rest[end:]
	}

	if rest != "" {
		a.hasPort = true
		a.port = strings.TrimPrefix(rest, ":")
	}
	return a
}

// userInfoEnd returns the index of the first '@' outside of brackets, or -1.
func userInfoEnd(authority string) int {
	depth := 0
	for i := 0; i < len(authority); i++ {
		switch authority[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '@':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (u *URI) setAuthority(authority string) {
	u.authority = authority
	u.auth = splitAuthority(authority)
}

// BuildAuthority assembles userInfo@host:port. A host containing ':' is
// wrapped in brackets unless it already is.
func BuildAuthority(userInfo, host, port string) string {
	var sb strings.Builder
	sb.Grow(len(userInfo) + len(host) + len(port) + 4)

	if userInfo != "" {
		sb.WriteString(userInfo)
		sb.WriteByte('@')
	}
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		sb.WriteByte('[')
		sb.WriteString(host)
		sb.WriteByte(']')
	} else {
		sb.WriteString(host)
	}
	if port != "" {
		sb.WriteByte(':')
		sb.WriteString(port)
	}
	return sb.String()
}
