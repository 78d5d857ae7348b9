/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultSchemeSeparator is used when a scheme is added without an explicit separator
	DefaultSchemeSeparator = "://"
	// DefaultQueryDelimiter joins serialized query pairs
	DefaultQueryDelimiter = "&"
)

var (
	rxScheme       = regexp.MustCompile(`^[\w+.-]+:`)
	rxFragmentWord = regexp.MustCompile(`^\w*`)
)

// URI is the parsed form of a URI-like string. Each field holds the exact
// input bytes of one segment, so String() returns the parsed input unchanged.
type URI struct {
	lead      string // whitespace in front of a scheme
	scheme    string
	separator string
	authority string
	auth      authorityParts
	path      string

	hasQuery bool
	rawQuery string

	hasFragment bool
	fragment    string
	tail        string // bytes after the fragment word run
}

// Parse splits raw into its components. It never fails: anything that does
// not match a component rule ends up in the next component or reads as "".
func Parse(raw string) *URI {
	u := &URI{}
	rest := raw

	lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if m := rxScheme.FindString(raw[lead:]); m != "" {
		u.lead = raw[:lead]
		u.scheme = m[:len(m)-1]
		rest = raw[lead+len(m):]
		u.separator = ":"
		if strings.HasPrefix(rest, "//") {
			u.separator = "://"
			rest = rest[2:]
		}
	}

	end := indexOrLen(rest, "#/?")
	u.authority = rest[:end]
	u.auth = splitAuthority(u.authority)
	rest = rest[end:]

	end = indexOrLen(rest, "?#")
	u.path = rest[:end]
	rest = rest[end:]

	if strings.HasPrefix(rest, "?") {
		rest = rest[1:]
		end = indexOrLen(rest, "#")
		u.hasQuery = true
		u.rawQuery = rest[:end]
		rest = rest[end:]
	}

	if strings.HasPrefix(rest, "#") {
		u.hasFragment = true
		u.setFragmentText(rest[1:])
	}

	return u
}

func indexOrLen(s, chars string) int {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return i
	}
	return len(s)
}

// Clone returns an independent copy of u.
func (u *URI) Clone() *URI {
	c := *u
	return &c
}

// String reassembles all segments in a single pass.
func (u *URI) String() string {
	var sb strings.Builder
	sb.Grow(len(u.lead) + len(u.scheme) + len(u.separator) + len(u.authority) +
		len(u.path) + len(u.rawQuery) + len(u.fragment) + len(u.tail) + 2)

	sb.WriteString(u.lead)
	sb.WriteString(u.scheme)
	sb.WriteString(u.separator)
	sb.WriteString(u.authority)
	sb.WriteString(u.path)
	if u.hasQuery {
		sb.WriteByte('?')
		sb.WriteString(u.rawQuery)
	}
	if u.hasFragment {
		sb.WriteByte('#')
		sb.WriteString(u.fragment)
		sb.WriteString(u.tail)
	}
	return sb.String()
}

func (u *URI) Scheme() string          { return u.scheme }
func (u *URI) SchemeSeparator() string { return u.separator }
func (u *URI) Authority() string       { return u.authority }
func (u *URI) UserInformation() string { return u.auth.userInfo }
func (u *URI) Host() string            { return u.auth.host }
func (u *URI) Port() string            { return u.auth.port }
func (u *URI) Path() string            { return u.path }
func (u *URI) QueryString() string     { return u.rawQuery }
func (u *URI) Fragment() string        { return u.fragment }

// IsIPv6 reports whether the host was written as a bracketed literal.
func (u *URI) IsIPv6() bool { return u.auth.ipv6 }

// Query splits the query string into a key/value mapping. See ParseQuery.
func (u *URI) Query() (map[string]string, error) {
	return ParseQuery(u.rawQuery)
}

// Lookup returns the text of component c. Unlike the plain accessors it
// reports ErrComponentAbsent when the component does not occur at all and a
// *MalformedHostError when the host literal is unterminated. A component
// whose marker is present but whose text is empty ("http://host?") yields
// "" and a nil error.
func (u *URI) Lookup(c Component) (string, error) {
	switch c {
	case ComponentScheme:
		return present(u.scheme, u.scheme != "")
	case ComponentSchemeSeparator:
		return present(u.separator, u.separator != "")
	case ComponentAuthority:
		return present(u.authority, u.authority != "" || u.separator == "://")
	case ComponentUserInformation:
		return present(u.auth.userInfo, u.auth.hasUserInfo)
	case ComponentHost:
		if u.auth.malformed {
			return "", &MalformedHostError{Authority: u.authority}
		}
		return present(u.auth.host, u.auth.host != "" || u.auth.ipv6)
	case ComponentPort:
		if u.auth.malformed {
			return "", &MalformedHostError{Authority: u.authority}
		}
		return present(u.auth.port, u.auth.hasPort)
	case ComponentPath:
		return present(u.path, u.path != "")
	case ComponentQueryString:
		return present(u.rawQuery, u.hasQuery)
	case ComponentFragment:
		return present(u.fragment, u.hasFragment)
	}
	return "", ErrUnknownComponent
}

func present(value string, ok bool) (string, error) {
	if !ok {
		return "", ErrComponentAbsent
	}
	return value, nil
}
