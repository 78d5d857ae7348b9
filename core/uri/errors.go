/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrComponentAbsent is returned by Lookup for a component that does not occur.
	ErrComponentAbsent = errors.New("uri component absent")
	// ErrUnknownComponent is returned for an out of range or unknown component name.
	ErrUnknownComponent = errors.New("unknown uri component")
)

// MalformedQueryError reports a query segment that has no '='.
type MalformedQueryError struct {
	Segment string
	Index   int // position of the segment among the non-empty segments
}

func (e *MalformedQueryError) Error() string {
	return fmt.Sprintf("malformed query: segment %d %q has no '='", e.Index, e.Segment)
}

// IsMalformedQuery reports whether err is, or wraps, a *MalformedQueryError.
func IsMalformedQuery(err error) bool {
	var mqe *MalformedQueryError
	return errors.As(err, &mqe)
}

// MalformedHostError reports an IPv6 literal opened with '[' but never closed.
type MalformedHostError struct {
	Authority string
}

func (e *MalformedHostError) Error() string {
	return fmt.Sprintf("malformed host: unterminated IP literal in authority %q", e.Authority)
}

// InvalidURIError wraps the RFC 3986 validation failure of a URI.
type InvalidURIError struct {
	URI string
	Err error
}

func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid uri %q: %v", e.URI, e.Err)
}

func (e *InvalidURIError) Unwrap() error { return e.Err }
