/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import (
	"strings"

	rfc3986 "github.com/fredbi/uri"
)

// Validate checks raw against the RFC 3986 URI-reference grammar. The
// component accessors never require this; it is meant for callers that want
// to reject an edit result before using it.
//
// References made of only a query or fragment ("?a=1", "#top") have an empty
// path; they are checked with a "/" path in front.
func Validate(raw string) error {
	ref := raw
	if strings.HasPrefix(ref, "?") || strings.HasPrefix(ref, "#") {
		ref = "/" + ref
	}
	if _, err := rfc3986.ParseReference(ref); err != nil {
		return &InvalidURIError{URI: raw, Err: err}
	}
	return nil
}

// IsAbsolute reports whether raw is a valid absolute URI (scheme required).
func IsAbsolute(raw string) bool {
	return rfc3986.IsURI(raw)
}
