/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/

/*
Package uri splits URI-like strings into their RFC 3986 components and
rebuilds them after editing a single component.

Every accessor and mutator works on a one-time parse (see Parse). The parse
keeps each segment of the input as-is, so an edit to one component never
touches the bytes of another one:

	u := uri.Parse("http://user@example.com:8080/a/b?x=1#top")
	u.Host()                     // "example.com"
	u.ReplacePath("/c").String() // "http://user@example.com:8080/c?x=1#top"

Accessors soft-fail: a component that cannot be located reads as "". Use
(*URI).Lookup to tell an absent component from a malformed one. The only
hard failure is a query segment without '=' (see MalformedQueryError).

No component is percent-decoded or normalized. Scheme and fragment word
characters are ASCII only ([A-Za-z0-9_]), so "http://h/#café" has the
fragment "caf".
*/
package uri
