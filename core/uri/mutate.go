/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

// The edit methods change one segment in place and return the receiver so
// edits can be chained. Every other segment keeps its bytes.

// AppendScheme prepends scheme+sep unless u already has a scheme.
// An empty sep means DefaultSchemeSeparator.
func (u *URI) AppendScheme(scheme, sep string) *URI {
	if u.scheme != "" || scheme == "" {
		return u
	}
	u.setScheme(scheme, sep)
	return u
}

// ReplaceScheme drops the current scheme and separator, then prepends
// scheme+sep when scheme is non-empty.
func (u *URI) ReplaceScheme(scheme, sep string) *URI {
	u.scheme, u.separator = "", ""
	if scheme != "" {
		u.setScheme(scheme, sep)
	}
	return u
}

func (u *URI) setScheme(scheme, sep string) {
	if sep == "" {
		sep = DefaultSchemeSeparator
	}
	u.scheme = scheme
	u.separator = sep
}

// AppendAuthority sets the authority only when u has none yet.
func (u *URI) AppendAuthority(authority string) *URI {
	if u.authority != "" {
		return u
	}
	u.setAuthority(authority)
	return u
}

// ReplaceAuthority swaps the authority, empty or not.
func (u *URI) ReplaceAuthority(authority string) *URI {
	u.setAuthority(authority)
	return u
}

// AppendPath concatenates path onto the current path.
func (u *URI) AppendPath(path string) *URI {
	u.path += path
	return u
}

// ReplacePath swaps the path.
func (u *URI) ReplacePath(path string) *URI {
	u.path = path
	return u
}

// AppendQuery serializes params with delim and joins them onto the current
// query string, adding the '?' marker if there is none.
func (u *URI) AppendQuery(params Params, delim string) *URI {
	if delim == "" {
		delim = DefaultQueryDelimiter
	}
	serialized := QueryToString(params, delim)
	if serialized == "" {
		return u
	}
	if u.rawQuery != "" {
		u.rawQuery += delim + serialized
	} else {
		u.rawQuery = serialized
	}
	u.hasQuery = true
	return u
}

// ReplaceQuery drops the '?' marker and query string and writes params in
// their place. Empty params leave the URI without a query.
func (u *URI) ReplaceQuery(params Params) *URI {
	u.rawQuery = QueryToString(params, DefaultQueryDelimiter)
	u.hasQuery = u.rawQuery != ""
	return u
}

// AppendFragment adds "#fragment" when u has no fragment. An existing
// fragment gets the text appended to the end of the URI as-is, without a
// separator. A '#' followed by no word characters counts as no fragment.
func (u *URI) AppendFragment(fragment string) *URI {
	if fragment == "" {
		return u
	}
	if !u.hasFragment {
		u.hasFragment = true
		u.setFragmentText(fragment)
		return u
	}
	text := u.fragment + u.tail
	if u.fragment == "" {
		text += "#"
	}
	u.setFragmentText(text + fragment)
	return u
}

// setFragmentText splits the text after the first '#' into the fragment
// word run and the bytes that follow it.
func (u *URI) setFragmentText(text string) {
	word := rxFragmentWord.FindString(text)
	u.fragment = word
	u.tail = text[len(word):]
}

// ReplaceHost swaps only the host of the authority, keeping user
// information and port. A host containing ':' is bracketed.
func (u *URI) ReplaceHost(host string) *URI {
	u.setAuthority(BuildAuthority(u.auth.userInfo, host, u.auth.port))
	return u
}
