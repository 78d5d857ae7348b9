/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

// String level helpers. Each one parses its input once and reads or edits a
// single component; see the URI methods of the same name for the rules.

func Scheme(uri string) string          { return Parse(uri).Scheme() }
func SchemeSeparator(uri string) string { return Parse(uri).SchemeSeparator() }
func Authority(uri string) string       { return Parse(uri).Authority() }
func UserInformation(uri string) string { return Parse(uri).UserInformation() }
func Host(uri string) string            { return Parse(uri).Host() }
func Port(uri string) string            { return Parse(uri).Port() }
func Path(uri string) string            { return Parse(uri).Path() }
func QueryString(uri string) string     { return Parse(uri).QueryString() }
func Fragment(uri string) string        { return Parse(uri).Fragment() }

// Query returns the query mapping of uri, or a *MalformedQueryError.
func Query(uri string) (map[string]string, error) {
	return Parse(uri).Query()
}

func AppendScheme(uri, scheme, sep string) string {
	return Parse(uri).AppendScheme(scheme, sep).String()
}

func AppendAuthority(uri, authority string) string {
	return Parse(uri).AppendAuthority(authority).String()
}

func AppendPath(uri, path string) string {
	return Parse(uri).AppendPath(path).String()
}

func AppendQuery(uri string, params Params, delim string) string {
	return Parse(uri).AppendQuery(params, delim).String()
}

func AppendFragment(uri, fragment string) string {
	return Parse(uri).AppendFragment(fragment).String()
}

func ReplaceScheme(uri, scheme, sep string) string {
	return Parse(uri).ReplaceScheme(scheme, sep).String()
}

func ReplaceAuthority(uri, authority string) string {
	return Parse(uri).ReplaceAuthority(authority).String()
}

func ReplacePath(uri, path string) string {
	return Parse(uri).ReplacePath(path).String()
}

func ReplaceQuery(uri string, params Params) string {
	return Parse(uri).ReplaceQuery(params).String()
}

// BuildURI concatenates the given components, adding '?' and '#' only for a
// non-empty query and fragment. An empty sep after a non-empty scheme means
// DefaultSchemeSeparator.
func BuildURI(scheme, sep, authority, path, query, fragment string) string {
	u := &URI{path: path}
	if scheme != "" {
		u.setScheme(scheme, sep)
	}
	u.setAuthority(authority)
	if query != "" {
		u.hasQuery = true
		u.rawQuery = query
	}
	if fragment != "" {
		u.hasFragment = true
		u.setFragmentText(fragment)
	}
	return u.String()
}

func ReplaceHost(uri, host string) string {
	return Parse(uri).ReplaceHost(host).String()
}
