/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"errors"

	"github.com/slicingmelon/urisplice/core/uri"
)

// ComponentValue is the result of looking up one component.
type ComponentValue struct {
	Component uri.Component
	Value     string
	Present   bool
	Err       error // *uri.MalformedHostError, nil otherwise
}

// Inspection is the full decomposition of one input URI.
type Inspection struct {
	Input      string
	Components []ComponentValue
	Query      map[string]string
	QueryErr   error
	Valid      bool
	ValidErr   error
	IPv6       bool
	Absolute   bool
}

// Inspect decomposes raw once and records every component, the query
// mapping and the RFC 3986 validation result.
func Inspect(raw string) *Inspection {
	u := uri.Parse(raw)

	in := &Inspection{
		Input:      raw,
		Components: make([]ComponentValue, 0, len(uri.Components)),
		IPv6:       u.IsIPv6(),
		Absolute:   uri.IsAbsolute(raw),
	}

	for _, c := range uri.Components {
		value, err := u.Lookup(c)
		cv := ComponentValue{Component: c, Value: value, Present: err == nil}
		if err != nil && !errors.Is(err, uri.ErrComponentAbsent) {
			cv.Err = err
		}
		in.Components = append(in.Components, cv)
	}

	in.Query, in.QueryErr = u.Query()
	in.ValidErr = uri.Validate(raw)
	in.Valid = in.ValidErr == nil
	return in
}

// Value returns the looked up value of c.
func (in *Inspection) Value(c uri.Component) (ComponentValue, bool) {
	for _, cv := range in.Components {
		if cv.Component == c {
			return cv, true
		}
	}
	return ComponentValue{}, false
}

// Err returns the first hard failure found while inspecting: a malformed
// query first, then a malformed host.
func (in *Inspection) Err() error {
	if in.QueryErr != nil {
		return in.QueryErr
	}
	for _, cv := range in.Components {
		if cv.Err != nil {
			return cv.Err
		}
	}
	return nil
}
