/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import (
	"fmt"
	"strings"
)

// Component names one part of a URI.
type Component int

const (
	ComponentScheme Component = iota
	ComponentSchemeSeparator
	ComponentAuthority
	ComponentUserInformation
	ComponentHost
	ComponentPort
	ComponentPath
	ComponentQueryString
	ComponentFragment
)

var componentNames = []string{
	ComponentScheme:          "scheme",
	ComponentSchemeSeparator: "scheme-separator",
	ComponentAuthority:       "authority",
	ComponentUserInformation: "userinfo",
	ComponentHost:            "host",
	ComponentPort:            "port",
	ComponentPath:            "path",
	ComponentQueryString:     "query",
	ComponentFragment:        "fragment",
}

// Components lists every component in the order it appears in a URI.
var Components = []Component{
	ComponentScheme,
	ComponentSchemeSeparator,
	ComponentAuthority,
	ComponentUserInformation,
	ComponentHost,
	ComponentPort,
	ComponentPath,
	ComponentQueryString,
	ComponentFragment,
}

func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// ParseComponent maps a component name (case-insensitive) back to its Component.
func ParseComponent(name string) (Component, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range componentNames {
		if n == name {
			return Component(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
}
