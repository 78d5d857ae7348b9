/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"fmt"
	"strings"

	"github.com/slicingmelon/urisplice/core/uri"
)

// Op names one edit applied to a URI.
type Op string

const (
	OpAppendScheme     Op = "append-scheme"
	OpReplaceScheme    Op = "replace-scheme"
	OpAppendAuthority  Op = "append-authority"
	OpReplaceAuthority Op = "replace-authority"
	OpReplaceHost      Op = "replace-host"
	OpAppendPath       Op = "append-path"
	OpReplacePath      Op = "replace-path"
	OpAppendQuery      Op = "append-query"
	OpReplaceQuery     Op = "replace-query"
	OpAppendFragment   Op = "append-fragment"
)

// AvailableOps lists every supported edit, true if it takes Params instead of Value
var AvailableOps = map[Op]bool{
	OpAppendScheme:     false,
	OpReplaceScheme:    false,
	OpAppendAuthority:  false,
	OpReplaceAuthority: false,
	OpReplaceHost:      false,
	OpAppendPath:       false,
	OpReplacePath:      false,
	OpAppendQuery:      true,
	OpReplaceQuery:     true,
	OpAppendFragment:   false,
}

// Edit is a single component edit. Separator is the scheme separator for
// scheme edits and the pair delimiter for append-query.
type Edit struct {
	Op        Op                `msgpack:"op"`
	Value     string            `msgpack:"value,omitempty"`
	Separator string            `msgpack:"sep,omitempty"`
	Params    map[string]string `msgpack:"params,omitempty"`
}

func (e Edit) String() string {
	if AvailableOps[e.Op] {
		return fmt.Sprintf("%s(%s)", e.Op, uri.QueryToString(toParams(e.Params), e.Separator))
	}
	return fmt.Sprintf("%s(%s)", e.Op, e.Value)
}

// Plan is an ordered list of edits. With Strict set, the result of Apply must
// pass RFC 3986 validation.
type Plan struct {
	Edits  []Edit `msgpack:"edits"`
	Strict bool   `msgpack:"strict,omitempty"`
}

// ParseOp maps an op name back to its Op.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := AvailableOps[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return op, nil
}

// ParseParams reads "k1=v1&k2=v2" (or ';' separated) into query params. A
// pair without '=' fails with the uri package's *MalformedQueryError.
func ParseParams(raw string) (map[string]string, error) {
	return uri.ParseQuery(raw)
}

// Validate checks that every edit names a known op.
func (p *Plan) Validate() error {
	if p == nil || len(p.Edits) == 0 {
		return ErrEmptyPlan
	}
	for i, e := range p.Edits {
		if _, ok := AvailableOps[e.Op]; !ok {
			return &Error{Kind: ErrKindPlan, Err: fmt.Errorf("edit %d: %w: %q", i, ErrUnknownOp, e.Op)}
		}
	}
	return nil
}

// Apply parses raw once, runs every edit on the parsed form in order and
// reassembles the result.
func (p *Plan) Apply(raw string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	u := uri.Parse(raw)
	for _, e := range p.Edits {
		e.apply(u)
	}
	out := u.String()

	if p.Strict {
		if err := uri.Validate(out); err != nil {
			return out, &Error{Kind: ErrKindInvalidURI, Input: raw, Err: err}
		}
	}
	return out, nil
}

func (e Edit) apply(u *uri.URI) {
	switch e.Op {
	case OpAppendScheme:
		u.AppendScheme(e.Value, e.Separator)
	case OpReplaceScheme:
		u.ReplaceScheme(e.Value, e.Separator)
	case OpAppendAuthority:
		u.AppendAuthority(e.Value)
	case OpReplaceAuthority:
		u.ReplaceAuthority(e.Value)
	case OpReplaceHost:
		u.ReplaceHost(e.Value)
	case OpAppendPath:
		u.AppendPath(e.Value)
	case OpReplacePath:
		u.ReplacePath(e.Value)
	case OpAppendQuery:
		u.AppendQuery(toParams(e.Params), e.Separator)
	case OpReplaceQuery:
		u.ReplaceQuery(toParams(e.Params))
	case OpAppendFragment:
		u.AppendFragment(e.Value)
	}
}

func toParams(m map[string]string) uri.Params {
	if len(m) == 0 {
		return nil
	}
	params := make(uri.Params, len(m))
	for k, v := range m {
		params[k] = v
	}
	return params
}
