/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package uri

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Params holds query parameters to serialize. Values of any type are
// written in their canonical text form.
type Params map[string]any

func isQuerySeparator(r rune) bool {
	return r == '&' || r == ';'
}

// ParseQuery splits a raw query string on '&' or ';' and each segment on its
// first '='. A segment without '=' fails, empty segments included; only an
// empty query string yields an empty mapping. A later duplicate key
// overwrites an earlier one. Values are not percent-decoded.
func ParseQuery(rawQuery string) (map[string]string, error) {
	values := make(map[string]string)
	if rawQuery == "" {
		return values, nil
	}

	for i, segment := range splitQuery(rawQuery) {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, &MalformedQueryError{Segment: segment, Index: i}
		}
		values[key] = value
	}
	return values, nil
}

// splitQuery splits on every separator and keeps empty segments.
func splitQuery(rawQuery string) []string {
	segments := make([]string, 0, strings.Count(rawQuery, "&")+strings.Count(rawQuery, ";")+1)
	for {
		i := strings.IndexFunc(rawQuery, isQuerySeparator)
		if i < 0 {
			return append(segments, rawQuery)
		}
		segments = append(segments, rawQuery[:i])
		rawQuery = rawQuery[i+1:]
	}
}

// QueryToString serializes params as key=value pairs joined by delim
// ("&" when empty). Keys are written in sorted order.
func QueryToString(params Params, delim string) string {
	if len(params) == 0 {
		return ""
	}
	if delim == "" {
		delim = DefaultQueryDelimiter
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(stringify(params[k]))
	}
	return sb.String()
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
