/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"encoding/base64"
	"fmt"

	"github.com/VictoriaMetrics/VictoriaMetrics/lib/bytesutil"
	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"
)

const planTokenVersion byte = 1

var planTokenBuff bytesutil.ByteBufferPool

// EncodePlanToken packs a plan into a short, URL safe token that can be
// replayed later with DecodePlanToken.
/*
Token structure (before snappy + base64url):

[Version][msgpack(Plan)]

Version (1 byte):
[0x01]

Plan (msgpack map):
{"edits": [{"op": "replace-host", "value": "cdn.example.net"}, ...], "strict": true}

Final output: base64url(snappy(above_bytes)), no padding
*/
func EncodePlanToken(plan *Plan) (string, error) {
	if err := plan.Validate(); err != nil {
		return "", err
	}

	bb := planTokenBuff.Get()
	defer planTokenBuff.Put(bb)

	bb.B = append(bb.B, planTokenVersion)

	enc := msgpack.NewEncoder(bb)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(plan); err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	compressed := snappy.Encode(nil, bb.B)
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// DecodePlanToken reverses EncodePlanToken. The decoded plan is validated
// before it is returned.
func DecodePlanToken(token string) (*Plan, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode base64: %v", ErrInvalidToken, err)
	}

	b, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress: %v", ErrInvalidToken, err)
	}

	if len(b) < 2 {
		return nil, fmt.Errorf("%w: too short", ErrInvalidToken)
	}

	if b[0] != planTokenVersion {
		return nil, fmt.Errorf("%w: unsupported token version: %d", ErrInvalidToken, b[0])
	}

	plan := &Plan{}
	if err := msgpack.Unmarshal(b[1:], plan); err != nil {
		return nil, fmt.Errorf("%w: failed to decode plan: %v", ErrInvalidToken, err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}
