// Package pagetoken defines the page token format shared by all pta backends.
//
// A token wraps a backend-native cursor (for every current backend, the last
// id of the previous page) in a versioned, URL-safe string.
package pagetoken

import (
	"encoding/base64"
	"errors"
	"strings"
)

const prefix = "v1:"

// ErrMalformed reports a token that was not produced by Encode.
var ErrMalformed = errors.New("malformed page token")

// Encode wraps a native cursor. An empty cursor encodes to the empty token.
func Encode(native string) string {
	if native == "" {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(prefix + native))
}

// Decode unwraps a token produced by Encode. The empty token decodes to the
// empty cursor (first page).
func Decode(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrMalformed
	}
	native, ok := strings.CutPrefix(string(raw), prefix)
	if !ok || native == "" {
		return "", ErrMalformed
	}
	return native, nil
}
