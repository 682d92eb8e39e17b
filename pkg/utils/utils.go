package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/gowebpki/jcs"
	"github.com/modern-go/reflect2"
)

// OptionalDefaulted returns the first non-zero optional argument
// or the default.
func OptionalDefaulted[T any](def T, args ...T) T {
	for _, e := range args {
		if !reflect.ValueOf(&e).Elem().IsZero() {
			return e
		}
	}
	return def
}

// HashData provides a sha256 hash for the canonical JSON form of the
// given data, for example the fingerprint of a subject area specification.
// Byte slices and strings are hashed as they are.
func HashData(d interface{}) string {
	if reflect2.IsNil(d) {
		return ""
	}
	var data []byte
	switch b := d.(type) {
	case []byte:
		data = b
	case string:
		data = []byte(b)
	default:
		raw, err := json.Marshal(d)
		if err == nil {
			data, err = jcs.Transform(raw)
		}
		if err != nil {
			panic(fmt.Sprintf("cannot canonicalize %T: %s", d, err))
		}
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Cycle returns the cycle closed by id, if id
// is already on the stack.
func Cycle[T comparable](id T, stack ...T) []T {
	i := slices.Index(stack, id)
	if i < 0 {
		return nil
	}
	return append(slices.Clone(stack[i:]), id)
}
