package utils

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
)

// TryCast converts a value to T, if its dynamic type allows it.
func TryCast[T, O any](o O) (T, bool) {
	t, ok := any(o).(T)
	return t, ok
}

// Cast converts a value to T and panics if this is not possible.
func Cast[T, O any](o O) T {
	return any(o).(T)
}

func Pointer[T any](t T) *T {
	return &t
}

// TypeOf provides the reflect type of T, also for interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// MapKeys returns the keys of a map, sorted with the optional
// comparison function.
func MapKeys[K comparable, V any](m map[K]V, cmp ...func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if len(cmp) > 0 {
		slices.SortFunc(keys, cmp[0])
	}
	return keys
}

func OrderedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := MapKeys(m)
	slices.Sort(keys)
	return keys
}

type Stringable interface {
	String() string
}

// Join joins the string representations of the list elements.
// The default separator is ", ".
func Join[S Stringable](list []S, seps ...string) string {
	return JoinFunc(list, OptionalDefaulted(", ", seps...), S.String)
}

func JoinFunc[S any](list []S, separator string, f func(S) string) string {
	var b strings.Builder
	for i, e := range list {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(f(e))
	}
	return b.String()
}

// AppendUnique appends elements not yet contained in the slice.
func AppendUnique[E comparable, A ~[]E](in A, add ...E) A {
	for _, v := range add {
		if !slices.Contains(in, v) {
			in = append(in, v)
		}
	}
	return in
}

// TransformSlice maps the elements of a slice. A nil slice is mapped to nil.
func TransformSlice[E any, A ~[]E, T any](in A, m func(E) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, m(v))
	}
	return out
}

// FilterSlice returns the elements matching the filter, preserving the order.
func FilterSlice[E any, A ~[]E](in A, f func(E) bool) A {
	var out A
	for _, v := range in {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}
