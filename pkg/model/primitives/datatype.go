package primitives

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

var (
	ErrIncompatibleValue = errors.New("incompatible value")
	ErrNonConforming     = errors.New("value does not conform to data type")
	ErrParse             = errors.New("invalid literal")
)

// PropertyValue is an immutable value of a property.
// All implementations are pointer types, a nil pointer
// represents the null value.
type PropertyValue interface {
	// String provides the canonical string representation
	// accepted by the Parse method of the value's data type.
	String() string
	Equals(PropertyValue) bool
	DataTypeName() string
}

// DataType describes the set of values a property may take.
type DataType interface {
	Name() string
	Supertype() DataType
	DefaultValue() PropertyValue

	// Conforms checks whether a value is acceptable for the data type.
	// It returns an error matching ErrIncompatibleValue for values of
	// the wrong class and ErrNonConforming for values violating
	// a constraint of the data type.
	Conforms(v PropertyValue) error
	Parse(s string) (PropertyValue, error)
	ValueType() reflect.Type

	String() string
}

// IsNull checks for the null value. This is the nil interface or
// a typed nil pointer.
func IsNull(v PropertyValue) bool {
	if v == nil {
		return true
	}
	r := reflect.ValueOf(v)
	return r.Kind() == reflect.Pointer && r.IsNil()
}

// EqualValues compares two values, null values are equal.
func EqualValues(a, b PropertyValue) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) == IsNull(b)
	}
	return a.Equals(b)
}

// ToString provides the string representation of a value or
// nil for the null value.
func ToString(v PropertyValue) *string {
	if IsNull(v) {
		return nil
	}
	return utils.Pointer(v.String())
}

// IsSubtypeOf checks whether a data type is a (transitive) restriction
// of another data type.
func IsSubtypeOf(t, of DataType) bool {
	for t != nil {
		if t == of {
			return true
		}
		t = t.Supertype()
	}
	return false
}

type dataType[V PropertyValue] struct {
	name  string
	super DataType
}

func (d *dataType[V]) Name() string {
	return d.name
}

func (d *dataType[V]) Supertype() DataType {
	return d.super
}

func (d *dataType[V]) ValueType() reflect.Type {
	return utils.TypeOf[V]()
}

// cast checks the value class. ok is false for the null value.
func (d *dataType[V]) cast(v PropertyValue) (V, bool, error) {
	var _nil V

	if IsNull(v) {
		return _nil, false, nil
	}
	t, ok := v.(V)
	if !ok {
		return _nil, false, fmt.Errorf("%s value expected, but found %s: %w", d.name, v.DataTypeName(), ErrIncompatibleValue)
	}
	return t, true, nil
}

func (d *dataType[V]) parseError(s string, err error) error {
	if err == nil {
		return fmt.Errorf("%w for %s: %q", ErrParse, d.name, s)
	}
	return fmt.Errorf("%w for %s: %q: %w", ErrParse, d.name, s, err)
}

func nonConforming(dt DataType, v PropertyValue, msg string, args ...interface{}) error {
	return fmt.Errorf("%s for %s: %s: %w", v, dt, fmt.Sprintf(msg, args...), ErrNonConforming)
}
