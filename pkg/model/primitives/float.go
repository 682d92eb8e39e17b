package primitives

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const FLOAT = "Float"

type FloatValue struct {
	value float64
}

var _ PropertyValue = (*FloatValue)(nil)

func NewFloat(f float64) *FloatValue {
	return &FloatValue{f}
}

func (v *FloatValue) Value() float64 {
	return v.value
}

func (v *FloatValue) String() string {
	return formatFloat(v.value)
}

func (v *FloatValue) DataTypeName() string {
	return FLOAT
}

func (v *FloatValue) Equals(o PropertyValue) bool {
	if f, ok := o.(*FloatValue); ok && f != nil {
		return v.value == f.value || (math.IsNaN(v.value) && math.IsNaN(f.value))
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type FloatDataType struct {
	dataType[*FloatValue]
	min *float64
	max *float64
}

var _ DataType = (*FloatDataType)(nil)

var TheFloatType = &FloatDataType{dataType: dataType[*FloatValue]{name: FLOAT}}

// NewFloatDataType provides a range restricted float type.
// A nil bound means unrestricted.
func NewFloatDataType(min, max *float64) *FloatDataType {
	return &FloatDataType{
		dataType: dataType[*FloatValue]{name: FLOAT, super: TheFloatType},
		min:      min,
		max:      max,
	}
}

func (d *FloatDataType) Min() *float64 {
	return d.min
}

func (d *FloatDataType) Max() *float64 {
	return d.max
}

func (d *FloatDataType) DefaultValue() PropertyValue {
	if d.min != nil && *d.min > 0 {
		return NewFloat(*d.min)
	}
	if d.max != nil && *d.max < 0 {
		return NewFloat(*d.max)
	}
	return NewFloat(0)
}

func (d *FloatDataType) Conforms(v PropertyValue) error {
	f, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if math.IsNaN(f.value) {
		return nonConforming(d, f, "not a number")
	}
	if (d.min != nil || d.max != nil) && math.IsInf(f.value, 0) {
		return nonConforming(d, f, "infinite value for bounded range")
	}
	if d.min != nil && f.value < *d.min {
		return nonConforming(d, f, "below minimum")
	}
	if d.max != nil && f.value > *d.max {
		return nonConforming(d, f, "above maximum")
	}
	return nil
}

func (d *FloatDataType) Parse(s string) (PropertyValue, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewFloat(f), nil
}

func (d *FloatDataType) String() string {
	if d.min == nil && d.max == nil {
		return d.name
	}
	return fmt.Sprintf("%s[%s..%s]", d.name, bound(d.min, formatFloat), bound(d.max, formatFloat))
}

func bound[T any](b *T, f func(T) string) string {
	if b == nil {
		return ""
	}
	return f(*b)
}
