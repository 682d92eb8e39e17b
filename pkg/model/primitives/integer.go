package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

const INTEGER = "Integer"

type IntegerValue struct {
	value int64
}

var _ PropertyValue = (*IntegerValue)(nil)

func NewInteger(i int64) *IntegerValue {
	return &IntegerValue{i}
}

func (v *IntegerValue) Value() int64 {
	return v.value
}

func (v *IntegerValue) String() string {
	return strconv.FormatInt(v.value, 10)
}

func (v *IntegerValue) DataTypeName() string {
	return INTEGER
}

func (v *IntegerValue) Equals(o PropertyValue) bool {
	if i, ok := o.(*IntegerValue); ok && i != nil {
		return v.value == i.value
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type IntegerDataType struct {
	dataType[*IntegerValue]
	min *int64
	max *int64
}

var _ DataType = (*IntegerDataType)(nil)

var TheIntegerType = &IntegerDataType{dataType: dataType[*IntegerValue]{name: INTEGER}}

// NewIntegerDataType provides a range restricted integer type.
// A nil bound means unrestricted.
func NewIntegerDataType(min, max *int64) *IntegerDataType {
	return &IntegerDataType{
		dataType: dataType[*IntegerValue]{name: INTEGER, super: TheIntegerType},
		min:      min,
		max:      max,
	}
}

func (d *IntegerDataType) Min() *int64 {
	return d.min
}

func (d *IntegerDataType) Max() *int64 {
	return d.max
}

func (d *IntegerDataType) DefaultValue() PropertyValue {
	if d.min != nil && *d.min > 0 {
		return NewInteger(*d.min)
	}
	if d.max != nil && *d.max < 0 {
		return NewInteger(*d.max)
	}
	return NewInteger(0)
}

func (d *IntegerDataType) Conforms(v PropertyValue) error {
	i, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if d.min != nil && i.value < *d.min {
		return nonConforming(d, i, "below minimum")
	}
	if d.max != nil && i.value > *d.max {
		return nonConforming(d, i, "above maximum")
	}
	return nil
}

func (d *IntegerDataType) Parse(s string) (PropertyValue, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewInteger(i), nil
}

func (d *IntegerDataType) String() string {
	if d.min == nil && d.max == nil {
		return d.name
	}
	f := func(i int64) string { return strconv.FormatInt(i, 10) }
	return fmt.Sprintf("%s[%s..%s]", d.name, bound(d.min, f), bound(d.max, f))
}
