package primitives

import (
	"strings"
)

const BOOLEAN = "Boolean"

type BooleanValue struct {
	value bool
}

var _ PropertyValue = (*BooleanValue)(nil)

var (
	TRUE  = &BooleanValue{true}
	FALSE = &BooleanValue{false}
)

func NewBoolean(b bool) *BooleanValue {
	if b {
		return TRUE
	}
	return FALSE
}

func (v *BooleanValue) Value() bool {
	return v.value
}

func (v *BooleanValue) String() string {
	if v.value {
		return "TRUE"
	}
	return "FALSE"
}

func (v *BooleanValue) DataTypeName() string {
	return BOOLEAN
}

func (v *BooleanValue) Equals(o PropertyValue) bool {
	if b, ok := o.(*BooleanValue); ok && b != nil {
		return v.value == b.value
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type BooleanDataType struct {
	dataType[*BooleanValue]
}

var _ DataType = (*BooleanDataType)(nil)

var TheBooleanType = &BooleanDataType{dataType[*BooleanValue]{name: BOOLEAN}}

func (d *BooleanDataType) DefaultValue() PropertyValue {
	return FALSE
}

func (d *BooleanDataType) Conforms(v PropertyValue) error {
	_, _, err := d.cast(v)
	return err
}

func (d *BooleanDataType) Parse(s string) (PropertyValue, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return TRUE, nil
	case "FALSE":
		return FALSE, nil
	}
	return nil, d.parseError(s, nil)
}

func (d *BooleanDataType) String() string {
	return d.name
}
