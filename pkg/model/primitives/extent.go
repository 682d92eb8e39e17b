package primitives

import (
	"fmt"
)

const EXTENT = "Extent"

type ExtentValue struct {
	width  float64
	height float64
}

var _ PropertyValue = (*ExtentValue)(nil)

func NewExtent(w, h float64) *ExtentValue {
	return &ExtentValue{w, h}
}

func (v *ExtentValue) Width() float64 {
	return v.width
}

func (v *ExtentValue) Height() float64 {
	return v.height
}

func (v *ExtentValue) String() string {
	return fmt.Sprintf("[%s;%s]", formatFloat(v.width), formatFloat(v.height))
}

func (v *ExtentValue) DataTypeName() string {
	return EXTENT
}

func (v *ExtentValue) Equals(o PropertyValue) bool {
	if e, ok := o.(*ExtentValue); ok && e != nil {
		return v.width == e.width && v.height == e.height
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type ExtentDataType struct {
	dataType[*ExtentValue]
}

var _ DataType = (*ExtentDataType)(nil)

var TheExtentType = &ExtentDataType{dataType[*ExtentValue]{name: EXTENT}}

func (d *ExtentDataType) DefaultValue() PropertyValue {
	return NewExtent(0, 0)
}

func (d *ExtentDataType) Conforms(v PropertyValue) error {
	e, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if e.width < 0 || e.height < 0 {
		return nonConforming(d, e, "negative extent")
	}
	return nil
}

func (d *ExtentDataType) Parse(s string) (PropertyValue, error) {
	values, err := parseFloats(s, "[]", 2)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewExtent(values[0], values[1]), nil
}

func (d *ExtentDataType) String() string {
	return d.name
}
