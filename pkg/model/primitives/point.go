package primitives

import (
	"fmt"
	"math"
)

const POINT = "Point"

type PointValue struct {
	x float64
	y float64
}

var _ PropertyValue = (*PointValue)(nil)

func NewPoint(x, y float64) *PointValue {
	return &PointValue{x, y}
}

func (v *PointValue) X() float64 {
	return v.x
}

func (v *PointValue) Y() float64 {
	return v.y
}

func (v *PointValue) Distance(o *PointValue) float64 {
	return math.Hypot(v.x-o.x, v.y-o.y)
}

func (v *PointValue) String() string {
	return fmt.Sprintf("(%s;%s)", formatFloat(v.x), formatFloat(v.y))
}

func (v *PointValue) DataTypeName() string {
	return POINT
}

func (v *PointValue) Equals(o PropertyValue) bool {
	if p, ok := o.(*PointValue); ok && p != nil {
		return v.x == p.x && v.y == p.y
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type PointDataType struct {
	dataType[*PointValue]
}

var _ DataType = (*PointDataType)(nil)

var ThePointType = &PointDataType{dataType[*PointValue]{name: POINT}}

func (d *PointDataType) DefaultValue() PropertyValue {
	return NewPoint(0, 0)
}

func (d *PointDataType) Conforms(v PropertyValue) error {
	_, _, err := d.cast(v)
	return err
}

func (d *PointDataType) Parse(s string) (PropertyValue, error) {
	values, err := parseFloats(s, "()", 2)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewPoint(values[0], values[1]), nil
}

func (d *PointDataType) String() string {
	return d.name
}
