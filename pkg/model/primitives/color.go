package primitives

import (
	"fmt"
)

const COLOR = "Color"

// ColorValue is a RGBA color.
type ColorValue struct {
	rgba uint32
}

var _ PropertyValue = (*ColorValue)(nil)

func NewColor(r, g, b, a int) *ColorValue {
	return &ColorValue{
		uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff),
	}
}

// NewColorFromARGB creates a color from a packed
// alpha-red-green-blue value.
func NewColorFromARGB(argb uint32) *ColorValue {
	return &ColorValue{argb}
}

func (v *ColorValue) Red() int {
	return int(v.rgba>>16) & 0xff
}

func (v *ColorValue) Green() int {
	return int(v.rgba>>8) & 0xff
}

func (v *ColorValue) Blue() int {
	return int(v.rgba) & 0xff
}

func (v *ColorValue) Alpha() int {
	return int(v.rgba>>24) & 0xff
}

func (v *ColorValue) ARGB() uint32 {
	return v.rgba
}

func (v *ColorValue) String() string {
	return fmt.Sprintf("(%d;%d;%d;%d)", v.Red(), v.Green(), v.Blue(), v.Alpha())
}

func (v *ColorValue) DataTypeName() string {
	return COLOR
}

func (v *ColorValue) Equals(o PropertyValue) bool {
	if c, ok := o.(*ColorValue); ok && c != nil {
		return v.rgba == c.rgba
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type ColorDataType struct {
	dataType[*ColorValue]
}

var _ DataType = (*ColorDataType)(nil)

var TheColorType = &ColorDataType{dataType[*ColorValue]{name: COLOR}}

func (d *ColorDataType) DefaultValue() PropertyValue {
	return NewColorFromARGB(0)
}

func (d *ColorDataType) Conforms(v PropertyValue) error {
	_, _, err := d.cast(v)
	return err
}

// Parse accepts (r;g;b;a) and (r;g;b), which is opaque.
func (d *ColorDataType) Parse(s string) (PropertyValue, error) {
	values, err := parseTuple(s, "()", 3, 4)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	c := []int{0, 0, 0, 255}
	for i, v := range values {
		n, err := v.Int()
		if err != nil {
			return nil, d.parseError(s, err)
		}
		if n < 0 || n > 255 {
			return nil, d.parseError(s, fmt.Errorf("color component %d out of range", n))
		}
		c[i] = int(n)
	}
	return NewColor(c[0], c[1], c[2], c[3]), nil
}

func (d *ColorDataType) String() string {
	return d.name
}
