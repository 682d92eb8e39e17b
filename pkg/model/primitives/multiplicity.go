package primitives

import (
	"fmt"
	"strconv"
)

const MULTIPLICITY = "Multiplicity"

// N is the unbounded maximum of a multiplicity.
const N = -1

type MultiplicityValue struct {
	min int
	max int
}

var _ PropertyValue = (*MultiplicityValue)(nil)

func NewMultiplicity(min, max int) *MultiplicityValue {
	return &MultiplicityValue{min, max}
}

func (v *MultiplicityValue) Min() int {
	return v.min
}

// Max provides the maximum. N means unbounded.
func (v *MultiplicityValue) Max() int {
	return v.max
}

func (v *MultiplicityValue) IsUnbounded() bool {
	return v.max == N
}

// Allows checks whether a number of elements is covered.
func (v *MultiplicityValue) Allows(n int) bool {
	return n >= v.min && (v.max == N || n <= v.max)
}

// Refines checks whether the multiplicity is a restriction of another one.
func (v *MultiplicityValue) Refines(o *MultiplicityValue) bool {
	if v.min < o.min {
		return false
	}
	if o.max == N {
		return true
	}
	return v.max != N && v.max <= o.max
}

func (v *MultiplicityValue) String() string {
	if v.max == N {
		return fmt.Sprintf("%d..N", v.min)
	}
	return fmt.Sprintf("%d..%d", v.min, v.max)
}

func (v *MultiplicityValue) DataTypeName() string {
	return MULTIPLICITY
}

func (v *MultiplicityValue) Equals(o PropertyValue) bool {
	if m, ok := o.(*MultiplicityValue); ok && m != nil {
		return v.min == m.min && v.max == m.max
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type MultiplicityDataType struct {
	dataType[*MultiplicityValue]
}

var _ DataType = (*MultiplicityDataType)(nil)

var TheMultiplicityType = &MultiplicityDataType{dataType[*MultiplicityValue]{name: MULTIPLICITY}}

func (d *MultiplicityDataType) DefaultValue() PropertyValue {
	return NewMultiplicity(0, N)
}

func (d *MultiplicityDataType) Conforms(v PropertyValue) error {
	m, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if m.min < 0 {
		return nonConforming(d, m, "negative minimum")
	}
	if m.max != N && (m.max < m.min || m.max == 0) {
		return nonConforming(d, m, "invalid maximum")
	}
	return nil
}

// Parse accepts min..max, where max may be N or *.
func (d *MultiplicityDataType) Parse(s string) (PropertyValue, error) {
	l, err := multiplicityParser.ParseString("", s)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	min, err := strconv.Atoi(l.Min)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	max := N
	if l.Max != "N" && l.Max != "*" {
		max, err = strconv.Atoi(l.Max)
		if err != nil {
			return nil, d.parseError(s, err)
		}
	}
	return NewMultiplicity(min, max), nil
}

func (d *MultiplicityDataType) String() string {
	return d.name
}
