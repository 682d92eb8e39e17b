package primitives

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

const ENUMERATED = "Enumerated"

// EnumeratedValue is an element of the domain of an EnumeratedDataType.
type EnumeratedValue struct {
	domain      *EnumeratedDataType
	key         string
	userName    string
	description string
}

var _ PropertyValue = (*EnumeratedValue)(nil)

func (v *EnumeratedValue) Key() string {
	return v.key
}

func (v *EnumeratedValue) UserVisibleName() string {
	if v.userName == "" {
		return v.key
	}
	return v.userName
}

func (v *EnumeratedValue) Description() string {
	return v.description
}

func (v *EnumeratedValue) DataType() *EnumeratedDataType {
	return v.domain
}

func (v *EnumeratedValue) String() string {
	return v.key
}

func (v *EnumeratedValue) DataTypeName() string {
	return ENUMERATED
}

func (v *EnumeratedValue) Equals(o PropertyValue) bool {
	if e, ok := o.(*EnumeratedValue); ok && e != nil {
		return v.domain == e.domain && v.key == e.key
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

// EnumeratedEntry describes an element of an enumeration domain.
type EnumeratedEntry struct {
	Key             string `json:"key"`
	UserVisibleName string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
}

// UnmarshalJSON accepts a plain key, also.
func (e *EnumeratedEntry) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*e = EnumeratedEntry{Key: key}
		return nil
	}
	type entry EnumeratedEntry
	return json.Unmarshal(data, (*entry)(e))
}

// EnumeratedDataType is a data type with a fixed domain of values.
// Values are only conforming to the data type instance they
// have been taken from.
type EnumeratedDataType struct {
	dataType[*EnumeratedValue]
	values []*EnumeratedValue
}

var _ DataType = (*EnumeratedDataType)(nil)

func NewEnumeratedDataType(entries ...EnumeratedEntry) (*EnumeratedDataType, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty enumeration domain")
	}
	d := &EnumeratedDataType{dataType: dataType[*EnumeratedValue]{name: ENUMERATED}}
	keys := map[string]bool{}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("empty enumeration key")
		}
		if keys[e.Key] {
			return nil, fmt.Errorf("duplicate enumeration key %q", e.Key)
		}
		keys[e.Key] = true
		d.values = append(d.values, &EnumeratedValue{d, e.Key, e.UserVisibleName, e.Description})
	}
	return d, nil
}

func MustEnumeratedDataType(entries ...EnumeratedEntry) *EnumeratedDataType {
	d, err := NewEnumeratedDataType(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *EnumeratedDataType) Domain() []*EnumeratedValue {
	return append([]*EnumeratedValue(nil), d.values...)
}

func (d *EnumeratedDataType) Entries() []EnumeratedEntry {
	return utils.TransformSlice(d.values, func(v *EnumeratedValue) EnumeratedEntry {
		return EnumeratedEntry{v.key, v.userName, v.description}
	})
}

func (d *EnumeratedDataType) Find(key string) (*EnumeratedValue, error) {
	for _, v := range d.values {
		if v.key == key {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%q is no element of %s: %w", key, d, ErrNonConforming)
}

// Select provides the domain value for a key and panics for an
// unknown key.
func (d *EnumeratedDataType) Select(key string) *EnumeratedValue {
	v, err := d.Find(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (d *EnumeratedDataType) DefaultValue() PropertyValue {
	return d.values[0]
}

func (d *EnumeratedDataType) Conforms(v PropertyValue) error {
	e, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if e.domain != d {
		return nonConforming(d, e, "value of different domain")
	}
	return nil
}

func (d *EnumeratedDataType) Parse(s string) (PropertyValue, error) {
	v, err := d.Find(strings.TrimSpace(s))
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return v, nil
}

func (d *EnumeratedDataType) String() string {
	return fmt.Sprintf("%s(%s)", d.name, utils.JoinFunc(d.values, ",", func(v *EnumeratedValue) string { return v.key }))
}
