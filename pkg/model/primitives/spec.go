package primitives

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

var families = map[string]DataType{
	STRING:       TheStringType,
	BLOB:         TheAnyType,
	BOOLEAN:      TheBooleanType,
	COLOR:        TheColorType,
	CURRENCY:     TheCurrencyType,
	EXTENT:       TheExtentType,
	FLOAT:        TheFloatType,
	INTEGER:      TheIntegerType,
	MULTIPLICITY: TheMultiplicityType,
	POINT:        ThePointType,
	TIMEPERIOD:   TheTimePeriodType,
	TIMESTAMP:    TheTimeStampType,
}

// Families lists the names of all data type families.
func Families() []string {
	return append(utils.OrderedMapKeys(families), ENUMERATED)
}

// DataTypeSpecification is the serialized form of a data type.
// It is either given by a plain family name or by a
// structure with the family name and its restrictions.
type DataTypeSpecification struct {
	Type       string            `json:"type"`
	Preset     string            `json:"preset,omitempty"`
	Regex      string            `json:"regex,omitempty"`
	RegexError string            `json:"regexError,omitempty"`
	MimeTypes  []string          `json:"mimeTypes,omitempty"`
	Values     []EnumeratedEntry `json:"values,omitempty"`
	Min        *float64          `json:"min,omitempty"`
	Max        *float64          `json:"max,omitempty"`
}

type dataTypeSpecification DataTypeSpecification

func (s *DataTypeSpecification) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = DataTypeSpecification{Type: name}
		return nil
	}
	return json.Unmarshal(data, (*dataTypeSpecification)(s))
}

func (s DataTypeSpecification) MarshalJSON() ([]byte, error) {
	if s.IsPlain() {
		return json.Marshal(s.Type)
	}
	return json.Marshal(dataTypeSpecification(s))
}

func (s *DataTypeSpecification) IsPlain() bool {
	return s.Preset == "" && s.Regex == "" && s.RegexError == "" && len(s.MimeTypes) == 0 &&
		len(s.Values) == 0 && s.Min == nil && s.Max == nil
}

func (s *DataTypeSpecification) restrictions() []string {
	var r []string
	if s.Preset != "" {
		r = append(r, "preset")
	}
	if s.Regex != "" || s.RegexError != "" {
		r = append(r, "regex")
	}
	if len(s.MimeTypes) > 0 {
		r = append(r, "mimeTypes")
	}
	if len(s.Values) > 0 {
		r = append(r, "values")
	}
	if s.Min != nil || s.Max != nil {
		r = append(r, "range")
	}
	return r
}

func (s *DataTypeSpecification) only(allowed ...string) error {
	for _, r := range s.restrictions() {
		if !slices.Contains(allowed, r) {
			return fmt.Errorf("%s not supported for data type %s", r, s.Type)
		}
	}
	return nil
}

// Create provides the data type described by the specification.
// Unrestricted specifications map to the shared family instances.
func (s *DataTypeSpecification) Create() (DataType, error) {
	switch s.Type {
	case STRING:
		if err := s.only("regex"); err != nil {
			return nil, err
		}
		if s.Regex == "" {
			return TheStringType, nil
		}
		return NewRegexStringDataType(s.Regex, s.RegexError)

	case BLOB:
		if err := s.only("preset", "mimeTypes"); err != nil {
			return nil, err
		}
		if s.Preset != "" {
			if len(s.MimeTypes) > 0 {
				return nil, fmt.Errorf("preset and mimeTypes given for data type %s", s.Type)
			}
			t := blobPresets[s.Preset]
			if t == nil {
				return nil, fmt.Errorf("unknown blob preset %q (use one of %s)", s.Preset, strings.Join(utils.OrderedMapKeys(blobPresets), ", "))
			}
			return t, nil
		}
		if len(s.MimeTypes) > 0 {
			return NewBlobDataType(TheAnyType, s.MimeTypes...), nil
		}
		return TheAnyType, nil

	case ENUMERATED:
		if err := s.only("values"); err != nil {
			return nil, err
		}
		return NewEnumeratedDataType(s.Values...)

	case FLOAT:
		if err := s.only("range"); err != nil {
			return nil, err
		}
		if s.Min == nil && s.Max == nil {
			return TheFloatType, nil
		}
		if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
			return nil, fmt.Errorf("empty range for data type %s", s.Type)
		}
		return NewFloatDataType(s.Min, s.Max), nil

	case INTEGER:
		if err := s.only("range"); err != nil {
			return nil, err
		}
		if s.Min == nil && s.Max == nil {
			return TheIntegerType, nil
		}
		min, err := integral(s.Min)
		if err != nil {
			return nil, err
		}
		max, err := integral(s.Max)
		if err != nil {
			return nil, err
		}
		if min != nil && max != nil && *min > *max {
			return nil, fmt.Errorf("empty range for data type %s", s.Type)
		}
		return NewIntegerDataType(min, max), nil
	}

	t := families[s.Type]
	if t == nil {
		return nil, fmt.Errorf("unknown data type %q", s.Type)
	}
	if err := s.only(); err != nil {
		return nil, err
	}
	return t, nil
}

func integral(f *float64) (*int64, error) {
	if f == nil {
		return nil, nil
	}
	if *f != math.Trunc(*f) {
		return nil, fmt.Errorf("integer bound %g expected", *f)
	}
	return utils.Pointer(int64(*f)), nil
}

// SpecificationFor provides the specification for a data type.
func SpecificationFor(t DataType) DataTypeSpecification {
	s := DataTypeSpecification{Type: t.Name()}
	switch d := t.(type) {
	case *StringDataType:
		s.Regex = d.Regex()
		s.RegexError = d.regexError
	case *BlobDataType:
		for n, p := range blobPresets {
			if p == d {
				if d != TheAnyType {
					s.Preset = n
				}
				return s
			}
		}
		s.MimeTypes = d.MimeTypes()
	case *EnumeratedDataType:
		s.Values = d.Entries()
	case *FloatDataType:
		s.Min, s.Max = d.min, d.max
	case *IntegerDataType:
		if d.min != nil {
			s.Min = utils.Pointer(float64(*d.min))
		}
		if d.max != nil {
			s.Max = utils.Pointer(float64(*d.max))
		}
	}
	return s
}
