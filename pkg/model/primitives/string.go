package primitives

import (
	"fmt"
	"regexp"
)

const STRING = "String"

type StringValue struct {
	value string
}

var _ PropertyValue = (*StringValue)(nil)

func NewString(s string) *StringValue {
	return &StringValue{s}
}

func (v *StringValue) Value() string {
	return v.value
}

func (v *StringValue) String() string {
	return v.value
}

func (v *StringValue) DataTypeName() string {
	return STRING
}

func (v *StringValue) Equals(o PropertyValue) bool {
	if s, ok := o.(*StringValue); ok && s != nil {
		return v.value == s.value
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type StringDataType struct {
	dataType[*StringValue]
	regex      *regexp.Regexp
	regexError string
	def        *StringValue
}

var _ DataType = (*StringDataType)(nil)

var TheStringType = &StringDataType{
	dataType: dataType[*StringValue]{name: STRING},
	def:      NewString(""),
}

// NewRegexStringDataType provides a string type restricted to values
// completely matching the given expression.
func NewRegexStringDataType(expr string, errmsg string) (*StringDataType, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression %q: %w", expr, err)
	}
	return &StringDataType{
		dataType:   dataType[*StringValue]{name: STRING, super: TheStringType},
		regex:      re,
		regexError: errmsg,
	}, nil
}

func (d *StringDataType) Regex() string {
	if d.regex == nil {
		return ""
	}
	s := d.regex.String()
	return s[4 : len(s)-2]
}

func (d *StringDataType) RegexErrorMessage() string {
	return d.regexError
}

func (d *StringDataType) DefaultValue() PropertyValue {
	if d.def != nil {
		return d.def
	}
	return d.super.DefaultValue()
}

func (d *StringDataType) Conforms(v PropertyValue) error {
	s, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if d.regex != nil && !d.regex.MatchString(s.value) {
		if d.regexError != "" {
			return nonConforming(d, s, "%s", d.regexError)
		}
		return nonConforming(d, s, "does not match %q", d.Regex())
	}
	return nil
}

func (d *StringDataType) Parse(s string) (PropertyValue, error) {
	return NewString(s), nil
}

func (d *StringDataType) String() string {
	if d.regex != nil {
		return fmt.Sprintf("%s(regex=%q)", d.name, d.Regex())
	}
	return d.name
}
