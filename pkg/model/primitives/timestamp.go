package primitives

import (
	"strconv"
	"strings"
	"time"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

const TIMESTAMP = "TimeStamp"

// TimeStampValue is an UTC instant with millisecond precision.
type TimeStampValue struct {
	millis int64
}

var _ PropertyValue = (*TimeStampValue)(nil)

func NewTimeStamp(millis int64) *TimeStampValue {
	return &TimeStampValue{millis}
}

func NewTimeStampFor(t time.Time) *TimeStampValue {
	return &TimeStampValue{t.UnixMilli()}
}

func Now() *TimeStampValue {
	return NewTimeStampFor(time.Now())
}

func (v *TimeStampValue) Millis() int64 {
	return v.millis
}

func (v *TimeStampValue) Time() time.Time {
	return time.UnixMilli(v.millis).UTC()
}

func (v *TimeStampValue) String() string {
	return utils.NewTimestampForMillis(v.millis).String()
}

func (v *TimeStampValue) DataTypeName() string {
	return TIMESTAMP
}

func (v *TimeStampValue) Equals(o PropertyValue) bool {
	if t, ok := o.(*TimeStampValue); ok && t != nil {
		return v.millis == t.millis
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type TimeStampDataType struct {
	dataType[*TimeStampValue]
}

var _ DataType = (*TimeStampDataType)(nil)

var TheTimeStampType = &TimeStampDataType{dataType[*TimeStampValue]{name: TIMESTAMP}}

// DefaultValue is the current time.
func (d *TimeStampDataType) DefaultValue() PropertyValue {
	return Now()
}

func (d *TimeStampDataType) Conforms(v PropertyValue) error {
	_, _, err := d.cast(v)
	return err
}

// Parse accepts RFC 3339 time stamps and milliseconds since
// the epoch.
func (d *TimeStampDataType) Parse(s string) (PropertyValue, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewTimeStamp(ms), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewTimeStampFor(t), nil
}

func (d *TimeStampDataType) String() string {
	return d.name
}
