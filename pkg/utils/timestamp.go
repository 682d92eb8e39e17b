package utils

import (
	"fmt"
	"time"

	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type _time = v1.Time

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a UTC time with millisecond precision.
// +k8s:deepcopy-gen=true
type Timestamp struct {
	_time `json:",inline"`
}

func NewTimestamp() Timestamp {
	return NewTimestampFor(time.Now())
}

func NewTimestampFor(t time.Time) Timestamp {
	return Timestamp{
		_time: v1.NewTime(t.UTC().Round(time.Millisecond)),
	}
}

func NewTimestampForMillis(ms int64) Timestamp {
	return NewTimestampFor(time.UnixMilli(ms))
}

// MarshalJSON implements the json.Marshaler interface.
// The time is a quoted string in RFC 3339 format with milliseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if y := t.Year(); y < 0 || y >= 10000 {
		return nil, fmt.Errorf("Timestamp.MarshalJSON: year outside of range [0,9999]")
	}

	b := make([]byte, 0, len(timestampFormat)+2)
	b = append(b, '"')
	b = t.AppendFormat(b, timestampFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The time is expected to be a quoted string in RFC 3339 format.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	tt, err := time.Parse(`"`+time.RFC3339Nano+`"`, string(data))
	if err != nil {
		return err
	}
	*t = NewTimestampFor(tt)
	return nil
}

func (t Timestamp) String() string {
	return t.Format(timestampFormat)
}

func (t Timestamp) Time() time.Time {
	return t._time.Time
}

func (t Timestamp) Millis() int64 {
	return t._time.UnixMilli()
}

func (t Timestamp) Equal(o Timestamp) bool {
	return t._time.Equal(&o._time)
}

func (t Timestamp) Add(d time.Duration) Timestamp {
	return NewTimestampFor(t._time.Add(d))
}
