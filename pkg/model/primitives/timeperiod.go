package primitives

import (
	"fmt"
	"strconv"
	"time"
)

const TIMEPERIOD = "TimePeriod"

type TimePeriodValue struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second float64
}

var _ PropertyValue = (*TimePeriodValue)(nil)

func NewTimePeriod(year, month, day, hour, minute int, second float64) *TimePeriodValue {
	return &TimePeriodValue{year, month, day, hour, minute, second}
}

func (v *TimePeriodValue) Year() int {
	return v.year
}

func (v *TimePeriodValue) Month() int {
	return v.month
}

func (v *TimePeriodValue) Day() int {
	return v.day
}

func (v *TimePeriodValue) Hour() int {
	return v.hour
}

func (v *TimePeriodValue) Minute() int {
	return v.minute
}

func (v *TimePeriodValue) Second() float64 {
	return v.second
}

// Duration approximates the period with years of 365 days
// and months of 30 days.
func (v *TimePeriodValue) Duration() time.Duration {
	days := v.year*365 + v.month*30 + v.day
	d := time.Duration(days)*24*time.Hour + time.Duration(v.hour)*time.Hour + time.Duration(v.minute)*time.Minute
	return d + time.Duration(v.second*float64(time.Second))
}

// String provides the ISO 8601 duration with all components.
func (v *TimePeriodValue) String() string {
	return fmt.Sprintf("P%dY%dM%dDT%dH%dM%sS", v.year, v.month, v.day, v.hour, v.minute, formatFloat(v.second))
}

func (v *TimePeriodValue) DataTypeName() string {
	return TIMEPERIOD
}

func (v *TimePeriodValue) Equals(o PropertyValue) bool {
	if p, ok := o.(*TimePeriodValue); ok && p != nil {
		return *v == *p
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type TimePeriodDataType struct {
	dataType[*TimePeriodValue]
}

var _ DataType = (*TimePeriodDataType)(nil)

var TheTimePeriodType = &TimePeriodDataType{dataType[*TimePeriodValue]{name: TIMEPERIOD}}

func (d *TimePeriodDataType) DefaultValue() PropertyValue {
	return NewTimePeriod(0, 0, 0, 0, 0, 0)
}

func (d *TimePeriodDataType) Conforms(v PropertyValue) error {
	p, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if p.year < 0 || p.month < 0 || p.day < 0 || p.hour < 0 || p.minute < 0 || p.second < 0 {
		return nonConforming(d, p, "negative component")
	}
	return nil
}

// Parse accepts ISO 8601 durations. Omitted components are zero,
// weeks are converted to days.
func (d *TimePeriodDataType) Parse(s string) (PropertyValue, error) {
	l, err := parsePeriod(s)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	if len(l.Date) == 0 && len(l.Time) == 0 {
		return nil, d.parseError(s, fmt.Errorf("no component"))
	}

	p := &TimePeriodValue{}
	seen := map[string]bool{}
	set := func(section string, part *periodPart, target *int) error {
		if seen[section+part.Unit] {
			return fmt.Errorf("duplicate component %s", part.Unit)
		}
		seen[section+part.Unit] = true
		n, err := strconv.Atoi(part.Value)
		if err != nil {
			return err
		}
		*target += n
		return nil
	}

	for _, part := range l.Date {
		var err error
		switch part.Unit {
		case "Y":
			err = set("D", part, &p.year)
		case "M":
			err = set("D", part, &p.month)
		case "W":
			var w int
			err = set("D", part, &w)
			p.day += 7 * w
		case "D":
			err = set("D", part, &p.day)
		default:
			err = fmt.Errorf("unexpected date component %s", part.Unit)
		}
		if err != nil {
			return nil, d.parseError(s, err)
		}
	}
	for _, part := range l.Time {
		var err error
		switch part.Unit {
		case "H":
			err = set("T", part, &p.hour)
		case "M":
			err = set("T", part, &p.minute)
		case "S":
			if seen["TS"] {
				err = fmt.Errorf("duplicate component S")
			} else {
				seen["TS"] = true
				p.second, err = strconv.ParseFloat(part.Value, 64)
			}
		default:
			err = fmt.Errorf("unexpected time component %s", part.Unit)
		}
		if err != nil {
			return nil, d.parseError(s, err)
		}
	}
	return p, nil
}

func (d *TimePeriodDataType) String() string {
	return d.name
}
