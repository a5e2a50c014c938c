package month

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthFormat is the format used to represent months as strings, ISO-8601 truncated to the month.
const MonthFormat = "2006-01"

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// Month represents a calendar month, the finest granularity of the debtor registry.
//
// The zero value is the zero month, before any valid one.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month.
func New(year int, m time.Month) Month {
	n := Month{year, m}
	y, mm, _ := n.time().Date()
	return Month{y, mm}
}

// time returns a time.Time that is a canonical representation of that month (first day, midnight UTC).
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Before reports whether m is strictly before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether m is strictly after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// IsZero reports whether m is the zero month.
func (m Month) IsZero() bool { return m == Month{} }

// Add returns a new Month with the given number of months added.
func (m Month) Add(i int) Month { return New(m.y, m.m+time.Month(i)) }

// Compare returns -1, 0 or 1 when m is before, equal to, or after x.
//
// Because the string form is zero padded, this is also the lexical order of String().
func (m Month) Compare(x Month) int {
	switch {
	case m.Before(x):
		return -1
	case m.After(x):
		return 1
	default:
		return 0
	}
}

// Current returns the month of the current date.
func Current() Month {
	y, m, _ := time.Now().Date()
	return New(y, m)
}

// String formats the month in its standard "YYYY-MM" form.
func (m Month) String() string { return m.time().Format(MonthFormat) }

// Parse parses a Month from a string. It is lenient and accepts "2025-7" as well as "2025-07".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, mm, _ := on.Date()
	return New(y, mm), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	m, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON implements the json specific way to unmarshal a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := Parse(str)
	if err != nil {
		return err
	}
	*j = m
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
