// Package types implements special types for Expense Guard.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidMonth is returned when a month key cannot be parsed.
var ErrInvalidMonth = errors.New("the month must be in the YYYY-MM format")

var datePattern = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// Month is a month in a specific year.
//
// Its canonical text representation, used in JSON, query parameters and the
// database, is the month key in the form YYYY-MM.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: '%s'", ErrInvalidMonth, s)
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Only the YYYY-MM month key is accepted.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for
// query and URI parameters.
func (m *Month) UnmarshalParam(param string) error {
	if param == "" {
		*m = Month{}
		return nil
	}

	month, err := ParseMonth(param)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		month, err := ParseMonth(v)
		if err != nil {
			return err
		}
		*m = month
	case []byte:
		month, err := ParseMonth(string(v))
		if err != nil {
			return err
		}
		*m = month
	case time.Time:
		*m = MonthOf(v)
	case nil:
		*m = Month{}
	default:
		return fmt.Errorf("cannot scan %T into a month", value)
	}

	return nil
}

// Value returns the month key for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "varchar(7)"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(NewMonth(time.Time(m).Year(), time.Time(m).Month()))
}

// End returns the first instant of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m.String() == n.String()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
