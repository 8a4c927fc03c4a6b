package model

import (
	"database/sql/driver"
	"ecommerce_dataset/constants"
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
	"time"
)

var cent = decimal.New(1, -2)

// Money is a currency amount kept at two decimal places.
type Money struct {
	decimal.Decimal
}

func NewMoney(f float64) Money {
	return Money{decimal.NewFromFloat(f).Round(2)}
}

func MoneyFromCents(cents int64) Money {
	return Money{decimal.New(cents, -2)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

// Times multiplies by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(quantity))).Round(2)}
}

func (m Money) Plus(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

// Within reports whether m and o differ by at most one cent.
func (m Money) Within(o Money) bool {
	return m.Decimal.Sub(o.Decimal).Abs().LessThanOrEqual(cent)
}

func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

func (m Money) MarshalCSV() (string, error) {
	return m.String(), nil
}

func (m *Money) UnmarshalCSV(s string) error {
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Date is a calendar day in UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(constants.DATE_LAYOUT) {
		// "2024-03-01 00:00:00+00:00", "2024-03-01T00:00:00Z"
		s = s[:len(constants.DATE_LAYOUT)]
	}
	t, err := time.Parse(constants.DATE_LAYOUT, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Time.Format(constants.DATE_LAYOUT)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the whole days from d to o, negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalCSV(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	return d.UnmarshalCSV(string(b))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalCSV(s)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.UnmarshalCSV(v)
	case []byte:
		return d.UnmarshalCSV(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", value)
}
