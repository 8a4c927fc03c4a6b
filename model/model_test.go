package model

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestMoneyKeepsTwoDecimals(t *testing.T) {
	price, err := ParseMoney("19.9")
	require.NoError(t, err)

	csv, err := price.MarshalCSV()
	assert.Nil(t, err)
	assert.Equal(t, "19.90", csv)
	assert.Equal(t, "59.70", price.Times(3).String())
	assert.Equal(t, "0.00", Money{}.String())
}

func TestMoneySumIsExact(t *testing.T) {
	total := Money{}
	for i := 0; i < 10; i++ {
		total = total.Plus(NewMoney(0.1))
	}
	assert.Equal(t, "1.00", total.String())
	assert.True(t, total.Within(MoneyFromCents(101)))
	assert.False(t, total.Within(MoneyFromCents(102)))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("12.5"))
	assert.Equal(t, "12.50", m.String())

	require.NoError(t, m.Scan(int64(12)))
	assert.Equal(t, "12.00", m.String())

	v, err := m.Value()
	assert.Nil(t, err)
	assert.Equal(t, "12.00", v)
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"2024-03-01", "2024-03-01 00:00:00+00:00", "2024-03-01T00:00:00Z"} {
		d, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, "2024-03-01", d.String())
	}

	_, err := ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	start := NewDate(2024, 2, 27)
	end := start.AddDays(3)
	assert.Equal(t, "2024-03-01", end.String())
	assert.Equal(t, 3, start.DaysUntil(end))
	assert.Equal(t, -3, end.DaysUntil(start))
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 5, 6, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2023-05-06", d.String())

	require.NoError(t, d.Scan([]byte("2023-05-07")))
	assert.Equal(t, "2023-05-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateJSON(t *testing.T) {
	b, err := NewDate(2024, 1, 2).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02"`, string(b))

	var d Date
	require.NoError(t, d.UnmarshalJSON(b))
	assert.Equal(t, "2024-01-02", d.String())
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: customers.email")
	var err error = &ConstraintViolationError{Entity: "customers", ID: 1002, Rule: "schema", Err: cause}
	assert.True(t, errors.Is(err, ErrConstraintViolation))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "customers row 1002")

	err = &IOError{Op: "open", Path: "data/orders.csv", Err: cause}
	assert.True(t, errors.Is(err, ErrIO))

	assert.True(t, errors.Is(&EmptyPoolError{Stage: "reviews", Pool: "purchases"}, ErrEmptyPool))
	assert.True(t, errors.Is(&ConfigurationError{Field: "customers.count"}, ErrConfiguration))
}

func TestSnapshotRowCounts(t *testing.T) {
	s := &Snapshot{Customers: make([]Customer, 2), OrderItems: make([]OrderItem, 5)}
	counts := s.RowCounts()
	assert.Equal(t, 2, counts["customers"])
	assert.Equal(t, 5, counts["order_items"])
	assert.Equal(t, 0, counts["reviews"])
}
