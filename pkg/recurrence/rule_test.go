package recurrence_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorechum/pkg/recurrence"
)

func TestParse(t *testing.T) {
	until := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want recurrence.Rule
	}{
		{name: "empty", in: "", want: recurrence.None()},
		{name: "none", in: "none", want: recurrence.None()},
		{name: "daily", in: "daily", want: recurrence.Simple(recurrence.Daily)},
		{name: "weekly upper case", in: " WEEKLY ", want: recurrence.Simple(recurrence.Weekly)},
		{name: "monthly", in: "monthly", want: recurrence.Simple(recurrence.Monthly)},
		{name: "unknown unit", in: "yearly", want: recurrence.None()},
		{name: "custom", in: "custom:weekly:2", want: recurrence.Custom(recurrence.Weekly, 2, time.Time{})},
		{name: "custom with until", in: "custom:daily:3:2024-12-31", want: recurrence.Custom(recurrence.Daily, 3, until)},
		{name: "custom missing interval", in: "custom:monthly", want: recurrence.Custom(recurrence.Monthly, 1, time.Time{})},
		{name: "custom empty interval", in: "custom:monthly:", want: recurrence.Custom(recurrence.Monthly, 1, time.Time{})},
		{name: "custom garbage interval", in: "custom:daily:abc", want: recurrence.Custom(recurrence.Daily, 1, time.Time{})},
		{name: "custom zero interval", in: "custom:daily:0", want: recurrence.Custom(recurrence.Daily, 1, time.Time{})},
		{name: "custom bad until", in: "custom:daily:2:someday", want: recurrence.Custom(recurrence.Daily, 2, time.Time{})},
		{name: "custom unknown unit", in: "custom:hourly:2", want: recurrence.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recurrence.Parse(tt.in))
		})
	}
}

func TestRuleString(t *testing.T) {
	until := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "none", recurrence.None().String())
	assert.Equal(t, "daily", recurrence.Simple(recurrence.Daily).String())
	assert.Equal(t, "none", recurrence.Simple(recurrence.Unit("hourly")).String())
	assert.Equal(t, "custom:weekly:2", recurrence.Custom(recurrence.Weekly, 2, time.Time{}).String())
	assert.Equal(t, "custom:monthly:1:2025-03-01", recurrence.Custom(recurrence.Monthly, 0, until).String())
}

func TestRuleStringParsesBack(t *testing.T) {
	for _, s := range []string{"none", "daily", "weekly", "monthly", "custom:daily:4", "custom:weekly:2:2030-01-15"} {
		assert.Equal(t, s, recurrence.Parse(s).String())
	}
}

func TestNewCustom(t *testing.T) {
	setOn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	_, err := recurrence.NewCustom(recurrence.Weekly, 0, time.Time{}, setOn)
	assert.ErrorIs(t, err, recurrence.ErrInvalidInterval)

	_, err = recurrence.NewCustom(recurrence.Unit("yearly"), 1, time.Time{}, setOn)
	assert.ErrorIs(t, err, recurrence.ErrUnknownUnit)

	_, err = recurrence.NewCustom(recurrence.Weekly, 1, setOn.AddDate(0, 0, -1), setOn)
	assert.ErrorIs(t, err, recurrence.ErrUntilInPast)

	rule, err := recurrence.NewCustom(recurrence.Weekly, 2, setOn, setOn)
	require.NoError(t, err)
	assert.Equal(t, "custom:weekly:2:2024-06-10", rule.String())
}

func TestRuleJSON(t *testing.T) {
	type payload struct {
		Recurrence recurrence.Rule `json:"recurrence"`
	}

	b, err := json.Marshal(payload{Recurrence: recurrence.Custom(recurrence.Daily, 2, time.Time{})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recurrence":"custom:daily:2"}`, string(b))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"recurrence":"custom:weekly"}`), &got))
	assert.Equal(t, recurrence.Custom(recurrence.Weekly, 1, time.Time{}), got.Recurrence)
}

func TestRuleScan(t *testing.T) {
	var r recurrence.Rule
	require.NoError(t, r.Scan("weekly"))
	assert.Equal(t, recurrence.Simple(recurrence.Weekly), r)

	require.NoError(t, r.Scan([]byte("custom:daily:2")))
	assert.Equal(t, recurrence.Custom(recurrence.Daily, 2, time.Time{}), r)

	require.NoError(t, r.Scan(nil))
	assert.True(t, r.IsNone())

	assert.Error(t, r.Scan(42))

	v, err := recurrence.Simple(recurrence.Monthly).Value()
	require.NoError(t, err)
	assert.Equal(t, "monthly", v)
}
