package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Anchor used across quick-range tests: Monday 2024-06-10.
var anchor = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

func TestResolveQuickRange(t *testing.T) {
	tests := []struct {
		token RangeToken
		want  DateSelection
	}{
		{RangeToday, SingleDate("2024-06-10")},
		{RangeYesterday, SingleDate("2024-06-09")},
		{RangeTomorrow, SingleDate("2024-06-11")},
		{RangeUpcoming, DateRange("2024-06-11", "2024-06-17")},
		{RangeLast7Days, DateRange("2024-06-03", "2024-06-10")},
		{RangeLast30Days, DateRange("2024-05-11", "2024-06-10")},
	}

	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			got, err := ResolveQuickRange(tt.token, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveQuickRange_UnknownToken(t *testing.T) {
	_, err := ResolveQuickRange(RangeToken("fortnight"), anchor)
	assert.ErrorIs(t, err, ErrUnknownRangeToken)
}

func TestParseRangeToken_Aliases(t *testing.T) {
	token, err := ParseRangeToken("week")
	require.NoError(t, err)
	assert.Equal(t, RangeLast7Days, token)

	token, err = ParseRangeToken("month")
	require.NoError(t, err)
	assert.Equal(t, RangeLast30Days, token)

	token, err = ParseRangeToken("  Today ")
	require.NoError(t, err)
	assert.Equal(t, RangeToday, token)

	_, err = ParseRangeToken("someday")
	assert.ErrorIs(t, err, ErrUnknownRangeToken)
}

func TestDateSelection_Encode(t *testing.T) {
	assert.Equal(t, "", DateSelection{}.Encode())
	assert.Equal(t, "2024-06-10", SingleDate("2024-06-10").Encode())
	assert.Equal(t, "2024-06-11 to 2024-06-17", DateRange("2024-06-11", "2024-06-17").Encode())
}

func TestParseDateFilter_RoundTrip(t *testing.T) {
	for _, sel := range []DateSelection{
		{},
		SingleDate("2024-06-10"),
		DateRange("2024-06-01", "2024-06-30"),
	} {
		assert.Equal(t, sel, ParseDateFilter(sel.Encode()))
	}
}

func TestDateSelection_Matches(t *testing.T) {
	assert.True(t, DateSelection{}.Matches("2024-01-01"))

	single := SingleDate("2024-06-10")
	assert.True(t, single.Matches("2024-06-10"))
	assert.False(t, single.Matches("2024-06-11"))

	rng := DateRange("2024-06-01", "2024-06-30")
	assert.True(t, rng.Matches("2024-06-01"), "range start is inclusive")
	assert.True(t, rng.Matches("2024-06-30"), "range end is inclusive")
	assert.True(t, rng.Matches("2024-06-15"))
	assert.False(t, rng.Matches("2024-05-31"))
	assert.False(t, rng.Matches("2024-07-01"))
}
