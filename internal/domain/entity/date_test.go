package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayMonthYear(t *testing.T) {
	got, err := ParseDayMonthYear("15/08/2023")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDayMonthYear_Empty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got, err := ParseDayMonthYear(in)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseDayMonthYear_Invalid(t *testing.T) {
	for _, in := range []string{"31/02/2024", "2024-02-01", "1/2/2024", "32/01/2024", "01/13/2024", "abc"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDayMonthYear(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	got := FormatDate(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-05", *got)
}
