package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDatePtr(t *testing.T) {
	assert.Equal(t, "", FormatDatePtr(nil))

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-01", FormatDatePtr(&date))
}

func TestGenerateScheduleCode(t *testing.T) {
	first := GenerateScheduleCode()
	second := GenerateScheduleCode()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
