package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInTimezone(t *testing.T) {
	moment := time.Date(2024, 3, 5, 22, 30, 0, 0, time.UTC)

	testCases := []struct {
		timezone string
		expected string
	}{
		{timezone: "", expected: "2024-03-05 22:30:00"},
		{timezone: "UTC", expected: "2024-03-05 22:30:00"},
		{timezone: "UTC+2", expected: "2024-03-06 00:30:00"},
		{timezone: "-3", expected: "2024-03-05 19:30:00"},
		{timezone: "+5:30", expected: "2024-03-06 04:00:00"},
		{timezone: "Europe/Madrid", expected: "2024-03-05 23:30:00"},
		{timezone: "Not/AZone", expected: "2024-03-05 22:30:00"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.timezone, func(t *testing.T) {
			assert.Equal(t, testCase.expected, FormatInTimezone(moment, testCase.timezone))
		})
	}
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2024-03-05", DatePart("2024-03-05 10:00:00"))
	assert.Equal(t, "2024-03-05", DatePart("2024-03-05"))
	assert.Equal(t, "", DatePart(""))
}
