package utils

import (
	"strconv"
	"strings"
)

var truthyTexts = map[string]bool{
	"s":    true,
	"y":    true,
	"yes":  true,
	"true": true,
	"1":    true,
}

// TextToBool accepts the affirmative words used by the WS-API (s, y, yes,
// true, 1) and any non-zero number.
func TextToBool(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if truthyTexts[normalized] {
		return true
	}
	if number, err := strconv.ParseFloat(normalized, 64); err == nil {
		return number != 0
	}
	return false
}

func BoolToText(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

// BoolToFlag renders a bool as "1" or the empty string.
func BoolToFlag(value bool) string {
	if value {
		return "1"
	}
	return ""
}

// IntValue reads the leading integer of text, ignoring anything after it.
// Text without a leading integer is 0.
func IntValue(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) {
		c := text[end]
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end++
	}
	value, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}
	return value
}

// NullableInt is nil for empty or whitespace-only text.
func NullableInt(text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	value := IntValue(text)
	return &value
}

// NullableFloat is nil when text is not a number.
func NullableFloat(text string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	return &value
}

func IntToText(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func IntPtr(value int) *int {
	return &value
}
