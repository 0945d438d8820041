package utils

import (
	"fmt"
	"linkcare-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// CurrentDate is the present moment in timezone formatted as the WS-API
// expects date-times.
func CurrentDate(timezone string) string {
	return FormatInTimezone(time.Now(), timezone)
}

func FormatInTimezone(moment time.Time, timezone string) string {
	return moment.In(ResolveTimezone(timezone)).Format(constvars.WSAPIDateTimeLayout)
}

// ResolveTimezone understands IANA names and fixed offsets such as "UTC+2",
// "+5:30" or "-3.5". Unknown values fall back to UTC.
func ResolveTimezone(timezone string) *time.Location {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return time.UTC
	}

	offset := strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(timezone), "UTC"), "GMT")
	if offset == "" {
		return time.UTC
	}
	if seconds, ok := parseOffset(offset); ok {
		return time.FixedZone(fmt.Sprintf("UTC%s", offset), seconds)
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func parseOffset(offset string) (int, bool) {
	if offset[0] != '+' && offset[0] != '-' && (offset[0] < '0' || offset[0] > '9') {
		return 0, false
	}
	if hours, minutes, found := strings.Cut(offset, ":"); found {
		h, err := strconv.Atoi(hours)
		if err != nil {
			return 0, false
		}
		m, err := strconv.Atoi(minutes)
		if err != nil {
			return 0, false
		}
		seconds := abs(h)*3600 + m*60
		if strings.HasPrefix(hours, "-") {
			seconds = -seconds
		}
		return seconds, true
	}
	hours, err := strconv.ParseFloat(offset, 64)
	if err != nil {
		return 0, false
	}
	return int(hours * 3600), true
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// DatePart drops the time of a "YYYY-MM-DD hh:mm:ss" value.
func DatePart(dateTime string) string {
	date, _, _ := strings.Cut(strings.TrimSpace(dateTime), " ")
	return date
}
