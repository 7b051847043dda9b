package api

import (
	"fmt"
	"strings"
	"time"
)

// Period is the time window a price change is measured over.
type Period string

const (
	PeriodHour     Period = "1Hour"
	PeriodFourHour Period = "4Hour"
	PeriodDay      Period = "Day"
	PeriodWeek     Period = "Week"
	PeriodMonth    Period = "Month"
	PeriodYear     Period = "Year"
)

// Periods lists the selectable windows in navbar order.
var Periods = []Period{PeriodFourHour, PeriodHour, PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

// Duration returns the length of the window.
func (p Period) Duration() time.Duration {
	switch p {
	case PeriodHour:
		return time.Hour
	case PeriodFourHour:
		return 4 * time.Hour
	case PeriodDay:
		return 24 * time.Hour
	case PeriodWeek:
		return 7 * 24 * time.Hour
	case PeriodMonth:
		return 30 * 24 * time.Hour
	case PeriodYear:
		return 365 * 24 * time.Hour
	}
	return 0
}

func (p Period) String() string {
	return string(p)
}

// ParsePeriod accepts a period name, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("api: unknown period %q", s)
}
