package reminders

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Task phrasings, tried in order; first match wins. The lazy capture stops
// before a time marker so "call mom at 5 pm" keeps only "call mom".
var taskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`remind me to (.+?)(?: at | in | on | tomorrow| today|$)`),
	regexp.MustCompile(`remind me (.+?)(?: at | in | on | tomorrow| today|$)`),
	regexp.MustCompile(`remember to (.+?)(?: at | in | on | tomorrow| today|$)`),
	regexp.MustCompile(`don'?t forget to (.+?)(?: at | in | on | tomorrow| today|$)`),
	regexp.MustCompile(`set reminder to (.+?)(?: at | in | on | tomorrow| today|$)`),
}

// ExtractTask pulls the task description out of a reminder phrase. ok is
// false when no pattern captured anything.
func ExtractTask(input string) (string, bool) {
	for _, p := range taskPatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			task := strings.TrimSpace(m[1])
			if task != "" {
				return task, true
			}
		}
	}
	return "", false
}

var (
	clockRe    = regexp.MustCompile(`at (\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	relativeRe = regexp.MustCompile(`in (\d+)\s*(minute|hour|day)s?`)
	bareTimeRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
)

// ExtractTime resolves the scheduled time mentioned in a reminder phrase,
// or nil when none is parseable. Clock times are anchored to today unless
// the phrase says "tomorrow"; a clock time already past rolls forward a day.
func ExtractTime(input string, now time.Time) *time.Time {
	if m := clockRe.FindStringSubmatch(input); m != nil {
		return clockTime(input, m, now)
	}
	if m := relativeRe.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		var d time.Duration
		switch m[2] {
		case "minute":
			d = time.Duration(n) * time.Minute
		case "hour":
			d = time.Duration(n) * time.Hour
		case "day":
			d = time.Duration(n) * 24 * time.Hour
		}
		t := now.Add(d)
		return &t
	}
	if m := bareTimeRe.FindStringSubmatch(input); m != nil {
		return clockTime(input, m, now)
	}
	return nil
}

func clockTime(input string, m []string, now time.Time) *time.Time {
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	hour = to24Hour(hour, m[3])
	if hour > 23 || minute > 59 {
		return nil
	}

	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	switch {
	case strings.Contains(input, "tomorrow"):
		t = t.Add(24 * time.Hour)
	case !t.After(now):
		// already passed today
		t = t.Add(24 * time.Hour)
	}
	return &t
}

// to24Hour applies the 12-hour disambiguation rule: 12 am is hour 0, 12 pm
// stays 12, any other pm hour gains 12, everything else passes through.
func to24Hour(hour int, period string) int {
	switch {
	case period == "am" && hour == 12:
		return 0
	case period == "pm" && hour != 12:
		return hour + 12
	default:
		return hour
	}
}
