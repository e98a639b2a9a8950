package assistant

import "regexp"

// Intent is the closed classification tag set. Exactly one tag applies per
// clause; the order of checks in Classify is the contract. Several trigger
// phrases overlap ("math" lives in both the Math intent and the keyword
// table), and overlap is resolved purely by rank, never by specificity.
type Intent int

const (
	IntentFallback Intent = iota
	IntentReminderCreate
	IntentReminderList
	IntentMath
	IntentDateTime
	IntentRhyme
	IntentKnowledge
)

func (i Intent) String() string {
	switch i {
	case IntentReminderCreate:
		return "reminder-create"
	case IntentReminderList:
		return "reminder-list"
	case IntentMath:
		return "math"
	case IntentDateTime:
		return "datetime"
	case IntentRhyme:
		return "rhyme"
	case IntentKnowledge:
		return "knowledge"
	default:
		return "fallback"
	}
}

var (
	reminderCreateRe = regexp.MustCompile(`remind me|set reminder|remember to|don'?t forget|reminder at|remind at`)
	reminderListRe   = regexp.MustCompile(`what did i tell you to remember|show reminders|my reminders|what reminders|list reminders|what do i need to remember`)
	dateTimeRe       = regexp.MustCompile(`what('?| i)s\s+(the\s+)?(current\s+)?(date|time|timing|day)|what\s+time\s+is\s+it|what\s+day\s+is\s+it|tell\s+me\s+the\s+(date|time|day)|current\s+(date|time)|what\s+(date|time)\s+is\s+it|show\s+me\s+the\s+(date|time)|today'?s\s+date|what\s+is\s+today`)
	rhymeRe          = regexp.MustCompile(`rhyme|poem|poetry|sing|song|nursery`)
)

// Classify assigns the single-clause intent. First match wins; later rules
// never override an earlier one.
func Classify(content string) Intent {
	switch {
	case reminderCreateRe.MatchString(content):
		return IntentReminderCreate
	case reminderListRe.MatchString(content):
		return IntentReminderList
	case isMathExpression(content):
		return IntentMath
	case dateTimeRe.MatchString(content):
		return IntentDateTime
	case rhymeRe.MatchString(content):
		return IntentRhyme
	case lookupKnowledge(content) != "":
		return IntentKnowledge
	}
	return IntentFallback
}
