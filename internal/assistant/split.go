package assistant

import (
	"regexp"
	"strings"
)

var clauseSplitRe = regexp.MustCompile(`[.?;]+`)

// splitClauses breaks a compound input on runs of terminal punctuation into
// trimmed, non-empty clauses.
func splitClauses(content string) []string {
	var clauses []string
	for _, part := range clauseSplitRe.Split(content, -1) {
		if p := strings.TrimSpace(part); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

const mathHint = "I can help with calculations! Try asking something like 'what is 2 plus 2' or 'calculate 10 times 5'."

// resolveCompound dispatches each clause through the fast-path checks and
// joins the results in clause order. It reports false when no clause was
// actionable, which sends the whole content down the single-intent path.
func (e *Engine) resolveCompound(content string) (string, bool) {
	var outs []string
	for _, clause := range splitClauses(content) {
		switch {
		// math first: "10 times 5" contains the substring "time" and must
		// not read as a clock question
		case isMathExpression(clause):
			outs = append(outs, respondMath(clause))
		case containsAny(clause, "date", "time"):
			outs = append(outs, respondDateTime(clause, e.now()))
		case containsAny(clause, "math"):
			// "math"/"maths" with no actual expression
			outs = append(outs, mathHint)
		case strings.Contains(clause, "who"):
			if answer := lookupKnowledge(clause); answer != "" {
				outs = append(outs, answer)
			}
		}
	}
	if len(outs) == 0 {
		return "", false
	}
	return strings.Join(outs, "\n\n"), true
}
