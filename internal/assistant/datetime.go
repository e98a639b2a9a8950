package assistant

import (
	"fmt"
	"strings"
	"time"
)

// respondDateTime picks the sub-intent from the matched clause. All
// formatting uses the clock passed in (the system clock in production); no
// timezone parameter exists in this version.
func respondDateTime(content string, now time.Time) string {
	switch {
	case strings.Contains(content, "time") || strings.Contains(content, "clock"):
		return fmt.Sprintf("The current time is %s.", now.Format("03:04:05 PM"))
	case strings.Contains(content, "date") || strings.Contains(content, "today"):
		return fmt.Sprintf("Today is %s.", now.Format("Monday, January 2, 2006"))
	case strings.Contains(content, "day"):
		return fmt.Sprintf("Today is %s.", now.Format("Monday"))
	default:
		return fmt.Sprintf("The current date and time is %s.", now.Format("Monday, January 2, 2006, 03:04 PM"))
	}
}
