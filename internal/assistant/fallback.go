package assistant

import (
	"fmt"
	"strings"
	"time"
)

const defaultResponse = "I'm your virtual assistant! I can help you with various topics including programming languages like JavaScript, Python, Java, science, technology, history, geography, mathematics, art, music, sports, food, and weather, and I can also do calculations, tell you the current date and time, share rhymes, and set reminders! What would you like to know?"

// respondFallback is the last-resort cascade, consulted only after the
// classifiers, the remote provider, and the keyword table all declined:
// quick heuristics for common conversational follow-ups, then the generic
// capability message.
func respondFallback(content string, now time.Time) string {
	switch {
	case containsAny(content, "time", "date", "timing"):
		return fmt.Sprintf("The current time is %s.", now.Format("03:04:05 PM"))
	case containsAny(content, "what is", "tell me about", "explain", "describe", "define", "help me understand"):
		return "I'd be happy to help! I can provide information about a wide range of topics including programming, science, technology, history, geography, mathematics, art, music, sports, food, and weather. Could you please specify which topic you'd like to learn about?"
	case strings.Contains(content, "thank"):
		return "You're welcome! Is there anything else I can help you with?"
	case containsAny(content, "bye", "goodbye"):
		return "Goodbye! Feel free to come back anytime you have questions."
	case containsAny(content, "help", "what can you do"):
		return "I can help you learn about various topics! Ask me about programming languages or general knowledge subjects, and I can also do mathematical calculations, tell you the current date and time, set reminders, and share rhymes with you!"
	case containsAny(content, "how do i", "how to"):
		return "I can guide you through various concepts! For specific 'how-to' questions, please mention the topic you're interested in and I'll provide helpful guidance."
	case containsAny(content, "difference", "compare", " vs "):
		return "I can help you compare different topics! Ask me about differences like 'JavaScript vs Python' and I'll explain the key distinctions."
	case containsAny(content, "example", "show me"):
		return "I can provide examples and explanations! Please specify which topic you'd like examples for."
	case containsAny(content, "elaborate", "detail", "more"):
		return "I'd be happy to provide more details! Could you specify which topic you'd like me to elaborate on?"
	case containsAny(content, "who", "when", "where", "why"):
		return "I can help answer questions about people, places, times, and reasons! Please provide more details about what you're looking for, and I'll do my best to help."
	}
	return defaultResponse
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
