package llm

import (
	"regexp"
	"strings"
)

// thinkPattern matches delimited reasoning blocks, including across line breaks
var thinkPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ExtractFinalAnswer strips the internal reasoning markup some models emit
// (DeepSeek-R1 and similar) and returns the remaining text trimmed. Unmatched
// or absent markers leave the text unchanged.
func ExtractFinalAnswer(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimSpace(thinkPattern.ReplaceAllString(text, ""))
}
