package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Hashtag turns free text into a single hashtag by stripping all whitespace.
// Example: "salon unghii" -> "#salonunghii"
func Hashtag(s string) string {
	return "#" + strings.Join(strings.Fields(s), "")
}

// JoinHashtags renders a hashtag list the way it is stored on a post:
// one space-separated string.
func JoinHashtags(tags []string) string {
	return strings.Join(tags, " ")
}

// Time24 normalizes a wall-clock string to 24-hour HH:MM form.
// Malformed input falls back to "10:00", the default posting slot.
func Time24(s string) string {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "10:00"
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return "10:00"
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return "10:00"
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
