package figma

import (
	"regexp"
	"strings"
)

// Order matters, first match wins.
var fileKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`figma\.com/design/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`figma\.com/file/([a-zA-Z0-9]+)`),
}

// ExtractFileKey returns file key from design or file URL. Anything not
// looking like a known URL is treated as the key itself.
func ExtractFileKey(input string) string {
	input = strings.TrimSpace(input)
	for _, re := range fileKeyPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return input
}
