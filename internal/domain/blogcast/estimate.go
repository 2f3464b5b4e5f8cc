package blogcast

import (
	"strings"
	"time"
)

// WordsPerHour is the narrated listening pace used to estimate how long a
// blogcast (audio rendition of a post) runs.
const WordsPerHour = 9500

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ListenTime estimates the blogcast duration for a word count.
func ListenTime(words int) time.Duration {
	if words <= 0 {
		return 0
	}
	return time.Duration(float64(words) / WordsPerHour * float64(time.Hour))
}

// ListenMinutes is ListenTime rounded for display; any non-empty post reads
// as at least one minute.
func ListenMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	m := int(ListenTime(words).Round(time.Minute) / time.Minute)
	if m < 1 {
		return 1
	}
	return m
}
