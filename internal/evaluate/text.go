package evaluate

import (
	"regexp"
	"strings"
)

// Shared text primitives for the mission checkers. All matching is
// case-insensitive via pre-lowered text unless a checker compiles its own
// pattern.

var wordSplitRe = regexp.MustCompile(`\s+`)

func wordCount(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(wordSplitRe.Split(trimmed, -1))
}

// anyTerm reports whether at least one term occurs in the lowered text.
func anyTerm(lowered string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

// countTerms counts how many distinct terms occur in the lowered text.
func countTerms(lowered string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			n++
		}
	}
	return n
}

func countMatches(re *regexp.Regexp, text string) int {
	return len(re.FindAllString(text, -1))
}

// tagPaired reports whether both <tag> and </tag> occur.
func tagPaired(text, tag string) bool {
	return strings.Contains(text, "<"+tag+">") && strings.Contains(text, "</"+tag+">")
}

// trailingWindow returns the last n bytes of text, lowered. Used for
// checks that must hold near the end, like a closing call-to-action.
func trailingWindow(text string, n int) string {
	if len(text) <= n {
		return strings.ToLower(text)
	}
	return strings.ToLower(text[len(text)-n:])
}

// peakWordFrequency returns the highest occurrence count among words longer
// than four characters. Approximates keyword density.
func peakWordFrequency(lowered string) int {
	freq := make(map[string]int)
	max := 0
	for _, w := range wordSplitRe.Split(strings.TrimSpace(lowered), -1) {
		if len(w) <= 4 {
			continue
		}
		freq[w]++
		if freq[w] > max {
			max = freq[w]
		}
	}
	return max
}
