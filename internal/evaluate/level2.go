package evaluate

import (
	"fmt"
	"regexp"
	"strings"
)

// Level 2: compound workflow checks.

var (
	stepRefRe = regexp.MustCompile(`(?i)(?:step \d+|from (?:the |our )?(?:previous|above|earlier)|based on (?:the |our |this )?(?:analysis|findings?|research|data)|using (?:the |our |this )?(?:insights?|information|data|results?))`)
	stepNumRe = regexp.MustCompile(`(?i)step\s*([1-5])`)
	datesRe   = regexp.MustCompile(`(?i)\d{1,2}/\d{1,2}/\d{2,4}|\d{4}-\d{2}-\d{2}|january|february|march|april|may|june|july|august|september|october|november|december|\d+\s+(?:days?|weeks?|months?|quarters?)|q[1-4]\s+\d{4}|90[- ]day`)
	metricsRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s+percent|\d+[km]\b|\d+\s+stores?|\d+\s+months?`)
	dependRe  = regexp.MustCompile(`(?i)based on|according to|as (?:mentioned|shown|identified)|from (?:the|this)|building on|leveraging|using (?:the|these)`)

	iterLimitRe = regexp.MustCompile(`(?i)maximum 3|max 3|3 iterations|three iterations|limit.*3`)
	exampleCue  = regexp.MustCompile(`(?i)for example|for instance|such as|like when|consider|imagine`)

	version1Re     = regexp.MustCompile(`(?i)version\s*1\s*:`)
	version2Re     = regexp.MustCompile(`(?i)version\s*2\s*:`)
	version1BodyRe = regexp.MustCompile(`(?is)version\s*1\s*:(.*?)(?:version\s*2\s*:|$)`)
	version2BodyRe = regexp.MustCompile(`(?is)version\s*2\s*:(.*?)(?:explanation|optimization|what|$)`)
)

func checkSequentialChains(text string) map[string]bool {
	results := make(map[string]bool)

	results["references"] = countMatches(stepRefRe, text) >= 3

	unique := make(map[string]bool)
	for _, m := range stepNumRe.FindAllStringSubmatch(text, -1) {
		unique[m[1]] = true
	}
	results["complete"] = len(unique) >= 5

	results["specific"] = datesRe.MatchString(text) && metricsRe.MatchString(text)
	results["dependent"] = countMatches(dependRe, text) >= 3

	return results
}

func checkFeedbackLoops(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["criteria"] = anyTerm(lowered, "criteria", "requirement", "must", "should", "quality standard", "check")
	results["verify"] = anyTerm(lowered, "verify", "check", "ensure", "validate", "confirm", "review")
	results["iterate"] = anyTerm(lowered, "iterate", "retry", "repeat", "until", "keep trying", "try again", "revision")
	results["limit"] = anyTerm(lowered, "maximum 3", "max 3", "3 iterations", "three iterations", "limit 3")

	// The quality criterion re-grades the blog post itself against the
	// mission's five standards.
	words := wordCount(text)
	inRange := words >= 300 && words <= 350
	hasIntro := anyTerm(lowered, "introduction", "intro", "begin", "start", "first", "opening")
	hasConclusion := anyTerm(lowered, "conclusion", "conclud", "summary", "finally", "in closing", "to sum up")
	hasExamples := countMatches(exampleCue, text) >= 2
	isProfessional := !anyTerm(lowered, "hey", "gonna", "kinda", "stuff", "yeah", "cool")
	hasTakeaway := anyTerm(lowered, "takeaway", "action", "can", "should", "consider", "try", "implement", "start")
	results["quality"] = inRange && (hasIntro || hasConclusion) && hasExamples && isProfessional && hasTakeaway

	return results
}

func checkErrorRecovery(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["generates"] = anyTerm(lowered, "compar", "versus", "vs.", "better", "worse", "difference")

	verifyTerms := []string{"verify", "check", "validate", "ensure", "confirm", "review", "accurate"}
	results["verification"] = countTerms(lowered, verifyTerms) >= 2

	errorTerms := []string{"error", "mistake", "incorrect", "fix", "correct", "revise", "retry", "iterate"}
	results["instructions"] = countTerms(lowered, errorTerms) >= 2

	results["iterations"] = iterLimitRe.MatchString(text)

	return results
}

// moderationAnswers is the answer key for the adversarial-defense test
// comments, indexed by comment number.
var moderationAnswers = []string{
	1: "safe", 2: "unsafe", 3: "unsafe", 4: "unsafe", 5: "safe",
	6: "safe", 7: "unsafe", 8: "safe", 9: "unsafe", 10: "safe",
}

func checkAdversarialDefense(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	hasSafe := regexp.MustCompile(`(?i)\bsafe\b`).MatchString(text)
	hasUnsafe := regexp.MustCompile(`(?i)\bunsafe\b`).MatchString(text)
	results["classifies"] = hasSafe && hasUnsafe

	results["leetspeak"] = anyTerm(lowered, "leetspeak", "leet speak", "l33t", "symbol", "spacing", "space", "asterisk", "misspell")
	results["context"] = anyTerm(lowered, "context", "sarcasm", "intent", "tone", "disagree", "opinion")
	results["reasoning"] = anyTerm(lowered, "explain", "reason", "why", "because", "rationale", "justif")

	correct := 0
	for num := 1; num <= 10; num++ {
		if classificationFor(lowered, num) == moderationAnswers[num] {
			correct++
		}
	}
	results["accuracy"] = correct >= 9

	return results
}

// classificationFor extracts the Safe/Unsafe verdict the submitted output
// gives for one numbered comment. Recognizes the common shapes "1. Safe",
// "Comment 1: Unsafe" and "1 - "quoted comment" - Safe".
func classificationFor(lowered string, num int) string {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`%d[.:\-)]?\s*(?:comment)?\s*[-:]?\s*(safe|unsafe)`, num)),
		regexp.MustCompile(fmt.Sprintf(`comment\s*%d[.:\-)]?\s*(safe|unsafe)`, num)),
		regexp.MustCompile(fmt.Sprintf(`%d\s*[-:]\s*["']?[^"']*["']?\s*[-:]?\s*(safe|unsafe)`, num)),
	}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(lowered); m != nil {
			return m[1]
		}
	}
	return ""
}

func checkTokenOptimization(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	hasV1 := version1Re.MatchString(text)
	hasV2 := version2Re.MatchString(text)
	results["version1"] = hasV1
	results["version2"] = hasV2

	if hasV1 && hasV2 {
		m1 := version1BodyRe.FindStringSubmatch(text)
		m2 := version2BodyRe.FindStringSubmatch(text)
		if m1 != nil && m2 != nil {
			v1 := strings.TrimSpace(m1[1])
			v2 := strings.TrimSpace(m2[1])

			// Token counts estimated at ~1.3 tokens per word.
			v1Tokens := float64(wordCount(v1)) * 1.3
			v2Tokens := float64(wordCount(v2)) * 1.3
			if v1Tokens > 0 {
				reduction := (v1Tokens - v2Tokens) / v1Tokens * 100
				results["reduction"] = reduction >= 50
			}

			instr := []string{"summarize", "analyze", "review", "provide", "include", "write", "create"}
			results["complete"] = anyTerm(strings.ToLower(v1), instr...) && anyTerm(strings.ToLower(v2), instr...)
		}
	}

	explainTerms := []string{"removed", "changed", "optimized", "shortened", "eliminated", "reduced", "because", "explanation", "condensed"}
	results["explanation"] = countTerms(lowered, explainTerms) >= 2

	return results
}
