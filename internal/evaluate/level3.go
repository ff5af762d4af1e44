package evaluate

import (
	"regexp"
	"strings"
)

// Level 3: real-world application checks (default catalog definitions).

var (
	headingRe     = regexp.MustCompile(`(?m)^#{1,3}\s|\*\*.*\*\*`)
	htmlHeadingRe = regexp.MustCompile(`(?i)<h[1-3]>`)
	bareHeadingRe = regexp.MustCompile(`\n[A-Z][^.!?\n]+\n`)
	codeShapeRe   = regexp.MustCompile(`(?i)import |def |function |class |from |require\(|const |let |var `)
)

func checkContentPipeline(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["outline"] = headingRe.MatchString(text) ||
		htmlHeadingRe.MatchString(text) ||
		bareHeadingRe.MatchString(text)

	results["length"] = wordCount(text) >= 1500

	hasIntro := anyTerm(lowered, "introduction", "intro", "begin", "start", "first", "opening", "overview")
	hasConclusion := anyTerm(lowered, "conclusion", "conclud", "summary", "finally", "in closing", "to sum up", "takeaway")
	results["structure"] = hasIntro && hasConclusion

	// 5-7 mentions is the target; anything up to 15 still reads natural.
	peak := peakWordFrequency(lowered)
	results["seo"] = peak >= 5 && peak <= 15

	actionTerms := []string{"should", "can", "try", "consider", "start", "avoid", "use", "implement", "tips", "steps"}
	results["actionable"] = countTerms(lowered, actionTerms) >= 3

	return results
}

func checkDataAnalysis(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"summary": anyTerm(lowered, "summary", "conclusion", "recommend", "key findings", "insights", "executive summary"),
	}
}

func checkSupportTriage(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["responses"] = anyTerm(lowered, "response", "reply", "steps", "help", "resolve", "assist")

	professional := anyTerm(lowered, "thank you", "appreciate", "happy to help", "please", "we understand", "sincerely")
	casual := anyTerm(lowered, "hey", "gonna", "stuff", "yeah", "cool")
	results["professional"] = professional && !casual

	return results
}

func checkCodeGeneration(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	specTerms := []string{"problem", "need", "goal", "requirement", "should", "task", "automate"}
	results["specification"] = countTerms(lowered, specTerms) >= 2

	results["functional"] = codeShapeRe.MatchString(text)

	instructionTerms := []string{"run", "execute", "install", "usage", "how to", "step", "first"}
	results["instructions"] = countTerms(lowered, instructionTerms) >= 2

	results["example"] = anyTerm(lowered, "example", "sample", "usage", "try", "test with")

	return results
}
