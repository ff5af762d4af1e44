package evaluate

import (
	"regexp"
	"strings"
)

// Level 1: atomic prompt checks.

var (
	feature1Re = regexp.MustCompile(`(?i)(?:ai|artificial intelligence).*?(?:priorit|task)|(?:priorit|task).*?(?:ai|artificial intelligence)`)
	feature2Re = regexp.MustCompile(`(?i)(?:team|collaborat).*?dashboard|dashboard.*?(?:team|collaborat)`)
	feature3Re = regexp.MustCompile(`(?i)automat.*?report|report.*?automat`)

	bulletLineRe   = regexp.MustCompile(`(?m)^[-•*]\s`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]`)
	finalAnswerRe  = regexp.MustCompile(`(?i)FINAL ANSWER:\s*\$?(\d+)`)
	fortyThreeRe   = regexp.MustCompile(`(?i)\$43\b|43\s*dollars|\bforty[- ]three`)
	arithmeticRe   = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)
	exampleNumRe   = regexp.MustCompile(`(?i)example\s+\d+:`)
	numberedLineRe = regexp.MustCompile(`(?m)^\d+\.`)
	exampleColonRe = regexp.MustCompile(`(?i)example:`)
	arrowRe        = regexp.MustCompile(`→|->|-->`)
	colonRe        = regexp.MustCompile(`:`)
	spacedDashRe   = regexp.MustCompile(`\s-\s`)
	properNameRe   = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)?\b`)

	roleWithCredRe = regexp.MustCompile(`(?i)you are (?:a|an) [\w\s]{10,}(?:with|who has|having)`)
	simpleRoleRe   = regexp.MustCompile(`(?i)you are (?:a|an) [\w\s]+`)
	yearsExpRe     = regexp.MustCompile(`(?i)\d+\s*(?:years?|yrs?)(?:\s+of)?\s+experience`)
	achievementRe  = regexp.MustCompile(`(?i)speciali[zs]|expert|helped \d+|grew|grown|launched|produced|achieve`)

	unquotedNumRe = regexp.MustCompile(`:\s*-?\d`)
	quotedNumRe   = regexp.MustCompile(`:\s*"-?\d+(?:\.\d+)?"`)
	jsonNameRe    = regexp.MustCompile(`"name"\s*:`)
)

func checkPrecisionControl(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["wordcount"] = wordCount(text) == 150
	results["features"] = feature1Re.MatchString(text) &&
		feature2Re.MatchString(text) &&
		feature3Re.MatchString(text)

	isBulletList := countMatches(bulletLineRe, text) >= 3
	sentences := 0
	for _, s := range sentenceEndRe.Split(text, -1) {
		if len(strings.TrimSpace(s)) > 10 {
			sentences++
		}
	}
	results["sentences"] = !isBulletList && sentences >= 3

	tail := trailingWindow(text, 100)
	results["cta"] = anyTerm(tail,
		"start", "try", "join", "get started", "sign up",
		"learn more", "discover", "explore", "begin", "today")

	results["nospecs"] = !anyTerm(lowered,
		"$", "price", "pricing", "cost", "api", "system requirements", "technical specs")

	return results
}

func checkXMLStructure(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	tags := []string{"analysis", "risks", "opportunities", "recommendation"}
	allTags := true
	for _, tag := range tags {
		if !tagPaired(text, tag) {
			allTags = false
			break
		}
	}
	results["tags"] = allTags

	before, _, _ := strings.Cut(text, "<analysis>")
	_, after, found := strings.Cut(text, "</recommendation>")
	if !found {
		after = ""
	}
	results["nocontent"] = strings.TrimSpace(before) == "" && strings.TrimSpace(after) == ""

	results["mitigation"] = anyTerm(lowered, "mitigate", "mitigation", "address", "counter")
	results["exploitation"] = anyTerm(lowered, "strategy", "leverage", "capitalize", "exploit")
	results["actionable"] = regexp.MustCompile(`\d`).MatchString(text) ||
		regexp.MustCompile(`(?i)\b(yes|no|proceed|recommend)\b`).MatchString(text)

	return results
}

func checkContextEfficiency(text string) map[string]bool {
	lowered := strings.ToLower(text)
	words := wordCount(text)
	results := make(map[string]bool)

	results["wordcount"] = words < 200
	results["bonus"] = words < 150

	companies := []string{"techcorp", "dataflow", "cloudnine", "securenet", "ailabs"}
	results["companies"] = countTerms(lowered, companies) == 5

	years := []string{"2010", "2013", "2015", "2016", "2018"}
	results["years"] = countTerms(text, years) == 5

	hasRevenue := strings.Contains(text, "$") ||
		strings.Contains(lowered, "revenue") ||
		strings.Contains(lowered, "m")
	hasEmployees := strings.Contains(lowered, "employee") || strings.Contains(lowered, "emp")
	results["complete"] = hasRevenue && hasEmployees

	return results
}

func checkFewShot(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	exampleCount := countMatches(exampleNumRe, text)
	if n := countMatches(numberedLineRe, text); n > exampleCount {
		exampleCount = n
	}
	if n := countMatches(exampleColonRe, text); n > exampleCount {
		exampleCount = n
	}
	results["examples"] = exampleCount >= 5

	results["structure"] = countMatches(arrowRe, text) >= 5 ||
		countMatches(colonRe, text) >= 10 ||
		countMatches(spacedDashRe, text) >= 5

	variety := []string{"tech", "food", "health", "finance", "fitness", "education", "retail", "b2b", "saas", "app"}
	results["variety"] = countTerms(lowered, variety) >= 3

	names := properNameRe.FindAllString(text, -1)
	results["names"] = len(names) >= 10

	short := 0
	for _, name := range names {
		if len(strings.Fields(name)) <= 2 {
			short++
		}
	}
	results["format"] = short >= 10

	return results
}

func checkChainOfThought(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	stepTerms := []string{"step", "first", "next", "then", "final", "therefore"}
	results["steps"] = countTerms(lowered, stepTerms) >= 3

	results["identifies"] = anyTerm(lowered, "given", "we know", "information", "key facts", "the problem", "first")

	results["intermediate"] = strings.Contains(text, "=") ||
		strings.Contains(text, "×") ||
		strings.Contains(text, "*") ||
		arithmeticRe.MatchString(text)

	results["format"] = finalAnswerRe.MatchString(text) ||
		regexp.MustCompile(`(?i)FINAL ANSWER:`).MatchString(text)

	match := finalAnswerRe.FindStringSubmatch(text)
	results["correct"] = (match != nil && match[1] == "43") || fortyThreeRe.MatchString(text)

	return results
}

func checkRoleAssignment(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	results["role"] = roleWithCredRe.MatchString(text) ||
		(simpleRoleRe.MatchString(text) && strings.Contains(lowered, "experience"))

	results["credentials"] = yearsExpRe.MatchString(text) || achievementRe.MatchString(text)

	results["equipment"] = anyTerm(lowered,
		"equipment", "camera", "microphone", "mic", "lighting", "tripod", "audio", "gear")
	results["content"] = anyTerm(lowered,
		"content", "video", "topic", "idea", "series", "episode")
	results["growth"] = anyTerm(lowered,
		"grow", "subscriber", "audience", "promot", "algorithm", "seo", "strategy")

	return results
}

func checkStructuredJSON(text string) map[string]bool {
	trimmed := strings.TrimSpace(text)
	results := make(map[string]bool)

	startsJSON := strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
	endsJSON := strings.HasSuffix(trimmed, "}") || strings.HasSuffix(trimmed, "]")
	results["onlyjson"] = !strings.Contains(text, "```") && startsJSON && endsJSON

	results["valid"] = strings.Contains(text, "{") && strings.Contains(text, "}") &&
		strings.Count(text, `"`) >= 10 &&
		strings.Count(text, ":") >= 5

	fields := []string{`"id"`, `"name"`, `"price"`, `"in_stock"`, `"category"`}
	allFields := true
	for _, f := range fields {
		if !strings.Contains(text, f) {
			allFields = false
			break
		}
	}
	results["fields"] = allFields

	results["three"] = countMatches(jsonNameRe, text) >= 3

	results["numbers"] = unquotedNumRe.MatchString(text) && !quotedNumRe.MatchString(text)

	return results
}
