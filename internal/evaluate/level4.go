package evaluate

import (
	"strings"
)

// Level 4: capstone checks (default catalog definitions). Capstones are
// graded mostly by self-attestation; the automatic portion is a sanity check
// on the submitted writeup.

func checkMultiAgent(text string) map[string]bool {
	lowered := strings.ToLower(text)
	coordTerms := []string{"agent", "coordinate", "workflow", "step", "handoff", "pass to", "delegate"}
	return map[string]bool{
		"documented": countTerms(lowered, coordTerms) >= 4,
	}
}

func checkDomainExpertise(text string) map[string]bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return map[string]bool{"terminology": false}
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	avg := float64(total) / float64(len(words))
	// Specialized writing runs to longer words.
	return map[string]bool{
		"terminology": avg > 5.5,
	}
}

func checkInnovation(text string) map[string]bool {
	lowered := strings.ToLower(text)
	docTerms := []string{"methodology", "approach", "framework", "implementation", "results", "comparison", "evaluation", "testing"}
	return map[string]bool{
		"documented": countTerms(lowered, docTerms) >= 4,
	}
}
