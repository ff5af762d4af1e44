package evaluate

import (
	"strings"
	"testing"

	"github.com/abhisek/cracked/internal/curriculum"
)

var allPaths = []curriculum.Path{
	curriculum.PathNone,
	curriculum.PathBusiness,
	curriculum.PathTechnical,
	curriculum.PathHybrid,
}

func TestEvaluate_UnknownMission(t *testing.T) {
	res := Evaluate(curriculum.MissionID{Level: 2, Sequence: 9}, curriculum.PathBusiness, "anything")
	if len(res) != 0 {
		t.Errorf("unknown mission: got %d entries, want 0", len(res))
	}
}

func TestEvaluate_PlaceholderSlot(t *testing.T) {
	res := Evaluate(curriculum.MissionID{Level: 4, Sequence: 1}, curriculum.PathNone, "anything")
	if len(res) != 0 {
		t.Errorf("placeholder slot: got %d entries, want 0", len(res))
	}
}

func TestEvaluate_EmptyInputAllFalse(t *testing.T) {
	for _, m := range curriculum.AllMissions() {
		for _, path := range allPaths {
			resolved, ok := curriculum.Resolve(m.ID, path)
			if !ok {
				t.Fatalf("Resolve(%q, %q) missing", m.ID, path)
			}
			for _, input := range []string{"", "   \n\t  "} {
				res := Evaluate(m.ID, path, input)
				if resolved.Placeholder {
					if len(res) != 0 {
						t.Errorf("Evaluate(%q, %q, blank): placeholder yielded %d entries", m.ID, path, len(res))
					}
					continue
				}
				auto := resolved.AutoCriteria()
				if len(res) != len(auto) {
					t.Errorf("Evaluate(%q, %q, blank): got %d entries, want %d", m.ID, path, len(res), len(auto))
				}
				for _, c := range auto {
					pass, present := res[c.ID]
					if !present {
						t.Errorf("Evaluate(%q, %q, blank): missing entry for %q", m.ID, path, c.ID)
					}
					if pass {
						t.Errorf("Evaluate(%q, %q, blank): criterion %q passed on empty input", m.ID, path, c.ID)
					}
				}
			}
		}
	}
}

func TestEvaluate_EntriesMatchCatalog(t *testing.T) {
	sample := "Step 1: based on the research, verify the summary. Step 2: retry with examples."
	for _, m := range curriculum.AllMissions() {
		for _, path := range allPaths {
			resolved, _ := curriculum.Resolve(m.ID, path)
			res := Evaluate(m.ID, path, sample)
			if resolved.Placeholder {
				continue
			}
			auto := resolved.AutoCriteria()
			if len(res) != len(auto) {
				t.Errorf("Evaluate(%q, %q): got %d entries, want %d", m.ID, path, len(res), len(auto))
			}
			for _, c := range auto {
				if _, ok := res[c.ID]; !ok {
					t.Errorf("Evaluate(%q, %q): no verdict for catalog criterion %q", m.ID, path, c.ID)
				}
			}
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	sample := "VERSION 1: Please summarize this review. VERSION 2: Summarize. Explanation: removed and condensed."
	for _, m := range curriculum.AllMissions() {
		for _, path := range allPaths {
			first := Evaluate(m.ID, path, sample)
			second := Evaluate(m.ID, path, sample)
			if len(first) != len(second) {
				t.Fatalf("Evaluate(%q, %q): entry count changed between calls", m.ID, path)
			}
			for k, v := range first {
				if second[k] != v {
					t.Errorf("Evaluate(%q, %q): criterion %q flipped between calls", m.ID, path, k)
				}
			}
		}
	}
}

func TestPrecisionControl_FullPass(t *testing.T) {
	base := "TaskFlow brings AI task prioritization to every team. " +
		"The team collaboration dashboard keeps all work together in one calm place. " +
		"Automated reporting turns weekly status meetings into a single glance."
	words := strings.Fields(base)
	for len(words) < 149 {
		words = append(words, "really")
	}
	words = append(words, "today.")
	text := strings.Join(words, " ")

	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 1}, curriculum.PathNone, text)
	for _, id := range []string{"wordcount", "features", "sentences", "cta", "nospecs"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestPrecisionControl_WrongWordCount(t *testing.T) {
	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 1}, curriculum.PathNone, "short text today")
	if res["wordcount"] {
		t.Error("wordcount passed on a 3-word text")
	}
}

func TestXMLStructure_FullPass(t *testing.T) {
	text := "<analysis>A</analysis><risks>mitigate X</risks>" +
		"<opportunities>leverage Y</opportunities><recommendation>proceed, 5</recommendation>"
	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 2}, curriculum.PathNone, text)
	for _, id := range []string{"tags", "nocontent", "mitigation", "exploitation", "actionable"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestXMLStructure_ContentOutsideTags(t *testing.T) {
	text := "Here is the analysis: <analysis>A</analysis><risks>mitigate</risks>" +
		"<opportunities>leverage</opportunities><recommendation>proceed</recommendation>"
	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 2}, curriculum.PathNone, text)
	if res["nocontent"] {
		t.Error("nocontent passed with leading prose")
	}
}

func TestChainOfThought_CorrectAnswer(t *testing.T) {
	text := "step one: first note the key facts. 30 x 2 = 60. FINAL ANSWER: $43"
	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 5}, curriculum.PathNone, text)
	for _, id := range []string{"steps", "identifies", "intermediate", "format", "correct"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestChainOfThought_WrongAnswer(t *testing.T) {
	text := "step one: first note the key facts. 30 x 2 = 60. FINAL ANSWER: $44"
	res := Evaluate(curriculum.MissionID{Level: 1, Sequence: 5}, curriculum.PathNone, text)
	if res["correct"] {
		t.Error("correct passed with $44")
	}
	for _, id := range []string{"steps", "identifies", "intermediate", "format"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestAdversarialDefense_Accuracy(t *testing.T) {
	text := "The prompt handles leetspeak, spacing and symbols, and notes that context and sarcasm matter " +
		"because each verdict must explain its reasoning.\n" +
		"1. Safe - negative but not toxic\n" +
		"2. Unsafe - profanity\n" +
		"3. Unsafe - leetspeak evasion\n" +
		"4. Unsafe - spacing evasion\n" +
		"5. Safe - sarcasm but harmless\n" +
		"6. Safe - respectful disagreement\n" +
		"7. Unsafe - harmful abbreviation\n" +
		"8. Safe - constructive\n" +
		"9. Unsafe - symbols\n" +
		"10. Safe - mild sarcasm\n"
	res := Evaluate(curriculum.MissionID{Level: 2, Sequence: 4}, curriculum.PathNone, text)
	for _, id := range []string{"classifies", "leetspeak", "context", "reasoning", "accuracy"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestAdversarialDefense_WrongClassifications(t *testing.T) {
	text := "1. Unsafe\n2. Safe\n3. Safe\n4. Safe\n5. Unsafe\n6. Unsafe\n7. Safe\n8. Unsafe\n9. Safe\n10. Unsafe\n"
	res := Evaluate(curriculum.MissionID{Level: 2, Sequence: 4}, curriculum.PathNone, text)
	if res["accuracy"] {
		t.Error("accuracy passed with every verdict inverted")
	}
}

func TestTokenOptimization_Reduction(t *testing.T) {
	text := "VERSION 1: Please provide me with a thorough and comprehensive summary of the following " +
		"product review, making sure to include every key point, the overall sentiment, and any " +
		"notable complaints the reviewer may have mentioned anywhere in the text.\n" +
		"VERSION 2: Summarize key points and sentiment.\n" +
		"Explanation: removed filler phrases and condensed the instructions."
	res := Evaluate(curriculum.MissionID{Level: 2, Sequence: 5}, curriculum.PathNone, text)
	for _, id := range []string{"version1", "version2", "reduction", "explanation", "complete"} {
		if !res[id] {
			t.Errorf("criterion %q = false, want true", id)
		}
	}
}

func TestTokenOptimization_MissingVersion(t *testing.T) {
	text := "VERSION 1: Summarize the review please."
	res := Evaluate(curriculum.MissionID{Level: 2, Sequence: 5}, curriculum.PathNone, text)
	if res["version2"] || res["reduction"] || res["complete"] {
		t.Error("version2-dependent criteria passed without a second version")
	}
}

func TestPathVariantsGradeDifferently(t *testing.T) {
	id := curriculum.MissionID{Level: 4, Sequence: 1}
	text := "Each agent has a handoff step in the workflow; we coordinate and delegate. " +
		"The messaging framework, value proposition, launch timeline with pre-launch phases, " +
		"and KPI tracking plan are included. Rate limiting and retry with exponential backoff " +
		"are implemented. Recommendations and action items close the report."

	business := Evaluate(id, curriculum.PathBusiness, text)
	technical := Evaluate(id, curriculum.PathTechnical, text)
	hybrid := Evaluate(id, curriculum.PathHybrid, text)

	if _, ok := business["messaging"]; !ok {
		t.Error("business 4.1 should grade the messaging criterion")
	}
	if _, ok := technical["ratelimit"]; !ok {
		t.Error("technical 4.1 should grade the ratelimit criterion")
	}
	if _, ok := hybrid["recommendations"]; !ok {
		t.Error("hybrid 4.1 should grade the recommendations criterion")
	}
	if !business["messaging"] || !technical["ratelimit"] || !hybrid["recommendations"] {
		t.Error("expected the sample text to satisfy each path's signature criterion")
	}
}

func TestSupportTriage(t *testing.T) {
	text := "Response 1: Thank you for reaching out, please follow these steps to resolve the issue."
	res := Evaluate(curriculum.MissionID{Level: 3, Sequence: 3}, curriculum.PathNone, text)
	if !res["responses"] || !res["professional"] {
		t.Errorf("got %v, want both criteria true", res)
	}

	casual := "hey yeah gonna send some stuff your way"
	res = Evaluate(curriculum.MissionID{Level: 3, Sequence: 3}, curriculum.PathNone, casual)
	if res["professional"] {
		t.Error("professional passed on casual text")
	}
}
