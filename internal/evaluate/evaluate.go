// Package evaluate grades pasted assistant output against a mission's
// automatic criteria using heuristic pattern checks. It never calls an AI
// service; everything is regular expressions and counting.
package evaluate

import (
	"strings"

	"github.com/abhisek/cracked/internal/curriculum"
)

// checkFunc inspects submitted text and reports pass/fail per criterion id.
// A checker may omit ids; omitted ids stay false.
type checkFunc func(text string) map[string]bool

type pathKey struct {
	Path curriculum.Path
	ID   curriculum.MissionID
}

var defaultChecks = map[curriculum.MissionID]checkFunc{
	{Level: 1, Sequence: 1}: checkPrecisionControl,
	{Level: 1, Sequence: 2}: checkXMLStructure,
	{Level: 1, Sequence: 3}: checkContextEfficiency,
	{Level: 1, Sequence: 4}: checkFewShot,
	{Level: 1, Sequence: 5}: checkChainOfThought,
	{Level: 1, Sequence: 6}: checkRoleAssignment,
	{Level: 1, Sequence: 7}: checkStructuredJSON,
	{Level: 2, Sequence: 1}: checkSequentialChains,
	{Level: 2, Sequence: 2}: checkFeedbackLoops,
	{Level: 2, Sequence: 3}: checkErrorRecovery,
	{Level: 2, Sequence: 4}: checkAdversarialDefense,
	{Level: 2, Sequence: 5}: checkTokenOptimization,
	{Level: 3, Sequence: 1}: checkContentPipeline,
	{Level: 3, Sequence: 2}: checkDataAnalysis,
	{Level: 3, Sequence: 3}: checkSupportTriage,
	{Level: 3, Sequence: 4}: checkCodeGeneration,
	{Level: 4, Sequence: 1}: checkMultiAgent,
	{Level: 4, Sequence: 2}: checkDomainExpertise,
	{Level: 4, Sequence: 3}: checkInnovation,
}

var pathChecks = map[pathKey]checkFunc{
	{curriculum.PathBusiness, curriculum.MissionID{Level: 3, Sequence: 2}}: checkMarketResearch,
	{curriculum.PathBusiness, curriculum.MissionID{Level: 3, Sequence: 4}}: checkCampaignGenerator,
	{curriculum.PathBusiness, curriculum.MissionID{Level: 4, Sequence: 1}}: checkLaunchOrchestrator,
	{curriculum.PathBusiness, curriculum.MissionID{Level: 4, Sequence: 2}}: checkCustomerJourney,
	{curriculum.PathBusiness, curriculum.MissionID{Level: 4, Sequence: 3}}: checkCompetitiveIntel,

	// The technical 3.2 and 3.4 variants grade the same criteria as the
	// defaults, so they share the default checkers.
	{curriculum.PathTechnical, curriculum.MissionID{Level: 3, Sequence: 2}}: checkDataAnalysis,
	{curriculum.PathTechnical, curriculum.MissionID{Level: 3, Sequence: 4}}: checkCodeGeneration,
	{curriculum.PathTechnical, curriculum.MissionID{Level: 4, Sequence: 1}}: checkAPIIntegration,
	{curriculum.PathTechnical, curriculum.MissionID{Level: 4, Sequence: 2}}: checkMLPipeline,
	{curriculum.PathTechnical, curriculum.MissionID{Level: 4, Sequence: 3}}: checkInfraAsCode,

	{curriculum.PathHybrid, curriculum.MissionID{Level: 3, Sequence: 2}}: checkReportGeneration,
	{curriculum.PathHybrid, curriculum.MissionID{Level: 3, Sequence: 4}}: checkWorkflowBuilder,
	{curriculum.PathHybrid, curriculum.MissionID{Level: 4, Sequence: 1}}: checkBIDashboard,
	{curriculum.PathHybrid, curriculum.MissionID{Level: 4, Sequence: 2}}: checkComplianceAnalyzer,
	{curriculum.PathHybrid, curriculum.MissionID{Level: 4, Sequence: 3}}: checkDecisionAnalyzer,
}

// Evaluate grades text against the automatic criteria of the mission that
// (id, path) resolves to. The result carries an entry for every auto
// criterion of the resolved mission, pass or fail. An unknown mission or a
// path-placeholder yields an empty map. Blank input fails everything.
// Evaluation is pure: same inputs, same verdicts.
func Evaluate(id curriculum.MissionID, path curriculum.Path, text string) map[string]bool {
	m, ok := curriculum.Resolve(id, path)
	if !ok || m.Placeholder {
		return map[string]bool{}
	}

	auto := m.AutoCriteria()
	results := make(map[string]bool, len(auto))
	for _, c := range auto {
		results[c.ID] = false
	}

	if strings.TrimSpace(text) == "" {
		return results
	}

	check := checkerFor(id, path)
	if check == nil {
		return results
	}
	for cid, pass := range check(text) {
		// Keep verdicts aligned with the catalog: a checker can only
		// speak for criteria the resolved mission actually declares.
		if _, ok := results[cid]; ok {
			results[cid] = pass
		}
	}
	return results
}

func checkerFor(id curriculum.MissionID, path curriculum.Path) checkFunc {
	if id.PathSpecific() && path.IsSelected() {
		if fn, ok := pathChecks[pathKey{Path: path, ID: id}]; ok {
			return fn
		}
	}
	return defaultChecks[id]
}
