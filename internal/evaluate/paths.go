package evaluate

import (
	"regexp"
	"strings"
)

// Path-variant mission checks. Each specialization swaps the path-specific
// slots for its own missions, so those slots grade different criteria
// depending on the active path.

var (
	competitorsRe = regexp.MustCompile(`(?i)competitor|compet|rival|player`)
	trendsRe      = regexp.MustCompile(`(?i)trend|pattern|shift|chang|opportunit`)
	personasRe    = regexp.MustCompile(`(?i)persona|customer|audience|segment`)
	recommendRe   = regexp.MustCompile(`(?i)recommend|suggest|should|strategy|action`)

	strategyRe = regexp.MustCompile(`(?i)strategy|strateg|plan|approach|goal`)
	emailRe    = regexp.MustCompile(`(?i)email|subject line|sequence`)
	socialRe   = regexp.MustCompile(`(?i)social|twitter|linkedin|instagram|facebook`)
	blogRe     = regexp.MustCompile(`(?i)blog|article|post|content`)

	analyzesRe  = regexp.MustCompile(`(?i)analy|metric|trend|data|insight`)
	summaryRe   = regexp.MustCompile(`(?i)summary|overview|executive`)
	visualsRe   = regexp.MustCompile(`(?i)chart|graph|visual|plot|diagram`)
	nextStepsRe = regexp.MustCompile(`(?i)recommend|suggest|action|next step`)

	workflowRe  = regexp.MustCompile(`(?i)workflow|process|steps?`)
	automatedRe = regexp.MustCompile(`(?i)automat|connect|build`)
	qualityRe   = regexp.MustCompile(`(?i)quality|check|verif|validat`)
	docRe       = regexp.MustCompile(`(?i)document|instruction|how to`)
)

// Business 3.2: Market Research Automation.
func checkMarketResearch(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	researchTerms := []string{"research", "market", "competitor", "trend", "customer", "persona"}
	if countTerms(lowered, researchTerms) < 3 {
		// Not research output at all; every criterion fails.
		return results
	}

	results["competitors"] = competitorsRe.MatchString(text)
	results["trends"] = trendsRe.MatchString(text)
	results["personas"] = personasRe.MatchString(text)
	results["recommendations"] = recommendRe.MatchString(text)
	return results
}

// Business 3.4: Multi-Channel Campaign Generator.
func checkCampaignGenerator(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	campaignTerms := []string{"email", "social", "blog", "campaign", "strategy", "audience"}
	if countTerms(lowered, campaignTerms) < 3 {
		return results
	}

	results["strategy"] = strategyRe.MatchString(text)
	results["email"] = emailRe.MatchString(text)
	results["social"] = socialRe.MatchString(text)
	results["blog"] = blogRe.MatchString(text)
	return results
}

// Business 4.1: Product Launch Campaign Orchestrator.
func checkLaunchOrchestrator(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"messaging": anyTerm(lowered, "messaging", "key message", "elevator pitch", "value proposition", "objection"),
		"timeline":  anyTerm(lowered, "timeline", "phase", "pre-launch", "launch day", "post-launch", "90-day", "90 day"),
		"measurement": anyTerm(lowered,
			"kpi", "metric", "measure", "track", "success criteria"),
	}
}

// Business 4.2: Customer Journey Intelligence System.
func checkCustomerJourney(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"segments": anyTerm(lowered, "segment", "cohort", "pattern", "persona"),
		"churn":    anyTerm(lowered, "churn", "at-risk", "at risk", "attrition", "risk score"),
		"friction": anyTerm(lowered, "friction", "drop-off", "drop off", "pain point", "barrier", "bottleneck"),
		"playbooks": anyTerm(lowered,
			"playbook", "retention", "intervention", "win-back", "winback"),
	}
}

// Business 4.3: Competitive Intelligence Monitoring System.
func checkCompetitiveIntel(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"strategy": anyTerm(lowered,
			"price leader", "innovator", "niche", "strategy pattern", "positioning", "strategic pattern"),
		"swot": anyTerm(lowered, "swot", "strength", "weakness"),
		"opportunities": anyTerm(lowered,
			"opportunit", "gap", "underserved", "white space", "whitespace"),
	}
}

// Technical 4.1: Production-Grade API Integration System.
func checkAPIIntegration(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"ratelimit": anyTerm(lowered, "rate limit", "rate-limit", "ratelimit", "throttl"),
		"retry":     anyTerm(lowered, "retry", "retries", "backoff", "exponential"),
	}
}

// Technical 4.2: Machine Learning Pipeline Builder.
func checkMLPipeline(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"validation": anyTerm(lowered,
			"train/test", "train/val", "validation set", "test split", "cross-validation", "cross validation", "holdout"),
		"evaluation": anyTerm(lowered,
			"accuracy", "precision", "recall", "f1", "confusion matrix", "rmse", "auc"),
		"comparison": anyTerm(lowered,
			"comparison", "compare", "best model", "recommend"),
	}
}

// Technical 4.3: Infrastructure-as-Code Deployment System.
func checkInfraAsCode(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"monitoring": anyTerm(lowered,
			"monitor", "logging", "cloudwatch", "datadog", "alert", "observab"),
		"cicd": anyTerm(lowered,
			"ci/cd", "cicd", "pipeline", "github actions", "gitlab ci", "continuous integration", "continuous deployment"),
		"documentation": anyTerm(lowered,
			"prerequisite", "rollback", "deployment step", "documentation", "readme", "how to deploy"),
	}
}

// Hybrid 3.2: Automated Report Generation.
func checkReportGeneration(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	reportTerms := []string{"report", "summary", "executive", "insight", "recommendation"}
	if countTerms(lowered, reportTerms) < 2 {
		return results
	}

	results["analyzes"] = analyzesRe.MatchString(text)
	results["summary"] = summaryRe.MatchString(text)
	results["visualizations"] = visualsRe.MatchString(text)
	results["recommendations"] = nextStepsRe.MatchString(text)
	return results
}

// Hybrid 3.4: Workflow Automation Builder.
func checkWorkflowBuilder(text string) map[string]bool {
	lowered := strings.ToLower(text)
	results := make(map[string]bool)

	workflowTerms := []string{"workflow", "step", "process", "automat", "quality"}
	if countTerms(lowered, workflowTerms) < 2 {
		return results
	}

	results["workflow"] = workflowRe.MatchString(text)
	results["automated"] = automatedRe.MatchString(text)
	results["quality"] = qualityRe.MatchString(text)
	results["documented"] = docRe.MatchString(text)
	return results
}

// Hybrid 4.1: Business Intelligence Dashboard Builder.
func checkBIDashboard(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"recommendations": anyTerm(lowered, "recommend", "action item", "next step", "suggest"),
	}
}

// Hybrid 4.2: Regulatory Compliance Analyzer.
func checkComplianceAnalyzer(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"findings":    anyTerm(lowered, "finding", "gap", "violation", "non-complian", "noncomplian"),
		"severity":    anyTerm(lowered, "critical", "high", "medium", "low", "severity"),
		"remediation": anyTerm(lowered, "remediat", "fix", "address", "resolve", "corrective"),
		"scorecard":   anyTerm(lowered, "scorecard", "score", "%", "percent"),
	}
}

// Hybrid 4.3: Strategic Decision Analyzer.
func checkDecisionAnalyzer(text string) map[string]bool {
	lowered := strings.ToLower(text)
	return map[string]bool{
		"scenarios":      anyTerm(lowered, "best-case", "best case", "worst-case", "worst case", "base-case", "base case", "scenario"),
		"risks":          anyTerm(lowered, "risk", "assumption"),
		"recommendation": anyTerm(lowered, "recommend", "roadmap"),
	}
}
