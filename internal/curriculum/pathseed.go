package curriculum

// pathOverrides returns the specialization override table. Fifteen entries:
// the five path-specific slots for each of the three paths. Each entry fully
// replaces the default mission for that slot while the path is active.
func pathOverrides() map[pathSlot]Mission {
	out := make(map[pathSlot]Mission, 15)
	add := func(p Path, m Mission) {
		out[pathSlot{Path: p, ID: m.ID}] = m
	}

	// Business path.
	add(PathBusiness, Mission{
		ID:    MissionID{3, 2},
		Title: "Market Research Automation",
		Instructions: Instructions{
			Scenario: "Build a system that conducts comprehensive market research and produces " +
				"actionable insights without manual data gathering.",
			Requirements: []string{
				"Research a market/industry using web search (gather 10+ data points)",
				"Analyze competitor landscape (identify key players, positioning)",
				"Identify market trends and opportunities",
				"Generate customer persona profiles based on research",
				"Create executive summary with strategic recommendations",
				"Include data sources and confidence levels for claims",
				"Submit: paste the market research report (not your prompt)",
			},
			Portfolio: "Shows you can automate research work. Valuable for strategy, business " +
				"development, and competitive intelligence roles.",
			Goal: "Use AI to gather, synthesize, and analyze market intelligence at scale.",
		},
		Criteria: []Criterion{
			{ID: "research", Label: "Conducts web research (10+ sources)", Auto: false},
			{ID: "competitors", Label: "Identifies key competitors", Auto: true},
			{ID: "trends", Label: "Identifies market trends", Auto: true},
			{ID: "personas", Label: "Creates customer personas", Auto: true},
			{ID: "recommendations", Label: "Provides strategic recommendations", Auto: true},
		},
	})
	add(PathBusiness, Mission{
		ID:    MissionID{3, 4},
		Title: "Multi-Channel Campaign Generator",
		Instructions: Instructions{
			Scenario: "Build a system that creates complete, cohesive marketing campaigns across " +
				"multiple channels from a single product brief.",
			Requirements: []string{
				"Generate campaign strategy (target audience, key messages, goals)",
				"Create email sequence (3+ emails with subject lines)",
				"Write social media posts (LinkedIn, Twitter/X, Instagram - 5+ posts each)",
				"Produce blog post outline with SEO keywords",
				"Design ad copy variations (3+ headline/body combinations)",
				"Ensure consistent brand voice and messaging across all channels",
				"Submit: paste the multi-channel campaign (not your prompt)",
			},
			Portfolio: "Shows you can automate campaign creation end-to-end. Valuable for marketing, " +
				"growth, and content strategy roles.",
			Goal: "Orchestrate AI to produce cohesive, multi-channel campaigns at scale.",
		},
		Criteria: []Criterion{
			{ID: "strategy", Label: "Includes campaign strategy", Auto: true},
			{ID: "email", Label: "Email sequence (3+ emails)", Auto: true},
			{ID: "social", Label: "Social posts for 3+ platforms", Auto: true},
			{ID: "blog", Label: "Blog outline with SEO", Auto: true},
			{ID: "consistency", Label: "Consistent voice across channels", Auto: false},
		},
	})
	add(PathBusiness, Mission{
		ID:    MissionID{4, 1},
		Title: "Product Launch Campaign Orchestrator",
		Instructions: Instructions{
			Scenario: "Design a comprehensive AI-powered system that manages an entire product launch " +
				"from market positioning to go-to-market execution across all channels.",
			Requirements: []string{
				"Create market positioning strategy (target segments, competitive differentiation, value proposition)",
				"Generate complete messaging framework (elevator pitch, key messages, objection handling)",
				"Build multi-phase launch timeline (pre-launch, launch day, post-launch, 90-day plan)",
				"Produce launch assets: press release, landing page copy, email sequences, social calendar, sales materials",
				"Create measurement framework (KPIs, success metrics, tracking plan)",
				"Include contingency plans for 3 potential launch risks",
				"Submit: paste your complete launch campaign system (not your prompt)",
			},
			Portfolio: "Product launch orchestration is CMO-level work. Immediately valuable for " +
				"product marketing, growth, and brand roles.",
			Goal: "Coordinate AI to execute enterprise-scale marketing initiatives.",
		},
		Criteria: []Criterion{
			{ID: "positioning", Label: "Complete market positioning strategy", Auto: false},
			{ID: "messaging", Label: "Comprehensive messaging framework", Auto: true},
			{ID: "timeline", Label: "Multi-phase launch timeline", Auto: true},
			{ID: "assets", Label: "Full suite of launch assets", Auto: false},
			{ID: "measurement", Label: "KPIs and tracking plan", Auto: true},
		},
	})
	add(PathBusiness, Mission{
		ID:    MissionID{4, 2},
		Title: "Customer Journey Intelligence System",
		Instructions: Instructions{
			Scenario: "Build a system that analyzes customer data to map complete customer journeys, " +
				"identify friction points, predict churn, and generate personalized retention strategies.",
			Requirements: []string{
				"Define customer journey stages (5+ stages from awareness to advocacy)",
				"Map touchpoints and key actions at each stage",
				"Analyze sample customer data to identify patterns and segments",
				"Calculate health scores and churn risk for different customer segments",
				"Identify top 5 friction points causing drop-off or churn",
				"Generate personalized retention playbooks for high-risk segments",
				"Create executive dashboard: journey health, churn risks, ROI of interventions",
				"Submit: paste your customer journey intelligence report (not your prompt)",
			},
			Portfolio: "Retention is cheaper than acquisition. Directly applicable to customer " +
				"success, growth, product, and marketing roles.",
			Goal: "Demonstrate mastery of AI-powered customer intelligence and retention systems.",
		},
		Criteria: []Criterion{
			{ID: "journey", Label: "5+ journey stages with touchpoints", Auto: false},
			{ID: "segments", Label: "Identifies customer segments and patterns", Auto: true},
			{ID: "churn", Label: "Churn risk scoring present", Auto: true},
			{ID: "friction", Label: "Top 5 friction points identified", Auto: true},
			{ID: "playbooks", Label: "Personalized retention playbooks", Auto: true},
		},
	})
	add(PathBusiness, Mission{
		ID:    MissionID{4, 3},
		Title: "Competitive Intelligence Monitoring System",
		Instructions: Instructions{
			Scenario: "Create an automated system that continuously monitors competitors, analyzes " +
				"their strategies, identifies market opportunities, and generates strategic recommendations.",
			Requirements: []string{
				"Select 3-5 competitors to monitor in a real market",
				"Define monitoring framework: pricing, features, messaging, partnerships, hiring, funding, sentiment",
				"Analyze competitors across 8+ dimensions with a scoring rubric",
				"Identify each competitor's strategy pattern (price leader, feature innovator, niche specialist)",
				"Generate SWOT analysis for your position vs. each competitor",
				"Identify 3+ market opportunities based on competitive gaps",
				"Create strategic recommendations with specific action items",
				"Submit: paste your competitive intelligence report (not your prompt)",
			},
			Portfolio: "Competitive intelligence is strategy-level work that informs C-level decisions.",
			Goal:      "Build AI-powered competitive intelligence systems that inform strategic decisions.",
		},
		Criteria: []Criterion{
			{ID: "framework", Label: "Comprehensive monitoring framework", Auto: false},
			{ID: "analysis", Label: "Multi-dimensional competitor analysis", Auto: false},
			{ID: "strategy", Label: "Identifies competitor strategy patterns", Auto: true},
			{ID: "swot", Label: "SWOT analysis for each competitor", Auto: true},
			{ID: "opportunities", Label: "3+ market opportunities identified", Auto: true},
		},
	})

	// Technical path.
	add(PathTechnical, Mission{
		ID:    MissionID{3, 2},
		Title: "Data Analysis & Visualization",
		Instructions: Instructions{
			Scenario: "Build a system that transforms raw CSV data into actionable business insights " +
				"with visualizations and recommendations.",
			Requirements: []string{
				"Ingest and validate CSV data",
				"Handle missing values and malformed data appropriately",
				"Identify key trends, patterns, and outliers",
				"Create 3+ relevant visualizations (charts/graphs code)",
				"Generate executive summary with specific, actionable recommendations",
				"Entire process must be reproducible on new data",
				"Submit: paste the analysis code and summary (not your prompt)",
			},
			Portfolio: "Shows you can automate analyst work. Valuable for business intelligence, " +
				"operations, and strategy roles.",
			Goal: "Turn data into decisions automatically using AI-generated code.",
		},
		Criteria: []Criterion{
			{ID: "handles", Label: "Handles missing/bad data", Auto: false},
			{ID: "trends", Label: "Identifies trends and outliers", Auto: false},
			{ID: "viz", Label: "Creates 3+ visualizations", Auto: false},
			{ID: "summary", Label: "Executive summary with recommendations", Auto: true},
			{ID: "reproducible", Label: "Process is reproducible", Auto: false},
		},
	})
	add(PathTechnical, Mission{
		ID:    MissionID{3, 4},
		Title: "AI-Powered Code Generation",
		Instructions: Instructions{
			Scenario: "Use your prompting skills to generate working code without learning to code " +
				"yourself. Write a prompt that makes the assistant create a complete, tested solution " +
				"from a simple specification.",
			Context: "You don't need to write code to use code. Describe what you need in plain " +
				"English, have the assistant write the code, run it and get results.",
			Requirements: []string{
				"Pick a real problem you have (data analysis, file processing, web scraping, etc.)",
				"Write a specification in plain English: what should it do? what inputs? what outputs?",
				"Prompt for: working code, instructions to run it, example usage",
				"Test: can you use the generated code to solve your problem?",
				"Bonus: ask for error handling and user-friendly messages",
				"Submit: paste the code solution with instructions (not your prompt)",
			},
			Portfolio: "Shows you can solve technical problems without technical skills.",
			Goal:      "Use AI as your personal developer.",
		},
		Criteria: []Criterion{
			{ID: "specification", Label: "Clear problem specification included", Auto: true},
			{ID: "functional", Label: "Code appears functional (has imports, functions, logic)", Auto: true},
			{ID: "instructions", Label: "Includes how-to-run instructions", Auto: true},
			{ID: "example", Label: "Includes example usage", Auto: true},
			{ID: "practical", Label: "Solves a real problem (not toy example)", Auto: false},
		},
	})
	add(PathTechnical, Mission{
		ID:    MissionID{4, 1},
		Title: "Production-Grade API Integration System",
		Instructions: Instructions{
			Scenario: "Build a robust system that integrates multiple APIs, handles authentication, " +
				"implements rate limiting and retries, processes data transformations, and includes " +
				"comprehensive error handling.",
			Requirements: []string{
				"Integrate 2+ real APIs (GitHub, Stripe, Airtable, Notion, Slack, weather, financial data, ...)",
				"Implement proper authentication (API keys, OAuth, tokens)",
				"Add rate limiting logic to avoid hitting API limits",
				"Include exponential backoff retry logic for failed requests",
				"Transform and combine data from multiple sources",
				"Handle network errors, auth failures, rate limits, invalid responses",
				"Generate working code with clear documentation, example usage, and edge case handling",
				"Submit: paste your API integration system code and docs (not your prompt)",
			},
			Portfolio: "Production-grade API integrations are core infrastructure. Valuable for " +
				"backend, DevOps, and platform engineering roles.",
			Goal: "Build production-quality systems that handle real-world complexity.",
		},
		Criteria: []Criterion{
			{ID: "apis", Label: "Integrates 2+ real APIs", Auto: false},
			{ID: "auth", Label: "Proper authentication implemented", Auto: false},
			{ID: "ratelimit", Label: "Rate limiting logic present", Auto: true},
			{ID: "retry", Label: "Retry logic with backoff", Auto: true},
			{ID: "errors", Label: "Comprehensive error handling", Auto: false},
		},
	})
	add(PathTechnical, Mission{
		ID:    MissionID{4, 2},
		Title: "Machine Learning Pipeline Builder",
		Instructions: Instructions{
			Scenario: "Create an end-to-end ML pipeline that processes data, trains models, evaluates " +
				"performance, and generates predictions, all automated through AI-generated code.",
			Requirements: []string{
				"Choose a real ML problem (classification, regression, clustering, or forecasting)",
				"Build data preprocessing pipeline (cleaning, feature engineering, splitting)",
				"Train 3+ different models (e.g., Random Forest, XGBoost, Neural Network)",
				"Implement proper train/validation/test splits with cross-validation",
				"Generate evaluation metrics (accuracy, precision, recall, F1, confusion matrix)",
				"Create visualizations: feature importance, learning curves, prediction distributions",
				"Implement prediction function with confidence scores",
				"Include model comparison table and recommendation for production use",
				"Submit: paste your ML pipeline code and results (not your prompt)",
			},
			Portfolio: "ML pipelines are advanced data science. Directly valuable for data science, " +
				"ML engineering, and analytics roles.",
			Goal: "Demonstrate mastery of AI-powered machine learning automation.",
		},
		Criteria: []Criterion{
			{ID: "preprocessing", Label: "Data preprocessing pipeline", Auto: false},
			{ID: "models", Label: "Trains 3+ different models", Auto: false},
			{ID: "validation", Label: "Proper train/val/test splits", Auto: true},
			{ID: "evaluation", Label: "Comprehensive evaluation metrics", Auto: true},
			{ID: "comparison", Label: "Model comparison and recommendation", Auto: true},
		},
	})
	add(PathTechnical, Mission{
		ID:    MissionID{4, 3},
		Title: "Infrastructure-as-Code Deployment System",
		Instructions: Instructions{
			Scenario: "Design a complete infrastructure deployment system using Infrastructure-as-Code " +
				"that provisions cloud resources, configures services, implements security best " +
				"practices, and includes monitoring.",
			Requirements: []string{
				"Choose a deployment scenario (web app, API service, data pipeline, microservices)",
				"Generate IaC code (Terraform, CloudFormation, or similar) for cloud infrastructure",
				"Include: compute (containers/serverless), database, networking, load balancing, storage",
				"Implement security: IAM roles, security groups, encryption, secrets management",
				"Add monitoring and logging configuration (CloudWatch, Datadog, etc.)",
				"Create CI/CD pipeline configuration (GitHub Actions, GitLab CI, etc.)",
				"Include deployment documentation: prerequisites, deployment steps, rollback procedure",
				"Add cost estimation and optimization recommendations",
				"Submit: paste your IaC code and deployment docs (not your prompt)",
			},
			Portfolio: "Infrastructure-as-Code is DevOps/SRE core competency. Highly valuable for " +
				"DevOps, SRE, platform, and cloud engineering roles.",
			Goal: "Automate cloud infrastructure provisioning and deployment.",
		},
		Criteria: []Criterion{
			{ID: "infrastructure", Label: "Complete infrastructure defined", Auto: false},
			{ID: "security", Label: "Security best practices implemented", Auto: false},
			{ID: "monitoring", Label: "Monitoring and logging configured", Auto: true},
			{ID: "cicd", Label: "CI/CD pipeline included", Auto: true},
			{ID: "documentation", Label: "Deployment docs with rollback", Auto: true},
		},
	})

	// Hybrid path.
	add(PathHybrid, Mission{
		ID:    MissionID{3, 2},
		Title: "Automated Report Generation",
		Instructions: Instructions{
			Scenario: "Build a system that takes raw data and produces polished, executive-ready " +
				"reports with insights, visualizations, and recommendations.",
			Requirements: []string{
				"Accept data input (CSV, spreadsheet, or structured text)",
				"Analyze data for key metrics and trends",
				"Generate executive summary (2-3 paragraphs)",
				"Create 2-3 data visualizations with descriptions",
				"Provide specific, actionable recommendations",
				"Format as professional report (clear sections, professional tone)",
				"Submit: paste the generated report (not your prompt)",
			},
			Portfolio: "Shows you can automate reporting workflows. Valuable for operations, " +
				"analytics, and management roles.",
			Goal: "Transform data into decision-ready insights automatically.",
		},
		Criteria: []Criterion{
			{ID: "analyzes", Label: "Analyzes data for key metrics", Auto: true},
			{ID: "summary", Label: "Executive summary present", Auto: true},
			{ID: "visualizations", Label: "Includes 2-3 visualizations", Auto: true},
			{ID: "recommendations", Label: "Actionable recommendations", Auto: true},
			{ID: "professional", Label: "Professional report format", Auto: false},
		},
	})
	add(PathHybrid, Mission{
		ID:    MissionID{3, 4},
		Title: "Workflow Automation Builder",
		Instructions: Instructions{
			Scenario: "Build a system that automates a repetitive multi-step workflow from start to " +
				"finish without human intervention.",
			Requirements: []string{
				"Choose a real workflow you do repeatedly (weekly reports, data processing, content publishing, ...)",
				"Break down into clear steps (input, process, output)",
				"Create prompts for each step that build on previous results",
				"Add quality checks between steps",
				"Test the full workflow end-to-end",
				"Document: what it does, what inputs it needs, what outputs it produces",
				"Submit: paste the workflow documentation and sample output (not your prompt)",
			},
			Portfolio: "Shows you can design and implement process automation. Valuable for " +
				"operations, project management, and efficiency roles.",
			Goal: "Orchestrate AI to handle complex, multi-step processes autonomously.",
		},
		Criteria: []Criterion{
			{ID: "workflow", Label: "Clear workflow with multiple steps", Auto: true},
			{ID: "automated", Label: "Steps connect and build on each other", Auto: true},
			{ID: "quality", Label: "Includes quality checks", Auto: true},
			{ID: "documented", Label: "Well documented", Auto: true},
			{ID: "practical", Label: "Solves real workflow problem", Auto: false},
		},
	})
	add(PathHybrid, Mission{
		ID:    MissionID{4, 1},
		Title: "Business Intelligence Dashboard Builder",
		Instructions: Instructions{
			Scenario: "Design an AI system that transforms raw business data into an interactive " +
				"insights dashboard with KPIs, trends, forecasts, and strategic recommendations.",
			Requirements: []string{
				"Accept multiple data sources (sales, marketing, operations, etc.)",
				"Calculate 5+ key performance indicators (KPIs) automatically",
				"Identify trends, patterns, and anomalies in the data",
				"Generate 3-month forecast with confidence intervals",
				"Create strategic recommendations based on insights",
				"Output sections: Executive Summary, KPI Cards, Trend Analysis, Forecasts, Action Items",
				"Include data quality checks and validation",
				"Submit: paste your dashboard output with sample data (not your prompt)",
			},
			Portfolio: "Business intelligence automation is highly valued. Shows strategic thinking " +
				"plus technical execution.",
			Goal: "Create decision-support systems that executives actually use.",
		},
		Criteria: []Criterion{
			{ID: "kpis", Label: "Calculates 5+ meaningful KPIs", Auto: false},
			{ID: "trends", Label: "Identifies trends and anomalies", Auto: false},
			{ID: "forecast", Label: "Includes 3-month forecast", Auto: false},
			{ID: "recommendations", Label: "Strategic recommendations present", Auto: true},
			{ID: "dashboard", Label: "Structured as professional dashboard", Auto: false},
		},
	})
	add(PathHybrid, Mission{
		ID:    MissionID{4, 2},
		Title: "Regulatory Compliance Analyzer",
		Instructions: Instructions{
			Scenario: "Build a system that reviews business processes, documents, or contracts against " +
				"regulatory requirements and flags compliance risks with remediation steps.",
			Requirements: []string{
				"Choose a regulatory domain (GDPR, SOC 2, HIPAA, financial regulations, employment law, ...)",
				"Define 10+ specific compliance requirements from the regulation",
				"Create a review checklist that maps requirements to evidence",
				"Analyze a sample document/process and flag gaps",
				"Classify findings by severity (Critical, High, Medium, Low)",
				"Provide specific remediation steps for each finding",
				"Generate compliance scorecard with percentage completion",
				"Submit: paste your compliance analysis report (not your prompt)",
			},
			Portfolio: "Compliance automation is incredibly valuable. Immediately applicable to " +
				"legal, finance, healthcare, and security roles.",
			Goal: "Automate complex regulatory analysis that requires deep domain knowledge.",
		},
		Criteria: []Criterion{
			{ID: "requirements", Label: "10+ specific requirements defined", Auto: false},
			{ID: "findings", Label: "Identifies compliance gaps", Auto: true},
			{ID: "severity", Label: "Classifies findings by severity", Auto: true},
			{ID: "remediation", Label: "Specific remediation steps", Auto: true},
			{ID: "scorecard", Label: "Compliance scorecard included", Auto: true},
		},
	})
	add(PathHybrid, Mission{
		ID:    MissionID{4, 3},
		Title: "Strategic Decision Analyzer",
		Instructions: Instructions{
			Scenario: "Create a system that helps executives make strategic decisions by analyzing " +
				"options across multiple dimensions, running scenario analysis, and providing " +
				"data-driven recommendations.",
			Requirements: []string{
				"Define a real strategic decision (market expansion, product launch, M&A, pricing, restructuring, ...)",
				"Identify 3-5 decision options to evaluate",
				"Create evaluation framework with 6+ criteria (financial impact, risk, time to execute, ...)",
				"Score each option against each criterion with justification",
				"Run best-case, base-case, worst-case scenarios for the top 2 options",
				"Identify key assumptions and risks for each option",
				"Provide final recommendation with implementation roadmap",
				"Submit: paste your strategic decision analysis (not your prompt)",
			},
			Portfolio: "Strategic decision support at executive level. Valuable for strategy, ops, " +
				"consulting, and leadership roles.",
			Goal: "Build decision-support systems for complex, multi-stakeholder strategic choices.",
		},
		Criteria: []Criterion{
			{ID: "framework", Label: "Robust evaluation framework (6+ criteria)", Auto: false},
			{ID: "scoring", Label: "Each option scored with justification", Auto: false},
			{ID: "scenarios", Label: "Best/base/worst case scenarios", Auto: true},
			{ID: "risks", Label: "Key assumptions and risks identified", Auto: true},
			{ID: "recommendation", Label: "Clear recommendation with roadmap", Auto: true},
		},
	})

	return out
}
