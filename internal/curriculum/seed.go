package curriculum

func init() {
	reg = buildRegistry(defaultMissions(), pathOverrides())
}

// defaultMissions returns the path-invariant catalog: seven atomic-prompt
// missions, five compound-workflow missions, four real-world applications and
// three capstones.
func defaultMissions() []Mission {
	return []Mission{
		{
			ID:    MissionID{1, 1},
			Title: "Precision Control",
			Instructions: Instructions{
				Scenario: "You're a copywriter for a SaaS company launching 'TaskFlow', an AI-powered " +
					"project management tool. Write a prompt that makes the assistant generate a product " +
					"description meeting these exact specifications.",
				Requirements: []string{
					"Exactly 150 words (not 149, not 151)",
					"Must mention these 3 features: AI task prioritization, team collaboration dashboard, automated reporting",
					"Written in complete sentences (not bullet points or fragments)",
					"Must end with a clear call-to-action",
					"No pricing or technical specifications",
					"Submit: paste the generated product description (not your prompt)",
				},
				Goal: "Master output control through constraints. Explicit constraints control AI outputs precisely.",
			},
			Criteria: []Criterion{
				{ID: "wordcount", Label: "Exactly 150 words", Auto: true},
				{ID: "features", Label: "All 3 features mentioned", Auto: true},
				{ID: "sentences", Label: "Complete sentences (not bullets)", Auto: true},
				{ID: "cta", Label: "Clear call-to-action at end", Auto: true},
				{ID: "nospecs", Label: "No pricing or technical specs", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 2},
			Title: "Structure Enforcement (XML)",
			Instructions: Instructions{
				Scenario: "You're consulting for a restaurant chain considering delivery robots. Write a " +
					"prompt that makes the assistant analyze this decision and format the output in XML structure.",
				Context: "XML uses tags to organize information, like labeled boxes for different kinds of " +
					"content. An opening tag <analysis> and a closing tag </analysis> wrap everything that " +
					"belongs to the analysis. You don't write the XML yourself, you tell the assistant to use " +
					"this structure.",
				Example: "<analysis>\n  Market context\n</analysis>\n\n<risks>\n  3+ risks with mitigation\n</risks>\n\n" +
					"<opportunities>\n  3+ opportunities with strategies\n</opportunities>\n\n<recommendation>\n" +
					"  Clear decision with justification\n</recommendation>",
				Requirements: []string{
					"Tell the assistant to use the XML structure shown in the template",
					"All 4 XML tags must be present and properly closed (<tag> and </tag>)",
					"Content should appear only within tags (not outside)",
					"Each risk should include a mitigation strategy",
					"Each opportunity should include an exploitation strategy",
					"Recommendation should be actionable",
					"Submit: paste the XML analysis (not your prompt)",
				},
				Goal: "Master structured output with XML tags. Critical for API integrations and automated " +
					"systems that need information in predictable formats.",
			},
			Criteria: []Criterion{
				{ID: "tags", Label: "All 4 XML tags present and closed", Auto: true},
				{ID: "nocontent", Label: "No content outside tags", Auto: true},
				{ID: "mitigation", Label: "Each risk has mitigation", Auto: true},
				{ID: "exploitation", Label: "Each opportunity has strategy", Auto: true},
				{ID: "actionable", Label: "Recommendation is specific", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 3},
			Title: "Context Efficiency",
			Instructions: Instructions{
				Scenario: "You're building a chatbot that needs company info in its system prompt. You have " +
					"a 2000-token context limit and you've already used 1800 tokens. Write a prompt that asks " +
					"the assistant to compress this company data to fit in the remaining 200 tokens (~150 words).",
				SampleData: "TechCorp - Founded 2010, 450 employees, $89M revenue, sells cloud storage solutions\n" +
					"DataFlow - Founded 2016, 230 employees, $34M revenue, sells data analytics platforms\n" +
					"CloudNine - Founded 2013, 680 employees, $156M revenue, sells enterprise collaboration software\n" +
					"SecureNet - Founded 2018, 125 employees, $18M revenue, sells cybersecurity tools\n" +
					"AILabs - Founded 2015, 340 employees, $67M revenue, sells machine learning APIs",
				Context: "Context limits are real constraints. Inefficient prompts mean higher costs at " +
					"scale, and hitting context limits breaks applications.",
				Requirements: []string{
					"Write a prompt asking the assistant to compress the company data above",
					"Your prompt should result in under 200 words total",
					"Must include all 5 companies with their key data (year, employees, revenue, product)",
					"Efficient formatting allowed (tables, bullets, abbreviations)",
					"Bonus: get under 150 words while keeping all essential info",
					"Submit: paste the compressed output (not your prompt)",
				},
				Goal: "Learn strategic compression: identifying what's essential versus redundant.",
			},
			Criteria: []Criterion{
				{ID: "wordcount", Label: "Under 200 words", Auto: true},
				{ID: "companies", Label: "All 5 companies mentioned", Auto: true},
				{ID: "years", Label: "All founding years included", Auto: true},
				{ID: "complete", Label: "Revenue and employee data present", Auto: true},
				{ID: "bonus", Label: "Bonus: Under 150 words", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 4},
			Title: "Few-Shot Learning",
			Instructions: Instructions{
				Scenario: "You're building a product name generator for a tech startup incubator. Write a " +
					"prompt that teaches the assistant to generate creative product names through examples.",
				SampleData: "Example format (use these as your 5 examples):\n" +
					"1. AI-powered fitness tracker → \"PulsePro\" - Combines health (pulse) with professional\n" +
					"2. Cloud-based team chat → \"SlackFlow\" - Evokes smooth communication flow\n" +
					"3. Photo editing app → \"SnapEdit\" - Quick action implied by \"snap\"\n" +
					"4. Recipe meal planner → \"ChefMate\" - Friendly helper connotation\n" +
					"5. Budget tracking tool → \"CoinTrack\" - Direct but catchy",
				Requirements: []string{
					"Include 5 high-quality examples showing: description, name, brief rationale",
					"Examples should demonstrate variety (different industries, name styles)",
					"Ask the assistant to generate 10 new product names following the pattern",
					"Names must be memorable, 1-2 words, creative (not generic)",
					"Submit: paste the 10 generated names (not your prompt)",
				},
				Goal: "Master few-shot prompting: teaching through examples rather than explicit rules.",
			},
			Criteria: []Criterion{
				{ID: "examples", Label: "5 clear examples provided", Auto: true},
				{ID: "structure", Label: "Examples show consistent structure", Auto: true},
				{ID: "variety", Label: "Examples cover different types", Auto: true},
				{ID: "names", Label: "Generated 10+ product names", Auto: true},
				{ID: "format", Label: "Names are 1-2 words each", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 5},
			Title: "Chain-of-Thought Reasoning",
			Instructions: Instructions{
				Scenario: "Write a prompt that makes the assistant solve complex math word problems " +
					"accurately by forcing step-by-step reasoning.",
				SampleData: "Test problem:\nA store sells apples for $2 each. They offer 20% off for purchases " +
					"of 10+ apples, plus an additional $5 off the total if you spend over $50. How much do 30 " +
					"apples cost?\n\nCorrect answer: $43\n(30 apples × $2 = $60, minus 20% = $48, minus $5 additional = $43)",
				Requirements: []string{
					"Instruct the assistant to show all reasoning steps explicitly",
					"Require it to identify key information first",
					"Demand intermediate calculations be shown (using =, ×, or math)",
					"Specify final answer format: 'FINAL ANSWER: $[number]'",
					"Test your prompt on the problem above",
					"Submit: paste the solution (not your prompt)",
				},
				Goal: "Learn Chain-of-Thought prompting. Forcing explicit reasoning dramatically improves " +
					"accuracy on complex tasks.",
			},
			Criteria: []Criterion{
				{ID: "steps", Label: "Shows clear reasoning steps", Auto: true},
				{ID: "identifies", Label: "Identifies key information first", Auto: true},
				{ID: "intermediate", Label: "Shows intermediate calculations", Auto: true},
				{ID: "format", Label: "Uses FINAL ANSWER format", Auto: true},
				{ID: "correct", Label: "Gets correct answer ($43)", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 6},
			Title: "Role Assignment",
			Instructions: Instructions{
				Scenario: "You want advice on starting a YouTube channel for your small business. Instead " +
					"of asking generic questions, assign the assistant a specific expert role to get much " +
					"better advice.",
				Example: "Compare: 'How do I start a YouTube channel?' (generic) vs 'You are a YouTube " +
					"growth strategist who has helped 50+ small businesses grow from 0 to 10,000 subscribers. " +
					"I'm starting a channel for my bakery. What equipment do I need, what should my first 10 " +
					"videos be about, and how do I get my first 1,000 subscribers?' (specific expert)",
				Requirements: []string{
					"Assign a specific expert role (e.g., 'You are a YouTube growth strategist who...')",
					"Give the expert credentials (years of experience, specific achievements, specialization)",
					"Ask for advice on: equipment needs, content ideas, and growth strategy",
					"Make it specific to your situation (pick any small business type: bakery, gym, consulting, etc.)",
					"Submit: paste the YouTube advice (not your prompt)",
				},
				Goal: "Assigning a specific expert role produces far better advice than generic questions. " +
					"One of the most powerful prompting techniques.",
			},
			Criteria: []Criterion{
				{ID: "role", Label: "Assigns specific expert role (not just \"expert\")", Auto: true},
				{ID: "credentials", Label: "Gives expert credentials/achievements", Auto: true},
				{ID: "equipment", Label: "Asks about equipment", Auto: true},
				{ID: "content", Label: "Asks about content ideas", Auto: true},
				{ID: "growth", Label: "Asks about growth strategy", Auto: true},
			},
		},
		{
			ID:    MissionID{1, 7},
			Title: "Structured Data (JSON)",
			Instructions: Instructions{
				Scenario: "You're making a simple product catalog for your website. You need the product " +
					"data in a format your website's code can read (JSON). Make the assistant output only " +
					"the data, with no extra explanation text.",
				Context: "JSON organizes data so computers can read it. Curly braces wrap everything, each " +
					"piece of data is a \"label\": value pair, text goes in quotes, numbers don't, and " +
					"true/false are bare words. It's how websites, apps and automation tools share data.",
				SampleData: "Sample products:\n\nProduct 1: Wireless Bluetooth Headphones, 79.99, Electronics, in stock\n" +
					"Product 2: Organic Cotton T-Shirt, 24.50, Clothing, in stock\n" +
					"Product 3: Stainless Steel Water Bottle, 18.99, Home & Kitchen, out of stock",
				Example: "What you want:\n{\n  \"products\": [\n    {\"id\": 1, \"name\": \"Blue T-Shirt\", " +
					"\"price\": 19.99, \"in_stock\": true, \"category\": \"Clothing\"}\n  ]\n}\n\n" +
					"What you don't want:\n\"Here's your product data: {...} Hope this helps!\"",
				Requirements: []string{
					"Tell the assistant to output only JSON (no explanation before or after)",
					"Specify the exact fields: id (number), name (text), price (number), in_stock (yes/no), category (text)",
					"Use the 3 sample products provided (or create your own)",
					"The output should start with { and end with }, nothing else",
					"Tip: say 'Output ONLY valid JSON with no additional text' in your prompt",
					"If the output is wrapped in ```json fences, remove those lines and paste only the {...} part",
					"Submit: paste the JSON output (not your prompt)",
				},
				Goal: "Get structured data other programs can use. You'll use this constantly for automation.",
			},
			Criteria: []Criterion{
				{ID: "onlyjson", Label: "Output is ONLY JSON (no explanation text)", Auto: true},
				{ID: "valid", Label: "Looks like valid JSON (has {}, quotes)", Auto: true},
				{ID: "fields", Label: "Has all required fields (id, name, price, in_stock, category)", Auto: true},
				{ID: "three", Label: "Has 3 products", Auto: true},
				{ID: "numbers", Label: "Numbers are not in quotes", Auto: true},
			},
		},
		{
			ID:    MissionID{2, 1},
			Title: "Sequential Chains",
			Instructions: Instructions{
				Scenario: "A mid-size retail company (RetailCo) wants to expand into e-commerce. Create a " +
					"prompt that guides the assistant through a 5-step analysis where each step must build " +
					"on the previous.",
				SampleData: "Company context:\n- RetailCo: 50 physical stores, $120M annual revenue\n" +
					"- Currently: 100% in-store sales, no online presence\n" +
					"- Target: launch e-commerce within 12 months\n" +
					"- Challenge: limited tech team, traditional customer base",
				Requirements: []string{
					"Step 1: Market Research - analyze the current e-commerce landscape",
					"Step 2: Competitor Analysis - using market insights, identify key competitors",
					"Step 3: Gap Analysis - based on competitor findings, identify opportunities",
					"Step 4: Strategic Recommendation - using gaps, recommend a specific approach",
					"Step 5: Implementation Plan - create a 90-day action plan based on the strategy",
					"Submit: paste the 5-step analysis (not your prompt)",
				},
				Goal: "Master multi-step reasoning chains. Each step must genuinely depend on the previous.",
			},
			Criteria: []Criterion{
				{ID: "references", Label: "Each step references previous findings", Auto: true},
				{ID: "complete", Label: "All 5 steps present", Auto: true},
				{ID: "specific", Label: "Has dates/names/metrics", Auto: true},
				{ID: "dependent", Label: "Steps show clear dependencies", Auto: true},
			},
		},
		{
			ID:    MissionID{2, 2},
			Title: "Feedback Loops",
			Instructions: Instructions{
				Scenario: "Create a prompt that generates a blog post, checks it against quality criteria, " +
					"and iterates until all criteria pass, with a maximum of 3 iterations.",
				SampleData: "Quality criteria your prompt must check:\n1. Word count: 300-350 words\n" +
					"2. Has clear introduction and conclusion\n3. Includes at least 2 specific examples\n" +
					"4. Professional tone (no casual language)\n5. Has actionable takeaway for reader",
				Requirements: []string{
					"Define the 5 quality criteria above in your prompt",
					"Instruct the assistant to verify each criterion after generation",
					"Give permission to iterate ('keep trying until', 'retry if fails')",
					"Limit to maximum 3 iterations",
					"Test on topic: 'Benefits of remote work'",
					"Submit: paste the final blog post (not your prompt)",
				},
				Goal: "Build feedback loops into prompts: clear success criteria plus a verification method " +
					"plus permission to iterate.",
			},
			Criteria: []Criterion{
				{ID: "criteria", Label: "Lists 5 quality criteria", Auto: true},
				{ID: "verify", Label: "Instructions to verify each criterion", Auto: true},
				{ID: "iterate", Label: "Permission to iterate/retry", Auto: true},
				{ID: "limit", Label: "Mentions 3-iteration limit", Auto: true},
				{ID: "quality", Label: "Final output meets all 5 criteria", Auto: true},
			},
		},
		{
			ID:    MissionID{2, 3},
			Title: "Error Recovery",
			Instructions: Instructions{
				Scenario: "Create a prompt that generates a professional product comparison article, then " +
					"automatically checks for errors and fixes them, with no human intervention needed.",
				SampleData: "Sample product category to compare:\n\nTask management tools:\n" +
					"1. Asana - $10.99/user/month, timeline view, custom fields, automation\n" +
					"2. Trello - $5/user/month, kanban boards, power-ups, calendar view\n" +
					"3. Monday.com - $8/user/month, customizable workflows, time tracking, visual boards",
				Requirements: []string{
					"Compare 3 competing products (use the sample tools above or pick your own)",
					"Include: feature comparison, pricing overview, pros/cons for each",
					"Instruct the assistant to verify: product names spelled correctly, no made-up features, realistic prices",
					"If errors are found: identify them, explain the issue, and generate a corrected version",
					"Include instructions: check output, identify errors, fix them, retry",
					"Maximum 3 iterations before flagging for human review",
					"Submit: paste the final comparison article (not your prompt)",
				},
				Goal: "Create prompts that actively fix their own mistakes. The foundation of autonomous AI " +
					"systems is teaching the model to self-correct.",
			},
			Criteria: []Criterion{
				{ID: "generates", Label: "Generates comparison content", Auto: true},
				{ID: "verification", Label: "Includes verification instructions", Auto: true},
				{ID: "instructions", Label: "Includes error recovery instructions", Auto: true},
				{ID: "iterations", Label: "Specifies iteration limit (3 max)", Auto: true},
				{ID: "quality", Label: "Final output is professional quality", Auto: false},
			},
		},
		{
			ID:    MissionID{2, 4},
			Title: "Adversarial Defense",
			Instructions: Instructions{
				Scenario: "You're building a content moderation system. Create a prompt that classifies " +
					"user comments as 'Safe' or 'Unsafe' while being resistant to users trying to bypass " +
					"the filter.",
				SampleData: "Test comments (classify these):\n" +
					"1. \"This product is garbage\" - Safe (negative but not toxic)\n" +
					"2. \"You're a f**king idiot\" - Unsafe (profanity + insult)\n" +
					"3. \"h3ll0 you're st*pid\" - Unsafe (leetspeak evasion)\n" +
					"4. \"You are a w o r t h l e s s person\" - Unsafe (spacing evasion)\n" +
					"5. \"Hope you have the day you deserve\" - Safe (sarcasm but not harmful)\n" +
					"6. \"I disagree with your opinion\" - Safe (respectful disagreement)\n" +
					"7. \"kys loser\" - Unsafe (abbreviation for harmful content)\n" +
					"8. \"This isn't for me but might work for others\" - Safe (constructive)\n" +
					"9. \"go d!e in a f1re\" - Unsafe (symbols + leetspeak)\n" +
					"10. \"Wow, real smart move genius\" - Safe (sarcastic but mild)",
				Requirements: []string{
					"Create a prompt that classifies comments as Safe or Unsafe",
					"Your prompt must handle: leetspeak (h3ll0), symbols (f**k), spacing (w o r d)",
					"Your prompt must avoid over-flagging sarcasm and respectful disagreement",
					"Include instructions to explain reasoning for each classification",
					"Test your prompt on all 10 comments above, then paste the output",
					"Format the output like: '1. Safe - reason' or '1. Unsafe - reason' for each",
				},
				Goal: "Build robust prompts that resist manipulation. Critical for production systems " +
					"facing adversarial users.",
			},
			Criteria: []Criterion{
				{ID: "classifies", Label: "Classifies into Safe/Unsafe", Auto: true},
				{ID: "leetspeak", Label: "Instructions mention leetspeak/symbols/spacing", Auto: true},
				{ID: "context", Label: "Instructions mention context matters", Auto: true},
				{ID: "reasoning", Label: "Asks for classification reasoning", Auto: true},
				{ID: "accuracy", Label: "9/10 or 10/10 test cases correct", Auto: true},
			},
		},
		{
			ID:    MissionID{2, 5},
			Title: "Token Optimization",
			Instructions: Instructions{
				Scenario: "You need to summarize product reviews efficiently. Your goal: create a prompt " +
					"that produces quality summaries while using 50%+ fewer tokens than a verbose prompt.",
				Context: "Tokens are how AI models count text, roughly 0.75 words each. API costs are " +
					"charged per token, fewer tokens mean faster responses, and the context window has hard " +
					"limits. 'I would like you to please provide me with a comprehensive summary' and " +
					"'Summarize comprehensively:' mean the same thing at very different prices.",
				SampleData: "Sample review to summarize:\n\"I've been using the UltraClean Robot Vacuum for " +
					"three months now and I'm genuinely impressed. The setup was incredibly easy - just " +
					"downloaded the app, connected to WiFi, and it was ready to go within 5 minutes. The " +
					"suction power is remarkable; it picks up everything from fine dust to larger debris like " +
					"cereal pieces. I have two dogs and the vacuum handles pet hair exceptionally well. The " +
					"battery life is solid - it runs for about 90 minutes before needing to recharge, which " +
					"is plenty for my 1,500 sq ft apartment. The app integration is smooth and I love being " +
					"able to schedule cleanings remotely. My only minor complaint is that it occasionally gets " +
					"stuck under my couch, but that's more a furniture issue than a product issue. The price " +
					"point of $399 felt steep initially, but after three months of use, I'd say it's worth " +
					"every penny. It's cut my cleaning time in half and my floors have never looked better. " +
					"Would definitely recommend to anyone considering a robot vacuum.\"",
				Requirements: []string{
					"Create Version 1: a comprehensive summarization prompt (don't optimize yet)",
					"Create Version 2: an optimized prompt achieving the same quality with 50%+ fewer tokens",
					"Paste both prompts, clearly labeled 'VERSION 1:' and 'VERSION 2:'",
					"Include a brief explanation of what you optimized (removed redundancy, condensed instructions, etc.)",
					"Test both on the sample review and verify the summaries capture key points",
					"Submit: paste both prompt versions with explanation (not the summaries)",
				},
				Goal: "Master token efficiency. Learn what's truly necessary versus redundant.",
			},
			Criteria: []Criterion{
				{ID: "version1", Label: "Version 1 exists and labeled", Auto: true},
				{ID: "version2", Label: "Version 2 exists and labeled", Auto: true},
				{ID: "reduction", Label: "50%+ token reduction achieved", Auto: true},
				{ID: "explanation", Label: "Includes optimization explanation", Auto: true},
				{ID: "complete", Label: "Both versions are complete prompts", Auto: true},
			},
		},
		{
			ID:    MissionID{3, 1},
			Title: "Content Pipeline",
			Instructions: Instructions{
				Scenario: "Build a complete content production system that takes a topic and produces " +
					"publication-ready blog posts at scale.",
				Requirements: []string{
					"Step 1: research topic using web search (10+ sources)",
					"Step 2: generate SEO-optimized outline with clear sections",
					"Step 3: produce 1500+ word draft",
					"Step 4: self-edit for clarity, grammar, and flow",
					"Step 5: optimize for target keyword (5-7 natural mentions)",
					"Step 6: final polish, output should need only minor editor tweaks",
					"Submit: paste the final blog post (not your prompt)",
				},
				Portfolio: "Demonstrates you can reduce content production time by 70%+ while maintaining " +
					"quality. Directly applicable to marketing, journalism, and content strategy roles.",
				Goal: "Show you can automate professional content creation end-to-end.",
			},
			Criteria: []Criterion{
				{ID: "research", Label: "Uses web search for research", Auto: false},
				{ID: "outline", Label: "SEO-optimized outline", Auto: true},
				{ID: "length", Label: "1500+ words", Auto: true},
				{ID: "structure", Label: "Has introduction and conclusion", Auto: true},
				{ID: "seo", Label: "Mentions topic keyword 5-7 times", Auto: true},
				{ID: "actionable", Label: "Includes actionable advice", Auto: true},
			},
		},
		{
			ID:    MissionID{3, 2},
			Title: "Data Analysis",
			Instructions: Instructions{
				Scenario: "Build a system that transforms raw CSV data into actionable business insights " +
					"with visualizations and recommendations.",
				Requirements: []string{
					"Ingest and validate CSV data",
					"Handle missing values and malformed data appropriately",
					"Identify key trends, patterns, and outliers",
					"Create 3+ relevant visualizations (charts/graphs)",
					"Generate executive summary with specific, actionable recommendations",
					"Entire process must be reproducible on new data",
					"Submit: paste the analysis code and summary (not your prompt)",
				},
				Portfolio: "Shows you can automate analyst work. Valuable for business intelligence, " +
					"operations, and strategy roles.",
				Goal: "Demonstrate you can turn data into decisions automatically.",
			},
			Criteria: []Criterion{
				{ID: "handles", Label: "Handles missing/bad data", Auto: false},
				{ID: "trends", Label: "Identifies trends and outliers", Auto: false},
				{ID: "viz", Label: "Creates 3+ visualizations", Auto: false},
				{ID: "summary", Label: "Executive summary with recommendations", Auto: true},
				{ID: "reproducible", Label: "Process is reproducible", Auto: false},
			},
		},
		{
			ID:    MissionID{3, 3},
			Title: "Customer Support Triage System",
			Instructions: Instructions{
				Scenario: "Build a system that reads customer support emails and automatically categorizes " +
					"them, determines urgency, drafts an initial response, and decides whether a human " +
					"should handle it.",
				Example: "Input email: \"I can't log into my account. I've tried resetting my password 3 " +
					"times but the email never arrives. This is urgent - I have a client presentation in 2 " +
					"hours!\"\n\nYour system should output:\n- Category: Account Access\n- Urgency: High " +
					"(deadline mentioned)\n- Response: [helpful troubleshooting steps]\n- Escalate: Yes " +
					"(time-sensitive, multiple attempts failed)",
				Requirements: []string{
					"Categorize into: Billing, Account Access, Bug Report, Feature Request, How-To Question",
					"Determine urgency: Low, Medium, High, Critical (based on keywords, deadlines, business impact)",
					"Generate a helpful initial response (2-3 paragraphs, professional, actionable)",
					"Decide whether to escalate to a human (angry customer, mentions canceling, complex technical issue, VIP)",
					"Test your system with 5 different example support emails (you create the examples)",
					"Show all 5 results: category, urgency, response, escalation decision",
					"Submit: paste the output for all 5 test emails (not your prompt)",
				},
				Portfolio: "Shows you can automate support ticket triage. Reduces support team workload by 40%+.",
				Goal: "Build practical automation that handles real business workflows with multiple " +
					"decision points.",
			},
			Criteria: []Criterion{
				{ID: "categorizes", Label: "Categorizes all 5 emails correctly", Auto: false},
				{ID: "urgency", Label: "Assigns appropriate urgency levels", Auto: false},
				{ID: "responses", Label: "Generates helpful responses", Auto: true},
				{ID: "escalation", Label: "Escalation logic makes sense", Auto: false},
				{ID: "professional", Label: "Responses are professional and empathetic", Auto: true},
			},
		},
		{
			ID:    MissionID{3, 4},
			Title: "AI-Powered Code Generation",
			Instructions: Instructions{
				Scenario: "You've built prompting skills, now use them to generate working code without " +
					"learning to code yourself. Write a prompt that makes the assistant create a complete, " +
					"tested solution from a simple specification.",
				Context: "You don't need to write code to use code. Describe what you need in plain " +
					"English, have the assistant write the code, run it and get results. You specify, the " +
					"model codes.",
				Requirements: []string{
					"Pick a real problem you have (data analysis, file processing, web scraping, etc.)",
					"Write a specification in plain English: what should it do? what inputs? what outputs?",
					"Prompt for: working code, instructions to run it, example usage",
					"Test: can you use the generated code to solve your problem?",
					"Bonus: ask for error handling and user-friendly messages",
					"Submit: paste the code solution with instructions (not your prompt)",
				},
				Portfolio: "Shows you can solve technical problems without technical skills. Valuable for " +
					"operations, analysis, and automation roles.",
				Goal: "Use AI as your personal developer. You provide business logic, it provides the " +
					"technical implementation.",
			},
			Criteria: []Criterion{
				{ID: "specification", Label: "Clear problem specification included", Auto: true},
				{ID: "functional", Label: "Code appears functional (has imports, functions, logic)", Auto: true},
				{ID: "instructions", Label: "Includes how-to-run instructions", Auto: true},
				{ID: "example", Label: "Includes example usage", Auto: true},
				{ID: "practical", Label: "Solves a real problem (not toy example)", Auto: false},
			},
		},
		{
			ID:    MissionID{4, 1},
			Title: "Multi-Agent System",
			Instructions: Instructions{
				Scenario: "Design a system with 3+ specialized AI 'agents' that coordinate to solve " +
					"complex problems that no single prompt could handle.",
				Example: "Example: Researcher Agent → Analyst Agent → Writer Agent → Editor Agent",
				Requirements: []string{
					"Define 3+ agents with distinct, specialized roles",
					"Each agent has specific capabilities and a focus area",
					"Agents pass work between each other intelligently",
					"Coordination logic is clear and well-documented",
					"System solves problems no single agent could handle alone",
					"System is reliable and reproducible",
					"Submit: paste your multi-agent system design and demo (not your prompt)",
				},
				Portfolio: "Multi-agent systems are cutting-edge. Few prompt engineers can do this.",
				Goal:      "Demonstrate mastery of complex AI system design.",
			},
			Criteria: []Criterion{
				{ID: "specialized", Label: "Each agent has specialized role", Auto: false},
				{ID: "coordination", Label: "Agents coordinate intelligently", Auto: false},
				{ID: "complex", Label: "Solves problems no single agent could", Auto: false},
				{ID: "documented", Label: "Coordination logic documented", Auto: true},
				{ID: "reliable", Label: "System is reliable and reproducible", Auto: false},
			},
		},
		{
			ID:    MissionID{4, 2},
			Title: "Domain Expertise",
			Instructions: Instructions{
				Scenario: "Choose a domain (legal, medical, finance, or technical) and build a " +
					"comprehensive suite of specialized tools that outperform generic approaches.",
				Requirements: []string{
					"Demonstrate deep domain knowledge (validated by a domain expert)",
					"Use correct domain-specific terminology and conventions",
					"Handle domain-specific edge cases and complexities",
					"Measurably better than baseline/generic prompts (quantify improvement)",
					"Outputs are professional-grade (a domain expert would approve)",
					"System could be deployed in a real professional setting",
					"Submit: paste your domain-specialized system and results (not your prompt)",
				},
				Portfolio: "Companies pay premium rates for legal AI, medical AI, and fintech AI specialists.",
				Goal:      "Position yourself as a domain-specialized prompt engineer.",
			},
			Criteria: []Criterion{
				{ID: "knowledge", Label: "Deep domain knowledge (expert validated)", Auto: false},
				{ID: "terminology", Label: "Correct domain terminology", Auto: true},
				{ID: "edgecases", Label: "Handles domain edge cases", Auto: false},
				{ID: "better", Label: "Measurably better than generic", Auto: false},
				{ID: "deployable", Label: "Could deploy in professional setting", Auto: false},
			},
		},
		{
			ID:    MissionID{4, 3},
			Title: "Innovation Project",
			Instructions: Instructions{
				Scenario: "Create something genuinely novel that advances the field of prompt engineering.",
				Example: "Ideas: a new prompting pattern that improves accuracy by 25%+, a framework for " +
					"systematically testing prompt reliability, a tool that automates prompt optimization, " +
					"a methodology for debugging complex prompt failures, a technique for reducing " +
					"hallucinations in specific domains.",
				Requirements: []string{
					"Original work (not just combining existing techniques)",
					"Solves a real problem that doesn't have a good solution",
					"Thoroughly documented (others can understand and use it)",
					"Measurably better than existing alternatives (include comparison data)",
					"Validated with real testing (not just theoretical)",
					"Ready to share publicly (GitHub repo, blog post, or paper)",
					"Submit: paste your innovation documentation and results (not your prompt)",
				},
				Portfolio: "This positions you as a thought leader.",
				Goal:      "Create your signature piece that makes you memorable.",
			},
			Criteria: []Criterion{
				{ID: "original", Label: "Original work (not just combining)", Auto: false},
				{ID: "documented", Label: "Thoroughly documented", Auto: true},
				{ID: "better", Label: "Measurably better than alternatives", Auto: false},
				{ID: "validated", Label: "Validated with real testing", Auto: false},
				{ID: "shareable", Label: "Ready to share (GitHub/blog/paper)", Auto: false},
			},
		},
	}
}
