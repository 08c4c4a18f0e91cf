package analysis

// SynonymTable maps a canonical concept name to the surface forms treated
// as equivalent during matching. The table is read-only once constructed;
// a single table may be shared by any number of concurrent Analyze calls.
type SynonymTable map[string][]string

// Resolve returns the surface forms considered equivalent to keyword, or
// the singleton {keyword} when no cluster is registered. Lookup is by
// exact cluster key only; fuzzy matching is the matcher's concern.
func (t SynonymTable) Resolve(keyword string) []string {
	if forms, ok := t[keyword]; ok {
		return forms
	}
	return []string{keyword}
}

// DefaultSynonymTable returns the built-in concept clusters. The table
// deliberately spans several resume verticals (software, marketing,
// finance, HR, sales, healthcare, project management, general business)
// so the matcher is not tied to engineering resumes.
func DefaultSynonymTable() SynonymTable {
	return SynonymTable{
		// Software engineering
		"sql":        {"sql", "mysql", "postgresql", "postgres", "t-sql", "plsql", "database"},
		"database":   {"database", "databases", "sql", "mysql", "postgresql", "mongodb", "nosql", "oracle"},
		"javascript": {"javascript", "js", "es6", "typescript", "node", "nodejs"},
		"python":     {"python", "django", "flask", "fastapi", "pandas"},
		"java":       {"java", "spring", "jvm", "kotlin"},
		"frontend":   {"frontend", "front-end", "react", "angular", "vue", "html", "css"},
		"backend":    {"backend", "back-end", "server-side", "api", "apis", "microservices"},
		"devops":     {"devops", "ci/cd", "docker", "kubernetes", "jenkins", "terraform", "ansible"},
		"cloud":      {"cloud", "aws", "azure", "gcp", "serverless", "lambda"},
		"testing":    {"testing", "qa", "selenium", "junit", "pytest", "tdd"},
		"mobile":     {"mobile", "android", "ios", "swift", "kotlin", "flutter"},
		"security":   {"security", "infosec", "encryption", "owasp", "compliance", "penetration"},
		"data":       {"data", "analytics", "etl", "spark", "hadoop", "warehouse", "pipeline"},

		// Marketing
		"marketing":   {"marketing", "seo", "sem", "branding", "advertising", "campaigns"},
		"seo":         {"seo", "sem", "serp", "backlinks", "ranking"},
		"content":     {"content", "copywriting", "blogging", "editorial", "storytelling"},
		"social":      {"social", "instagram", "facebook", "linkedin", "tiktok", "engagement"},
		"advertising": {"advertising", "ads", "adwords", "ppc", "campaigns"},

		// Finance
		"accounting": {"accounting", "bookkeeping", "ledger", "gaap", "reconciliation", "audit"},
		"finance":    {"finance", "financial", "budgeting", "forecasting", "valuation", "modeling"},
		"excel":      {"excel", "spreadsheets", "vba", "pivot", "macros"},
		"banking":    {"banking", "lending", "credit", "underwriting", "loans"},
		"investment": {"investment", "portfolio", "equity", "securities", "trading"},

		// Human resources
		"recruiting": {"recruiting", "recruitment", "sourcing", "talent", "staffing", "hiring"},
		"hr":         {"hr", "hris", "payroll", "benefits", "compensation"},
		"onboarding": {"onboarding", "orientation", "training", "development"},

		// Sales
		"sales":       {"sales", "selling", "prospecting", "quota", "pipeline", "closing"},
		"crm":         {"crm", "salesforce", "hubspot", "pipedrive"},
		"negotiation": {"negotiation", "negotiating", "persuasion", "closing"},

		// Healthcare
		"nursing":  {"nursing", "nurse", "clinical", "patient", "bedside"},
		"medical":  {"medical", "healthcare", "clinical", "hipaa", "ehr", "emr"},
		"pharmacy": {"pharmacy", "pharmaceutical", "medication", "dispensing"},

		// Project management
		"management": {"management", "managing", "leadership", "supervision", "coordination"},
		"project":    {"project", "projects", "pmp", "milestones", "deliverables", "jira"},
		"agile":      {"agile", "scrum", "sprint", "kanban", "retrospectives"},
		"planning":   {"planning", "scheduling", "roadmap", "prioritization"},

		// General business
		"communication": {"communication", "presentation", "writing", "interpersonal", "verbal"},
		"customer":      {"customer", "client", "support", "service", "satisfaction"},
		"research":      {"research", "analysis", "investigation", "evaluation"},
		"operations":    {"operations", "logistics", "supply", "procurement", "inventory"},
		"strategy":      {"strategy", "strategic", "vision", "growth", "transformation"},
		"design":        {"design", "ux", "ui", "figma", "wireframes", "prototyping"},
		"teamwork":      {"teamwork", "collaboration", "cross-functional", "team"},
	}
}
