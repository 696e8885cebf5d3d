package content

import "github.com/kknudson15/ai-portfolio-starter/internal/domain"

const (
	about = "Kyle Knudson is a data engineering leader specializing in AI, cloud, and enterprise data systems. " +
		"He has a track record of building high-performing teams and delivering transformative data platforms."

	leadership = "Kyle has led data engineering teams at scale, focusing on AI/ML integrations, compliance-driven systems, " +
		"and enterprise modernization. He is passionate about mentoring engineers and enabling organizations to succeed with AI."

	education = "B.S. in Computer Science, with professional certifications in AI, cloud architecture, and leadership."
)

// Projects is the ordered project table rendered on the site and fed
// into the chatbot knowledge base.
var Projects = []Project{
	{
		ID:          1,
		Title:       "Auto-Audit: Self Healing Data Pipeline",
		Description: "End-to-end automated pipeline leveraging AI for anomaly detection and data quality checks.",
		About: "Auto-Audit was created to solve the recurring issue of broken or inconsistent data pipelines. " +
			"By combining anomaly detection, self-healing logic, and automated reporting, it reduces downtime and ensures reliable data quality. " +
			"This project highlights my focus on operational excellence and automation in enterprise data systems.",
		Challenge: "Data pipelines were breaking frequently due to inconsistent schema changes and data quality issues, " +
			"causing 20+ hours of manual debugging per week and delayed executive reporting.",
		Solution: "Built an autonomous agent system that monitors data entry points. When anomalies are detected, " +
			"it auto-generates a fix proposal (e.g., schema evolution or data casting) and routes it to a human-in-the-loop for one-click approval.",
		Impact: []domain.ImpactStat{
			{Metric: "90%", Label: "Reduction in downtime"},
			{Metric: "20hrs", Label: "Weekly engineering time saved"},
			{Metric: "100%", Label: "Data delivery reliability"},
		},
		TechStack:  []string{"Python", "Apache Airflow", "Snowflake", "OpenAI API", "Great Expectations"},
		Categories: []string{"AI"},
		Date:       "2025-09-15",
		Featured:   true,
		Slug:       Slugify("Auto-Audit: Self Healing Data Pipeline"),
	},
	{
		ID:          2,
		Title:       "Data Insight Team",
		Description: "Convert raw data into actionable business insights via AI agents using langGraph to provide raw data to executive insights.",
		About: "This project focused on transforming raw enterprise data into executive-ready insights. " +
			"By leveraging LangGraph AI agents, the team was able to automate the process of summarization, anomaly detection, " +
			"and dashboard creation — empowering leaders to make decisions faster and with higher confidence.",
		Challenge: "Executives were overwhelmed with raw dashboards and CSV exports, leading to decision paralysis. " +
			"It took analysts 3-4 days to synthesize key insights from quarterly data.",
		Solution: "Developed a multi-agent crew using LangGraph. 'Analyst' agents query the database, 'Critic' agents verify the numbers, " +
			"and 'Storyteller' agents draft the executive summary in natural language.",
		Impact: []domain.ImpactStat{
			{Metric: "4 days → 5 mins", Label: "Insight generation time"},
			{Metric: "$150k", Label: "Projected annual savings"},
			{Metric: "4.8/5", Label: "Executive satisfaction score"},
		},
		TechStack:  []string{"LangGraph", "LangChain", "Python", "Streamlit", "PostgreSQL"},
		Categories: []string{"AI"},
		Date:       "2025-09-20",
		Featured:   true,
		Slug:       Slugify("Data Insight Team"),
	},
	{
		ID:          3,
		Title:       "Config Companion",
		Description: "Enable non-engineers to safely generate, review, and manage data pipeline configurations.",
		About: "Config Companion bridges the gap between technical teams and business stakeholders. " +
			"It provides a guided, AI-assisted interface for managing complex data pipeline configurations, " +
			"ensuring governance, security, and accuracy while empowering non-technical users to participate directly.",
		Challenge: "Non-technical stakeholders relied on engineers for every minor config change, creating a bottleneck. " +
			"Engineers were spending 30% of their time on JSON/YAML edits.",
		Solution: "Created a chat-based interface where users describe their needs in plain English. " +
			"The AI translates this into validated JSON configs, runs a dry-run test, and opens a PR for review.",
		Impact: []domain.ImpactStat{
			{Metric: "100%", Label: "Self-service adoption"},
			{Metric: "Zero", Label: "Config-related outages"},
			{Metric: "30%", Label: "Eng capacity reclaimed"},
		},
		TechStack:  []string{"React", "Next.js", "FastAPI", "GitHub API", "OpenAI"},
		Categories: []string{"AI"},
		Date:       "2025-09-18",
		Featured:   true,
		Slug:       Slugify("Config Companion"),
	},
	{
		ID:          5,
		Title:       "AI Snowflake Semantic Model",
		Description: "Build a semantic layer leveraging Snowflake Cortex to make enterprise data AI-ready and enable natural language interactions.",
		About: "This project centered on creating a semantic data model for Snowflake using Snowflake Cortex. " +
			"It involved designing table and column descriptions, classifying sensitive data, and generating synonyms to enable natural language querying. " +
			"The result was a foundation for AI-driven insights across the enterprise.",
		Challenge: "Enterprise data was siloed and poorly documented, making it impossible for LLMs to query it accurately (hallucination rate > 40%).",
		Solution: "Implemented a semantic layer using Cortex. Automated the generation of metadata descriptions and relationship mapping. " +
			"Fine-tuned a text-to-SQL model on domain-specific queries.",
		Impact: []domain.ImpactStat{
			{Metric: "95%", Label: "Text-to-SQL accuracy"},
			{Metric: "180TB", Label: "Data made accessible"},
			{Metric: "<2s", Label: "Average query latency"},
		},
		TechStack:  []string{"Snowflake Cortex", "dbt", "Python", "SQL", "Streamlit"},
		Categories: []string{"AI"},
		Date:       "2025-08-01",
		Featured:   false,
		Slug:       Slugify("AI Snowflake Semantic Model"),
	},
	{
		ID:          6,
		Title:       "UHGAPP: UnitedHealth Group Archive Privacy App",
		Description: "Enable a privacy-compliant search engine across 180 TB+ of siloed archive data, ensuring GDPR, HIPAA, and state privacy law compliance.",
		About: "UHGAPP was developed to meet strict GDPR and HIPAA requirements for massive archive datasets. " +
			"It provides privacy-compliant search across 180 TB of data, integrating complex legal and compliance rules " +
			"into a performant, cloud-based search system.",
		Challenge: "Navigating 180TB of legacy archive data to find PII for 'Right to be Forgotten' requests was a manual process " +
			"taking weeks per request, risking GDPR non-compliance fines.",
		Solution: "Built a distributed search engine with automated PII detection. Implemented role-based access control " +
			"and immutable audit logs to ensure full HIPAA compliance.",
		Impact: []domain.ImpactStat{
			{Metric: "180TB+", Label: "Data indexed"},
			{Metric: "Weeks → Mins", Label: "Search time reduction"},
			{Metric: "100%", Label: "GDPR/HIPAA compliance"},
		},
		TechStack:  []string{"Elasticsearch", "Java", "Spring Boot", "Azure Blob Storage", "React"},
		Categories: []string{"Software Engineering"},
		Date:       "2025-01-01",
		Featured:   true,
		Slug:       Slugify("UHGAPP: UnitedHealth Group Archive Privacy App"),
	},
	{
		ID:          7,
		Title:       "EASE Anywhere: Public Cloud Search Application",
		Description: "Migrate on-prem archive search to the cloud for acquired entities outside the firewall.",
		About: "EASE Anywhere provided a flexible, secure search platform in the cloud for acquired entities. " +
			"It reduced onboarding time for acquisitions and improved scalability while maintaining compliance " +
			"with data residency and legal standards.",
		Challenge: "Acquired companies couldn't access the internal on-prem search tool due to firewall restrictions, " +
			"delaying legal discovery processes by months.",
		Solution: "Re-architected the search application for a cloud-native deployment on Azure. " +
			"Implemented secure federated identity management for external access.",
		Impact: []domain.ImpactStat{
			{Metric: "10x", Label: "Faster onboarding"},
			{Metric: "$500k", Label: "Saved in legal delays"},
			{Metric: "Global", Label: "Accessibility achieved"},
		},
		TechStack:  []string{"Azure Kubernetes Service", "Docker", "Terraform", "OIDC/OAuth", "Python"},
		Categories: []string{"Software Engineering", "Cloud"},
		Date:       "2025-03-01",
		Featured:   false,
		Slug:       Slugify("EASE Anywhere: Public Cloud Search Application"),
	},
	{
		ID:          8,
		Title:       "EASE: Enterprise Archive Search Engine",
		Description: "Provide standardized search capabilities across 1 PB of archived data in cold storage for legal and compliance use.",
		About: "EASE was designed as a unified search layer across 1 PB of enterprise archive data. " +
			"It streamlined compliance workflows by giving legal and compliance teams consistent, fast access to data " +
			"while reducing costs by leveraging cold storage optimization.",
		Challenge: "Searching 1PB of cold storage/tape data was cost-prohibitive and slow. " +
			"Legal teams needed a way to identify relevant documents without restoring everything.",
		Solution: "Created a metadata-first search index. Users search metadata instantly and only pay to rehydrate " +
			"the specific files they need.",
		Impact: []domain.ImpactStat{
			{Metric: "1 PB", Label: "Archive managed"},
			{Metric: "90%", Label: "Storage cost reduction"},
			{Metric: "Sub-second", Label: "Metadata search speed"},
		},
		TechStack:  []string{"Solr", "Hadoop", "Java", "Linux", "Bash"},
		Categories: []string{"Software Engineering"},
		Date:       "2023-06-01",
		Featured:   false,
		Slug:       Slugify("EASE: Enterprise Archive Search Engine"),
	},
	{
		ID:          9,
		Title:       "SQLite Validation",
		Description: "Validate archived data adherence to standards at high throughput.",
		About: "This project implemented a high-performance validator for archived datasets stored in SQLite. " +
			"It ensured data adhered to enterprise standards, reduced manual audit overhead, " +
			"and provided transparency into compliance processes.",
		Challenge: "Manual validation of thousands of SQLite archive files was impossible, " +
			"leading to 'silent corruption' where archives were unreadable years later.",
		Solution: "Wrote a high-concurrency Rust-based validator that checks structural integrity, schema conformity, " +
			"and checksums at disk I/O speeds.",
		Impact: []domain.ImpactStat{
			{Metric: "2GB/s", Label: "Validation throughput"},
			{Metric: "Zero", Label: "Corrupt files missed"},
			{Metric: "100%", Label: "Automated coverage"},
		},
		TechStack:  []string{"Rust", "SQLite", "Tokio", "CI/CD Pipelines"},
		Categories: []string{"Software Engineering"},
		Date:       "2024-04-01",
		Featured:   false,
		Slug:       Slugify("SQLite Validation"),
	},
	{
		ID:          10,
		Title:       "Anomaly Detection: Claims Processing Outliers",
		Description: "Identify outliers in claims processing to proactively detect errors.",
		About: "Focused on claims processing, this anomaly detection system identified outliers and errors early in the pipeline. " +
			"It combined supervised and unsupervised ML methods to minimize false positives while catching meaningful anomalies " +
			"that could indicate fraud or systemic issues.",
		Challenge: "Fraudulent or erroneous claims were only caught weeks after payment, " +
			"resulting in difficult 'clawback' processes and financial leakage.",
		Solution: "Developed an ensemble model (Isolation Forest + Autoencoders) to score claims in real-time. " +
			"High-risk claims are flagged for manual review before payment.",
		Impact: []domain.ImpactStat{
			{Metric: "$2M+", Label: "Fraud prevented annually"},
			{Metric: "<50ms", Label: "Inference latency"},
			{Metric: "85%", Label: "Precision at top 1%"},
		},
		TechStack:  []string{"Python", "Scikit-Learn", "TensorFlow", "FastAPI", "Docker"},
		Categories: []string{"AI"},
		Date:       "2022-04-01",
		Featured:   false,
		Slug:       Slugify("Anomaly Detection: Claims Processing Outliers"),
	},
}
