package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultVocabulary is the built-in reference list of recognized skill
// keywords. Matching is case-insensitive; the casing here is the canonical
// form returned to clients.
var defaultVocabulary = []string{
	// Programming languages
	"Python", "JavaScript", "Java", "C++", "C#", "TypeScript", "Ruby", "PHP",
	"Swift", "Kotlin", "Go", "Rust", "Scala", "R", "MATLAB", "Perl",
	"Objective-C", "Dart", "Groovy", "Elixir", "Haskell", "Lua", "C",

	// Web - frontend
	"React", "React.js", "Angular", "Vue.js", "Vue", "Svelte", "jQuery",
	"HTML", "HTML5", "CSS", "CSS3", "SASS", "SCSS", "Less", "Bootstrap",
	"Tailwind CSS", "Material UI", "Chakra UI", "Next.js", "Nuxt.js", "Gatsby",
	"Webpack", "Vite", "Babel", "Redux", "MobX", "Zustand",

	// Web - backend
	"Node.js", "Express.js", "Express", "Django", "Flask", "FastAPI",
	"Spring Boot", "Spring", "ASP.NET", ".NET", "Laravel", "Ruby on Rails",
	"Rails", "Symfony", "NestJS", "Fastify", "Koa", "Hapi",

	// Databases - SQL
	"PostgreSQL", "MySQL", "SQL Server", "Oracle", "MariaDB", "SQLite",
	"SQL", "T-SQL", "PL/SQL",

	// Databases - NoSQL
	"MongoDB", "Redis", "Cassandra", "DynamoDB", "Couchbase", "Neo4j",
	"Firebase", "Firestore", "Elasticsearch", "CouchDB",

	// Cloud platforms
	"AWS", "Amazon Web Services", "Azure", "Microsoft Azure", "Google Cloud",
	"GCP", "Google Cloud Platform", "DigitalOcean", "Heroku", "Vercel", "Netlify",
	"Oracle Cloud", "IBM Cloud", "Alibaba Cloud",

	// Cloud services - AWS
	"EC2", "S3", "Lambda", "RDS", "CloudFront", "Route 53",
	"ECS", "EKS", "Elastic Beanstalk", "CloudWatch", "SNS", "SQS",

	// DevOps & CI/CD
	"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions",
	"CircleCI", "Travis CI", "Terraform", "Ansible", "Chef", "Puppet",
	"Vagrant", "CI/CD", "Continuous Integration", "Continuous Deployment",

	// Version control
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Mercurial",

	// Testing
	"Jest", "Mocha", "Chai", "Pytest", "JUnit", "TestNG", "Selenium",
	"Cypress", "Playwright", "Puppeteer", "JMeter", "Postman", "Insomnia",

	// API & architecture
	"REST API", "RESTful", "GraphQL", "gRPC", "WebSocket", "Microservices",
	"Monolithic", "API Gateway", "Swagger", "OpenAPI", "SOAP",

	// Mobile
	"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic",
	"Swift UI", "Jetpack Compose", "Cordova",

	// Data science & ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "Pandas", "NumPy", "SciPy", "Matplotlib", "Seaborn",
	"Data Analysis", "Data Science", "NLP", "Natural Language Processing",
	"Computer Vision", "OpenCV", "NLTK", "spaCy", "Hugging Face",

	// Big data
	"Apache Spark", "Hadoop", "Kafka", "Airflow", "Databricks", "Snowflake",
	"BigQuery", "Redshift", "ETL", "Data Pipeline", "Data Warehouse",

	// Project management tools
	"Jira", "Confluence", "Trello", "Asana", "Monday.com", "Notion",
	"ClickUp", "Linear", "Basecamp",

	// Methodologies & practices
	"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "TDD",
	"Test-Driven Development", "BDD", "Behavior-Driven Development",
	"Pair Programming", "Code Review", "Continuous Learning",

	// Soft skills
	"Leadership", "Communication", "Team Management", "Problem Solving",
	"Critical Thinking", "Time Management", "Project Management",
	"Collaboration", "Mentoring", "Public Speaking", "Technical Writing",
	"Analytical Skills", "Creativity", "Adaptability", "Conflict Resolution",

	// Other technologies
	"WebAssembly", "Blockchain", "Solidity", "Ethereum",
	"Smart Contracts", "Web3", "Socket.io", "RabbitMQ", "Nginx",
	"Apache", "Linux", "Unix", "Shell Scripting", "Bash", "PowerShell",

	// Design & UI/UX
	"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator", "InVision",
	"UI Design", "UX Design", "User Research", "Wireframing", "Prototyping",

	// Security
	"OAuth", "JWT", "Authentication", "Authorization", "Encryption",
	"SSL", "TLS", "Penetration Testing", "Security Audit", "OWASP",
}

// DefaultVocabulary returns a copy of the built-in skill vocabulary.
func DefaultVocabulary() []string {
	vocab := make([]string, len(defaultVocabulary))
	copy(vocab, defaultVocabulary)
	return vocab
}

// LoadVocabulary reads a newline-separated skill list. Blank lines and lines
// starting with '#' are skipped.
func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	var vocab []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vocab = append(vocab, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}
	return vocab, nil
}
