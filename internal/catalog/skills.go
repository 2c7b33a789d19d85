// Package catalog holds the static reference tables used by resume extraction:
// the skill catalog, well-known locations, and degree tokens.
package catalog

// Category groups catalog skills for display. Ordering across categories is significant:
// extraction reports skills in catalog order.
type Category struct {
	Name   string
	Skills []string
}

var categories = []Category{
	{Name: "Programming Languages", Skills: []string{
		"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "C", "PHP", "Ruby", "Go",
		"Rust", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",
	}},
	{Name: "Frontend", Skills: []string{
		"React", "Vue.js", "Vue", "Angular", "Svelte", "jQuery", "Bootstrap", "Tailwind CSS",
		"Material-UI", "Ant Design", "Chakra UI", "Styled Components",
	}},
	{Name: "Backend", Skills: []string{
		"Node.js", "Express.js", "Express", "Next.js", "Nuxt.js", "Django", "Flask", "FastAPI",
		"Spring Boot", "Spring", "Laravel", "Symfony", "Ruby on Rails", "ASP.NET", ".NET Core",
	}},
	{Name: "Databases", Skills: []string{
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "SQLite", "Oracle",
		"SQL Server", "DynamoDB", "Cassandra", "Neo4j", "InfluxDB",
	}},
	{Name: "Cloud & DevOps", Skills: []string{
		"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
		"GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet",
	}},
	{Name: "Tools", Skills: []string{
		"Git", "GitHub", "GitLab", "Bitbucket", "Jira", "Confluence", "Slack", "Trello", "Asana",
		"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator",
	}},
	{Name: "Testing", Skills: []string{
		"Jest", "Cypress", "Selenium", "Mocha", "Chai", "Jasmine", "Karma", "Puppeteer",
		"Playwright", "TestNG", "JUnit", "PyTest",
	}},
	{Name: "Mobile", Skills: []string{
		"React Native", "Flutter", "Ionic", "Xamarin", "Swift", "Objective-C", "Kotlin", "Java Android",
	}},
	{Name: "Data & Analytics", Skills: []string{
		"Pandas", "NumPy", "Matplotlib", "Seaborn", "Scikit-learn", "TensorFlow", "PyTorch", "Keras",
		"Apache Spark", "Hadoop", "Tableau", "Power BI",
	}},
	{Name: "Web Tooling", Skills: []string{
		"HTML", "CSS", "SASS", "SCSS", "Less", "Webpack", "Vite", "Rollup", "Parcel", "Babel",
		"ESLint", "Prettier",
	}},
	{Name: "APIs & Integration", Skills: []string{
		"REST API", "GraphQL", "gRPC", "WebSocket", "Socket.io", "Microservices", "API Gateway",
		"OAuth", "JWT",
	}},
	{Name: "Methodologies", Skills: []string{
		"Agile", "Scrum", "Kanban", "DevOps", "CI/CD", "TDD", "BDD", "Microservices Architecture",
		"Event-driven Architecture",
	}},
}

// skills is the flattened, de-duplicated catalog in first-occurrence order.
var skills = flatten(categories)

func flatten(cats []Category) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cats {
		for _, s := range c.Skills {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Skills returns the canonical skill names in catalog order. The returned slice is a copy.
func Skills() []string {
	return append([]string(nil), skills...)
}

// Categories returns the grouped catalog. Skills listed under more than one
// category appear in each.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}
