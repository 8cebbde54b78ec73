package catalog

var highlightOrder = []string{"fullstack", "ai-ml", "database", "responsive"}

var highlights = map[string]HighlightInfo{
	"fullstack": {
		Heading: "Full Stack Development",
		Details: "Built and deployed multiple full-stack applications, managing both client and server sides.",
		Criteria: [4]Criterion{
			{Label: "Frontend", Value: 95},
			{Label: "Backend", Value: 95},
			{Label: "API", Value: 90},
			{Label: "Deploy", Value: 85},
		},
	},
	"ai-ml": {
		Heading: "AI/ML Solutions",
		Details: "Practical experience in building and deploying ML models for real-world applications.",
		Criteria: [4]Criterion{
			{Label: "Model", Value: 70},
			{Label: "NLP", Value: 60},
			{Label: "Deploy", Value: 60},
			{Label: "Preproc", Value: 65},
		},
	},
	"database": {
		Heading: "Database Design",
		Details: "Strong experience in designing and optimizing databases for scalable applications.",
		Criteria: [4]Criterion{
			{Label: "Schema", Value: 92},
			{Label: "Opt.", Value: 88},
			{Label: "Query", Value: 90},
			{Label: "Scale", Value: 85},
		},
	},
	"responsive": {
		Heading: "Responsive Design",
		Details: "Applied responsive design principles in several projects, ensuring usability across devices.",
		Criteria: [4]Criterion{
			{Label: "Mobile", Value: 70},
			{Label: "Cross", Value: 65},
			{Label: "Access", Value: 60},
			{Label: "Perf", Value: 75},
		},
	},
}
