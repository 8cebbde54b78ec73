package catalog

var skillOrder = []string{
	"HTML/CSS/JS", "Python", "C/C++", "Java", "ASP.NET",
	"Flask", "Django", "MySQL", "MongoDB", "AI/ML",
}

var skills = map[string]SkillInfo{
	"HTML/CSS/JS": {
		Icon:              "fas fa-code",
		Description:       "Core web technologies for frontend development. I have strong expertise in creating responsive, interactive, and modern web interfaces.",
		Level:             LevelVeryGood,
		LevelText:         "Advanced",
		Experience:        "2+ Months",
		SuccessRate:       "100%",
		ProjectsUsed:      "All Web Projects",
		SuccessPercentage: 100,
		Practical:         100,
		Theoretical:       95,
		ProblemSolving:    95,
	},
	"Python": {
		Icon:              "fab fa-python",
		Description:       "My primary programming language with extensive experience in backend development, automation, and data processing.",
		Level:             LevelVeryGood,
		LevelText:         "Advanced",
		Experience:        "6+ Months",
		SuccessRate:       "92%",
		ProjectsUsed:      "All Backend Projects",
		SuccessPercentage: 92,
		Practical:         95,
		Theoretical:       70,
		ProblemSolving:    70,
	},
	"C/C++": {
		Icon:              "fas fa-microchip",
		Description:       "My primary programming language with good understanding of memory management and system programming concepts.",
		Level:             LevelGood,
		LevelText:         "Competent",
		Experience:        "1 Year",
		SuccessRate:       "78%",
		ProjectsUsed:      "System Projects",
		SuccessPercentage: 78,
		Practical:         80,
		Theoretical:       75,
		ProblemSolving:    82,
	},
	"Java": {
		Icon:              "fab fa-java",
		Description:       "Object-oriented programming language with foundational experience in application development and enterprise solutions.",
		Level:             LevelIntermediate,
		LevelText:         "Intermediate",
		Experience:        "3+ Months",
		SuccessRate:       "65%",
		ProjectsUsed:      "Academic Projects",
		SuccessPercentage: 65,
		Practical:         70,
		Theoretical:       75,
		ProblemSolving:    60,
	},
	"ASP.NET": {
		Icon:              "fas fa-code",
		Description:       "Microsoft web framework for building dynamic web applications and services. I have built web applications using ASP.NET with good understanding of the framework.",
		Level:             LevelGood,
		LevelText:         "Proficient",
		Experience:        "2+ Months",
		SuccessRate:       "70%",
		ProjectsUsed:      "Web Applications",
		SuccessPercentage: 70,
		Practical:         65,
		Theoretical:       85,
		ProblemSolving:    60,
	},
	"Flask": {
		Icon:              "fas fa-flask",
		Description:       "Lightweight Python web framework with extensive experience in building REST APIs and web applications.",
		Level:             LevelMaster,
		LevelText:         "Expert",
		Experience:        "3+ Months",
		SuccessRate:       "95%",
		ProjectsUsed:      "Multiple Projects",
		SuccessPercentage: 95,
		Practical:         98,
		Theoretical:       92,
		ProblemSolving:    95,
	},
	"Django": {
		Icon:              "fab fa-python",
		Description:       "High-level Python web framework with experience in building complex web applications and admin interfaces.",
		Level:             LevelIntermediate,
		LevelText:         "Intermediate",
		Experience:        "1+ Months",
		SuccessRate:       "70%",
		ProjectsUsed:      "Web Applications",
		SuccessPercentage: 70,
		Practical:         75,
		Theoretical:       80,
		ProblemSolving:    65,
	},
	"MySQL": {
		Icon:              "fas fa-database",
		Description:       "Relational database management system with strong expertise in database design, optimization, and management.",
		Level:             LevelMaster,
		LevelText:         "Expert",
		Experience:        "6+ Months",
		SuccessRate:       "90%",
		ProjectsUsed:      "Database Projects",
		SuccessPercentage: 90,
		Practical:         95,
		Theoretical:       88,
		ProblemSolving:    92,
	},
	"MongoDB": {
		Icon:              "fas fa-leaf",
		Description:       "NoSQL database with experience in document-based data storage and flexible schema design.",
		Level:             LevelOkay,
		LevelText:         "Familiar",
		Experience:        "3+ Months",
		SuccessRate:       "60%",
		ProjectsUsed:      "Some Projects",
		SuccessPercentage: 60,
		Practical:         65,
		Theoretical:       70,
		ProblemSolving:    55,
	},
	"AI/ML": {
		Icon:              "fas fa-brain",
		Description:       "Machine learning and artificial intelligence with basic understanding of algorithms and model development.",
		Level:             LevelBelowAverage,
		LevelText:         "Novice",
		Experience:        "3+ Months",
		SuccessRate:       "45%",
		ProjectsUsed:      "ML Projects",
		SuccessPercentage: 45,
		Practical:         50,
		Theoretical:       60,
		ProblemSolving:    40,
	},
}
