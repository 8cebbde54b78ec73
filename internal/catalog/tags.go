package catalog

var tags = map[string]TagInfo{
	"Flask": {
		Icon:        "fas fa-flask",
		Description: "Lightweight Python web framework for building scalable web applications. I use it for backend APIs and full-stack web development.",
		SkillLevel:  5,
		Usage:       "Used in GitGenius and College ERP for backend development",
	},
	"Monaco": {
		Icon:        "fas fa-code",
		Description: "Microsoft's code editor used in VS Code. I integrated it for real-time code editing with syntax highlighting.",
		SkillLevel:  3,
		Usage:       "Used in LeetCode Platform for code editor functionality",
	},
	"Judge0": {
		Icon:        "fas fa-gavel",
		Description: "Open-source code execution system. I use it for running and testing code submissions in real-time.",
		SkillLevel:  3,
		Usage:       "Used in LeetCode Platform for code execution",
	},
	"Python": {
		Icon:        "fab fa-python",
		Description: "My secondary programming language. I use it for backend development, data analysis, and machine learning.",
		SkillLevel:  5,
		Usage:       "Used in all backend projects and AI/ML applications",
	},
	"JavaScript": {
		Icon:        "fab fa-js-square",
		Description: "Frontend programming language. I use it for interactive web applications and dynamic content.",
		SkillLevel:  4,
		Usage:       "Used in all frontend projects and interactive features",
	},
	"HTML": {
		Icon:        "fab fa-html5",
		Description: "Markup language for structuring web content. I use it for creating responsive and semantic layouts.",
		SkillLevel:  5,
		Usage:       "Used in all web projects for structure",
	},
	"CSS": {
		Icon:        "fab fa-css3-alt",
		Description: "Styling language for web design. I use it for creating modern, responsive, and animated interfaces.",
		SkillLevel:  5,
		Usage:       "Used in all web projects for styling",
	},
	"PDF Generation": {
		Icon:        "fas fa-file-pdf",
		Description: "Creating PDF documents programmatically. I use libraries like html2pdf.js for document generation.",
		SkillLevel:  3,
		Usage:       "Used in Resume Maker for PDF export",
	},
	"MySQL": {
		Icon:        "fas fa-database",
		Description: "Relational database management system. I use it for storing and managing structured data.",
		SkillLevel:  4,
		Usage:       "Used in LeetCode Platform and College ERP",
	},
	"Authentication": {
		Icon:        "fas fa-user-shield",
		Description: "User authentication and authorization systems. I implement secure login and role-based access.",
		SkillLevel:  4,
		Usage:       "Used in College ERP and Chat App",
	},
	"Bootstrap": {
		Icon:        "fab fa-bootstrap",
		Description: "CSS framework for responsive web design. I use it for creating modern, mobile-friendly user interfaces.",
		SkillLevel:  4,
		Usage:       "Used in GitGenius for responsive frontend design",
	},
	"Machine Learning": {
		Icon:        "fas fa-brain",
		Description: "AI/ML algorithms and models. I use scikit-learn for classification, regression, and NLP tasks.",
		SkillLevel:  3,
		Usage:       "Used in Mood Detector and Pass Predictor",
	},
	"NLP": {
		Icon:        "fas fa-language",
		Description: "Natural Language Processing for text analysis. I use NLTK and TF-IDF for sentiment analysis.",
		SkillLevel:  3,
		Usage:       "Used in Mood Detector for text processing",
	},
	"TF-IDF": {
		Icon:        "fas fa-chart-bar",
		Description: "Text feature extraction technique. I use it for converting text into numerical features for ML models.",
		SkillLevel:  3,
		Usage:       "Used in Mood Detector for feature extraction",
	},
	"WebSockets": {
		Icon:        "fas fa-plug",
		Description: "Real-time bidirectional communication. I use Flask-SocketIO for live chat and notifications.",
		SkillLevel:  3,
		Usage:       "Used in Chat App for real-time messaging",
	},
	"Real-time": {
		Icon:        "fas fa-bolt",
		Description: "Real-time data processing and communication. I implement live updates and instant messaging.",
		SkillLevel:  4,
		Usage:       "Used in Chat App and live features",
	},
	"Logistic Regression": {
		Icon:        "fas fa-chart-line",
		Description: "Machine learning algorithm for classification. I use it for binary prediction tasks.",
		SkillLevel:  3,
		Usage:       "Used in Pass Predictor for student performance prediction",
	},
	"Git": {
		Icon:        "fab fa-git-alt",
		Description: "Version control system for tracking code changes. I use it for collaborative development and project management.",
		SkillLevel:  5,
		Usage:       "Used in all projects for version control and collaboration",
	},
	"Groq API": {
		Icon:        "fas fa-brain",
		Description: "Groq API for fast AI-powered applications. I use it for natural language processing and code analysis.",
		SkillLevel:  4,
		Usage:       "Used in AI GitGenius for intelligent code analysis",
	},
	"AI Integration": {
		Icon:        "fas fa-brain",
		Description: "AI integration and API management with practical experience in connecting AI services to web applications.",
		SkillLevel:  3,
		Usage:       "Used in GitGenius for AI-powered test case generation",
	},
	"SQLAlchemy": {
		Icon:        "fas fa-database",
		Description: "Python SQL toolkit and ORM for database operations. I use it for complex database interactions and migrations.",
		SkillLevel:  4,
		Usage:       "Used in GitGenius for database management and ORM",
	},
	"Auth0": {
		Icon:        "fas fa-shield-alt",
		Description: "Modern authentication and authorization platform. I use it for secure user authentication and session management.",
		SkillLevel:  4,
		Usage:       "Used in GitGenius for secure user authentication",
	},
	"TypeScript": {
		Icon:        "fab fa-js-square",
		Description: "Type-safe JavaScript for better development experience. I use it for both frontend and backend development.",
		SkillLevel:  2,
		Usage:       "Used in Weather App and AI GitGenius",
	},
	"Vite": {
		Icon:        "fas fa-rocket",
		Description: "Fast build tool and development server. I use it for rapid development and optimized production builds.",
		SkillLevel:  3,
		Usage:       "Used in AeroForecast Weather Application",
	},
	"Tailwind CSS": {
		Icon:        "fab fa-css3-alt",
		Description: "Utility-first CSS framework for rapid UI development. I use it for creating responsive and modern designs.",
		SkillLevel:  3,
		Usage:       "Used in AeroForecast Weather Application",
	},
	"Express.js": {
		Icon:        "fas fa-server",
		Description: "Web application framework for Node.js. I use it for building robust backend APIs and services.",
		SkillLevel:  2,
		Usage:       "Used in Weather App backend",
	},
	"PostgreSQL": {
		Icon:        "fas fa-database",
		Description: "Advanced relational database with powerful features. I use it for complex data storage and querying.",
		SkillLevel:  3,
		Usage:       "Used in AeroForecast Weather Application",
	},
	"FastAPI": {
		Icon:        "fas fa-rocket",
		Description: "Modern Python web framework for building APIs. I use it for high-performance backend services.",
		SkillLevel:  3,
		Usage:       "Used in AI GitGenius for API development",
	},
}
