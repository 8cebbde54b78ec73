package catalog

// projectIcons is indexed by a project's position in projects.
var projectIcons = []string{
	"fas fa-laptop-code",
	"fas fa-file-alt",
	"fas fa-building",
	"fas fa-brain",
	"fas fa-comments",
	"fas fa-chart-line",
	"fas fa-flask",
	"fas fa-cloud-sun-rain",
}

var projects = []Project{
	{
		Title: "LeetCode Platform",
		Tags:  []string{"Flask", "Monaco", "Judge0", "Python", "JavaScript"},
		Description: []string{
			"A full-stack coding platform inspired by LeetCode, featuring a Monaco code editor with syntax highlighting and autocomplete. The platform includes a curated set of coding problems categorized by difficulty and topic.",
			"Implemented user authentication, submission history, and a leaderboard to track top performers.",
		},
		Tech: []string{
			"Frontend: HTML, CSS, JavaScript, Monaco Editor",
			"Backend: Python, Flask",
			"APIs: Judge0 for code execution",
			"Database: MySQL (for user data and submissions)",
		},
		Features: []string{
			"Real-time code execution with c/c++ and python languages",
			"Problem categorization by difficulty and topic",
			"User authentication and profile system",
			"Submission history and performance tracking",
			"Leaderboard with ranking system",
		},
		Repo: "https://github.com/being-souL1230/online-editor",
	},
	{
		Title: "Resume Maker",
		Tags:  []string{"HTML", "CSS", "JavaScript", "PDF Generation"},
		Description: []string{
			"An interactive resume builder that allows users to create professional resumes by filling in their information and selecting from multiple templates. The application features a live preview and PDF export functionality.",
			"Implemented a drag-and-drop interface for rearranging sections and real-time preview updates. Added template customization options including color schemes and font choices.",
		},
		Tech: []string{
			"Frontend: HTML5, CSS3, JavaScript (ES6+)",
			"Libraries: html2pdf.js for PDF generation",
			"Storage: LocalStorage for saving drafts",
			"UI: Custom responsive design",
		},
		Features: []string{
			"Multiple professionally designed templates",
			"Real-time preview of resume",
			"PDF export with high resolution",
			"Drag-and-drop section rearrangement",
		},
		Repo: "https://github.com/being-souL1230/resume-maker",
	},
	{
		Title: "College ERP",
		Tags:  []string{"Flask", "MySQL", "Authentication", "Bootstrap"},
		Description: []string{
			"A comprehensive College Enterprise Resource Planning system designed to manage student information, courses, grades, and faculty data. The system includes role-based access control for administrators, faculty, and students.",
			"Developed features for course registration, grade submission, attendance tracking, and report generation. Implemented a dashboard with analytics for administrators to monitor institutional performance.",
		},
		Tech: []string{
			"Frontend: HTML, CSS, JavaScript",
			"Backend: Python, Flask",
			"Database: MySQL",
			"Authentication: Flask-Login with role-based access",
			"Reporting: Chart.js for data visualization",
		},
		Features: []string{
			"Role-based access control (Admin, Faculty, Student)",
			"Course registration and management",
			"Grade submission and tracking",
			"Attendance management system",
			"Analytics dashboard with institutional metrics",
		},
		Repo: "https://github.com/being-souL1230/erp-system",
	},
	{
		Title: "Advanced Mood Detector",
		Tags:  []string{"Machine Learning", "NLP", "Python", "Flask", "TF-IDF"},
		Description: []string{
			"An advanced machine learning application that analyzes text input to predict sentiment using sophisticated NLP techniques. The system implements TF-IDF vectorization, Random Forest classification, and advanced text preprocessing including lemmatization and stop word removal.",
			"Features real-time sentiment analysis with detailed ML metrics, emotional intensity scoring, and confidence-based predictions. The model provides comprehensive breakdowns of positive, negative, and neutral sentiment distributions.",
		},
		Tech: []string{
			"Machine Learning: Python, scikit-learn, Random Forest Classifier",
			"NLP: NLTK, WordNet Lemmatizer, TF-IDF Vectorization",
			"Text Processing: Advanced preprocessing, stop word removal",
			"Backend: Flask API with ML integration",
			"Frontend: Interactive visualization with ML metrics",
		},
		Features: []string{
			"TF-IDF vectorization for feature extraction",
			"Random Forest classification with confidence scoring",
			"Advanced text preprocessing (lemmatization, stop words)",
			"Emotional intensity and sentiment distribution analysis",
			"Real-time ML metrics and detailed breakdowns",
		},
		Demo: "/demo/mood-detector",
	},
	{
		Title: "Chat App",
		Tags:  []string{"Flask", "WebSockets", "JavaScript", "Real-time"},
		Description: []string{
			"A real-time chat application supporting private messaging between users and group chat functionality. The application maintains message history and supports online status indicators.",
			"Implemented WebSocket protocol for real-time communication without page refreshes. Added features like typing indicators, message read receipts, and file sharing capabilities.",
		},
		Tech: []string{
			"Frontend: HTML, CSS, JavaScript",
			"Backend: Python, Flask",
			"Real-time: Flask-SocketIO, WebSockets",
			"Database: SQLite for message history",
			"Authentication: Session-based",
		},
		Features: []string{
			"Real-time private and group messaging",
			"Message history persistence",
			"Online/offline status indicators",
			"Typing indicators and read receipts",
			"File sharing capability",
		},
	},
	{
		Title: "Pass Predictor",
		Tags:  []string{"Machine Learning", "Logistic Regression", "Python", "Flask"},
		Description: []string{
			"A machine learning web app that predicts whether a student will pass or fail based on their study hours, sleep hours, and attendance. Uses Logistic Regression for real-time prediction and confidence scoring.",
			"Interactive demo lets you input values and instantly see the prediction, confidence, and probability breakdown. Built with Flask, scikit-learn, and a modern UI.",
		},
		Tech: []string{
			"Machine Learning: Python, scikit-learn, Logistic Regression",
			"Feature Scaling: StandardScaler",
			"Backend: Flask API",
			"Frontend: HTML, CSS, JavaScript (interactive form)",
			"Demo: Real-time prediction and confidence bars",
		},
		Features: []string{
			"Student pass/fail prediction",
			"Probability/confidence visualization",
			"Modern, responsive UI",
			"Instant feedback on input",
			"ML-powered, explainable results",
		},
		Demo: "/demo/pass-predictor",
	},
	{
		Title: "GitGenius - AI-Powered Test Case Generator",
		Tags:  []string{"Python", "Flask", "SQLAlchemy", "Groq API", "AI Integration", "Auth0"},
		Description: []string{
			"An intelligent web application that revolutionizes software testing by automatically generating comprehensive, production-ready test cases for GitHub repositories using advanced AI technology. The application seamlessly integrates with Auth0 for secure user authentication and leverages Groq's powerful language models to create intelligent test cases across multiple programming languages and frameworks.",
			"Features include multi-language support (Python, JavaScript, Java, C++), intelligent repository analysis, edge case detection, batch processing, real-time analytics dashboard, and comprehensive export functionality for various testing frameworks.",
		},
		Tech: []string{
			"Backend: Python 3.11+, Flask 3.1.1, SQLAlchemy 2.0.42",
			"AI Engine: Groq API (Llama3-8B model) for intelligent test generation",
			"Database: SQLite/PostgreSQL with SQLAlchemy ORM",
			"Authentication: Auth0 with secure user management",
			"Frontend: HTML5, CSS3, Bootstrap 5, JavaScript",
		},
		Features: []string{
			"AI-powered test case generation with Groq language models",
			"Auth0 integration for secure user authentication",
			"Multi-language support (Python, JavaScript, Java, C++)",
			"Intelligent repository analysis and pattern recognition",
			"Real-time analytics dashboard with usage metrics",
			"Export functionality for unittest, pytest, Jest formats",
		},
		Demo: "https://ai-gitgenius.onrender.com",
	},
	{
		Title: "AeroForecast Weather Application",
		Tags:  []string{"React 18", "TypeScript", "Vite", "Tailwind CSS", "Express.js", "PostgreSQL"},
		Description: []string{
			"A modern, feature-rich weather application built with cutting-edge web technologies, providing comprehensive weather information through an intuitive interface that adapts to different weather conditions. The application combines accurate weather data from reliable sources with beautiful animations and real-time updates.",
			"Features include current weather display, 7-day forecasting, hourly predictions, location management with geolocation support, air quality monitoring, and AI-powered suggestions for clothing, activities, and travel based on weather conditions.",
		},
		Tech: []string{
			"Frontend: React 18, TypeScript, Vite, Tailwind CSS, Radix UI",
			"Backend: Express.js, TypeScript, PostgreSQL, Drizzle ORM",
			"APIs: Open-Meteo API (Weather, Geocoding, Air Quality)",
			"Real-time: WebSocket for live updates",
			"State Management: React Query (TanStack Query)",
			"Authentication: Express Session, Passport.js",
		},
		Features: []string{
			"Real-time weather data with animated backgrounds",
			"7-day forecast with detailed hourly predictions",
			"Location search with autocomplete and favorites",
			"Air quality monitoring with health recommendations",
			"AI-powered suggestions for clothing and activities",
			"Weather alerts and severe condition indicators",
		},
		Demo: "https://weather-app-sigma-livid-45.vercel.app/",
	},
}
