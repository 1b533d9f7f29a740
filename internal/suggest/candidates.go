package suggest

// Fixed candidate tables for autocomplete. Read-only after init; matching is
// case-insensitive but display casing is preserved.

var Roles = []string{
	"Frontend Developer", "Backend Developer", "Full Stack Developer", "Software Engineer",
	"Senior Software Engineer", "Lead Software Engineer", "Principal Software Engineer",
	"React Developer", "Vue.js Developer", "Angular Developer", "Node.js Developer",
	"Python Developer", "Java Developer", "C# Developer", "PHP Developer",
	"Mobile Developer", "React Native Developer", "Flutter Developer", "iOS Developer", "Android Developer",
	"DevOps Engineer", "Cloud Engineer", "Site Reliability Engineer", "Platform Engineer",
	"Data Scientist", "Data Engineer", "Data Analyst", "Machine Learning Engineer", "AI Engineer",
	"Product Manager", "Technical Product Manager", "Project Manager", "Scrum Master",
	"UI/UX Designer", "Product Designer", "Graphic Designer", "Web Designer",
	"QA Engineer", "Test Engineer", "Automation Engineer", "Security Engineer",
	"Database Administrator", "System Administrator", "Network Engineer",
	"Technical Lead", "Engineering Manager", "CTO", "VP of Engineering",
}

var TechStacks = []string{
	"React", "Next.js", "Vue.js", "Angular", "Svelte", "Node.js", "Express.js", "Fastify",
	"TypeScript", "JavaScript", "Python", "Java", "C#", "PHP", "Go", "Rust", "Ruby",
	"MongoDB", "PostgreSQL", "MySQL", "SQLite", "Redis", "Firebase", "Supabase",
	"AWS", "Azure", "GCP", "Vercel", "Netlify", "Heroku", "DigitalOcean",
	"Docker", "Kubernetes", "Git", "GitHub", "GitLab", "Bitbucket",
	"HTML5", "CSS3", "Sass", "SCSS", "Less", "Tailwind CSS", "Bootstrap", "Material UI",
	"Redux", "Zustand", "Context API", "GraphQL", "REST API", "tRPC",
	"Jest", "Vitest", "Cypress", "Playwright", "Testing Library",
	"Webpack", "Vite", "Rollup", "Babel", "ESLint", "Prettier",
	"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator",
	"Spring Boot", "Django", "Flask", "Laravel", "Ruby on Rails", "ASP.NET",
	"React Native", "Flutter", "Swift", "Kotlin", "Xamarin", "Unity",
	"TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn", "OpenCV",
	"Electron", "Tauri", "PWA", "WebAssembly", "Three.js", "D3.js",
}
