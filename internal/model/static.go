package model

// Skill is a static skills-section bar.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Service is a static services-section card.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Skills are not stored; the section renders straight from this list.
var Skills = []Skill{
	{Name: "HTML5, CSS3, Tailwind, Responsive Design", Level: 90},
	{Name: "JavaScript (ES6+), TypeScript, Media Queries", Level: 85},
	{Name: "React.js, Next.js, GSAP, Framer Motion", Level: 90},
	{Name: "Node.js, Express.js, API (REST, JSON)", Level: 80},
	{Name: "MongoDB, SQL Basics, Firebase (Auth, DB)", Level: 75},
	{Name: "Git, GitHub, Version Control, DevTools", Level: 85},
	{Name: "Deployment: Vercel, Netlify, Render", Level: 80},
	{Name: "UI/UX Design, Figma, Animations", Level: 75},
	{Name: "AI Integration, Chatbots, API SaaS Tools Development", Level: 65},
	{Name: "Python, TensorFlow, Model Training, Fine-tuning AI Automation & Workflow Bots", Level: 80},
}

var Services = []Service{
	{
		Title:       "Web Development",
		Description: "Building responsive, high-performance websites and web applications using modern technologies.",
	},
	{
		Title:       "UI/UX Design",
		Description: "Crafting intuitive and engaging user interfaces with a focus on user experience and accessibility.",
	},
	{
		Title:       "API Integration",
		Description: "Seamlessly integrating third-party APIs or developing custom APIs to extend functionality.",
	},
	{
		Title:       "Firebase Solutions",
		Description: "Leveraging Firebase for backend services, authentication, real-time databases, and hosting.",
	},
	{
		Title:       "Custom AI Chatbot",
		Description: "Fully customizable AI-powered chatbots with trained and fine-tuned language models, smooth animated UI and responsive design.",
	},
	{
		Title:       "Advanced AI System with LLM Integration",
		Description: "Production-ready AI systems with custom model training, fine-tuning and integration into real-world web applications.",
	},
	{
		Title:       "SEO Service Website",
		Description: "Modern, SEO-optimized websites with server-side rendering, meta tags and schema markup.",
	},
}
