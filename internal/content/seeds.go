package content

import "portfolio/internal/model"

// Demo sets shown until the owner adds real content. Each call returns a fresh slice.

func DemoExperience() []model.ExperienceEntry {
	return []model.ExperienceEntry{
		{
			Role:           "Full Stack Developer",
			Company:        "Innovate Inc.",
			CompanyLogo:    "https://placehold.co/200x80.png",
			DataAIHintLogo: "company logo",
			Duration:       "Jan 2022 - Present",
			Description:    "Developed and maintained web applications using Next.js, TypeScript, and Node.js. Collaborated with cross-functional teams to deliver high-quality products.",
			TechStack:      []string{"Next.js", "TypeScript", "Node.js", "Firebase", "Tailwind CSS"},
			CompanyLink:    "#",
		},
		{
			Role:           "Frontend Developer",
			Company:        "Creative Solutions",
			CompanyLogo:    "https://placehold.co/200x80.png",
			DataAIHintLogo: "company logo abstract",
			Duration:       "Jun 2020 - Dec 2021",
			Description:    "Built responsive and interactive user interfaces for client websites using React and modern CSS frameworks. Focused on creating pixel-perfect and accessible designs.",
			TechStack:      []string{"React", "JavaScript", "Sass", "Figma", "Storybook"},
			CompanyLink:    "#",
		},
	}
}

func DemoProjects() []model.Project {
	return []model.Project{
		{
			Title:       "FlavorAI",
			Image:       "https://placehold.co/600x400.png",
			DataAIHint:  "AI Cooking Assistant",
			TechStack:   []string{"HTML", "Javascript", "React", "Firebase", "Tailwind CSS", "Python", "Tensorflow", "Responsive Design"},
			Description: "FlavorAI is an AI-powered cooking assistant chatbot. It helps users find recipes, cooking tips, and ingredient suggestions, with real-time chat, smooth animations, a responsive UI and Firebase-based authentication and hosting.",
			LiveLink:    "https://flavor-ai-pied.vercel.app/",
		},
		{
			Title:       "Affiliate - Business Website",
			Image:       "https://placehold.co/600x400.png",
			DataAIHint:  "Affiliate Website",
			TechStack:   []string{"HTML", "CSS", "JS", "Typescript", "Google Form / HTML Form", "Responsive Design"},
			Description: "A fully functional affiliate business website delivered for a client within one month, integrated with Google/HTML forms for data collection.",
			LiveLink:    "https://www.mediatexpert.com/",
		},
		{
			Title:       "Modern Developer Portfolio",
			Image:       "https://placehold.co/600x400.png",
			DataAIHint:  "personal website",
			TechStack:   []string{"React.js", "Tailwind CSS", "Framer Motion", "Gsap", "Responsive Design"},
			Description: "A visually engaging and fully responsive portfolio website with smooth animations, showcasing projects, skills, and contact information.",
			LiveLink:    "/#hero",
		},
	}
}

func DemoCertificates() []model.CertificateEntry {
	return []model.CertificateEntry{
		{
			Title:          "Google Certified Professional Cloud Architect",
			Issuer:         "Google Cloud",
			IssueDate:      "Issued Mar 2023",
			ThumbnailURL:   "https://placehold.co/600x400.png",
			DataAIHint:     "certificate tech",
			CertificateURL: "#",
		},
		{
			Title:          "Advanced JavaScript Ninja",
			Issuer:         "Udemy",
			IssueDate:      "Issued Nov 2022",
			ThumbnailURL:   "https://placehold.co/600x400.png",
			DataAIHint:     "coding award",
			CertificateURL: "#",
		},
		{
			Title:          "Responsive Web Design",
			Issuer:         "freeCodeCamp",
			IssueDate:      "Issued May 2022",
			ThumbnailURL:   "https://placehold.co/600x400.png",
			DataAIHint:     "web design",
			CertificateURL: "#",
		},
		{
			Title:          "Full-Stack Web Development with React",
			Issuer:         "Coursera",
			IssueDate:      "Issued Jan 2024",
			ThumbnailURL:   "https://placehold.co/600x400.png",
			DataAIHint:     "development course",
			CertificateURL: "#",
		},
	}
}

func DemoReviews() []model.Review {
	return []model.Review{
		{
			Name:       "RX",
			Avatar:     "https://i.pravatar.cc/100?img=3",
			DataAIHint: "person portrait",
			Rating:     5,
			Text:       "Delivered an exceptional product on time and with great communication. Highly recommended!",
			Company:    "Tech Solutions Inc.",
		},
		{
			Name:       "John",
			Avatar:     "https://randomuser.me/api/portraits/men/32.jpg",
			DataAIHint: "professional headshot",
			Rating:     4,
			Text:       "Great to work with, very knowledgeable and brought our vision to life. Some minor delays but overall excellent.",
			Company:    "Creative Minds LLC",
		},
		{
			Name:       "Ratnakar Halder",
			Avatar:     "https://i.pravatar.cc/100?img=12",
			DataAIHint: "business person",
			Rating:     5,
			Text:       "The UI/UX design provided was top-notch and significantly improved our user engagement.",
			Company:    "Mediatexpert",
		},
	}
}
