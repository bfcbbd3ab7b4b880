package service

import (
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/validation"
)

// Form turns validated raw input into an entity carrying the resolved image URL.
type Form[T any] interface {
	Entity(imageURL string) T
}

// Required text fields carry a pattern so input made only of whitespace fails;
// Entity stores the trimmed value.
//
// optionalURL accepts an empty string or an absolute URL.
const optionalURL = `{"anyOf": [{"type": "string", "maxLength": 0}, {"type": "string", "format": "uri", "maxLength": 2048}]}`

// splitTechStack turns "Go, Fiber ,, Postgres" into [Go Fiber Postgres].
func splitTechStack(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type ExperienceForm struct {
	Role           string `json:"role" form:"role"`
	Company        string `json:"company" form:"company"`
	Duration       string `json:"duration" form:"duration"`
	Description    string `json:"description" form:"description"`
	TechStack      string `json:"techStack" form:"techStack"`
	CompanyLink    string `json:"companyLink" form:"companyLink"`
	DataAIHintLogo string `json:"dataAiHintLogo" form:"dataAiHintLogo"`
}

func (f ExperienceForm) Entity(imageURL string) model.ExperienceEntry {
	return model.ExperienceEntry{
		Role:           strings.TrimSpace(f.Role),
		Company:        strings.TrimSpace(f.Company),
		CompanyLogo:    imageURL,
		DataAIHintLogo: f.DataAIHintLogo,
		Duration:       strings.TrimSpace(f.Duration),
		Description:    strings.TrimSpace(f.Description),
		TechStack:      splitTechStack(f.TechStack),
		CompanyLink:    f.CompanyLink,
	}
}

var ExperienceSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "role":        {"type": "string", "pattern": "\\S", "maxLength": 200},
    "company":     {"type": "string", "pattern": "\\S", "maxLength": 200},
    "duration":    {"type": "string", "pattern": "\\S", "maxLength": 100},
    "description": {"type": "string", "pattern": "\\S", "maxLength": 5000},
    "techStack":   {"type": "string", "pattern": "[^,\\s]", "maxLength": 1000},
    "companyLink": `+optionalURL+`
  }
}`, map[string]string{
	"role":        "Role is required",
	"company":     "Company is required",
	"duration":    "Duration is required",
	"description": "Description is required",
	"techStack":   "Tech stack is required",
	"companyLink": "Company link must be a valid URL",
})

type ProjectForm struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	TechStack   string `json:"techStack" form:"techStack"`
	LiveLink    string `json:"liveLink" form:"liveLink"`
	GithubLink  string `json:"githubLink" form:"githubLink"`
	DataAIHint  string `json:"dataAiHint" form:"dataAiHint"`
}

func (f ProjectForm) Entity(imageURL string) model.Project {
	return model.Project{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		TechStack:   splitTechStack(f.TechStack),
		Image:       imageURL,
		DataAIHint:  f.DataAIHint,
		LiveLink:    f.LiveLink,
		GithubLink:  f.GithubLink,
	}
}

var ProjectSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "title":       {"type": "string", "pattern": "\\S", "maxLength": 200},
    "description": {"type": "string", "pattern": "\\S", "maxLength": 5000},
    "techStack":   {"type": "string", "pattern": "[^,\\s]", "maxLength": 1000},
    "liveLink":    `+optionalURL+`,
    "githubLink":  `+optionalURL+`
  }
}`, map[string]string{
	"title":       "Title is required",
	"description": "Description is required",
	"techStack":   "Tech stack is required",
	"liveLink":    "Live link must be a valid URL",
	"githubLink":  "GitHub link must be a valid URL",
})

type CertificateForm struct {
	Title          string `json:"title" form:"title"`
	Issuer         string `json:"issuer" form:"issuer"`
	IssueDate      string `json:"issueDate" form:"issueDate"`
	CertificateURL string `json:"certificateUrl" form:"certificateUrl"`
	DataAIHint     string `json:"dataAiHint" form:"dataAiHint"`
}

func (f CertificateForm) Entity(imageURL string) model.CertificateEntry {
	return model.CertificateEntry{
		Title:          strings.TrimSpace(f.Title),
		Issuer:         strings.TrimSpace(f.Issuer),
		IssueDate:      strings.TrimSpace(f.IssueDate),
		ThumbnailURL:   imageURL,
		DataAIHint:     f.DataAIHint,
		CertificateURL: f.CertificateURL,
	}
}

var CertificateSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "title":          {"type": "string", "pattern": "\\S", "maxLength": 200},
    "issuer":         {"type": "string", "pattern": "\\S", "maxLength": 200},
    "issueDate":      {"type": "string", "pattern": "\\S", "maxLength": 100},
    "certificateUrl": `+optionalURL+`
  }
}`, map[string]string{
	"title":          "Title is required",
	"issuer":         "Issuer is required",
	"issueDate":      "Issue date is required",
	"certificateUrl": "Certificate URL must be a valid URL",
})

// ReviewForm is the owner's review editor.
type ReviewForm struct {
	Name       string `json:"name" form:"name"`
	Company    string `json:"company" form:"company"`
	Text       string `json:"text" form:"text"`
	Rating     int    `json:"rating" form:"rating"`
	DataAIHint string `json:"dataAiHint" form:"dataAiHint"`
}

func (f ReviewForm) Entity(imageURL string) model.Review {
	return model.Review{
		Name:       strings.TrimSpace(f.Name),
		Company:    strings.TrimSpace(f.Company),
		Text:       strings.TrimSpace(f.Text),
		Rating:     f.Rating,
		Avatar:     imageURL,
		DataAIHint: f.DataAIHint,
	}
}

var ReviewSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "name":    {"type": "string", "pattern": "\\S", "maxLength": 100},
    "company": {"type": "string", "maxLength": 200},
    "text":    {"type": "string", "pattern": "\\S", "maxLength": 2000},
    "rating":  {"type": "integer", "minimum": 1, "maximum": 5}
  }
}`, map[string]string{
	"name":   "Name is required",
	"text":   "Review text is required",
	"rating": "Rating must be between 1 and 5",
})

// VisitorReviewForm is the public testimonial form. Provenance fields are fixed by Entity.
type VisitorReviewForm struct {
	Name    string `json:"name" form:"name"`
	Company string `json:"company" form:"company"`
	Text    string `json:"text" form:"text"`
	Rating  int    `json:"rating" form:"rating"`
}

func (f VisitorReviewForm) Entity(imageURL string) model.Review {
	return model.Review{
		Name:       strings.TrimSpace(f.Name),
		Company:    strings.TrimSpace(f.Company),
		Text:       strings.TrimSpace(f.Text),
		Rating:     f.Rating,
		Avatar:     imageURL,
		DataAIHint: "person portrait",
		Source:     model.ReviewSourceVisitor,
	}
}

var VisitorReviewSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "name":    {"type": "string", "pattern": "\\S[\\s\\S]*\\S", "maxLength": 100},
    "company": {"type": "string", "maxLength": 200},
    "text":    {"type": "string", "pattern": "\\S[\\s\\S]{8,}\\S", "maxLength": 2000},
    "rating":  {"type": "integer", "minimum": 1, "maximum": 5}
  }
}`, map[string]string{
	"name":   "Name must be at least 2 characters.",
	"text":   "Review must be at least 10 characters long.",
	"rating": "Please provide a rating between 1 and 5.",
})

var ContactSchema = validation.MustSchema(`{
  "type": "object",
  "properties": {
    "name":    {"type": "string", "pattern": "\\S", "maxLength": 200},
    "email":   {"type": "string", "format": "email", "maxLength": 320},
    "message": {"type": "string", "pattern": "\\S", "maxLength": 5000}
  }
}`, map[string]string{
	"name":    "Name is required",
	"email":   "Invalid email address",
	"message": "Message is required",
})
