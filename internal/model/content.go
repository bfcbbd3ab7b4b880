package model

// Kind identifies one of the four content collections.
type Kind string

const (
	KindExperience  Kind = "experience"
	KindProject     Kind = "projects"
	KindCertificate Kind = "certificates"
	KindReview      Kind = "reviews"
)

// Kinds lists every content kind in homepage order.
var Kinds = []Kind{KindExperience, KindProject, KindCertificate, KindReview}

// ParseKind maps a path segment or CLI argument onto a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ExperienceEntry is one role on the experience timeline.
// Duration is free text and doubles as the sort key.
type ExperienceEntry struct {
	ID             string   `json:"id"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	CompanyLogo    string   `json:"companyLogo"`
	DataAIHintLogo string   `json:"dataAiHintLogo"`
	Duration       string   `json:"duration"`
	Description    string   `json:"description"`
	TechStack      []string `json:"techStack"`
	CompanyLink    string   `json:"companyLink"`
}

// Project is a portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Image       string   `json:"image"`
	DataAIHint  string   `json:"dataAiHint"`
	LiveLink    string   `json:"liveLink"`
	GithubLink  string   `json:"githubLink"`
}

// CertificateEntry is an earned certificate. IssueDate is free text and the sort key.
type CertificateEntry struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Issuer         string `json:"issuer"`
	IssueDate      string `json:"issueDate"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	DataAIHint     string `json:"dataAiHint"`
	CertificateURL string `json:"certificateUrl"`
}

// ReviewSourceVisitor tags reviews that arrived through the public submission form.
const ReviewSourceVisitor = "visitor"

// Review is a testimonial. Rating is 1..5, enforced by the input schema only.
// Source is set once by the visitor submission path and never by owner edits.
type Review struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Avatar     string `json:"avatar"`
	DataAIHint string `json:"dataAiHint"`
	Source     string `json:"source,omitempty"`
}
