// Package enrich defines the contract with the server-side enrichment
// collaborator. The collaborator takes an already-submitted capture and
// derives insights from it over an LLM; the engine never calls the model
// itself, it only speaks this shape.
package enrich

import "context"

// Request carries the fields the collaborator is allowed to read. It never
// sees extractor internals, only the submitted record.
type Request struct {
	JobID       int64  `json:"jobId"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Title       string `json:"title,omitempty"`
}

type CompanyIntel struct {
	WebsiteURL   string   `json:"websiteUrl,omitempty"`
	AboutText    string   `json:"aboutText,omitempty"`
	RecentNews   []string `json:"recentNews,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`
	Values       []string `json:"companyValues,omitempty"`
	TeamSize     string   `json:"teamSize,omitempty"`
	FoundingYear string   `json:"foundingYear,omitempty"`
	Headquarters string   `json:"headquarters,omitempty"`
}

type Contact struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

type Response struct {
	Skills    []string     `json:"skills,omitempty"`
	Seniority string       `json:"seniority,omitempty"`
	Company   CompanyIntel `json:"company,omitempty"`
	Contacts  []Contact    `json:"contacts,omitempty"`
}

// Enricher is implemented by the external collaborator.
type Enricher interface {
	Enrich(ctx context.Context, req Request) (Response, error)
}
