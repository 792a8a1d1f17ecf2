package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"goodjob-engine/internal/domain"
	"goodjob-engine/internal/extract/page"
	"goodjob-engine/internal/extract/sites"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	e := New(sites.NewRegistry(), zerolog.Nop())
	e.now = func() time.Time { return fixedNow }
	return e
}

func mustPage(t *testing.T, rawURL, html string) *page.Page {
	t.Helper()
	p, err := page.New(rawURL, strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return p
}

func TestExtract_GenericUnknownSite(t *testing.T) {
	html := `<html><head><title>Careers at Acme</title></head><body>
	  <h1 class="job-title">Senior Backend Engineer</h1>
	  <div class="company-name">Acme Corp</div>
	  <div class="description">
	    Remote position, $140k-$160k, posted 2 days ago.
	    We are looking for an experienced engineer to own our ingestion
	    pipeline end to end, from crawler scheduling through storage and
	    the reporting API consumed by the web application.
	  </div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://careers.unknownsite.com/jobs/42", html))

	if got.Title != "Senior Backend Engineer" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Company != "Acme Corp" {
		t.Fatalf("company = %q", got.Company)
	}
	if got.JobType != domain.JobTypeRemote {
		t.Fatalf("jobType = %q", got.JobType)
	}
	if got.Salary != "$140k-$160k" {
		t.Fatalf("salary = %q", got.Salary)
	}
	want := fixedNow.AddDate(0, 0, -2)
	if got.PostedAt == nil || !got.PostedAt.Equal(want) {
		t.Fatalf("postedAt = %v, want %v", got.PostedAt, want)
	}
	if got.Source != "Unknownsite" {
		t.Fatalf("source = %q", got.Source)
	}
	if !strings.Contains(got.Description, "ingestion") {
		t.Fatalf("description lost content: %q", got.Description)
	}
}

func TestExtract_KnownSiteSelectors(t *testing.T) {
	html := `<html><head><title>Job | Greenhouse</title></head><body>
	  <h1 class="app-title">Staff Platform Engineer</h1>
	  <span class="company-name">Initech</span>
	  <div class="location">Denver, CO</div>
	  <div id="content">
	    Initech is hiring a staff engineer for the developer platform team.
	    You will design build and run the deployment tooling every product
	    team at the company depends on, working closely with security.
	  </div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://boards.greenhouse.io/initech/jobs/99", html))

	if got.Title != "Staff Platform Engineer" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Company != "Initech" {
		t.Fatalf("company = %q", got.Company)
	}
	if got.Location != "Denver, CO" {
		t.Fatalf("location = %q", got.Location)
	}
	if got.Source != "Greenhouse" {
		t.Fatalf("source = %q", got.Source)
	}
}

func TestExtract_TitleFallsBackToDocumentTitle(t *testing.T) {
	html := `<html><head><title>Backend Engineer - Initech</title></head>
	<body><p>nothing structured here</p></body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://initech.example.net/p/1", html))
	if got.Title != "Backend Engineer - Initech" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestExtract_CompanyFallsBackToDomain(t *testing.T) {
	html := `<html><head><title>Role</title></head><body><h1 class="job-title">Data Engineer</h1></body></html>`
	got := newTestExtractor().Extract(mustPage(t, "https://careers.initech.com/roles/7", html))
	if got.Company != "Initech" {
		t.Fatalf("company = %q", got.Company)
	}
}

func TestExtract_CompanyPlatformCollisionCorrected(t *testing.T) {
	// the company chain resolves to a "jobs" branded widget; the domain is
	// the best remaining signal
	html := `<html><head><title>Role</title></head><body>
	  <h1 class="job-title">Site Reliability Engineer</h1>
	  <div class="company-name">Initech Jobs Portal</div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://careers.initech.com/sre", html))
	if got.Company != "Initech" {
		t.Fatalf("company = %q", got.Company)
	}
}

func TestExtract_CompanyAltLocatorRetried(t *testing.T) {
	html := `<html><body>
	  <h1 class="app-title">Compiler Engineer</h1>
	  <span class="company-name">Greenhouse</span>
	  <div id="header"><span class="company-name">Hooli</span></div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://boards.greenhouse.io/hooli/jobs/1", html))
	if got.Company != "Hooli" {
		t.Fatalf("company = %q, want alternate locator result", got.Company)
	}
}

func TestExtract_JunkDescriptionCleared(t *testing.T) {
	html := `<html><body>
	  <h1 class="job-title">Ghost Listing Engineer</h1>
	  <div class="company-name">Acme Corp</div>
	  <div class="description">
	    We regret to inform you that this position has been filled. Please
	    browse our other openings for roles that match your experience and
	    check back next week for newly published listings.
	  </div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://careers.acme.dev/x", html))
	if got.Description != "" {
		t.Fatalf("expected cleared description, got %q", got.Description)
	}
	// the rest of the record survives the rejection
	if got.Title != "Ghost Listing Engineer" || got.Company != "Acme Corp" {
		t.Fatalf("partial data lost: %+v", got)
	}
}

func TestExtract_HybridBeatsRemote(t *testing.T) {
	html := `<html><body>
	  <h1 class="job-title">Hybrid Platform Engineer</h1>
	  <div class="company-name">Acme Corp</div>
	  <div class="description">
	    Hybrid role, remote-friendly. Three days in the office, the rest
	    wherever you work best. You will maintain our build infrastructure
	    and keep the release pipeline healthy for all product teams.
	  </div>
	</body></html>`

	got := newTestExtractor().Extract(mustPage(t, "https://careers.acme.dev/y", html))
	if got.JobType != domain.JobTypeHybrid {
		t.Fatalf("jobType = %q, want hybrid", got.JobType)
	}
}

func TestDomainLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"boards.greenhouse.io", "Greenhouse"},
		{"careers.initech.com", "Initech"},
		{"initech.com", "Initech"},
		{"localhost", "Localhost"},
		{"", ""},
	}
	for _, c := range cases {
		if got := domainLabel(c.in); got != c.want {
			t.Fatalf("domainLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
