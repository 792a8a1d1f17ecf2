// Package extract assembles JobPosting records from pages. It ties the
// adapter registry, the normalizer, the inference engine and the validator
// together; a miss in any one field never aborts the rest.
package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"goodjob-engine/internal/domain"
	"goodjob-engine/internal/extract/infer"
	"goodjob-engine/internal/extract/normalize"
	"goodjob-engine/internal/extract/page"
	"goodjob-engine/internal/extract/sites"
	"goodjob-engine/internal/extract/validate"
)

// genericBodySlice caps the unknown-site fallback description taken from
// raw body text.
const genericBodySlice = 5000

// Job boards and ATS hosts whose own names must never be reported as the
// hiring company.
var platformNames = []string{
	"linkedin",
	"indeed",
	"glassdoor",
	"greenhouse",
	"lever",
	"workday",
	"myworkdayjobs",
	"smartrecruiters",
	"ziprecruiter",
	"monster",
	"careerbuilder",
	"simplyhired",
	"wellfound",
	"angellist",
	"builtin",
}

type Extractor struct {
	sites *sites.Registry
	log   zerolog.Logger
	now   func() time.Time
}

func New(reg *sites.Registry, logger zerolog.Logger) *Extractor {
	return &Extractor{
		sites: reg,
		log:   logger,
		now:   time.Now,
	}
}

// Extract builds a JobPosting from the page. Every field is best-effort:
// the result always has the full shape, with empty strings (or a nil
// posted date) where nothing usable was found.
func (e *Extractor) Extract(p *page.Page) domain.JobPosting {
	ad := e.sites.Select(p.URL())

	title := ad.Title.Run(p)
	company := ad.Company.Run(p)
	location := ad.Location.Run(p)
	salary := ad.Salary.Run(p)
	description := ad.Description.Run(p)

	if description == "" && ad.Generic {
		description = truncate(p.BodyText(), genericBodySlice)
	}

	// each raw field is normalized exactly once, before inference and
	// validation see it
	title = normalize.Line(title)
	company = normalize.Line(company)
	location = normalize.Line(location)
	salary = normalize.Line(salary)
	description = normalize.Text(description)

	if secs := normalize.Sections(description); len(secs) > 0 {
		e.log.Debug().Str("url", p.URL()).Strs("sections", secs).Msg("structured sections present")
	}

	if salary == "" {
		salary = normalize.Line(infer.Salary(description))
	}
	if location == "" {
		location = normalize.Line(infer.Location(description))
	}
	jobType := infer.JobType(title, description, location)
	postedAt := infer.PostedAt(description, e.now())

	if description != "" {
		if ok, reason := validate.Description(description); !ok {
			e.log.Debug().Str("url", p.URL()).Str("reason", reason).Msg("description rejected")
			description = ""
		}
	}

	company = e.fixCompany(p, ad, company)

	if title == "" {
		title = normalize.Line(p.Title())
	}
	if company == "" {
		company = domainLabel(p.Host())
	}

	source := ad.Name
	if ad.Generic {
		source = domainLabel(p.Host())
	}

	return domain.JobPosting{
		Title:       title,
		Company:     company,
		Description: description,
		Location:    location,
		Salary:      salary,
		JobType:     jobType,
		PostedAt:    postedAt,
		Source:      source,
		URL:         p.URL(),
	}
}

// fixCompany retries the alternate locator when the company chain resolved
// to the hosting platform itself, then falls back to the page's domain. An
// unresolved collision keeps the value; this is a known precision failure
// mode, not a reason to drop the record.
func (e *Extractor) fixCompany(p *page.Page, ad sites.Adapter, company string) string {
	if company == "" || !looksLikePlatform(company, ad.Name) {
		return company
	}
	if alt := normalize.Line(ad.CompanyAlt.Run(p)); alt != "" && !looksLikePlatform(alt, ad.Name) {
		return alt
	}
	if d := domainLabel(p.Host()); d != "" && !looksLikePlatform(d, ad.Name) {
		return d
	}
	e.log.Warn().Str("url", p.URL()).Str("company", company).Msg("company still resolves to the hosting platform")
	return company
}

func looksLikePlatform(company, siteName string) bool {
	c := strings.ToLower(strings.TrimSpace(company))
	if c == "" {
		return false
	}
	if siteName != "" && c == strings.ToLower(siteName) {
		return true
	}
	for _, p := range platformNames {
		if c == p {
			return true
		}
	}
	if strings.Contains(c, "jobs") {
		return true
	}
	// bare URLs are never a company name
	if strings.Contains(c, "://") || strings.HasPrefix(c, "www.") {
		return true
	}
	return false
}

// domainLabel turns "boards.greenhouse.io" into "Greenhouse": the
// second-level label, capitalized.
func domainLabel(host string) string {
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	label := parts[0]
	if len(parts) >= 2 {
		label = parts[len(parts)-2]
	}
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
