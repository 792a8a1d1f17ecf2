// Package infer recovers job fields from free text when structured locators
// come up empty. Every extractor here is an ordered pattern table: the first
// pattern to match wins and later ones are never consulted.
package infer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"goodjob-engine/internal/domain"
)

// Salary patterns, most specific first: currency ranges, then labeled and
// capped forms, then single values with a period suffix. The matched
// substring is returned verbatim, not reshaped into a canonical range.
var salaryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\d{1,3}(?:\.\d+)?k\s*[-–—]\s*\$?\d{1,3}(?:\.\d+)?k`),
	regexp.MustCompile(`\$\d{1,3}(?:,\d{3})+\s*[-–—]\s*\$?\d{1,3}(?:,\d{3})+`),
	regexp.MustCompile(`\$\d{5,7}\s*[-–—]\s*\$?\d{5,7}`),
	regexp.MustCompile(`(?i)[€£]\d{1,3}(?:\.\d+)?k\s*[-–—]\s*[€£]?\d{1,3}(?:\.\d+)?k`),
	regexp.MustCompile(`[€£]\d{1,3}(?:,\d{3})+\s*[-–—]\s*[€£]?\d{1,3}(?:,\d{3})+`),
	regexp.MustCompile(`[€£]\d{5,7}\s*[-–—]\s*[€£]?\d{5,7}`),
	regexp.MustCompile(`(?i)salary\s*:\s*[$€£]\d[\d,]*(?:\.\d+)?k?`),
	regexp.MustCompile(`(?i)up to\s+[$€£]\d[\d,]*(?:\.\d+)?k?`),
	regexp.MustCompile(`(?i)[$€£]\d{1,3}(?:,\d{3})*(?:\.\d+)?k?\s*(?:/\s*|per\s+)(?:year|yr|annum|month|mo|hour|hr)`),
}

var locationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)location\s*:\s*([^\n|•·]{2,80})`),
	regexp.MustCompile(`\b([A-Z][A-Za-z.'-]+(?: [A-Z][A-Za-z.'-]+)*,\s*[A-Z]{2})\b`),
	regexp.MustCompile(`(?i)\b(remote|work from home|anywhere|distributed)\b`),
}

// Job-type phrase sets in strict precedence order. Hybrid is checked first
// on purpose: a posting mentioning both "hybrid" and "remote" is hybrid.
var (
	hybridPhrases = []string{"hybrid", "flexible location", "remote/office", "office/remote"}
	remotePhrases = []string{"remote", "work from home", "wfh", "telecommute", "anywhere", "distributed"}
	onsitePhrases = []string{"on-site", "onsite", "in-office", "office-based"}
)

// Relative posted-date patterns. Only one unit class is expected per text;
// when a string somehow carries several ("2 days, 3 hours ago") the table
// order decides and the units are not combined.
var (
	postedNowRe   = regexp.MustCompile(`(?i)\b(posted\s+today|today|just posted|just now)\b`)
	postedHoursRe = regexp.MustCompile(`(?i)\b(\d+)\s*hours?\s+ago\b`)
	postedDaysRe  = regexp.MustCompile(`(?i)\b(\d+)\s*days?\s+ago\b`)
	postedWeeksRe = regexp.MustCompile(`(?i)\b(\d+)\s*weeks?\s+ago\b`)
)

func Salary(text string) string {
	for _, re := range salaryRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func Location(text string) string {
	for _, re := range locationRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

// JobType classifies over the concatenated title, description and location.
func JobType(title, description, location string) domain.JobType {
	blob := strings.ToLower(title + " " + description + " " + location)

	for _, p := range hybridPhrases {
		if strings.Contains(blob, p) {
			return domain.JobTypeHybrid
		}
	}
	for _, p := range remotePhrases {
		if strings.Contains(blob, p) {
			return domain.JobTypeRemote
		}
	}
	for _, p := range onsitePhrases {
		if strings.Contains(blob, p) {
			return domain.JobTypeOnsite
		}
	}
	return domain.JobTypeUnknown
}

// PostedAt resolves a relative-date phrase against now. Nil when the text
// carries no recognizable phrase.
func PostedAt(text string, now time.Time) *time.Time {
	if postedNowRe.MatchString(text) {
		t := now
		return &t
	}
	if n, ok := firstInt(postedHoursRe, text); ok {
		t := now.Add(-time.Duration(n) * time.Hour)
		return &t
	}
	if n, ok := firstInt(postedDaysRe, text); ok {
		t := now.AddDate(0, 0, -n)
		return &t
	}
	if n, ok := firstInt(postedWeeksRe, text); ok {
		t := now.AddDate(0, 0, -7*n)
		return &t
	}
	return nil
}

func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
