// Package normalize cleans raw extracted text. The pipeline order is fixed:
// artifact filtering, paragraph deduplication, section detection (flag only),
// whitespace normalization. Running the pipeline twice yields the same text.
package normalize

import (
	"regexp"
	"strings"
)

// UI/button noise that job boards smear into description text. Removed
// outright, no placeholder. Word gaps must tolerate any whitespace shape,
// including newlines and nbsp from nested button markup; artifact filtering
// runs before whitespace normalization, so a phrase it misses on the first
// pass would survive forever in collapsed form.
var artifactRes = compileArtifacts(
	`apply now`,
	`share (this )?job`,
	`save (this )?job`,
	`job alerts?`,
	`sign in to apply`,
	`click here to apply`,
	`view all jobs`,
	`similar jobs`,
	`recommended for you`,
	`back to search`,
	`print job`,
	`report job`,
)

func compileArtifacts(phrases ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		out[i] = regexp.MustCompile(`(?i)` + strings.ReplaceAll(p, " ", `[\s\x{a0}]+`))
	}
	return out
}

var (
	paraSplitRe   = regexp.MustCompile(`\n(?:[ \t\r]*\n)+`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
	sectionHdrRes = []struct {
		name string
		re   *regexp.Regexp
	}{
		{"about", regexp.MustCompile(`(?im)^\s*(about( (us|the (company|role|team)))?|company overview)\b`)},
		{"description", regexp.MustCompile(`(?im)^\s*((job |role |position )?description|summary)\b`)},
		{"responsibilities", regexp.MustCompile(`(?im)^\s*((key )?responsibilit(y|ies)|what you('|’)ll do)\b`)},
		{"qualifications", regexp.MustCompile(`(?im)^\s*(qualifications?|requirements?|what (we are|we're) looking for)\b`)},
		{"preferred", regexp.MustCompile(`(?im)^\s*(preferred( qualifications?)?|nice[ -]to[ -]have)\b`)},
		{"benefits", regexp.MustCompile(`(?im)^\s*(benefits?|perks?)\b`)},
		{"compensation", regexp.MustCompile(`(?im)^\s*(compensation|salary( range)?|pay( range)?)\b`)},
		{"how_to_apply", regexp.MustCompile(`(?im)^\s*how to apply\b`)},
	}
)

// Text runs the full pipeline on multi-line text (descriptions).
func Text(s string) string {
	s = stripArtifacts(s)
	s = dedupeParagraphs(s)
	return collapseWhitespace(s)
}

// Line is the single-line form used for title/company/location/salary:
// artifact filtering plus whitespace collapse, no paragraph handling.
func Line(s string) string {
	s = stripArtifacts(s)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// Sections reports which canonical job-posting section headers appear in the
// text, in a fixed order. Detection only; the text is never restructured
// around them.
func Sections(s string) []string {
	var out []string
	for _, h := range sectionHdrRes {
		if h.re.MatchString(s) {
			out = append(out, h.name)
		}
	}
	return out
}

func stripArtifacts(s string) string {
	for _, re := range artifactRes {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

// dedupeParagraphs drops exact paragraph repeats, comparing by a lowercased,
// whitespace-collapsed key but keeping each survivor's original text and
// position.
func dedupeParagraphs(s string) string {
	paras := paraSplitRe.Split(s, -1)
	seen := map[string]bool{}
	var out []string
	for _, p := range paras {
		key := strings.ToLower(strings.Join(strings.Fields(p), " "))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return strings.Join(out, "\n\n")
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRunRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")

	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
