package normalize

import (
	"strings"
	"testing"
)

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain line",
		"Apply Now\n\nWe build things.\r\n\r\nWe build things.\n\n\n\nBenefits",
		"a  b\tc\n \n a  b\tc \n\nd",
		"Responsibilities\n- ship\n- review\n\n\n\nResponsibilities\n- ship\n- review",
		"Apply  Now\n\nWe build things.",
		"Apply\nNow\n\nWe build things.",
		"Share \t this  job\n\nApply Now\n\nWe build things.",
	}
	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestText_DropsRepeatedParagraphs(t *testing.T) {
	para := "We are looking for a senior engineer to join our platform team."
	in := para + "\n\n" + para + "\n\nSomething else entirely.\n\n" + para

	got := Text(in)
	if n := strings.Count(got, "senior engineer"); n != 1 {
		t.Fatalf("expected exactly one surviving copy, found %d in %q", n, got)
	}
	if !strings.HasPrefix(got, para) {
		t.Fatalf("surviving copy should keep its original position: %q", got)
	}
	if !strings.Contains(got, "Something else entirely.") {
		t.Fatalf("distinct paragraph was dropped: %q", got)
	}
}

func TestText_DedupIgnoresCaseAndSpacing(t *testing.T) {
	in := "Great  Team\n\ngreat team\n\nGREAT\tTEAM"
	got := Text(in)
	if got != "Great Team" {
		t.Fatalf("expected first occurrence only, got %q", got)
	}
}

func TestText_StripsUIArtifacts(t *testing.T) {
	in := "Apply Now\nShare this job\nSave job\n\nBuild distributed systems with us.\n\nSimilar jobs\nBack to search"
	got := Text(in)
	for _, phrase := range []string{"Apply Now", "Share this job", "Save job", "Similar jobs", "Back to search"} {
		if strings.Contains(got, phrase) {
			t.Fatalf("artifact %q survived: %q", phrase, got)
		}
	}
	if !strings.Contains(got, "Build distributed systems with us.") {
		t.Fatalf("real content was removed: %q", got)
	}
}

func TestText_StripsArtifactsWithMessyWhitespace(t *testing.T) {
	// nested button markup yields text like "Apply\nNow" or "Apply  Now";
	// one pass must remove the phrase whatever the gap looks like
	cases := []string{
		"Apply  Now\n\nBuild distributed systems with us.",
		"Apply\nNow\n\nBuild distributed systems with us.",
		"Apply Now\n\nBuild distributed systems with us.",
		"Share \t this  job\n\nBuild distributed systems with us.",
		"Sign\nin\nto\napply\n\nBuild distributed systems with us.",
	}
	for _, in := range cases {
		got := Text(in)
		if got != "Build distributed systems with us." {
			t.Fatalf("artifact survived for %q: got %q", in, got)
		}
	}
}

func TestText_WhitespaceRules(t *testing.T) {
	in := "  a   b\t\tc  \n\n\n\n\nd  \n e "
	got := Text(in)
	if got != "a b c\n\nd\ne" {
		t.Fatalf("got %q", got)
	}
}

func TestLine(t *testing.T) {
	if got := Line("  Acme\u00a0 Corp \n Apply Now "); got != "Acme Corp" {
		t.Fatalf("got %q", got)
	}
	if got := Line(Line("Acme Corp")); got != "Acme Corp" {
		t.Fatalf("Line not idempotent: %q", got)
	}
}

func TestSections(t *testing.T) {
	in := Text(`About the Company
We do things.

Responsibilities
- ship

Nice-to-have
- go

How to apply
Email us.`)

	got := Sections(in)
	want := []string{"about", "responsibilities", "preferred", "how_to_apply"}
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sections = %v, want %v (order is fixed)", got, want)
		}
	}
}
