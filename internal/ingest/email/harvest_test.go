package email

import (
	"strings"
	"testing"
)

const alertFixture = "From: LinkedIn Job Alerts <jobalerts-noreply@linkedin.com>\r\n" +
	"To: dev@example.com\r\n" +
	"Subject: 8 new jobs for backend engineer\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/alternative; boundary=\"b1\"\r\n" +
	"\r\n" +
	"--b1\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"New jobs for you:\r\n" +
	"https://www.indeed.com/viewjob?jk=abc123&utm_source=alert\r\n" +
	"Manage alerts: https://account.example.com/settings\r\n" +
	"--b1\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<html><body>\r\n" +
	"<a href=\"https://www.linkedin.com/comm/jobs/view/4012345678?trackingId=xyz\">Senior Backend Engineer</a>\r\n" +
	"<a href=\"https://t.example.com/redirect?url=https%3A%2F%2Fboards.greenhouse.io%2Facme%2Fjobs%2F777\">Apply at Acme</a>\r\n" +
	"<a href=\"https://www.linkedin.com/comm/jobs/view/4012345678?trackingId=other\">logo</a>\r\n" +
	"<a href=\"https://www.linkedin.com/e/unsubscribe?t=1\">Unsubscribe</a>\r\n" +
	"</body></html>\r\n" +
	"--b1--\r\n"

func TestHarvestURLs(t *testing.T) {
	urls := HarvestURLs([]byte(alertFixture))

	want := []string{
		"https://www.linkedin.com/comm/jobs/view/4012345678?trackingId=xyz",
		"https://boards.greenhouse.io/acme/jobs/777",
		"https://www.indeed.com/viewjob?jk=abc123&utm_source=alert",
	}
	if len(urls) != len(want) {
		t.Fatalf("got %d urls %v, want %d", len(urls), urls, len(want))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestHarvestURLs_PlainTextOnly(t *testing.T) {
	raw := "Subject: jobs\r\n\r\n" +
		"Check out https://jobs.lever.co/hooli/42 today.\r\n" +
		"Also https://example.com/not-a-board\r\n"
	urls := HarvestURLs([]byte(raw))
	if len(urls) != 1 || urls[0] != "https://jobs.lever.co/hooli/42" {
		t.Fatalf("urls = %v", urls)
	}
}

func TestHarvestURLs_QuotedPrintable(t *testing.T) {
	raw := "Subject: jobs\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"<a href=3D\"https://www.ziprecruiter.com/jobs/acme/99\">Role</a>\r\n"
	urls := HarvestURLs([]byte(raw))
	if len(urls) != 1 || urls[0] != "https://www.ziprecruiter.com/jobs/acme/99" {
		t.Fatalf("urls = %v", urls)
	}
}

func TestHarvestURLs_GarbageIsPlaintext(t *testing.T) {
	if urls := HarvestURLs([]byte("not an email at all")); len(urls) != 0 {
		t.Fatalf("urls = %v", urls)
	}
}

func TestLooksLikePosting(t *testing.T) {
	cases := map[string]bool{
		"https://www.linkedin.com/jobs/view/123": true,
		"https://boards.greenhouse.io/acme/1":    true,
		"https://www.linkedin.com/feed/":         false,
		"https://account.example.com/settings":   false,
	}
	for u, want := range cases {
		if got := looksLikePosting(u); got != want {
			t.Errorf("looksLikePosting(%q) = %v, want %v", u, got, want)
		}
	}
}

func TestUnwrapRedirect(t *testing.T) {
	got := unwrapRedirect("https://t.example.com/r?url=https%3A%2F%2Fjobs.lever.co%2Fx%2F1")
	if got != "https://jobs.lever.co/x/1" {
		t.Fatalf("unwrapRedirect = %q", got)
	}
	if got := unwrapRedirect("relative/path"); got != "" {
		t.Fatalf("relative should drop, got %q", got)
	}
	if got := unwrapRedirect("https://plain.example.com/a"); !strings.HasPrefix(got, "https://plain.example.com") {
		t.Fatalf("plain url mangled: %q", got)
	}
}
