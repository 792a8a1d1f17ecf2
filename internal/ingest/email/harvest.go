package email

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"goodjob-engine/internal/store"
)

var nakedURLRe = regexp.MustCompile(`https?://[^\s<>"')]+`)

// jobHosts are the boards whose links in an alert email point at actual
// postings. Everything else (unsubscribe, settings, logos) is noise.
var jobHosts = []string{
	"linkedin.com/jobs",
	"linkedin.com/comm/jobs",
	"indeed.com",
	"glassdoor.com",
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"smartrecruiters.com",
	"ziprecruiter.com",
	"monster.com",
	"wellfound.com",
}

// HarvestURLs pulls job-posting URLs out of a raw RFC822 alert message.
// Tracking redirects carrying a url= parameter are unwrapped, results are
// canonicalized and deduped, order of first appearance is kept.
func HarvestURLs(raw []byte) []string {
	plain, html := messageBodies(raw)

	var found []string
	if html != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err == nil {
			doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				found = append(found, strings.TrimSpace(href))
			})
		}
	}
	for _, u := range nakedURLRe.FindAllString(plain, -1) {
		found = append(found, strings.TrimRight(u, ".,);:]\"'"))
	}

	seen := make(map[string]bool)
	var out []string
	for _, href := range found {
		u := unwrapRedirect(href)
		if u == "" || !looksLikePosting(u) {
			continue
		}
		key := store.CanonicalURL(u)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, u)
	}
	return out
}

// messageBodies walks the MIME tree and returns the text/plain and text/html
// parts, decoded. A message that fails to parse is treated as plaintext.
func messageBodies(raw []byte) (plain, html string) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return string(raw), ""
	}

	ct := msg.Header.Get("Content-Type")
	cte := msg.Header.Get("Content-Transfer-Encoding")
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		mr := multipart.NewReader(msg.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			pType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
			body := decodeBody(part, part.Header.Get("Content-Transfer-Encoding"))
			switch pType {
			case "text/plain":
				plain += body
			case "text/html":
				html += body
			}
		}
		return plain, html
	}

	body := decodeBody(msg.Body, cte)
	if mediaType == "text/html" {
		return "", body
	}
	return body, ""
}

func decodeBody(r io.Reader, encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	}
	b, _ := io.ReadAll(io.LimitReader(r, 4<<20))
	return string(b)
}

// unwrapRedirect resolves tracking wrappers that carry the destination in a
// url= query parameter, which LinkedIn and Indeed alerts both use.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return ""
	}
	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}
	return u.String()
}

func looksLikePosting(rawURL string) bool {
	l := strings.ToLower(rawURL)
	for _, h := range jobHosts {
		if strings.Contains(l, h) {
			return true
		}
	}
	return false
}
