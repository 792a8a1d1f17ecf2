// Package page wraps a parsed document in an explicit handle so extraction
// code can run against fixture HTML in tests the same way it runs against a
// fetched live page.
package page

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const defaultMaxLen = 10000

type Page struct {
	doc    *goquery.Document
	rawURL string
	host   string
}

func New(rawURL string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(rawURL, doc), nil
}

func FromDocument(rawURL string, doc *goquery.Document) *Page {
	return &Page{
		doc:    doc,
		rawURL: strings.TrimSpace(rawURL),
		host:   hostOf(rawURL),
	}
}

func (p *Page) URL() string { return p.rawURL }

// Host is the lowercased hostname with any "www." prefix removed.
func (p *Page) Host() string { return p.host }

// Title returns the document <title> text.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// BodyText returns the full visible text of <body>, script/style stripped.
func (p *Page) BodyText() string {
	body := p.doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	sel := body.Clone()
	sel.Find("script, style, noscript").Remove()
	return strings.TrimSpace(sel.Text())
}

// TrySelectors evaluates selectors in order and returns the first trimmed,
// non-empty match whose length falls in [min, max). Elements are scanned in
// document order. max <= 0 means the default cap of 10000. A selector that
// matches nothing, or that fails to compile, is treated as "no match" and
// the next one is tried; when the list is exhausted the result is "".
func (p *Page) TrySelectors(selectors []string, min, max int) string {
	if max <= 0 {
		max = defaultMaxLen
	}
	for _, sel := range selectors {
		if t := p.trySelector(sel, min, max); t != "" {
			return t
		}
	}
	return ""
}

func (p *Page) trySelector(sel string, min, max int) (out string) {
	// a malformed selector panics inside cascadia; that is one bad locator,
	// not a failed extraction
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	p.doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if t != "" && len(t) >= min && len(t) < max {
			out = t
			return false
		}
		return true
	})
	return out
}

func hostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
