package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"goodjob-engine/internal/extract"
	"goodjob-engine/internal/extract/sites"
)

const fixtureHTML = `<html><head><title>Careers</title></head><body>
<h1 class="job-title">Senior Backend Engineer</h1>
<div class="company-name">Acme Corp</div>
<div class="description">Remote position building the ingestion pipeline,
owning crawler scheduling, storage, and the reporting API consumed by the
web application team every single day.</div>
</body></html>`

func newTestClient(opts Options) *Client {
	ex := extract.New(sites.NewRegistry(), zerolog.Nop())
	return New(ex, opts, zerolog.Nop())
}

func TestExtractURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixtureHTML))
	}))
	defer srv.Close()

	c := newTestClient(Options{ReqPerSec: 100, Burst: 10})
	jp, err := c.ExtractURL(context.Background(), srv.URL+"/jobs/1")
	if err != nil {
		t.Fatalf("ExtractURL: %v", err)
	}
	if jp.Title != "Senior Backend Engineer" {
		t.Fatalf("title = %q", jp.Title)
	}
	if jp.Company != "Acme Corp" {
		t.Fatalf("company = %q", jp.Company)
	}
}

func TestExtractURL_HTTPErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(Options{ReqPerSec: 100, Burst: 10})
	if _, err := c.ExtractURL(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 page")
	}
}

func TestExtractAll_SkipsDeadLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(fixtureHTML))
	}))
	defer srv.Close()

	c := newTestClient(Options{ReqPerSec: 100, Burst: 10})
	got := c.ExtractAll(context.Background(), []string{
		srv.URL + "/a",
		srv.URL + "/dead",
		srv.URL + "/b",
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
	for _, jp := range got {
		if jp.Title != "Senior Backend Engineer" {
			t.Fatalf("unexpected posting %+v", jp)
		}
	}
}
