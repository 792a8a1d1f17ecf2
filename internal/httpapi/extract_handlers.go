package httpapi

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"goodjob-engine/internal/events"
	"goodjob-engine/internal/extract"
	"goodjob-engine/internal/extract/page"
	"goodjob-engine/internal/fetch"
)

type ExtractHandler struct {
	Extractor *extract.Extractor
	Fetcher   *fetch.Client
	Hub       *events.Hub
	Log       zerolog.Logger
}

type extractRequest struct {
	URL string `json:"url"`
	// HTML carries the live DOM snapshot when the caller (the content
	// script) already has one; with it set, nothing is fetched.
	HTML string `json:"html,omitempty"`
}

// Run handles POST /extract: one extraction request, one JobPosting back.
// The response always has the full shape; missing fields come back empty,
// never as an error.
func (h ExtractHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "url is required")
		return
	}

	if req.HTML != "" {
		p, err := page.New(req.URL, strings.NewReader(req.HTML))
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "bad_html", "could not parse html")
			return
		}
		jp := h.Extractor.Extract(p)
		h.publish(r, jp.URL, jp.Source)
		writeJSON(w, jp)
		return
	}

	jp, err := h.Fetcher.ExtractURL(r.Context(), req.URL)
	if err != nil {
		h.Log.Warn().Str("url", req.URL).Err(err).Msg("extract fetch failed")
		WriteError(w, r, http.StatusBadGateway, "fetch_failed", "could not fetch page")
		return
	}
	h.publish(r, jp.URL, jp.Source)
	writeJSON(w, jp)
}

func (h ExtractHandler) publish(r *http.Request, url, source string) {
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeExtractDone, 1, map[string]any{
		"url":    url,
		"source": source,
	}))
}
