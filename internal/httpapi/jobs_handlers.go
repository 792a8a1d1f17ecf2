package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"goodjob-engine/internal/events"
	"goodjob-engine/internal/store"
)

type JobsHandler struct {
	DB        *sql.DB
	Hub       *events.Hub
	DeleteJob func(ctx context.Context, db *sql.DB, id int64) error
}

// jobSubmission is the popup form's submission contract. The user may have
// edited any field before sending.
type jobSubmission struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	URL            string `json:"url"`
	RawDescription string `json:"raw_description"`
	Location       string `json:"location,omitempty"`
	SalaryRange    string `json:"salary_range,omitempty"`
	JobType        string `json:"job_type,omitempty"`
	Status         string `json:"status"`
	Source         string `json:"source,omitempty"`
	PostedDate     string `json:"posted_date,omitempty"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Window: q.Get("window"),
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if jobs == nil {
		jobs = []store.Job{}
	}
	writeJSON(w, jobs)
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub jobSubmission
	if err := decodeJSON(r, &sub); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return
	}
	if strings.TrimSpace(sub.URL) == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "url is required")
		return
	}

	added, err := store.InsertJobIfNew(r.Context(), h.DB, store.Job{
		Title:          sub.Title,
		Company:        sub.Company,
		URL:            sub.URL,
		RawDescription: sub.RawDescription,
		Location:       sub.Location,
		SalaryRange:    sub.SalaryRange,
		JobType:        sub.JobType,
		Status:         sub.Status,
		Source:         sub.Source,
		PostedDate:     sub.PostedDate,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	if added {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobSaved, 1, map[string]any{
			"url":     sub.URL,
			"company": sub.Company,
		}))
	}
	writeJSON(w, map[string]any{"ok": true, "added": added})
}

func (h JobsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	if err := h.DeleteJob(r.Context(), h.DB, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobDeleted, 1, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
