package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Job is a captured posting as submitted by the popup form. Fields mirror
// the submission contract; anything the user left blank stays empty.
type Job struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	URL            string `json:"url"`
	RawDescription string `json:"raw_description"`
	Location       string `json:"location"`
	SalaryRange    string `json:"salary_range"`
	JobType        string `json:"job_type"`
	Status         string `json:"status"`
	Source         string `json:"source"`
	PostedDate     string `json:"posted_date"` // RFC3339 or ""
	CreatedAt      string `json:"created_at"`
}

type ListJobsOpts struct {
	Sort   string // date | company | title
	Order  string // asc | desc
	Window string // 24h | 7d | all
	Limit  int
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  url TEXT NOT NULL,
  raw_description TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary_range TEXT NOT NULL DEFAULT '',
  job_type TEXT NOT NULL DEFAULT 'unknown',
  status TEXT NOT NULL DEFAULT 'saved',
  source TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  source_id TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_source_id
ON jobs(source_id)
WHERE source_id != '';
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_created_at
ON jobs(created_at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// InsertJobIfNew stores a capture, deduplicating on the canonicalized URL.
// Returns true when a new row was written.
func InsertJobIfNew(ctx context.Context, db *sql.DB, j Job) (bool, error) {
	if strings.TrimSpace(j.URL) == "" {
		return false, errors.New("missing url")
	}
	if j.Title == "" {
		j.Title = "Job Posting"
	}
	if j.Company == "" {
		j.Company = "Unknown"
	}
	if j.JobType == "" {
		j.JobType = "unknown"
	}
	if j.Status == "" {
		j.Status = "saved"
	}
	if j.CreatedAt == "" {
		j.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	sourceID := "url:" + HashString(CanonicalURL(j.URL))

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs(title, company, url, raw_description, location, salary_range, job_type, status, source, posted_date, source_id, created_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?);`,
		j.Title,
		j.Company,
		strings.TrimSpace(j.URL),
		j.RawDescription,
		j.Location,
		j.SalaryRange,
		j.JobType,
		j.Status,
		j.Source,
		j.PostedDate,
		sourceID,
		j.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func ListJobs(ctx context.Context, db *sql.DB, opts ListJobsOpts) ([]Job, error) {
	if opts.Limit <= 0 {
		opts.Limit = 500
	}

	col := "created_at"
	switch opts.Sort {
	case "company":
		col = "company"
	case "title":
		col = "title"
	case "", "date":
	default:
		return nil, fmt.Errorf("bad sort %q", opts.Sort)
	}

	dir := "DESC"
	if strings.EqualFold(opts.Order, "asc") {
		dir = "ASC"
	}

	where := ""
	switch opts.Window {
	case "24h":
		where = "WHERE created_at >= '" + time.Now().UTC().Add(-24*time.Hour).Format(time.RFC3339) + "'"
	case "7d":
		where = "WHERE created_at >= '" + time.Now().UTC().Add(-7*24*time.Hour).Format(time.RFC3339) + "'"
	case "", "all":
	default:
		return nil, fmt.Errorf("bad window %q", opts.Window)
	}

	q := fmt.Sprintf(`
SELECT id, title, company, url, raw_description, location, salary_range, job_type, status, source, posted_date, created_at
FROM jobs
%s
ORDER BY %s %s
LIMIT ?;`, where, col, dir)

	rows, err := db.QueryContext(ctx, q, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.URL, &j.RawDescription, &j.Location,
			&j.SalaryRange, &j.JobType, &j.Status, &j.Source, &j.PostedDate, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func DeleteJob(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?;`, id)
	return err
}
