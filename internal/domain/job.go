package domain

import "time"

// JobType classifies where the work happens.
type JobType string

const (
	JobTypeRemote  JobType = "remote"
	JobTypeHybrid  JobType = "hybrid"
	JobTypeOnsite  JobType = "onsite"
	JobTypeUnknown JobType = "unknown"
)

// JobPosting is the output of one extraction run. Every string field is
// best-effort: empty means "not found", never an error. PostedAt is nil
// when no relative-date phrase was present. The record is never mutated
// after it is returned; callers own it outright.
type JobPosting struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Salary      string     `json:"salary"`
	JobType     JobType    `json:"jobType"`
	PostedAt    *time.Time `json:"postedDate"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
}
