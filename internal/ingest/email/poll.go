package email

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/rs/zerolog"

	"goodjob-engine/internal/config"
	"goodjob-engine/internal/domain"
	"goodjob-engine/internal/events"
	"goodjob-engine/internal/fetch"
	"goodjob-engine/internal/secrets"
	"goodjob-engine/internal/store"
)

const (
	maxLinksPerMessage = 40
	runTimeout         = 2 * time.Minute
)

// Poller turns unread job-alert email into captured jobs: harvest the
// posting links, fetch and extract each one, store what is new.
type Poller struct {
	DB      *sql.DB
	Fetcher *fetch.Client
	Hub     *events.Hub
	Log     zerolog.Logger

	// CfgVal holds the live config.Config so config edits apply on the
	// next cycle without a restart.
	CfgVal *atomic.Value
}

func (p *Poller) cfg() config.Config {
	c, _ := p.CfgVal.Load().(config.Config)
	return c
}

// Loop polls on the configured interval until ctx is done. Disabled config
// just idles the loop; the next tick rereads the live config.
func (p *Poller) Loop(ctx context.Context) {
	for {
		cfg := p.cfg()
		interval := time.Duration(cfg.Email.PollSeconds) * time.Second
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		if cfg.Email.Enabled {
			added, err := p.RunOnce(ctx)
			if err != nil {
				p.Log.Warn().Err(err).Msg("email poll failed")
			} else if added > 0 {
				p.Log.Info().Int("added", added).Msg("email poll captured jobs")
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// RunOnce scans unseen alert mail once and returns how many jobs were added.
// Messages are marked \Seen only after their links have been processed.
func (p *Poller) RunOnce(ctx context.Context) (added int, err error) {
	cfg := p.cfg()
	if !cfg.Email.Enabled {
		return 0, nil
	}

	password, err := secrets.GetIMAPPassword(secrets.IMAPKeyringAccount(cfg))
	if err != nil {
		return 0, err
	}

	addr := cfg.Email.IMAPHost
	if !strings.Contains(addr, ":") {
		port := cfg.Email.IMAPPort
		if port == 0 {
			port = 993
		}
		addr = fmt.Sprintf("%s:%d", addr, port)
	}

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	c, err := dialAndLogin(ctx, addr, cfg.Email.Username, password)
	if err != nil {
		return 0, err
	}
	defer logoutAndClose(c)

	mailbox := cfg.Email.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	if _, err := c.Select(mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return 0, fmt.Errorf("imap select %q: %w", mailbox, err)
	}

	msgs, err := fetchUnseen(ctx, c, cfg.Email.MaxBatch)
	if err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	processed := make([]imap.UID, 0, len(msgs))
	for _, m := range msgs {
		urls := HarvestURLs(m.RawBody)
		if len(urls) > maxLinksPerMessage {
			urls = urls[:maxLinksPerMessage]
		}
		p.Log.Debug().
			Str("from", m.From).
			Str("subject", m.Subject).
			Int("links", len(urls)).
			Msg("harvested alert message")

		for _, jp := range p.Fetcher.ExtractAll(ctx, urls) {
			ok, err := store.InsertJobIfNew(ctx, p.DB, toJob(jp))
			if err != nil {
				p.Log.Warn().Str("url", jp.URL).Err(err).Msg("store job from email")
				continue
			}
			if ok {
				added++
			}
		}
		processed = append(processed, m.UID)

		if ctx.Err() != nil {
			break
		}
	}

	if err := markSeen(c, processed); err != nil {
		return added, err
	}

	if added > 0 && p.Hub != nil {
		p.Hub.Publish(events.MakeEvent("", events.TypeEmailBatch, 1, map[string]any{
			"messages": len(processed),
			"added":    added,
		}))
	}
	return added, nil
}

func toJob(jp domain.JobPosting) store.Job {
	j := store.Job{
		Title:          jp.Title,
		Company:        jp.Company,
		URL:            jp.URL,
		RawDescription: jp.Description,
		Location:       jp.Location,
		SalaryRange:    jp.Salary,
		JobType:        string(jp.JobType),
		Source:         jp.Source,
	}
	if jp.PostedAt != nil {
		j.PostedDate = jp.PostedAt.Format(time.RFC3339)
	}
	return j
}
