package httpapi

import (
	"database/sql"
	"sync/atomic"

	"github.com/rs/zerolog"

	"goodjob-engine/internal/config"
	"goodjob-engine/internal/events"
	"goodjob-engine/internal/extract"
	"goodjob-engine/internal/fetch"
)

type Deps struct {
	DB  *sql.DB
	Hub *events.Hub
	Log zerolog.Logger

	// CfgVal stores config.Config; handlers read the live value, not a
	// startup snapshot.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Extractor *extract.Extractor
	Fetcher   *fetch.Client
}
