package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"storeInspect/internal/config"
	"storeInspect/internal/db"
	"storeInspect/repository"
)

// Conn is a store connection the runner can query and must release.
type Conn interface {
	repository.Querier
	Close() error
}

// Opener acquires a store connection.
type Opener func(ctx context.Context) (Conn, error)

// Report runs one read query against q and writes the formatted rows to w.
// A Report should load its full result before writing so a failed query
// produces no partial output.
type Report func(ctx context.Context, q repository.Querier, w io.Writer) error

// Runner executes the open, query, print, close sequence shared by all tools.
type Runner struct {
	open Opener
	out  io.Writer
	log  zerolog.Logger
}

// New returns a Runner that opens the configured store read-only.
func New(cfg config.DatabaseConfig, out io.Writer, log zerolog.Logger) *Runner {
	return NewWithOpener(ReadOnlyOpener(cfg), out, log)
}

// NewWithOpener returns a Runner using a custom Opener.
func NewWithOpener(open Opener, out io.Writer, log zerolog.Logger) *Runner {
	return &Runner{open: open, out: out, log: log}
}

// ReadOnlyOpener opens cfg.Path with cfg.Driver through db.OpenReadOnly.
func ReadOnlyOpener(cfg config.DatabaseConfig) Opener {
	return func(ctx context.Context) (Conn, error) {
		d, err := db.OpenReadOnly(cfg.Driver, cfg.Path)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Run opens the store, runs report and closes the store. The connection is
// closed exactly once on every path after a successful open, including a panic
// inside report. Failures are logged as a single diagnostic and returned; the
// tools treat them as non-fatal.
func (r *Runner) Run(ctx context.Context, name string, report Report) error {
	log := r.log.With().Str("report", name).Logger()

	conn, err := r.open(ctx)
	if err != nil {
		log.Error().Err(err).Msg("open store failed")
		return fmt.Errorf("%s: open store: %w", name, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close store")
		}
	}()

	log.Debug().Msg("running query")
	if err := report(ctx, conn, r.out); err != nil {
		log.Error().Err(err).Msg("query failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
