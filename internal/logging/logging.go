// Package logging builds the log15 loggers used across amireport.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	uuid "github.com/satori/go.uuid"
)

// DefaultLevel is used when no level is requested
const DefaultLevel = "info"

// New returns a logfmt logger writing to w, filtered at level.
// A nil writer means stdout.
func New(level string, w io.Writer) (log15.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stdout
	}

	logger := log15.New()
	logger.SetHandler(
		log15.LvlFilterHandler(
			lvl,
			log15.StreamHandler(w, log15.LogfmtFormat()),
		),
	)
	return logger, nil
}

// WithRunID returns a child logger tagged with a fresh run id and the id itself
func WithRunID(logger log15.Logger) (log15.Logger, string) {
	id := uuid.NewV4().String()
	return logger.New("run_id", id), id
}

// Discard returns a logger that drops every record. Useful in tests.
func Discard() log15.Logger {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	return logger
}
