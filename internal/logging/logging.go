// Package logging builds the zerolog logger used for diagnostics. Logs never
// go to stdout, which carries the formatted values.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/born-ml/floatdump/internal/config"
)

// New returns a logger writing to w at the configured level and format.
func New(w io.Writer, cfg config.Log) (zerolog.Logger, error) {
	level, err := cfg.LevelValue()
	if err != nil {
		return zerolog.Nop(), err
	}

	if !cfg.JSON() {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
