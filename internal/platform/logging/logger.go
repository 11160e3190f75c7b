package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. LOG_LEVEL selects verbosity
// (zerolog's level names); anything unparseable falls back to info.
func New(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.SyncWriter(w)).Level(level).With().Timestamp().Logger()
}
