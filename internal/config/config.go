// Package config turns command-line input into a search configuration and
// loads the optional settings file that tunes logging and output.
package config

import (
	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/search"
)

// EnvCaseInsensitive selects case-insensitive search when present.
// Only presence matters; the value is never read.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// LookupFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config is the resolved input for one search.
type Config struct {
	Query    string
	Filename string
	Mode     search.Mode
}

// New builds a Config from positional arguments (program name excluded)
// and the environment. Arguments after the file name are ignored.
func New(args []string, lookup LookupFunc) (*Config, error) {
	if len(args) < 1 {
		return nil, errors.MissingQuery()
	}
	if len(args) < 2 {
		return nil, errors.MissingFilename()
	}

	_, insensitive := lookup(EnvCaseInsensitive)

	return &Config{
		Query:    args[0],
		Filename: args[1],
		Mode:     search.ModeFromCaseInsensitive(insensitive),
	}, nil
}
