// Package logging provides opt-in file-based logging with rotation for minigrep.
// When the --debug flag is set, structured JSON logs are written to
// ~/.minigrep/logs/ for troubleshooting.
//
// Without --debug nothing is logged, so stdout and stderr carry only the
// search output and error messages.
package logging
