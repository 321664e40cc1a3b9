/*

Package logx provides the structured logger shared by the heuristic scans,
the parse orchestrator, and the CLI.

Information source: neper-stars-houston's go.mod, which pulls in
github.com/rs/zerolog for its own leveled logging; this package wraps it the
way icza/screp's repparser.parseProtected uses log.Printf at its single
recover boundary, widened to structured fields (section id, candidate
scores) instead of a raw stack dump.

*/
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// L is the package-wide logger. Tests may redirect its output via SetOutput.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// SetOutput redirects L to w.
func SetOutput(w io.Writer) {
	L = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel adjusts the minimum logged level.
func SetLevel(level zerolog.Level) {
	L = L.Level(level)
}
