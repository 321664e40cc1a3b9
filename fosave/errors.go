/*

Package fosave implements structural parsing, querying, and surgical
editing of Game A / Game B character save files.

Information sources:

icza/screp's repparser package (parseProtected, the ErrNotReplayFile /
ErrParsing sentinel pair, the Section{ID, Size, ParseFunc} table) is the
structural model this package generalizes: a sequence of typed sections
read in order from an in-memory buffer, with a single panic-recovery
boundary around the whole parse.

ali-raheem/fallout-se's crates/fallout_core (reader.rs, layout.rs,
object.rs, fallout1/*.rs, fallout2/*.rs) is the byte-level ground truth for
every offset, bound, and scoring constant below; see the per-file doc
comments in this package for exact groundings.

*/
package fosave

import "github.com/pkg/errors"

// Kind classifies a fosave error the way a caller (CLI, renderer) needs to
// switch on outcome.
type Kind int

const (
	// KindIO indicates the underlying buffer was too short, or an offset
	// computation went out of range.
	KindIO Kind = iota
	// KindParse indicates a signature mismatch, an impossible count, a
	// heuristic failed to find a valid layout, or a post-edit length
	// mismatch.
	KindParse
	// KindGameDetectionAmbiguous indicates Auto detection succeeded under
	// both games.
	KindGameDetectionAmbiguous
	// KindUnsupportedOperation indicates an edit was attempted on a
	// read-only game, an index was out of range, or an operation would
	// overflow.
	KindUnsupportedOperation
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "Io"
	case KindParse:
		return "Parse"
	case KindGameDetectionAmbiguous:
		return "GameDetectionAmbiguous"
	case KindUnsupportedOperation:
		return "UnsupportedOperation"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned across the package boundary; it
// always carries a Kind so callers (CLI, renderer) can branch on outcome
// the way icza/screp's caller branches on ErrNotReplayFile vs ErrParsing,
// generalized from two sentinels to four typed kinds.
type Error struct {
	Kind Kind
	Msg  string
	// cause is the wrapped underlying error, if any.
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.cause.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// newErr constructs an *Error, wrapping cause (if any) with pkg/errors so a
// stack trace is attached at the creation site.
func newErr(kind Kind, msg string, cause error) *Error {
	if cause != nil {
		cause = errors.Wrap(cause, msg)
	}
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

func ioErrorf(cause error, msg string) error {
	return newErr(KindIO, msg, cause)
}

func parseErrorf(cause error, msg string) error {
	return newErr(KindParse, msg, cause)
}

func unsupportedErrorf(msg string) error {
	return newErr(KindUnsupportedOperation, msg, nil)
}

func ambiguousErrorf(msg string) error {
	return newErr(KindGameDetectionAmbiguous, msg, nil)
}
