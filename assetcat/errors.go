package assetcat

import "errors"

var (
	// ErrShortArchive is returned when an archive's trailer or header is
	// truncated or internally inconsistent.
	ErrShortArchive = errors.New("assetcat: truncated or malformed archive")

	// ErrArchiveMemberNotFound is returned by Open when no entry matches
	// the requested name.
	ErrArchiveMemberNotFound = errors.New("assetcat: archive member not found")
)
