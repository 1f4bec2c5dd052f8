package errors

import "errors"

// Domain errors
var (
	// Archive errors
	ErrNoManifests     = errors.New("no Info.plist members found in archive")
	ErrArchiveNotFound = errors.New("archive not found")
	ErrBadArchive      = errors.New("archive is not a readable zip package")
)
