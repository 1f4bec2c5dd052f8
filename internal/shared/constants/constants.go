package constants

import "io/fs"

const (
	// DefaultFilePerm is the default permission used when writing report files.
	DefaultFilePerm fs.FileMode = 0o644
)

// Process exit codes. CI pipelines depend on these values, do not renumber.
const (
	// ExitOK means no effective plaintext HTTP permission was found.
	ExitOK = 0
	// ExitInsecure means at least one domain effectively permits plaintext HTTP.
	ExitInsecure = 2
	// ExitUsage covers bad arguments, unreadable archives, and archives with
	// no recognizable manifest members.
	ExitUsage = 3
)

const (
	// JSONPrefix and JSONIndent control report serialization.
	JSONPrefix = ""
	JSONIndent = "  "
)
