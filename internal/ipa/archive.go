// Package ipa reads iOS application packages (.ipa files, zip containers) and
// locates the Info.plist manifests embedded in them, including the manifests
// of nested .appex extension bundles.
package ipa

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	sharederrors "github.com/khanhnv2901/ats-cli/internal/shared/errors"
)

// manifestPatterns are the recognized manifest locations inside a package.
// `*` matches exactly one path segment, `**` zero or more segments.
var manifestPatterns = []string{
	"Payload/*.app/Info.plist",
	"Payload/**/*.app/Info.plist",
	"Payload/**/*.appex/Info.plist",
}

// Archive is a read-only handle on one .ipa package.
type Archive struct {
	path   string
	reader *zip.ReadCloser
}

// Open opens the package at path for reading. The caller must Close it.
func Open(path string) (*Archive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sharederrors.ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", sharederrors.ErrBadArchive, path, err)
	}
	return &Archive{path: path, reader: reader}, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Manifests returns the member paths of every recognized Info.plist in the
// package, in the archive's internal member order, deduplicated at first
// occurrence. An empty result is a normal return, not an error.
func (a *Archive) Manifests() []string {
	seen := make(map[string]struct{})
	var ordered []string
	for _, member := range a.reader.File {
		name := member.Name
		if !matchesManifestPattern(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return ordered
}

// ReadMember returns the full contents of one archive member.
func (a *Archive) ReadMember(name string) ([]byte, error) {
	for _, member := range a.reader.File {
		if member.Name != name {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("open member %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read member %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("member %s not found in %s", name, a.path)
}

func matchesManifestPattern(name string) bool {
	for _, pattern := range manifestPatterns {
		// Patterns are fixed constants, Match cannot fail on them.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
