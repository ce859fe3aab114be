package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for names that are empty or escape a directory.
var ErrInvalidFileName = errors.New("invalid file name")

// BareFileName validates that name is a single path segment: non-empty, no
// slashes or backslashes, no traversal sequences, not a dot entry. Download
// handlers use it so a generated file can only be addressed by its bare name.
func BareFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || s == "." || s == ".." {
		return "", ErrInvalidFileName
	}
	if strings.ContainsAny(s, "/\\") || strings.Contains(s, "..") {
		return "", ErrInvalidFileName
	}
	return s, nil
}

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
