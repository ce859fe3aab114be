package exports

import "errors"

var (
	ErrEmptyMarkdown = errors.New("markdown content is required")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNotFound      = errors.New("file not found")
)
