package rock

import "errors"

// Generation errors.
var (
	// ErrInvalidConfiguration is returned before any work starts when a
	// GenerationConfig fails validation.
	ErrInvalidConfiguration = errors.New("invalid rock configuration")

	// ErrUpload wraps a failure reported by an Uploader.
	ErrUpload = errors.New("rock buffer upload failed")
)
