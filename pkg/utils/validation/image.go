package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds bucket limit")
	ErrFileType     = errors.New("invalid file type, images only")
	ErrFileRequired = errors.New("no file provided")
)

// Limits mirrors the per-bucket upload policy enforced server-side by
// the object store. Checking here keeps oversized or mistyped files an
// expected per-item failure instead of an upstream error.
type Limits struct {
	MaxSize int64
}

var (
	PropertyImageLimits = Limits{MaxSize: 5 * 1024 * 1024}
	AvatarLimits        = Limits{MaxSize: 2 * 1024 * 1024}
)

func ValidateImage(size int64, contentType string, l Limits) error {
	if size == 0 {
		return ErrFileRequired
	}

	// Boyut kontrolü
	if size > l.MaxSize {
		return fmt.Errorf("%w (%d bytes, max %d)", ErrFileSize, size, l.MaxSize)
	}

	// Tip kontrolü
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: got %q", ErrFileType, contentType)
	}

	return nil
}
