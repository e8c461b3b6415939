package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// maxDimension bounds any single length accepted from user input.
const maxDimension = 1 << 20

// ValidateDimension checks that a user-supplied length is finite, non-negative
// and within a sane bound. name is used in the error message.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", name, v)
	}
	if v > maxDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %d)", name, maxDimension)
	}
	return nil
}

// ValidateViewport checks the optional viewport width and height.
// A nil pointer means the axis is left undefined (intrinsic sizing).
func ValidateViewport(width, height *float64) error {
	if width != nil {
		if err := ValidateDimension("viewport width", *width); err != nil {
			return Wrap(ErrCodeInvalidViewport, err, "invalid viewport")
		}
	}
	if height != nil {
		if err := ValidateDimension("viewport height", *height); err != nil {
			return Wrap(ErrCodeInvalidViewport, err, "invalid viewport")
		}
	}
	return nil
}

// ValidateLabel validates a view label for safe use in output documents
// and diagram labels.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output path supplied on the command line.
// It rejects empty paths, null bytes and relative paths that escape the
// working directory.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidPath, "path contains null byte")
	}
	if !filepath.IsAbs(path) {
		clean := filepath.Clean(path)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return New(ErrCodeInvalidPath, "path escapes working directory: %s", path)
		}
	}
	return nil
}
