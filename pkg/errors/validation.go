package errors

import (
	"strings"
	"unicode"
)

// ValidateUID validates a resource uid for safety and correctness.
// Uids appear in error output, graph labels and manifest references, so the
// rules are intentionally conservative:
//   - No empty uids
//   - No control characters or whitespace
//   - Maximum length of 256 characters
func ValidateUID(uid string) error {
	if uid == "" {
		return New(ErrCodeInvalidUID, "resource uid cannot be empty")
	}

	if len(uid) > 256 {
		return New(ErrCodeInvalidUID, "resource uid too long (max 256 characters)")
	}

	for _, r := range uid {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidUID, "resource uid contains invalid characters")
		}
	}

	return nil
}

// ValidateFileName validates a declared resource file name.
// File names join the configured directory and the generated URL, so path
// components and traversal sequences are rejected outright.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}

	if strings.Contains(name, "..") || strings.Contains(name, "\x00") {
		return New(ErrCodeInvalidPath, "file name contains invalid characters: %q", name)
	}

	return nil
}
