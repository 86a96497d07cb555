package errors

import (
	"strings"
	"unicode"
)

// ValidateCraftName validates a craft display name for safety and sanity.
// It rejects names that could break file paths or store keys.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateCraftName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCraftName, "craft name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidCraftName, "craft name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCraftName, "craft name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidCraftName, "craft name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateCraftID validates a stored craft identifier. IDs are UUID strings
// generated by the store, so the check is deliberately loose: non-empty,
// bounded length, no path or control characters.
func ValidateCraftID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidArgument, "craft ID cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidArgument, "craft ID too long (max 64 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "craft ID contains invalid characters")
		}
	}
	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidArgument, "craft ID contains invalid characters")
	}
	return nil
}
