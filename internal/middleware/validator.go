package middleware

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var controlIDPattern = regexp.MustCompile(`^(A\.)?\d{1,2}(\.\d{1,2}){1,2}$`)

// ValidateControlID checks the catalog id shape: clause ids like
// "4.1" or "9.2.1" and Annex A ids like "A.5.23".
func ValidateControlID(id string) error {
	if id == "" {
		return fmt.Errorf("control ID cannot be empty")
	}
	if !controlIDPattern.MatchString(id) {
		return fmt.Errorf("invalid control ID format: %s", id)
	}
	return nil
}

// ValidateFilename rejects empty names, traversal and control bytes
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("filename too long (max 255 chars)")
	}
	cleaned := path.Clean(name)
	if strings.Contains(cleaned, "..") {
		return fmt.Errorf("path traversal detected")
	}
	dangerous := []string{"\x00", "\n", "\r", "$(", "`", "|", ";"}
	for _, d := range dangerous {
		if strings.Contains(name, d) {
			return fmt.Errorf("invalid characters in filename")
		}
	}
	return nil
}

// ValidateContentType accepts "type/subtype" media types only
func ValidateContentType(ct string) error {
	if ct == "" {
		return nil // optional, defaults applied downstream
	}
	pattern := `^[a-zA-Z0-9!#$&^_.+-]+/[a-zA-Z0-9!#$&^_.+-]+$`
	matched, _ := regexp.MatchString(pattern, ct)
	if !matched {
		return fmt.Errorf("invalid content type: %s", ct)
	}
	return nil
}

// ValidateOrgID validates organization ID format
func ValidateOrgID(org string) error {
	if org == "" {
		return fmt.Errorf("organization ID cannot be empty")
	}
	pattern := `^[a-zA-Z0-9_-]{1,64}$`
	matched, _ := regexp.MatchString(pattern, org)
	if !matched {
		return fmt.Errorf("invalid organization ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}
