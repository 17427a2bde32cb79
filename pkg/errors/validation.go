package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxUsernameLength is GitHub's limit for user and organization logins.
const maxUsernameLength = 39

// loginRegex matches GitHub logins: alphanumerics and single inner hyphens.
// Legacy accounts may contain consecutive or trailing hyphens, so only the
// character set and the leading character are enforced.
var loginRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

// ValidateUsername validates a GitHub user or organization login.
// Logins are used as file names in the avatar cache, so anything that could
// escape the cache directory is rejected.
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}

	if len(name) > maxUsernameLength {
		return New(ErrCodeInvalidUsername, "username too long (max %d characters): %q", maxUsernameLength, name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}

	if !loginRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid GitHub login: %q", name)
	}

	return nil
}

// ValidateFileComponent validates a string that becomes a single path element.
// It is less strict than [ValidateUsername] because deserialized graph data may
// carry names that never came from the GitHub API.
func ValidateFileComponent(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid characters")
		}
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name cannot be %q", name)
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
