package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"unicode"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// isValidPassword reports whether candidate satisfies the password
// policy: at least 8 characters with at least one lowercase letter,
// one uppercase letter, one digit and one non-alphanumeric character.
// No maximum length is enforced.
func isValidPassword(candidate string) bool {
	if len(candidate) < minPasswordLength {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// normalizeEmail produces the trimmed, lower-cased form used as the
// uniqueness key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// splitName derives first and last name from a Google display name.
// The first whitespace token becomes the first name and the rest the
// last name. Without a display name it falls back to the email's
// local part and a fixed placeholder.
func splitName(displayName, email string) (firstName, lastName string) {
	fields := strings.Fields(displayName)
	switch {
	case len(fields) == 0:
		local, _, _ := strings.Cut(email, "@")
		return local, "User"
	case len(fields) == 1:
		return fields[0], "User"
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

// randomPassword generates an unusable placeholder password for
// federated accounts. It is hashed like any other password and never
// surfaced, so password login stays impossible for those accounts.
func randomPassword() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
