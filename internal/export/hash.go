package export

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DefaultPassword is the placeholder credential assigned to every imported
// record that has no password of its own.
const DefaultPassword = "pa55word!"

// HashPassword returns the hex SHA-256 digest of "email:password", with the
// email lowercased and trimmed first. An empty password falls back to
// DefaultPassword.
//
// This is NOT a secure password scheme: there is no per-user salt and no
// adjustable work factor. It exists only for compatibility with digests that
// were already seeded into the database by the legacy scripts and must not be
// reused for any real authentication path.
func HashPassword(email, password string) string {
	if password == "" {
		password = DefaultPassword
	}
	full := strings.ToLower(strings.TrimSpace(email)) + ":" + password
	sum := sha256.Sum256([]byte(full))
	return hex.EncodeToString(sum[:])
}
