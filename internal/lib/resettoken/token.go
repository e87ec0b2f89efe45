// Package resettoken generates opaque password-reset tokens.
//
// Tokens carry 256 bits of entropy and are stored on the user record next to
// an absolute expiration instant; they are single-use.
package resettoken

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size is the number of random bytes in a token.
const Size = 32

// New returns a hex-encoded random token of Size bytes.
func New() (string, error) {
	const op = "resettoken.New"
	buf := make([]byte, Size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
