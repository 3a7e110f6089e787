package session

import "github.com/tepidprint/tepid/internal/util"

// TokenBits is the amount of randomness in a session token.
const TokenBits = 130

// NewToken returns a fresh session token: 26 lower-case base32 characters.
func NewToken() (string, error) {
	return util.RandomToken(TokenBits)
}
