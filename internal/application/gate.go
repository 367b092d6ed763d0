// Package application contains the use-case services driving the stores.
package application

import "crypto/subtle"

// Gate checks candidate secrets against the administrator credential
// configured at startup. It guards user creation, user modification and
// export; clock-in, clock-out, incidents and reads are never gated.
type Gate struct {
	secret string
}

// NewGate creates a Gate for the given administrator secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Verify reports whether candidate matches the administrator secret.
// The comparison is constant-time.
func (g *Gate) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.secret)) == 1
}
