// Package token issues the opaque identifiers used as access tokens and as
// externally visible entity references.
package token

import "github.com/google/uuid"

// New returns a fresh random identifier in canonical UUID form (36
// characters). Tokens carry no claims and no expiry; they are bare lookup
// keys whose uniqueness is enforced by the store.
func New() string {
	return uuid.NewString()
}
