// Package signer exposes the cryptastic secp256r1 verifier through the orly
// signer interface, so code written against next.orly.dev can check P-256
// signatures without knowing about Montgomery forms or provisioned keys.
package signer

import (
	orlysigner "next.orly.dev/pkg/interfaces/signer"
)

// I is the orly signer interface. P256Verifier satisfies it.
type I = orlysigner.I

var _ I = (*P256Verifier)(nil)
