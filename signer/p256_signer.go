package signer

import (
	"errors"

	"cryptastic.mleku.dev"
)

var errVerifyOnly = errors.New("P256Verifier holds public keys only")

// P256Verifier implements the I interface for secp256r1 ECDSA. It can only
// verify: key generation, signing and ECDH are refused.
type P256Verifier struct {
	curve *cryptastic.Curve
	pub   *cryptastic.PublicKey
	raw   []byte
}

// NewP256Verifier creates a new P256Verifier instance
func NewP256Verifier() *P256Verifier {
	return &P256Verifier{curve: cryptastic.P256()}
}

// Generate is not supported
func (s *P256Verifier) Generate() error {
	return errVerifyOnly
}

// InitSec is not supported
func (s *P256Verifier) InitSec(sec []byte) error {
	return errVerifyOnly
}

// InitPub initializes the verification key from a 64-byte x||y or a 65-byte
// SEC1 uncompressed public key
func (s *P256Verifier) InitPub(pub []byte) error {
	pk, err := s.curve.ParsePublicKey(pub)
	if err != nil {
		return err
	}
	s.pub = pk
	s.raw = append([]byte(nil), pub...)
	return nil
}

// Sec always returns nil
func (s *P256Verifier) Sec() []byte { return nil }

// Pub returns the public key bytes as given to InitPub
func (s *P256Verifier) Pub() []byte {
	return s.raw
}

// Sign is not supported
func (s *P256Verifier) Sign(msg []byte) (sig []byte, err error) {
	return nil, errVerifyOnly
}

// Verify checks a 32-byte message hash against a 64-byte r||s or a DER
// signature
func (s *P256Verifier) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}
	if len(msg) != 32 {
		return false, errors.New("message must be 32 bytes")
	}
	if len(sig) == 64 {
		return s.curve.VerifyCompact(s.pub, msg, sig), nil
	}
	return s.curve.VerifyASN1(s.pub, msg, sig), nil
}

// Zero drops the public key
func (s *P256Verifier) Zero() {
	s.pub = nil
	s.raw = nil
}

// ECDH is not supported
func (s *P256Verifier) ECDH(pub []byte) (secret []byte, err error) {
	return nil, errVerifyOnly
}
