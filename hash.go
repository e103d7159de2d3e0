package cryptastic

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// SHA256 is a SHA-256 hash context.
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize writes the digest to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// SHA256Simple computes SHA-256 of input into output (must be 32 bytes)
func SHA256Simple(output []byte, input []byte) {
	h := NewSHA256()
	h.Write(input)
	h.Finalize(output)
}

// digest returns SHA-256(payload) as a plain integer, first byte most
// significant.
func digest(payload []byte) (d Bignum256) {
	var sum [32]byte
	SHA256Simple(sum[:], payload)
	_ = d.SetBytes(sum[:])
	return
}

// VerifyRSABlob checks a signed upload laid out as a 256-byte big-endian
// signature followed by the payload. The signature must open to
// SHA-256(payload) in its low 32 bytes.
func (k *RSAPublicKey) VerifyRSABlob(blob []byte, s *Scratch2048) bool {
	if len(blob) < 256 {
		return false
	}
	var sig Bignum2048
	_ = sig.SetBytes(blob[:256])
	var sum [32]byte
	SHA256Simple(sum[:], blob[256:])
	return k.VerifyDigest(&sig, sum[:], s)
}

// VerifyECDSABlob checks a signed upload laid out as r (32 bytes), s (32
// bytes) and the payload, all big-endian, over SHA-256(payload).
func (c *Curve) VerifyECDSABlob(pub *PublicKey, blob []byte) bool {
	if len(blob) < 64 {
		return false
	}
	var r, s Bignum256
	_ = r.SetBytes(blob[:32])
	_ = s.SetBytes(blob[32:64])
	h := digest(blob[64:])
	return c.Verify(pub, &h, &r, &s)
}
