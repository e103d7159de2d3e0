package cryptastic

import "errors"

var (
	// ErrEvenModulus is returned for an RSA modulus that is even.
	ErrEvenModulus = errors.New("cryptastic: RSA modulus must be odd")

	// ErrZeroExponent is returned for a public exponent of zero.
	ErrZeroExponent = errors.New("cryptastic: RSA exponent must be non-zero")

	// ErrInconsistentConstants is returned when R and R² do not belong to
	// the same modulus.
	ErrInconsistentConstants = errors.New("cryptastic: R and R² mod n disagree")
)

// RSAPubkeyOp computes m^e mod n by right-to-left square and multiply in
// Montgomery form. r and rr are R mod n and R² mod n, provisioned by the
// caller. Nothing is checked: m need not be below n and e may be anything.
func RSAPubkeyOp(m, n, r, rr *Bignum2048, e uint32, s *Scratch2048) Bignum2048 {
	s.acc = MontgomeryOne2048(r)
	s.base = ToMontgomery2048(m, rr, n, s)

	for e != 0 {
		if e&1 != 0 {
			s.acc = MontMul2048(&s.acc, &s.base, n, s)
			e--
		}
		if e != 0 {
			s.base = MontMul2048(&s.base, &s.base, n, s)
		}
		e >>= 1
	}

	return MontReduce2048(&s.acc, n, s)
}

// RSAPublicKey is a provisioned RSA verification key.
type RSAPublicKey struct {
	N  Bignum2048 // modulus
	R  Bignum2048 // 2^2048 mod N
	RR Bignum2048 // 2^4096 mod N
	E  uint32
}

// NewRSAPublicKey checks that the provisioned constants fit together: n odd,
// e non-zero and R == REDC(R²).
func NewRSAPublicKey(n, r, rr *Bignum2048, e uint32) (*RSAPublicKey, error) {
	if n[0]&1 == 0 {
		return nil, ErrEvenModulus
	}
	if e == 0 {
		return nil, ErrZeroExponent
	}
	if r.Cmp(n) >= 0 || rr.Cmp(n) >= 0 {
		return nil, ErrInconsistentConstants
	}
	var s Scratch2048
	res := MontReduce2048(&MontResidue2048{v: *rr}, n, &s)
	if res != *r {
		return nil, ErrInconsistentConstants
	}
	return &RSAPublicKey{N: *n, R: *r, RR: *rr, E: e}, nil
}

// Op returns sig^E mod N.
func (k *RSAPublicKey) Op(sig *Bignum2048, s *Scratch2048) Bignum2048 {
	return RSAPubkeyOp(sig, &k.N, &k.R, &k.RR, k.E, s)
}

// RSADigest returns the low 256 bits of an RSA result as a big-endian
// 32-byte digest. For a PKCS#1 v1.5 SHA-256 signature this is the hash.
func RSADigest(res *Bignum2048) (d [32]byte) {
	putLimbsBE(d[:], res[:8])
	return
}

// VerifyDigest reports whether sig opens to digest. Only the trailing 32
// bytes of the opened block are compared; the padding is not inspected.
func (k *RSAPublicKey) VerifyDigest(sig *Bignum2048, digest []byte, s *Scratch2048) bool {
	if len(digest) != 32 {
		return false
	}
	res := k.Op(sig, s)
	return RSADigest(&res) == [32]byte(digest)
}
