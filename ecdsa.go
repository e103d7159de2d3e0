package cryptastic

import (
	"errors"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrNotOnCurve is returned for a public key that does not satisfy the
	// curve equation.
	ErrNotOnCurve = errors.New("cryptastic: point is not on the curve")

	// ErrCoordinateRange is returned for a public key coordinate >= P.
	ErrCoordinateRange = errors.New("cryptastic: coordinate out of range")

	// ErrInvalidEncoding is returned for a public key with an unknown prefix.
	ErrInvalidEncoding = errors.New("cryptastic: invalid point encoding")

	// ErrNegativeGenerator is returned for the public key -G.
	ErrNegativeGenerator = errors.New("cryptastic: public key is the negated generator")
)

// PublicKey is a provisioned ECDSA verification key: the key point and the
// key plus the generator, both affine in Montgomery form.
type PublicKey struct {
	Point AffinePoint
	PlusG AffinePoint
}

// PublicKeyFromMontgomery adopts a key and key+G that were provisioned
// already in Montgomery form. Nothing is validated.
func PublicKeyFromMontgomery(x, y, plusGX, plusGY Bignum256) *PublicKey {
	return &PublicKey{
		Point: AffinePoint{X: FieldElement{v: x}, Y: FieldElement{v: y}},
		PlusG: AffinePoint{X: FieldElement{v: plusGX}, Y: FieldElement{v: plusGY}},
	}
}

// NewPublicKey builds a verification key from plain affine coordinates. The
// point must lie on the curve and must not be -G, whose key+G is the point
// at infinity.
func (c *Curve) NewPublicKey(x, y *Bignum256) (*PublicKey, error) {
	if x.Cmp(&c.p) >= 0 || y.Cmp(&c.p) >= 0 {
		return nil, ErrCoordinateRange
	}
	pk := &PublicKey{Point: AffinePoint{X: c.FieldFromInt(x), Y: c.FieldFromInt(y)}}
	if !c.IsOnCurve(&pk.Point) {
		return nil, ErrNotOnCurve
	}

	pg := c.Projective(&pk.Point)
	sum := c.AddAffine(&pg, &c.g)
	var ok bool
	if pk.PlusG, ok = c.ToAffine(&sum); !ok {
		return nil, ErrNegativeGenerator
	}
	return pk, nil
}

// ParsePublicKey decodes a 64-byte x||y or a 65-byte SEC1 uncompressed
// (0x04 || x || y) public key.
func (c *Curve) ParsePublicKey(b []byte) (*PublicKey, error) {
	switch len(b) {
	case 65:
		if b[0] != 0x04 {
			return nil, ErrInvalidEncoding
		}
		b = b[1:]
	case 64:
	default:
		return nil, ErrInvalidLength
	}
	var x, y Bignum256
	if err := x.SetBytes(b[:32]); err != nil {
		return nil, err
	}
	if err := y.SetBytes(b[32:]); err != nil {
		return nil, err
	}
	return c.NewPublicKey(&x, &y)
}

// Verify checks the ECDSA signature (r, s) over hash. All inputs are plain
// integers; the key is taken as provisioned and not checked against the
// curve equation.
func (c *Curve) Verify(pub *PublicKey, hash, r, s *Bignum256) bool {
	if r.IsZero() || s.IsZero() || r.Cmp(&c.n) >= 0 || s.Cmp(&c.n) >= 0 {
		return false
	}

	w := c.InvertModN(s)
	u1 := c.MulModN(hash, &w)
	u2 := c.MulModN(r, &w)

	sum := c.ShamirMult(&u2, &u1, &pub.Point, &pub.PlusG)
	if sum.IsInfinity() {
		return false
	}

	// X · (Z plain)^-1 drops the R factor of X and leaves plain affine x
	z := c.FieldToInt(&sum.Z)
	zInv := c.InvertModP(&z)
	x := c.mulPlain(&sum.X, &zInv)

	var wide [16]uint32
	copy(wide[:8], x[:])
	xModN := c.ReduceModN(&wide)

	return xModN == *r
}

// VerifyCompact verifies a 64-byte big-endian r||s signature over a 32-byte
// hash.
func (c *Curve) VerifyCompact(pub *PublicKey, hash32, sig []byte) bool {
	if len(hash32) != 32 || len(sig) != 64 {
		return false
	}
	var h, r, s Bignum256
	_ = h.SetBytes(hash32)
	_ = r.SetBytes(sig[:32])
	_ = s.SetBytes(sig[32:])
	return c.Verify(pub, &h, &r, &s)
}

// VerifyASN1 verifies a DER encoded ECDSA-Sig-Value over a 32-byte hash.
func (c *Curve) VerifyASN1(pub *PublicKey, hash32, sig []byte) bool {
	if len(hash32) != 32 {
		return false
	}
	rBytes, sBytes, err := parseSignature(sig)
	if err != nil {
		return false
	}
	var h, r, s Bignum256
	_ = h.SetBytes(hash32)
	if !setInteger(&r, rBytes) || !setInteger(&s, sBytes) {
		return false
	}
	return c.Verify(pub, &h, &r, &s)
}

func parseSignature(sig []byte) (r, s []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, nil, errors.New("cryptastic: invalid ASN.1 signature")
	}
	return r, s, nil
}

// setInteger loads a minimal big-endian DER integer body into x. Values
// wider than 256 bits are refused.
func setInteger(x *Bignum256, b []byte) bool {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 32 {
		return false
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return x.SetBytes(buf[:]) == nil
}
