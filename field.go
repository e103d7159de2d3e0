package cryptastic

import "cryptastic.mleku.dev/limbs"

// FieldElement is an element of GF(P) held in Montgomery form (a·R mod P,
// R = 2^256). Plain integers are Bignum256; converting between the two
// always goes through FieldFromInt / FieldToInt.
type FieldElement struct {
	v Bignum256
}

// FieldElementFromMontgomery adopts limbs that are already in Montgomery
// form, such as provisioned key material.
func FieldElementFromMontgomery(v Bignum256) FieldElement {
	return FieldElement{v: v}
}

// Limbs returns the Montgomery-form limbs of a.
func (a *FieldElement) Limbs() Bignum256 {
	return a.v
}

// IsZero reports whether a == 0 (zero is the same in both representations).
func (a *FieldElement) IsZero() bool {
	return limbs.IsZero(a.v[:])
}

// Equal reports whether a and b hold the same residue.
func (a *FieldElement) Equal(b *FieldElement) bool {
	return a.v == b.v
}

// FieldFromInt converts a plain x < P into Montgomery form.
func (c *Curve) FieldFromInt(x *Bignum256) FieldElement {
	return FieldElement{v: montMul256(x, &c.rrModP, &c.p)}
}

// FieldToInt takes a out of Montgomery form.
func (c *Curve) FieldToInt(a *FieldElement) Bignum256 {
	return montReduce256(&a.v, &c.p)
}

func (c *Curve) mul(a, b *FieldElement) FieldElement {
	return FieldElement{v: montMul256(&a.v, &b.v, &c.p)}
}

func (c *Curve) sqr(a *FieldElement) FieldElement {
	return c.mul(a, a)
}

// mulWide is mul with a zero carry limb attached, ready for addMod/subMod.
func (c *Curve) mulWide(a, b *FieldElement) bignum256Oversized {
	return montMul256Oversized(&a.v, &b.v, &c.p)
}

// mulPlain multiplies a Montgomery residue by a plain integer. The R factors
// cancel, so the result is plain.
func (c *Curve) mulPlain(a *FieldElement, b *Bignum256) Bignum256 {
	return montMul256(&a.v, b, &c.p)
}

func (c *Curve) add(a, b *FieldElement) FieldElement {
	t := oversize(&a.v)
	addMod(&t, &b.v, &c.p)
	return FieldElement{v: t.low()}
}

func (c *Curve) sub(a, b *FieldElement) FieldElement {
	t := oversize(&a.v)
	subMod(&t, &b.v, &c.p)
	return FieldElement{v: t.low()}
}

// inv returns a^-1 in Montgomery form. a must be non-zero.
func (c *Curve) inv(a *FieldElement) FieldElement {
	plain := c.FieldToInt(a)
	plainInv := c.InvertModP(&plain)
	return c.FieldFromInt(&plainInv)
}
