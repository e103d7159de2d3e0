package cryptastic

import "cryptastic.mleku.dev/limbs"

// barrettReduce reduces the 2k-limb value x modulo the k-limb n in place,
// using the precomputed (k+1)-limb reciprocal r = floor(4^(32k) / n).
// x must be below 4^(32k), which holds for any product of a k-limb value
// and a value below n. On return the upper k limbs of x are zero.
//
// scratchXR receives x·r and must be 3k+1 limbs; scratchQN receives q·n
// and must be 2k limbs.
func barrettReduce(x, r, n, scratchXR, scratchQN []uint32) {
	k := len(n)
	switch {
	case len(x) != 2*k:
		panic("cryptastic: barrett input must be 2k limbs")
	case len(r) != k+1:
		panic("cryptastic: barrett reciprocal must be k+1 limbs")
	case len(scratchXR) != 3*k+1:
		panic("cryptastic: barrett x·r scratch must be 3k+1 limbs")
	case len(scratchQN) != 2*k:
		panic("cryptastic: barrett q·n scratch must be 2k limbs")
	}

	limbs.Mul(scratchXR, x, r)
	if scratchXR[3*k] != 0 {
		panic("cryptastic: barrett input out of range")
	}

	// q = x·r / 4^k
	q := scratchXR[2*k : 3*k]
	limbs.Mul(scratchQN, q, n)
	if limbs.Sub(x, scratchQN) {
		panic("cryptastic: barrett quotient overshoot")
	}

	if limbs.Cmp(x, n) >= 0 {
		if limbs.Sub(x, n) {
			panic("cryptastic: borrow in barrett correction")
		}
	}

	if !limbs.IsZero(x[k:]) {
		panic("cryptastic: barrett result not below modulus")
	}
}

// ReduceModN reduces the 512-bit value x modulo the group order.
func (c *Curve) ReduceModN(x *[16]uint32) (r Bignum256) {
	var xr [25]uint32
	var qn [16]uint32
	t := *x
	barrettReduce(t[:], c.barrettN[:], c.n[:], xr[:], qn[:])
	copy(r[:], t[:8])
	return
}

// MulModN returns a·b mod N. The product must stay below 2^512, so at
// least one operand has to be below N.
func (c *Curve) MulModN(a, b *Bignum256) Bignum256 {
	var t [16]uint32
	limbs.Mul(t[:], a[:], b[:])
	return c.ReduceModN(&t)
}
