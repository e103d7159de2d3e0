package cryptastic

import "cryptastic.mleku.dev/limbs"

// signedLimbs is a two's-complement integer one limb wider than the modulus
// it works against. Only the extended GCD's b and d coefficients use it.
type signedLimbs []uint32

func (s signedLimbs) negative() bool {
	return s[len(s)-1]&0x80000000 != 0
}

// halve divides s by two, rounding towards minus infinity.
func (s signedLimbs) halve() {
	limbs.Shr1(s)
}

func (s signedLimbs) sub(b []uint32) {
	limbs.Sub(s, b)
}

func (s signedLimbs) add(b []uint32) {
	limbs.Add(s, b)
}

// InverseMod stores x^-1 mod p in out using the binary extended GCD
// (Stein's algorithm). p must be odd and x must be coprime to p; both are
// len(p) limbs, as is out. scratch must hold 4·(len(p)+1) limbs.
//
// Passing x == 0, an even p or a non-coprime pair panics.
func InverseMod(out, x, p, scratch []uint32) {
	w := len(p)
	switch {
	case w == 0:
		panic("cryptastic: InverseMod of empty modulus")
	case len(x) != w || len(out) != w:
		panic("cryptastic: InverseMod operands must match the modulus width")
	case len(scratch) != 4*(w+1):
		panic("cryptastic: InverseMod scratch must be 4(w+1) limbs")
	case p[0]&1 == 0:
		panic("cryptastic: InverseMod modulus must be odd")
	case limbs.IsZero(x):
		panic("cryptastic: InverseMod of zero")
	}

	u := scratch[0 : w+1]
	v := scratch[w+1 : 2*(w+1)]
	b := signedLimbs(scratch[2*(w+1) : 3*(w+1)])
	d := signedLimbs(scratch[3*(w+1) : 4*(w+1)])

	copy(u, p)
	u[w] = 0
	copy(v, x)
	v[w] = 0
	for i := range b {
		b[i] = 0
		d[i] = 0
	}
	d[0] = 1

	// invariants: b·x ≡ u and d·x ≡ v (mod p)
	for !limbs.IsZero(u) {
		for u[0]&1 == 0 {
			limbs.Shr1(u)
			if b[0]&1 != 0 {
				b.sub(p)
			}
			b.halve()
		}
		for v[0]&1 == 0 {
			limbs.Shr1(v)
			if d[0]&1 != 0 {
				d.sub(p)
			}
			d.halve()
		}
		if limbs.Cmp(u, v) >= 0 {
			limbs.Sub(u, v)
			b.sub(d)
		} else {
			limbs.Sub(v, u)
			d.sub(b)
		}
	}

	// v now holds gcd(x, p)
	if v[0] != 1 || !limbs.IsZero(v[1:]) {
		panic("cryptastic: InverseMod operands are not coprime")
	}

	// d ends anywhere in (-2p, 2p)
	for d.negative() {
		d.add(p)
	}
	for limbs.Cmp(d, p) >= 0 {
		d.sub(p)
	}
	if d[w] != 0 {
		panic("cryptastic: InverseMod result out of range")
	}
	copy(out, d[:w])
}

// inverse256 returns x^-1 mod m for 256-bit operands.
func inverse256(x, m *Bignum256) (r Bignum256) {
	var scratch [4 * 9]uint32
	InverseMod(r[:], x[:], m[:], scratch[:])
	return
}

// InvertModN returns x^-1 mod N. x must be in [1, N).
func (c *Curve) InvertModN(x *Bignum256) Bignum256 {
	return inverse256(x, &c.n)
}

// InvertModP returns x^-1 mod P for a plain x in [1, P).
func (c *Curve) InvertModP(x *Bignum256) Bignum256 {
	return inverse256(x, &c.p)
}
