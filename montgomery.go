package cryptastic

import "cryptastic.mleku.dev/limbs"

// MontResidue2048 is a value in Montgomery form, a·R mod n with R = 2^2048,
// for whichever 2048-bit modulus produced it. It can only be built by the
// Montgomery engine so plain and Montgomery values never mix by accident.
type MontResidue2048 struct {
	v Bignum2048
}

// Scratch2048 holds the work buffers of the 2048-bit engine. One Scratch2048
// may be reused across calls but not shared between concurrent calls.
type Scratch2048 struct {
	t  bignum4096Oversized // product / reduction buffer, 2w+1 limbs
	kn bignum2048Oversized // m·n accumulator, w+1 limbs

	acc, base MontResidue2048 // RSA exponentiation state
}

// montCore runs Montgomery reduction of t by n in place and returns the
// w-limb result, which aliases t. kn is the m·n accumulator.
//
// The base is B = 2^32 and R = B^len(n). len(t) must be 2·len(n)+1 (the top
// limb absorbs the transient overflow) and len(kn) must be len(n)+1.
func montCore(t, n, kn []uint32) []uint32 {
	w := len(n)
	if len(t) != 2*w+1 {
		panic("cryptastic: montgomery buffer must be 2w+1 limbs")
	}
	if len(kn) != w+1 {
		panic("cryptastic: montgomery m·n buffer must be w+1 limbs")
	}

	// n' = -n^-1 mod B
	nInv := -limbs.ModInv32(n[0])

	var m [1]uint32
	for i := 0; i < w; i++ {
		m[0] = t[i] * nInv
		limbs.Mul(kn, n, m[:])
		if limbs.Add(t[i:], kn) {
			panic("cryptastic: carry out of montgomery accumulator")
		}
	}

	if !limbs.IsZero(t[:w]) {
		panic("cryptastic: montgomery low half not cleared")
	}

	// dividing by R is taking the upper half, carry limb included
	s := t[w:]
	if limbs.Cmp(s, n) >= 0 {
		if limbs.Sub(s, n) {
			panic("cryptastic: borrow in montgomery final subtraction")
		}
	}
	if s[w] != 0 {
		panic("cryptastic: montgomery result exceeds modulus width")
	}
	return s[:w]
}

// montMul2048 returns the raw Montgomery product a·b·R^-1 mod n.
func montMul2048(a, b, n *Bignum2048, s *Scratch2048) (r Bignum2048) {
	s.t[128] = 0
	limbs.Mul(s.t[:128], a[:], b[:])
	copy(r[:], montCore(s.t[:], n[:], s.kn[:]))
	return
}

// ToMontgomery2048 brings a into Montgomery form for modulus n using the
// precomputed rr = R² mod n.
func ToMontgomery2048(a, rr, n *Bignum2048, s *Scratch2048) MontResidue2048 {
	return MontResidue2048{v: montMul2048(a, rr, n, s)}
}

// MontMul2048 returns a·b in Montgomery form.
func MontMul2048(a, b *MontResidue2048, n *Bignum2048, s *Scratch2048) MontResidue2048 {
	return MontResidue2048{v: montMul2048(&a.v, &b.v, n, s)}
}

// MontReduce2048 takes a out of Montgomery form.
func MontReduce2048(a *MontResidue2048, n *Bignum2048, s *Scratch2048) (r Bignum2048) {
	copy(s.t[:64], a.v[:])
	for i := 64; i < len(s.t); i++ {
		s.t[i] = 0
	}
	copy(r[:], montCore(s.t[:], n[:], s.kn[:]))
	return
}

// MontgomeryOne2048 adopts rm = R mod n, which is 1 in Montgomery form.
func MontgomeryOne2048(rm *Bignum2048) MontResidue2048 {
	return MontResidue2048{v: *rm}
}

// Limbs returns the raw Montgomery-form limbs of a.
func (a *MontResidue2048) Limbs() Bignum2048 {
	return a.v
}

// 256-bit engine. Scratch lives in fixed-size arrays on the stack.

func montMul256(a, b, n *Bignum256) (r Bignum256) {
	var t bignum512Oversized
	var kn bignum256Oversized
	limbs.Mul(t[:16], a[:], b[:])
	copy(r[:], montCore(t[:], n[:], kn[:]))
	return
}

func montMul256Oversized(a, b, n *Bignum256) (r bignum256Oversized) {
	var t bignum512Oversized
	var kn bignum256Oversized
	limbs.Mul(t[:16], a[:], b[:])
	copy(r[:8], montCore(t[:], n[:], kn[:]))
	return
}

func montReduce256(a, n *Bignum256) (r Bignum256) {
	var t bignum512Oversized
	var kn bignum256Oversized
	copy(t[:8], a[:])
	copy(r[:], montCore(t[:], n[:], kn[:]))
	return
}

// addMod computes a = a + b mod n. a must be reduced with a zero carry limb.
func addMod(a *bignum256Oversized, b, n *Bignum256) {
	if a[8] != 0 {
		panic("cryptastic: addMod operand has a carry limb set")
	}
	limbs.Add(a[:], b[:])
	if limbs.Cmp(a[:], n[:]) >= 0 {
		if limbs.Sub(a[:], n[:]) {
			panic("cryptastic: borrow in addMod")
		}
	}
}

// subMod computes a = a - b mod n. a must be reduced with a zero carry limb.
func subMod(a *bignum256Oversized, b, n *Bignum256) {
	if a[8] != 0 {
		panic("cryptastic: subMod operand has a carry limb set")
	}
	if limbs.Sub(a[:], b[:]) {
		if !limbs.Add(a[:], n[:]) {
			panic("cryptastic: subMod wraparound did not carry")
		}
	}
}

func (a *bignum256Oversized) low() (r Bignum256) {
	copy(r[:], a[:8])
	return
}

func oversize(a *Bignum256) (r bignum256Oversized) {
	copy(r[:8], a[:])
	return
}
