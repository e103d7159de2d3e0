// Package limbs implements the fixed-width integer kernel used by the
// Montgomery, Barrett and inversion engines. Numbers are slices of 32-bit
// limbs, least significant limb first. No operation ever allocates or
// resizes its operands.
package limbs

import "math/bits"

// modinvBytes holds the multiplicative inverse mod 256 of every odd byte,
// indexed by b/2.
var modinvBytes = [128]byte{
	0x01, 0xAB, 0xCD, 0xB7, 0x39, 0xA3, 0xC5, 0xEF,
	0xF1, 0x1B, 0x3D, 0xA7, 0x29, 0x13, 0x35, 0xDF,
	0xE1, 0x8B, 0xAD, 0x97, 0x19, 0x83, 0xA5, 0xCF,
	0xD1, 0xFB, 0x1D, 0x87, 0x09, 0xF3, 0x15, 0xBF,
	0xC1, 0x6B, 0x8D, 0x77, 0xF9, 0x63, 0x85, 0xAF,
	0xB1, 0xDB, 0xFD, 0x67, 0xE9, 0xD3, 0xF5, 0x9F,
	0xA1, 0x4B, 0x6D, 0x57, 0xD9, 0x43, 0x65, 0x8F,
	0x91, 0xBB, 0xDD, 0x47, 0xC9, 0xB3, 0xD5, 0x7F,
	0x81, 0x2B, 0x4D, 0x37, 0xB9, 0x23, 0x45, 0x6F,
	0x71, 0x9B, 0xBD, 0x27, 0xA9, 0x93, 0xB5, 0x5F,
	0x61, 0x0B, 0x2D, 0x17, 0x99, 0x03, 0x25, 0x4F,
	0x51, 0x7B, 0x9D, 0x07, 0x89, 0x73, 0x95, 0x3F,
	0x41, 0xEB, 0x0D, 0xF7, 0x79, 0xE3, 0x05, 0x2F,
	0x31, 0x5B, 0x7D, 0xE7, 0x69, 0x53, 0x75, 0x1F,
	0x21, 0xCB, 0xED, 0xD7, 0x59, 0xC3, 0xE5, 0x0F,
	0x11, 0x3B, 0x5D, 0xC7, 0x49, 0x33, 0x55, 0xFF,
}

// ModInv32 returns the inverse of a modulo 2^32. a must be odd.
//
// The inverse mod 2^8 comes from a table and is lifted to 2^16 and then 2^32
// using ax ≡ 1 (mod 2^k) => ax(2-ax) ≡ 1 (mod 2^2k).
func ModInv32(a uint32) uint32 {
	if a&1 == 0 {
		panic("limbs: ModInv32 of an even number")
	}
	x8 := uint16(modinvBytes[(a&0xFF)/2])
	x16 := x8 * (2 - x8*uint16(a))
	x32 := uint32(x16) * (2 - uint32(x16)*a)
	return x32
}

// Add adds b into a and returns the carry out of the top limb of a.
// Only len(a) limbs are written: a shorter b is zero-extended and any excess
// limbs of b are ignored.
func Add(a, b []uint32) (carry bool) {
	if len(a) == 0 || len(b) == 0 {
		panic("limbs: Add of an empty operand")
	}
	var c uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		a[i], c = bits.Add32(a[i], bi, c)
	}
	return c != 0
}

// Sub subtracts b from a and returns the borrow out of the top limb of a.
// b is zero-extended, never sign-extended.
func Sub(a, b []uint32) (borrow bool) {
	if len(a) == 0 || len(b) == 0 {
		panic("limbs: Sub of an empty operand")
	}
	var c uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		a[i], c = bits.Sub32(a[i], bi, c)
	}
	return c != 0
}

// Cmp compares a and b as unsigned integers, zero-extending the shorter one.
// It returns -1 if a < b, 0 if a == b and +1 if a > b.
func Cmp(a, b []uint32) int {
	if len(a) == 0 || len(b) == 0 {
		panic("limbs: Cmp of an empty operand")
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var ai, bi uint32
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		if ai < bi {
			return -1
		}
		if ai > bi {
			return 1
		}
	}
	return 0
}

// Mul stores the full product a*b in out, which must be exactly
// len(a)+len(b) limbs long.
func Mul(out, a, b []uint32) {
	if len(out) != len(a)+len(b) {
		panic("limbs: Mul output must be exactly len(a)+len(b) limbs")
	}
	for i := range out {
		out[i] = 0
	}
	for j, bj := range b {
		var carry uint64
		for i, ai := range a {
			// (2^32-1)^2 + 2(2^32-1) fits in 64 bits
			t := uint64(ai)*uint64(bj) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t)
			carry = t >> 32
		}
		if out[j+len(a)] != 0 {
			panic("limbs: carry escaped product width")
		}
		out[j+len(a)] = uint32(carry)
	}
}

// Shr1 shifts x right by one bit. The vacated top bit is filled with a copy
// of the current top bit, so two's-complement values keep their sign.
func Shr1(x []uint32) {
	in := x[len(x)-1] >> 31
	for i := len(x) - 1; i >= 0; i-- {
		out := x[i] & 1
		x[i] = x[i]>>1 | in<<31
		in = out
	}
}

// IsZero reports whether every limb of x is zero.
func IsZero(x []uint32) bool {
	for _, xi := range x {
		if xi != 0 {
			return false
		}
	}
	return true
}
