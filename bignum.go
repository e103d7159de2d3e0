// Package cryptastic is a fixed-footprint multiprecision arithmetic and
// secp256r1 library: Montgomery and Barrett reduction, binary extended-GCD
// inversion, the RSA public-key operation and ECDSA signature verification.
//
// Every value is a fixed-length array of 32-bit limbs, least significant
// limb first. The numeric core never allocates: 256-bit operations keep
// their scratch on the stack and 2048-bit operations take a caller-owned
// Scratch2048.
//
// None of this code is constant time.
package cryptastic

import (
	"encoding/binary"
	"errors"

	"github.com/holiman/uint256"

	"cryptastic.mleku.dev/limbs"
)

var (
	// ErrInvalidLength is returned when a byte encoding has the wrong size.
	ErrInvalidLength = errors.New("cryptastic: invalid encoding length")
)

// Bignum2048 is a plain (non-Montgomery) integer in [0, 2^2048).
type Bignum2048 [64]uint32

// Bignum256 is a plain (non-Montgomery) integer in [0, 2^256).
type Bignum256 [8]uint32

// oversized scratch shapes; they only ever live inside one operation
type (
	bignum2048Oversized [65]uint32
	bignum4096Oversized [129]uint32
	bignum256Oversized  [9]uint32
	bignum512Oversized  [17]uint32
)

// setLimbsBE fills x from big-endian bytes: the first four bytes land in the
// most significant limb.
func setLimbsBE(x []uint32, b []byte) error {
	if len(b) != 4*len(x) {
		return ErrInvalidLength
	}
	for i := range x {
		x[i] = binary.BigEndian.Uint32(b[4*(len(x)-1-i):])
	}
	return nil
}

func putLimbsBE(b []byte, x []uint32) {
	for i := range x {
		binary.BigEndian.PutUint32(b[4*(len(x)-1-i):], x[i])
	}
}

// SetBytes sets x from a 256-byte big-endian buffer.
func (x *Bignum2048) SetBytes(b []byte) error {
	return setLimbsBE(x[:], b)
}

// Bytes returns the 256-byte big-endian encoding of x.
func (x *Bignum2048) Bytes() (out [256]byte) {
	putLimbsBE(out[:], x[:])
	return
}

// IsZero reports whether x == 0.
func (x *Bignum2048) IsZero() bool {
	return limbs.IsZero(x[:])
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Bignum2048) Cmp(y *Bignum2048) int {
	return limbs.Cmp(x[:], y[:])
}

// SetBytes sets x from a 32-byte big-endian buffer.
func (x *Bignum256) SetBytes(b []byte) error {
	return setLimbsBE(x[:], b)
}

// Bytes returns the 32-byte big-endian encoding of x.
func (x *Bignum256) Bytes() (out [32]byte) {
	putLimbsBE(out[:], x[:])
	return
}

// IsZero reports whether x == 0.
func (x *Bignum256) IsZero() bool {
	return limbs.IsZero(x[:])
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Bignum256) Cmp(y *Bignum256) int {
	return limbs.Cmp(x[:], y[:])
}

// Uint256 converts x to a holiman/uint256 integer.
func (x *Bignum256) Uint256() *uint256.Int {
	var u uint256.Int
	for i := 0; i < 4; i++ {
		u[i] = uint64(x[2*i]) | uint64(x[2*i+1])<<32
	}
	return &u
}

// Bignum256FromUint256 converts a holiman/uint256 integer to a Bignum256.
func Bignum256FromUint256(u *uint256.Int) (x Bignum256) {
	for i := 0; i < 4; i++ {
		x[2*i] = uint32(u[i])
		x[2*i+1] = uint32(u[i] >> 32)
	}
	return
}
