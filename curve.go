package cryptastic

// Curve binds the secp256r1 domain parameters and their precomputed
// Montgomery and Barrett forms. All curve operations are methods on *Curve
// so the constants travel with the call instead of living in globals.
type Curve struct {
	p Bignum256 // field prime
	n Bignum256 // subgroup order

	rModP  Bignum256 // R mod P, 1 in Montgomery form
	rrModP Bignum256 // R² mod P
	twoR   FieldElement
	threeR FieldElement
	aR     FieldElement
	bR     FieldElement

	g AffinePoint // generator, Montgomery form

	barrettN [9]uint32 // floor(2^512 / N)
}

// secp256r1 parameters, little-endian limbs
var p256 = Curve{
	p: Bignum256{0xffffffff, 0xffffffff, 0xffffffff, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0xffffffff},
	n: Bignum256{0xfc632551, 0xf3b9cac2, 0xa7179e84, 0xbce6faad, 0xffffffff, 0xffffffff, 0x00000000, 0xffffffff},

	rModP:  Bignum256{0x00000001, 0x00000000, 0x00000000, 0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe, 0x00000000},
	rrModP: Bignum256{0x00000003, 0x00000000, 0xffffffff, 0xfffffffb, 0xfffffffe, 0xffffffff, 0xfffffffd, 0x00000004},
	twoR:   FieldElement{v: Bignum256{0x00000002, 0x00000000, 0x00000000, 0xfffffffe, 0xffffffff, 0xffffffff, 0xfffffffd, 0x00000001}},
	threeR: FieldElement{v: Bignum256{0x00000003, 0x00000000, 0x00000000, 0xfffffffd, 0xffffffff, 0xffffffff, 0xfffffffc, 0x00000002}},
	aR:     FieldElement{v: Bignum256{0xfffffffc, 0xffffffff, 0xffffffff, 0x00000003, 0x00000000, 0x00000000, 0x00000004, 0xfffffffc}},
	bR:     FieldElement{v: Bignum256{0x29c4bddf, 0xd89cdf62, 0x78843090, 0xacf005cd, 0xf7212ed6, 0xe5a220ab, 0x04874834, 0xdc30061d}},

	g: AffinePoint{
		X: FieldElement{v: Bignum256{0x18a9143c, 0x79e730d4, 0x5fedb601, 0x75ba95fc, 0x77622510, 0x79fb732b, 0xa53755c6, 0x18905f76}},
		Y: FieldElement{v: Bignum256{0xce95560a, 0xddf25357, 0xba19e45c, 0x8b4ab8e4, 0xdd21f325, 0xd2e88688, 0x25885d85, 0x8571ff18}},
	},

	barrettN: [9]uint32{0xeedf9bfe, 0x012ffd85, 0xdf1a6c21, 0x43190552, 0xffffffff, 0xfffffffe, 0xffffffff, 0x00000000, 0x1},
}

// P256 returns the secp256r1 parameter record. Each call returns a fresh
// copy, so callers may not alter what other callers see.
func P256() *Curve {
	c := p256
	return &c
}

// P returns the field prime.
func (c *Curve) P() Bignum256 { return c.p }

// N returns the order of the generator.
func (c *Curve) N() Bignum256 { return c.n }

// Generator returns the base point in Montgomery form.
func (c *Curve) Generator() AffinePoint { return c.g }

// One returns 1 in Montgomery form.
func (c *Curve) One() FieldElement { return FieldElement{v: c.rModP} }
