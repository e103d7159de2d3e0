package cryptastic

// AffinePoint is a curve point (x, y) with both coordinates in Montgomery
// form. It can not represent the point at infinity.
type AffinePoint struct {
	X, Y FieldElement
}

// ProjectivePoint is a curve point in homogeneous projective coordinates,
// affine (X/Z, Y/Z), all in Montgomery form. Z == 0 encodes the point at
// infinity.
type ProjectivePoint struct {
	X, Y, Z FieldElement
}

// IsInfinity reports whether p is the point at infinity.
func (p *ProjectivePoint) IsInfinity() bool {
	return p.Z.IsZero()
}

// Projective lifts a with Z = 1.
func (c *Curve) Projective(a *AffinePoint) ProjectivePoint {
	return ProjectivePoint{X: a.X, Y: a.Y, Z: c.One()}
}

// Double returns 2p. Formulas from
// https://www.nayuki.io/page/elliptic-curve-point-addition-in-projective-coordinates
func (c *Curve) Double(p *ProjectivePoint) ProjectivePoint {
	// T = 3X² + aZ²
	x2 := c.sqr(&p.X)
	tw := c.mulWide(&c.threeR, &x2)
	z2 := c.sqr(&p.Z)
	az2 := c.mul(&c.aR, &z2)
	addMod(&tw, &az2.v, &c.p)
	t := FieldElement{v: tw.low()}

	// U = 2YZ
	yz := c.mul(&p.Y, &p.Z)
	u := c.mul(&c.twoR, &yz)

	// V = 2UXY
	twoU := c.mul(&c.twoR, &u)
	xy := c.mul(&p.X, &p.Y)
	vw := c.mulWide(&twoU, &xy)
	v := FieldElement{v: vw.low()}

	// W = T² - 2V
	ww := c.mulWide(&t, &t)
	twoV := c.mul(&c.twoR, &v)
	subMod(&ww, &twoV.v, &c.p)
	w := FieldElement{v: ww.low()}

	// X' = UW, Z' = U³
	xOut := c.mul(&u, &w)
	u2 := c.sqr(&u)
	zOut := c.mul(&u, &u2)

	// Y' = T(V - W) - 2(UY)²
	uy := c.mul(&u, &p.Y)
	subMod(&vw, &w.v, &c.p)
	vMinusW := FieldElement{v: vw.low()}
	yw := c.mulWide(&t, &vMinusW)
	uy2 := c.sqr(&uy)
	twoUY2 := c.mul(&c.twoR, &uy2)
	subMod(&yw, &twoUY2.v, &c.p)

	return ProjectivePoint{X: xOut, Y: FieldElement{v: yw.low()}, Z: zOut}
}

// AddAffine returns p + q for a projective p and an affine q.
func (c *Curve) AddAffine(p *ProjectivePoint, q *AffinePoint) ProjectivePoint {
	// only p can be the point at infinity
	if p.IsInfinity() {
		return c.Projective(q)
	}

	// Z1 = 1, so T0 = Y0 and U0 = X0
	// T = Y0 - Y1·Z0
	t1 := c.mul(&q.Y, &p.Z)
	t := c.sub(&p.Y, &t1)

	// U = X0 - X1·Z0
	u1 := c.mul(&q.X, &p.Z)
	u := c.sub(&p.X, &u1)

	if t.IsZero() && u.IsZero() {
		// same point
		return c.Double(p)
	}
	if u.IsZero() {
		// same x, different y: q = -p
		return ProjectivePoint{}
	}

	u2 := c.sqr(&u)
	u3 := c.mul(&u, &u2)

	// W = T²·Z0 - U²(U0 + U1)
	t2 := c.sqr(&t)
	ww := c.mulWide(&t2, &p.Z)
	u0PlusU1 := c.add(&p.X, &u1)
	w2 := c.mul(&u2, &u0PlusU1)
	subMod(&ww, &w2.v, &c.p)
	w := FieldElement{v: ww.low()}

	// X' = UW, Z' = U³·Z0
	xOut := c.mul(&u, &w)
	zOut := c.mul(&u3, &p.Z)

	// Y' = T(U0·U² - W) - T0·U³
	yw := c.mulWide(&p.X, &u2)
	subMod(&yw, &w.v, &c.p)
	u0u2MinusW := FieldElement{v: yw.low()}
	y1 := c.mulWide(&u0u2MinusW, &t)
	y2 := c.mul(&p.Y, &u3)
	subMod(&y1, &y2.v, &c.p)

	return ProjectivePoint{X: xOut, Y: FieldElement{v: y1.low()}, Z: zOut}
}

// ShamirMult returns k1·pub + k2·G, scanning both scalars from the most
// significant bit down and adding pub, G or the precomputed pub+G as the
// bit pair dictates.
func (c *Curve) ShamirMult(k1, k2 *Bignum256, pub, pubPlusG *AffinePoint) ProjectivePoint {
	var acc ProjectivePoint
	for word := 7; word >= 0; word-- {
		for bit := 31; bit >= 0; bit-- {
			b1 := k1[word]>>uint(bit)&1 != 0
			b2 := k2[word]>>uint(bit)&1 != 0

			switch {
			case b1 && b2:
				acc = c.AddAffine(&acc, pubPlusG)
			case b1:
				acc = c.AddAffine(&acc, pub)
			case b2:
				acc = c.AddAffine(&acc, &c.g)
			}

			if word != 0 || bit != 0 {
				acc = c.Double(&acc)
			}
		}
	}
	return acc
}

// ToAffine normalises p to affine coordinates. It returns false for the
// point at infinity.
func (c *Curve) ToAffine(p *ProjectivePoint) (AffinePoint, bool) {
	if p.IsInfinity() {
		return AffinePoint{}, false
	}
	zInv := c.inv(&p.Z)
	return AffinePoint{X: c.mul(&p.X, &zInv), Y: c.mul(&p.Y, &zInv)}, true
}

// IsOnCurve reports whether a satisfies y² = x³ + ax + b.
func (c *Curve) IsOnCurve(a *AffinePoint) bool {
	y2 := c.sqr(&a.Y)
	x2 := c.sqr(&a.X)
	x3 := c.mul(&x2, &a.X)
	ax := c.mul(&c.aR, &a.X)
	rhs := c.add(&x3, &ax)
	rhs = c.add(&rhs, &c.bR)
	return y2.Equal(&rhs)
}
