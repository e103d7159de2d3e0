package cryptastic

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const (
	testHashHex = "403dee8cb86cfa0e01239f7ed0f1f9d1124cf2366eb811f9fd873996a0674d33"
	testSigRHex = "811a6c2bd2a547d0dd84747297fec47719e7c3f9b0024f027c2b237be99aac39"
	testSigSHex = "b428639af29c820cb41a7db0f7f668a7cb2ba4059daa55957393a694b5a1d63c"
	testSigDER  = "3046022100811a6c2bd2a547d0dd84747297fec47719e7c3f9b0024f027c2b237be99aac39022100b428639af29c820cb41a7db0f7f668a7cb2ba4059daa55957393a694b5a1d63c"
)

func TestVerifyKnownAnswer(t *testing.T) {
	c := P256()
	pub := testPublicKey()
	h := big256(t, testHashHex)
	r := big256(t, testSigRHex)
	s := big256(t, testSigSHex)

	if h[0] != 0xa0674d33 || r[7] != 0x811a6c2b || s[0] != 0xb5a1d63c {
		t.Fatal("byte order of the vector is wrong")
	}
	if !c.Verify(pub, &h, &r, &s) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifyBitFlips(t *testing.T) {
	c := P256()
	pub := testPublicKey()
	h := big256(t, testHashHex)
	r := big256(t, testSigRHex)
	s := big256(t, testSigSHex)

	for _, tc := range []struct {
		name string
		v    *Bignum256
	}{
		{"hash", &h},
		{"r", &r},
		{"s", &s},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// every eighth bit keeps the run time sane
			for bit := 0; bit < 256; bit += 8 {
				tc.v[bit/32] ^= 1 << uint(bit%32)
				if c.Verify(pub, &h, &r, &s) {
					t.Errorf("accepted with bit %d flipped", bit)
				}
				tc.v[bit/32] ^= 1 << uint(bit%32)
			}
		})
	}
}

func TestVerifyRange(t *testing.T) {
	c := P256()
	pub := testPublicKey()
	h := big256(t, testHashHex)
	r := big256(t, testSigRHex)
	s := big256(t, testSigSHex)
	n := c.N()
	var zero Bignum256
	ones := Bignum256{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}

	testCases := []struct {
		name string
		r, s *Bignum256
	}{
		{"r_zero", &zero, &s},
		{"s_zero", &r, &zero},
		{"r_is_n", &n, &s},
		{"s_is_n", &r, &n},
		{"r_max", &ones, &s},
		{"s_max", &r, &ones},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if c.Verify(pub, &h, tc.r, tc.s) {
				t.Error("out of range signature accepted")
			}
		})
	}
}

func TestVerifyCompactAndASN1(t *testing.T) {
	c := P256()
	pub := testPublicKey()
	hash, _ := hex.DecodeString(testHashHex)
	compact, _ := hex.DecodeString(testSigRHex + testSigSHex)
	der, _ := hex.DecodeString(testSigDER)

	if !c.VerifyCompact(pub, hash, compact) {
		t.Error("compact signature rejected")
	}
	if !c.VerifyASN1(pub, hash, der) {
		t.Error("DER signature rejected")
	}
	if c.VerifyCompact(pub, hash, compact[:63]) {
		t.Error("short compact signature accepted")
	}
	if c.VerifyASN1(pub, hash[:31], der) {
		t.Error("short hash accepted")
	}
	if c.VerifyASN1(pub, hash, der[:len(der)-1]) {
		t.Error("truncated DER accepted")
	}
	if c.VerifyASN1(pub, hash, append(der, 0)) {
		t.Error("DER with trailing data accepted")
	}
}

func TestParsePublicKey(t *testing.T) {
	c := P256()
	raw, _ := hex.DecodeString(testPubXHex + testPubYHex)

	for _, tc := range []struct {
		name string
		buf  []byte
	}{
		{"raw", raw},
		{"sec1", append([]byte{0x04}, raw...)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pk, err := c.ParsePublicKey(tc.buf)
			if err != nil {
				t.Fatal(err)
			}
			if pk.Point.X.Limbs() != testPubMontX || pk.Point.Y.Limbs() != testPubMontY {
				t.Error("key limbs differ from the provisioned ones")
			}
			if pk.PlusG.X.Limbs() != testPubPlusGMontX || pk.PlusG.Y.Limbs() != testPubPlusGMontY {
				t.Error("key+G limbs differ from the provisioned ones")
			}
		})
	}

	bad := append([]byte(nil), raw...)
	bad[63] ^= 1
	if _, err := c.ParsePublicKey(bad); err != ErrNotOnCurve {
		t.Errorf("off-curve key: %v", err)
	}
	if _, err := c.ParsePublicKey(append([]byte{0x02}, raw...)); err != ErrInvalidEncoding {
		t.Errorf("bad prefix: %v", err)
	}
	if _, err := c.ParsePublicKey(raw[:33]); err != ErrInvalidLength {
		t.Errorf("short key: %v", err)
	}
	wide := make([]byte, 64)
	for i := range wide {
		wide[i] = 0xff
	}
	if _, err := c.ParsePublicKey(wide); err != ErrCoordinateRange {
		t.Errorf("coordinate >= P: %v", err)
	}
}

func TestNewPublicKeyNegatedGenerator(t *testing.T) {
	c := P256()
	gx := c.FieldToInt(&c.g.X)
	gy := c.FieldToInt(&c.g.Y)
	var zero FieldElement
	negY := c.sub(&zero, &c.g.Y)
	ny := c.FieldToInt(&negY)

	if _, err := c.NewPublicKey(&gx, &gy); err != nil {
		t.Errorf("G as a key: %v", err)
	}
	if _, err := c.NewPublicKey(&gx, &ny); err != ErrNegativeGenerator {
		t.Errorf("-G as a key: %v", err)
	}
}

func TestVerifyAgainstCryptoECDSA(t *testing.T) {
	c := P256()
	for i := 0; i < 10; i++ {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		sec1, err := priv.PublicKey.ECDH()
		if err != nil {
			t.Fatal(err)
		}
		pub, err := c.ParsePublicKey(sec1.Bytes())
		if err != nil {
			t.Fatal(err)
		}

		msg := make([]byte, 48)
		if _, err = rand.Read(msg); err != nil {
			t.Fatal(err)
		}
		hash := sha256.Sum256(msg)
		der, err := ecdsa.SignASN1(rand.Reader, priv, hash[:])
		if err != nil {
			t.Fatal(err)
		}
		if !c.VerifyASN1(pub, hash[:], der) {
			t.Fatalf("signature %x rejected", der)
		}
		hash[0] ^= 0x80
		if c.VerifyASN1(pub, hash[:], der) {
			t.Fatal("signature accepted for another hash")
		}
	}
}

func TestVerifyECDSABlob(t *testing.T) {
	c := P256()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	sec1, err := priv.PublicKey.ECDH()
	if err != nil {
		t.Fatal(err)
	}
	pub, err := c.ParsePublicKey(sec1.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	payload := make([]byte, 128)
	if _, err = rand.Read(payload); err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256(payload)
	r, s, err := ecdsa.Sign(rand.Reader, priv, hash[:])
	if err != nil {
		t.Fatal(err)
	}
	blob := make([]byte, 64, 64+len(payload))
	r.FillBytes(blob[:32])
	s.FillBytes(blob[32:64])
	blob = append(blob, payload...)

	if !c.VerifyECDSABlob(pub, blob) {
		t.Fatal("valid blob rejected")
	}
	blob[100] ^= 1
	if c.VerifyECDSABlob(pub, blob) {
		t.Error("tampered blob accepted")
	}
	if c.VerifyECDSABlob(pub, blob[:63]) {
		t.Error("short blob accepted")
	}
}
