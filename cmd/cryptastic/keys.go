package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"cryptastic.mleku.dev"
)

// rsaKeyFromHex parses a big-endian modulus of at most 2048 bits and derives
// R mod n and R² mod n for it.
func rsaKeyFromHex(modulus string, e uint32) (*cryptastic.RSAPublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(modulus, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "modulus is not hex")
	}
	if len(raw) > 256 {
		return nil, errors.Errorf("modulus is %d bytes, at most 256 allowed", len(raw))
	}
	nBig := new(big.Int).SetBytes(raw)
	if nBig.Sign() == 0 {
		return nil, errors.New("modulus is zero")
	}

	r := new(big.Int).Lsh(big.NewInt(1), 2048)
	rr := new(big.Int).Mul(r, r)
	r.Mod(r, nBig)
	rr.Mod(rr, nBig)

	var n, rb, rrb cryptastic.Bignum2048
	setBig2048(&n, nBig)
	setBig2048(&rb, r)
	setBig2048(&rrb, rr)

	k, err := cryptastic.NewRSAPublicKey(&n, &rb, &rrb, e)
	if err != nil {
		return nil, errors.Wrap(err, "provisioning constants rejected")
	}
	return k, nil
}

func setBig2048(x *cryptastic.Bignum2048, v *big.Int) {
	var b [256]byte
	v.FillBytes(b[:])
	_ = x.SetBytes(b[:])
}

func ecdsaKeyFromHex(c *cryptastic.Curve, pubkey string) (*cryptastic.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(pubkey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "public key is not hex")
	}
	pk, err := c.ParsePublicKey(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid public key")
	}
	return pk, nil
}

// writeLimbs prints x as a Go array literal, least significant limb first,
// eight limbs to a line.
func writeLimbs(w io.Writer, name string, x []uint32) {
	fmt.Fprintf(w, "%s = [%d]uint32{\n", name, len(x))
	for i := 0; i < len(x); i += 8 {
		end := i + 8
		if end > len(x) {
			end = len(x)
		}
		parts := make([]string, 0, 8)
		for _, l := range x[i:end] {
			parts = append(parts, fmt.Sprintf("0x%08x", l))
		}
		fmt.Fprintf(w, "\t%s,\n", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w, "}")
}
