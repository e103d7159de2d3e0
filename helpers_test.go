package cryptastic

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"
)

const (
	testModulusHex = "d2fc5273a2f9262b84863bf6e5b8fdd9964e61902204cd4646a16cacca2d46cb9a9ae44eb1c387b6395fee7ea32cf0518ff4bd02e0b52ee9a368fcc6b8111d2baa1ad23bfc7410469701f53e795d459901262d17290c43a484faaef4cfea8484655231ecd9bd5065c35839ef0b8dea96e51bf71bdcb821e857c3b561f0ea71d957ac27554e1abc59758972414c36c21b6a402e4e91b37aa9f608ca529f60173d8213f7fa97ad73faab488831757dc4b48f7489582050589fe265a540526a7b3bb2fa065c0654f4b7459bea90544bae4080da5f731e79b4d018426fdce7f159821ca1d21de3abf69b738dd4817f8e60dee446e48c8a986adbfc4dbfe1a3cec7a5"
	testRModNHex   = "2d03ad8c5d06d9d47b79c4091a47022669b19e6fddfb32b9b95e935335d2b93465651bb14e3c7849c6a011815cd30fae700b42fd1f4ad1165c97033947eee2d455e52dc4038befb968fe0ac186a2ba66fed9d2e8d6f3bc5b7b05510b30157b7b9aadce132642af9a3ca7c610f47215691ae408e42347de17a83c4a9e0f158e26a853d8aab1e543a68a768dbeb3c93de495bfd1b16e4c855609f735ad609fe8c27dec080568528c0554b777ce8a823b4b708b76a7dfafa7601d9a5abfad9584c44d05f9a3f9ab0b48ba64156fabb451bf7f25a08ce1864b2fe7bd9023180ea67de35e2de21c5409648c722b7e80719f211bb91b737567952403b2401e5c31385b"
	testRRModNHex  = "a6a8b5f9fc683183660732ec7fad313874d59bd38cc3374a924f6690de3a3b5b8f8a7a642c099f9133a45313f4a30ae31fd6b74c1e5142af1feadbeea948a5b77ffc2af37c9bfd186f00c434f489b5c908850474c0e568098ddef55dd0dc4f5908eb029e10f5315cae0ed8a3406dc80ae94068466f10a46c9a741f795d3feb16010023d984de714b0943a7756f052d385c36b89e6e6927c5cce5c6ff5aa1335a89b543e702a9b47a00213bb757469a06aeb9d46adadf900ad209bb8a813c6fffb8e55d107857c56278d195b1dabd2ea86d72be73f01e2f77261925c3ab87c57be93885d285400f34d83910ab687a0524cc9af25b2537f2f4c381e66e761158e0"
	testMessageHex = "4550c1867d0ec1b876e961744bfad3d3529e665d5dd8921eb9b43d67f489d402ca39d95aa9595c14d2aa0545df440b1c1e0799d9392c5bee225ae8f3f6e544557218fcca6a0c1bd1789b81241328436d567d76e0e2d3c1a2e0785272a26727efcca90453099d36b9cde87ef5b8c1d522e35e8e56974e5084dd42967c8c0d54ffb87ae6c79c7501b81503578c796d0579d1c260678f4681228c158fd4e64bf422cab8b25a87c3d76f394c226aa63332ddba1884f7e05ffbf4de3b613eca6325bd060d24c9023315b469bdd42f8abf6a76278fb6ce00ee970f324c666615747cd1e94e1121f90a2d3f61303967855fda2d06901735a0f1f2cc0aa5a665c6a6909b"

	// secp256r1 public key used by the known-answer vectors
	testPubXHex = "259ba341093c31b50bc9d475fcfc994ab9c2f4ef0449a78f3330db19e7c8b1ce"
	testPubYHex = "ebfc692f4871254bd4a3967717c4461f5d7e0b28a4ae48120a456a02bf6ddacf"
)

// Montgomery-form limbs of the test key and of key+G
var (
	testPubMontX      = Bignum256{0x4f33f883, 0xffdc3ff2, 0x836af311, 0x38b3c0c0, 0xe34e8a8d, 0x919b1318, 0x57bc232f, 0x91c89152}
	testPubMontY      = Bignum256{0x375c37c9, 0x8e1e4703, 0xf91b2e47, 0x09788b02, 0x724d2c63, 0x23f98d7a, 0xbc3c93e6, 0x94cee68f}
	testPubPlusGMontX = Bignum256{0xffa047e9, 0x8a97f91b, 0x9904be31, 0x3cc60dfb, 0x036b51ff, 0x94b25916, 0xf796d136, 0x19e17ade}
	testPubPlusGMontY = Bignum256{0x086d4036, 0x89cdf37b, 0x66f59ea6, 0x8eb771b3, 0x008da49c, 0x8a63633a, 0xc8705153, 0x7487e759}
)

func big2048(t *testing.T, s string) (x Bignum2048) {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if err = x.SetBytes(b); err != nil {
		t.Fatal(err)
	}
	return
}

func big256(t *testing.T, s string) (x Bignum256) {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if err = x.SetBytes(b); err != nil {
		t.Fatal(err)
	}
	return
}

func toBig(x []uint32) *big.Int {
	v := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		v.Lsh(v, 32)
		v.Or(v, big.NewInt(int64(x[i])))
	}
	return v
}

func fromBig256(v *big.Int) (x Bignum256) {
	var buf [32]byte
	v.FillBytes(buf[:])
	_ = x.SetBytes(buf[:])
	return
}

func fromBig2048(v *big.Int) (x Bignum2048) {
	var buf [256]byte
	v.FillBytes(buf[:])
	_ = x.SetBytes(buf[:])
	return
}

// randBelow returns a uniform value in [0, m).
func randBelow(t *testing.T, m *big.Int) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, m)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func testPublicKey() *PublicKey {
	return PublicKeyFromMontgomery(testPubMontX, testPubMontY, testPubPlusGMontX, testPubPlusGMontY)
}
