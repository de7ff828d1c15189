package rsaverify

import (
	"testing"

	go_fuzz_utils "github.com/trailofbits/go-fuzz-utils"
)

func FuzzVerify(f *testing.F) {
	seed := []byte{
		0x01, 0x00, 0x01, 0xc5, 0x0d, 0x02, 0x03, 0x04,
		0xff, 0xff, 0x00, 0x01, 0x30, 0x31, 0x30, 0x0d,
	}

	f.Add(seed)

	backend := NewLibraryBackend()

	f.Fuzz(func(t *testing.T, input []byte) {
		tp, err := go_fuzz_utils.NewTypeProvider(input)
		if err != nil {
			return
		}

		err = tp.SetParamsSliceBounds(0, 512)
		if err != nil {
			return
		}

		signature, err := tp.GetBytes()
		if err != nil {
			return
		}

		digest, err := tp.GetBytes()
		if err != nil {
			return
		}

		exponent, err := tp.GetNBytes(4)
		if err != nil {
			return
		}

		modulus, err := tp.GetBytes()
		if err != nil {
			return
		}

		out := check(backend, signature, digest, exponent, modulus)

		if out.step == stageZeroModulus || out.step == stageSignatureRange {
			if out.cost != 0 {
				t.Fatalf("cost %d charged for input rejected before exponentiation", out.cost)
			}
		}

		if out.valid() != Verify(backend, signature, digest, exponent, modulus) {
			t.Fatalf("non deterministic verification")
		}
	})
}
