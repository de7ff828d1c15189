package rsaverify

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"

	"github.com/0xPolygon/rsa-verifier/helper/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// nativeBackend relies on math/big exponentiation and is used to cross check the library backend
type nativeBackend struct{}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) ModExp(base, exponent, modulus *big.Int) (*big.Int, uint64, error) {
	return new(big.Int).Exp(base, exponent, modulus), 1, nil
}

type failingBackend struct{}

func (failingBackend) Name() string { return "failing" }

func (failingBackend) ModExp(_, _, _ *big.Int) (*big.Int, uint64, error) {
	return nil, 7, errors.New("boom")
}

func TestVerify_HiMan(t *testing.T) {
	t.Parallel()

	key := tests.SharedRSAKey(t, 2048)
	f := tests.SignRSA(t, key, []byte("hi man"))
	backend := NewLibraryBackend()

	assert.Equal(t, []byte{0x01, 0x00, 0x01}, f.Exponent)
	assert.True(t, Verify(backend, f.Signature, f.Digest[:], f.Exponent, f.Modulus))

	wrong := sha256.Sum256([]byte("hello"))
	assert.False(t, Verify(backend, f.Signature, wrong[:], f.Exponent, f.Modulus))
}

func TestVerify_TwoMessages(t *testing.T) {
	t.Parallel()

	key := tests.SharedRSAKey(t, 2048)
	first := tests.SignRSA(t, key, []byte("hey hello"))
	second := tests.SignRSA(t, key, []byte("hey hi"))
	backend := NewLibraryBackend()

	assert.True(t, Verify(backend, first.Signature, first.Digest[:], first.Exponent, first.Modulus))
	assert.True(t, Verify(backend, second.Signature, second.Digest[:], second.Exponent, second.Modulus))

	assert.False(t, Verify(backend, second.Signature, first.Digest[:], first.Exponent, first.Modulus))
	assert.False(t, Verify(backend, first.Signature, second.Digest[:], second.Exponent, second.Modulus))
}

func TestVerify_OtherKey(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 2048), []byte("hi man"))
	other := tests.SharedRSAKey(t, 1024)

	assert.False(t, Verify(NewLibraryBackend(), f.Signature, f.Digest[:], f.Exponent, other.N.Bytes()))
}

func TestVerify_KeySizes(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{1024, 2048, 3072} {
		key := tests.SharedRSAKey(t, bits)
		f := tests.SignRSA(t, key, []byte("key size"))

		assert.True(t, Verify(NewLibraryBackend(), f.Signature, f.Digest[:], f.Exponent, f.Modulus), bits)
	}
}

func TestVerify_Boundaries(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 2048), []byte("hi man"))
	backend := NewLibraryBackend()

	t.Run("signature equals modulus", func(t *testing.T) {
		t.Parallel()

		out := check(backend, f.Modulus, f.Digest[:], f.Exponent, f.Modulus)
		assert.False(t, out.valid())
		assert.Equal(t, stageSignatureRange, out.step)
		assert.Zero(t, out.cost)
	})

	t.Run("signature above modulus", func(t *testing.T) {
		t.Parallel()

		above := new(big.Int).Add(new(big.Int).SetBytes(f.Modulus), big.NewInt(1))
		assert.False(t, Verify(backend, above.Bytes(), f.Digest[:], f.Exponent, f.Modulus))
	})

	t.Run("zero signature", func(t *testing.T) {
		t.Parallel()

		out := check(backend, []byte{0x00}, f.Digest[:], f.Exponent, f.Modulus)
		assert.Equal(t, stageMismatch, out.step)

		assert.False(t, Verify(backend, nil, f.Digest[:], f.Exponent, f.Modulus))
	})

	t.Run("empty modulus", func(t *testing.T) {
		t.Parallel()

		out := check(backend, f.Signature, f.Digest[:], f.Exponent, nil)
		assert.Equal(t, stageZeroModulus, out.step)

		assert.False(t, Verify(backend, f.Signature, f.Digest[:], f.Exponent, []byte{0x00, 0x00}))
	})

	t.Run("modulus too small", func(t *testing.T) {
		t.Parallel()

		out := check(backend, []byte{0x02}, f.Digest[:], f.Exponent, []byte{0xc5, 0x0d})
		assert.Equal(t, stageEncoding, out.step)
	})

	t.Run("short digest", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Verify(backend, f.Signature, f.Digest[:31], f.Exponent, f.Modulus))
	})

	t.Run("zero exponent", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Verify(backend, f.Signature, f.Digest[:], nil, f.Modulus))
	})

	t.Run("leading zero bytes are ignored", func(t *testing.T) {
		t.Parallel()

		pad := func(b []byte) []byte {
			return append([]byte{0x00, 0x00}, b...)
		}

		assert.True(t, Verify(backend, pad(f.Signature), f.Digest[:], pad(f.Exponent), pad(f.Modulus)))
	})

	t.Run("failing backend", func(t *testing.T) {
		t.Parallel()

		out := check(failingBackend{}, f.Signature, f.Digest[:], f.Exponent, f.Modulus)
		assert.Equal(t, stageModExp, out.step)
		assert.Equal(t, uint64(7), out.cost)
	})
}

func TestVerifyWithCost(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 2048), []byte("hi man"))

	ok, cost := VerifyWithCost(NewLibraryBackend(), f.Signature, f.Digest[:], f.Exponent, f.Modulus)
	require.True(t, ok)
	// 65537 needs 17 squarings and 2 multiplications
	assert.Equal(t, uint64(19), cost)

	wrong := sha256.Sum256([]byte("hello"))
	ok, cost = VerifyWithCost(NewLibraryBackend(), f.Signature, wrong[:], f.Exponent, f.Modulus)
	require.False(t, ok)
	assert.Equal(t, uint64(19), cost)
}

func TestVerify_BackendParity(t *testing.T) {
	t.Parallel()

	key := tests.SharedRSAKey(t, 2048)
	valid := tests.SignRSA(t, key, []byte("hey hello"))
	other := tests.SignRSA(t, key, []byte("hey hi"))

	inputs := [][4][]byte{
		{valid.Signature, valid.Digest[:], valid.Exponent, valid.Modulus},
		{valid.Signature, other.Digest[:], valid.Exponent, valid.Modulus},
		{other.Signature, other.Digest[:], other.Exponent, other.Modulus},
		{[]byte{0x01}, valid.Digest[:], valid.Exponent, valid.Modulus},
	}

	for _, in := range inputs {
		assert.Equal(t,
			Verify(nativeBackend{}, in[0], in[1], in[2], in[3]),
			Verify(NewLibraryBackend(), in[0], in[1], in[2], in[3]),
		)
	}
}

func TestVerify_TamperProperty(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 1024), []byte("tamper"))
	backend := NewLibraryBackend()

	require.True(t, Verify(backend, f.Signature, f.Digest[:], f.Exponent, f.Modulus))

	rapid.Check(t, func(tt *rapid.T) {
		inputs := [][]byte{
			append([]byte{}, f.Signature...),
			append([]byte{}, f.Digest[:]...),
			append([]byte{}, f.Exponent...),
			append([]byte{}, f.Modulus...),
		}

		field := rapid.IntRange(0, len(inputs)-1).Draw(tt, "field")
		bit := rapid.IntRange(0, len(inputs[field])*8-1).Draw(tt, "bit")

		inputs[field][bit/8] ^= 1 << (bit % 8)

		require.False(tt, Verify(backend, inputs[0], inputs[1], inputs[2], inputs[3]))
	})
}

func TestVerifyWithCost_RejectionsLookAlike(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 1024), []byte("hi man"))
	backend := NewLibraryBackend()

	// zero modulus and out of range signature stop at different steps
	ok, cost := VerifyWithCost(backend, f.Signature, f.Digest[:], f.Exponent, nil)
	assert.False(t, ok)
	assert.Zero(t, cost)

	ok, cost = VerifyWithCost(backend, f.Modulus, f.Digest[:], f.Exponent, f.Modulus)
	assert.False(t, ok)
	assert.Zero(t, cost)

	// encoding and mismatch failures both pay the full exponentiation
	_, encodingCost := VerifyWithCost(backend, f.Signature, f.Digest[:31], f.Exponent, f.Modulus)
	_, mismatchCost := VerifyWithCost(backend, f.Signature, make([]byte, 32), f.Exponent, f.Modulus)
	assert.Equal(t, mismatchCost, encodingCost)
}
