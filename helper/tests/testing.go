package tests

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"math/big"
	"sync"
	"testing"

	"github.com/0xPolygon/rsa-verifier/types"
	"github.com/stretchr/testify/require"
)

var (
	rsaKeys   = map[int]*rsa.PrivateKey{}
	rsaKeysMu sync.Mutex
)

// RSAFixture holds the raw verification inputs for a single signed message
type RSAFixture struct {
	Signature []byte
	Digest    types.Hash
	Exponent  []byte
	Modulus   []byte
}

// GenerateRSAKey returns a fresh RSA key with public exponent 65537
func GenerateRSAKey(t *testing.T, bits int) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	return key
}

// SharedRSAKey returns a process wide RSA key of the given size, generating it on first use
func SharedRSAKey(t *testing.T, bits int) *rsa.PrivateKey {
	t.Helper()

	rsaKeysMu.Lock()
	defer rsaKeysMu.Unlock()

	if key, ok := rsaKeys[bits]; ok {
		return key
	}

	key := GenerateRSAKey(t, bits)
	rsaKeys[bits] = key

	return key
}

// SignRSA signs the SHA-256 digest of message with PKCS#1 v1.5 and returns the verification inputs
func SignRSA(t *testing.T, key *rsa.PrivateKey, message []byte) *RSAFixture {
	t.Helper()

	digest := sha256.Sum256(message)

	signature, err := rsa.SignPKCS1v15(nil, key, crypto.SHA256, digest[:])
	require.NoError(t, err)

	return &RSAFixture{
		Signature: signature,
		Digest:    types.Hash(digest),
		Exponent:  big.NewInt(int64(key.PublicKey.E)).Bytes(),
		Modulus:   key.PublicKey.N.Bytes(),
	}
}
