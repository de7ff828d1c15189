package rsaverify

import (
	"math/big"

	"github.com/0xPolygon/rsa-verifier/crypto/bigint"
)

// LibraryBackendName is the name of the square-and-multiply backend
const LibraryBackendName = "library"

var _ Backend = (*LibraryBackend)(nil)

// LibraryBackend runs the hand-rolled square-and-multiply exponentiation.
// Its cost is the number of modular multiplications performed.
type LibraryBackend struct{}

// NewLibraryBackend creates a new square-and-multiply backend
func NewLibraryBackend() *LibraryBackend {
	return &LibraryBackend{}
}

// Name implements the Backend interface
func (l *LibraryBackend) Name() string {
	return LibraryBackendName
}

// ModExp implements the Backend interface
func (l *LibraryBackend) ModExp(base, exponent, modulus *big.Int) (*big.Int, uint64, error) {
	return bigint.ModExpCounted(base, exponent, modulus)
}
