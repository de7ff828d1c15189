package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrWidthOverflow is returned when a number does not fit into the requested byte width
var ErrWidthOverflow = errors.New("value does not fit into width")

// FromBytes interprets b as a big-endian unsigned integer.
// An empty slice maps to zero.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ToBytes returns the minimal big-endian representation of n (zero is the empty slice)
func ToBytes(n *big.Int) []byte {
	return n.Bytes()
}

// ToFixedBytes returns the big-endian representation of n left-padded with
// zero bytes to exactly width bytes
func ToFixedBytes(n *big.Int, width int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeOperand
	}

	if width < 0 || ByteLen(n) > width {
		return nil, fmt.Errorf("%w: %d bytes needed, %d available", ErrWidthOverflow, ByteLen(n), width)
	}

	buf := make([]byte, width)

	return n.FillBytes(buf), nil
}

// ByteLen returns the number of bytes needed to hold n
func ByteLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}
