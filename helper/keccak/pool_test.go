package keccak

import (
	"testing"

	"github.com/0xPolygon/rsa-verifier/helper/hex"
	"github.com/stretchr/testify/assert"
)

func TestKeccak256(t *testing.T) {
	t.Parallel()

	// keccak256("") and the well known transfer(address,uint256) selector
	assert.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToHex(Keccak256(nil, nil)),
	)
	assert.Equal(t,
		"0xa9059cbb",
		hex.EncodeToHex(Keccak256(nil, []byte("transfer(address,uint256)"))[:4]),
	)

	prefix := []byte{0x01}
	out := Keccak256(prefix, []byte("abc"))
	assert.Len(t, out, 33)
	assert.Equal(t, byte(0x01), out[0])
}
