package precompiled

import (
	"crypto/sha256"

	"github.com/0xPolygon/rsa-verifier/chain"
)

type sha256h struct {
}

func (s *sha256h) gas(input []byte, config *chain.ForksInTime) uint64 {
	table := config.GasTable()

	return baseGasCalc(input, table.Sha256Base, table.Sha256PerWord)
}

func (s *sha256h) run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)

	return h[:], nil
}

func baseGasCalc(input []byte, base, word uint64) uint64 {
	return base + uint64(len(input)+31)/32*word
}
