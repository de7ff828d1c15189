package precompiled

import (
	"fmt"
	"math/big"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/crypto/rsaverify"
	"github.com/0xPolygon/rsa-verifier/state/runtime"
	"github.com/0xPolygon/rsa-verifier/types"
)

// ModExpBackendName is the name of the precompile backed exponentiation
const ModExpBackendName = "precompile"

var _ rsaverify.Backend = (*ModExpBackend)(nil)

// ModExpBackend exponentiates through the modexp precompile.
// Its cost is the gas charged by the precompile under the configured forks.
type ModExpBackend struct {
	precompiled *Precompiled
	forks       chain.ForksInTime
	gasLimit    uint64
}

// NewModExpBackend creates a backend calling the modexp precompile with the given gas limit
func NewModExpBackend(p *Precompiled, forks chain.ForksInTime, gasLimit uint64) *ModExpBackend {
	return &ModExpBackend{
		precompiled: p,
		forks:       forks,
		gasLimit:    gasLimit,
	}
}

// Name implements the rsaverify.Backend interface
func (m *ModExpBackend) Name() string {
	return ModExpBackendName
}

// ModExp implements the rsaverify.Backend interface
func (m *ModExpBackend) ModExp(base, exponent, modulus *big.Int) (*big.Int, uint64, error) {
	if modulus.Sign() == 0 {
		return nil, 0, fmt.Errorf("modexp: %w", runtime.ErrInvalidInputData)
	}

	input := encodeModExpInput(base.Bytes(), exponent.Bytes(), modulus.Bytes())
	contract := runtime.NewContractCall(types.ZeroAddress, ModExpAddress, m.gasLimit, input)

	result := m.precompiled.Run(contract, &m.forks)
	if result.Failed() {
		return nil, result.GasUsed, fmt.Errorf("modexp: %w", result.Err)
	}

	return new(big.Int).SetBytes(result.ReturnValue), result.GasUsed, nil
}
