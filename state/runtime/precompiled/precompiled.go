package precompiled

import (
	"encoding/binary"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/state/runtime"
	"github.com/0xPolygon/rsa-verifier/types"
)

var _ runtime.Runtime = &Precompiled{}

var (
	abiBoolFalse, abiBoolTrue []byte
)

func init() {
	abiBoolFalse = make([]byte, 32)
	abiBoolTrue = make([]byte, 32)
	abiBoolTrue[31] = 1
}

type contract interface {
	gas(input []byte, config *chain.ForksInTime) uint64
	run(input []byte) ([]byte, error)
}

var (
	// Sha256Address is the address of the sha256 precompile
	Sha256Address = types.StringToAddress("2")
	// ModExpAddress is the address of the EIP-198 modexp precompile
	ModExpAddress = types.StringToAddress("5")
	// RSAVerifyAddress is the address of the PKCS#1 v1.5 RSA verification precompile
	RSAVerifyAddress = types.StringToAddress("100")
)

// Precompiled is the runtime for the precompiled contracts.
// It holds no per call state and is safe for concurrent use.
type Precompiled struct {
	contracts map[types.Address]contract
}

// NewPrecompiled creates a new runtime for the precompiled contracts
func NewPrecompiled() *Precompiled {
	p := &Precompiled{}
	p.setupContracts()

	return p
}

func (p *Precompiled) setupContracts() {
	p.register(Sha256Address, &sha256h{})

	// Byzantium fork
	p.register(ModExpAddress, &modExp{})
	p.register(RSAVerifyAddress, &rsaVerify{})
}

func (p *Precompiled) register(addr types.Address, b contract) {
	if len(p.contracts) == 0 {
		p.contracts = map[types.Address]contract{}
	}

	p.contracts[addr] = b
}

// CanRun implements the runtime interface
func (p *Precompiled) CanRun(c *runtime.Contract, config *chain.ForksInTime) bool {
	if _, ok := p.contracts[c.CodeAddress]; !ok {
		return false
	}

	// byzantium precompiles
	switch c.CodeAddress {
	case ModExpAddress, RSAVerifyAddress:
		return config.Byzantium
	}

	return true
}

// Name implements the runtime interface
func (p *Precompiled) Name() string {
	return "precompiled"
}

// Run runs an execution
func (p *Precompiled) Run(c *runtime.Contract, config *chain.ForksInTime) *runtime.ExecutionResult {
	contract, ok := p.contracts[c.CodeAddress]
	if !ok {
		return &runtime.ExecutionResult{Err: runtime.ErrUnknownContract}
	}

	if !p.CanRun(c, config) {
		return &runtime.ExecutionResult{Err: runtime.ErrContractNotActivated}
	}

	gasLimit := c.Gas
	gasCost := contract.gas(c.Input, config)

	// In the case of not enough gas for precompiled execution we return ErrOutOfGas
	if c.Gas < gasCost {
		return &runtime.ExecutionResult{
			GasLeft: 0,
			GasUsed: gasLimit,
			Err:     runtime.ErrOutOfGas,
		}
	}

	c.Gas = c.Gas - gasCost
	returnValue, err := contract.run(c.Input)

	result := &runtime.ExecutionResult{
		ReturnValue: returnValue,
		GasLeft:     c.Gas,
		Err:         err,
	}

	if result.Failed() {
		result.GasLeft = 0
		result.ReturnValue = nil
	}

	result.UpdateGasUsed(gasLimit)

	return result
}

func leftPad(buf []byte, n int) []byte {
	l := len(buf)
	if l > n {
		return buf
	}

	tmp := make([]byte, n)
	copy(tmp[n-l:], buf)

	return tmp
}

// get returns the first size bytes of input, right padded with zeros, and the remainder
func get(input []byte, size int) ([]byte, []byte) {
	buf := make([]byte, size)
	n := size

	if len(input) < n {
		n = len(input)
	}

	copy(buf, input[:n])

	return buf, input[n:]
}

func getUint64(input []byte) (uint64, []byte) {
	var buf []byte

	buf, input = get(input, 32)

	// lengths that do not fit into 64 bits are clamped
	for _, b := range buf[:24] {
		if b != 0 {
			return ^uint64(0), input
		}
	}

	return binary.BigEndian.Uint64(buf[24:32]), input
}
