package runtime

import (
	"errors"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/types"
)

// ExecutionResult includes all output after executing a precompiled contract
// no matter the execution itself is successful or not.
type ExecutionResult struct {
	ReturnValue []byte // Returned data from the runtime
	GasLeft     uint64 // Total gas left as result of execution
	GasUsed     uint64 // Total gas used as result of execution
	Err         error  // Any error encountered during the execution, listed below
}

func (r *ExecutionResult) Succeeded() bool { return r.Err == nil }
func (r *ExecutionResult) Failed() bool    { return r.Err != nil }

// UpdateGasUsed sets the gas used from the supplied gas limit
func (r *ExecutionResult) UpdateGasUsed(gasLimit uint64) {
	r.GasUsed = gasLimit - r.GasLeft
}

var (
	ErrOutOfGas             = errors.New("out of gas")
	ErrInvalidInputData     = errors.New("invalid input data")
	ErrUnknownContract      = errors.New("unknown precompiled contract")
	ErrContractNotActivated = errors.New("precompiled contract not activated")
)

// Runtime can process contracts
type Runtime interface {
	Run(c *Contract, config *chain.ForksInTime) *ExecutionResult
	CanRun(c *Contract, config *chain.ForksInTime) bool
	Name() string
}

// Contract is the instance being called
type Contract struct {
	CodeAddress types.Address
	Caller      types.Address
	Input       []byte
	Gas         uint64
}

func NewContractCall(
	from types.Address,
	to types.Address,
	gas uint64,
	input []byte,
) *Contract {
	return &Contract{
		Caller:      from,
		CodeAddress: to,
		Gas:         gas,
		Input:       input,
	}
}
