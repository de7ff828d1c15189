package precompiled

import (
	"math"
	"math/big"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/state/runtime"
)

// maxOperandLength bounds each modexp operand to keep allocations sane when
// the caller supplies an unrealistic gas limit
const maxOperandLength = 1 << 16

type modExp struct {
}

var (
	big1      = big.NewInt(1)
	big3      = big.NewInt(3)
	big4      = big.NewInt(4)
	big7      = big.NewInt(7)
	big8      = big.NewInt(8)
	big16     = big.NewInt(16)
	big32     = big.NewInt(32)
	big64     = big.NewInt(64)
	big96     = big.NewInt(96)
	big480    = big.NewInt(480)
	big1024   = big.NewInt(1024)
	big3072   = big.NewInt(3072)
	big199680 = big.NewInt(199680)
)

var (
	divisor = big.NewInt(20)
)

func adjustedExponentLength(expLen, head *big.Int) *big.Int {
	bitlength := uint64(0)
	if head.Sign() != 0 {
		bitlength = uint64(head.BitLen() - 1)
	}

	if expLen.Cmp(big32) <= 0 {
		// return the index of the highest bit
		return new(big.Int).SetUint64(bitlength)
	}

	head.Sub(expLen, big32)
	head.Mul(head, big8)
	head.Add(head, new(big.Int).SetUint64(bitlength))

	return head
}

func subMul(x, a, b, c *big.Int) *big.Int {
	// x ** 2 // a + b * x - c
	tmp := new(big.Int)

	// x ** 2 / a
	tmp.Mul(x, x)
	tmp.Div(tmp, a)

	// b * x - c
	x.Mul(x, b)
	x.Sub(x, c)

	return x.Add(x, tmp)
}

// multComplexity is the EIP-198 multiplication complexity
func multComplexity(x *big.Int) *big.Int {
	if x.Cmp(big64) <= 0 {
		// x ** x
		x.Mul(x, x)
	} else if x.Cmp(big1024) <= 0 {
		// x ** 2 // 4 + 96 * x - 3072
		x = subMul(x, big4, big96, big3072)
	} else {
		// x ** 2 // 16 + 480 * x - 199680
		x = subMul(x, big16, big480, big199680)
	}

	return x
}

// multComplexityEIP2565 is the EIP-2565 multiplication complexity: ceil(x / 8) ** 2
func multComplexityEIP2565(x *big.Int) *big.Int {
	x.Add(x, big7)
	x.Div(x, big8)

	return x.Mul(x, x)
}

// modExpGas prices a modexp call with the given operand lengths. expHead holds
// the first (at most 32) bytes of the exponent.
func modExpGas(baseLen, expLen, modLen, expHead *big.Int, table chain.GasTable) uint64 {
	// a := mult_complexity(max(length_of_MODULUS, length_of_BASE)
	gasCost := new(big.Int)
	if modLen.Cmp(baseLen) >= 0 {
		gasCost.Set(modLen)
	} else {
		gasCost.Set(baseLen)
	}

	if table.ModExpEIP2565 {
		gasCost = multComplexityEIP2565(gasCost)
	} else {
		gasCost = multComplexity(gasCost)
	}

	// a = a * max(ADJUSTED_EXPONENT_LENGTH, 1)
	adjExpLen := adjustedExponentLength(expLen, expHead)
	if adjExpLen.Cmp(big1) >= 0 {
		gasCost.Mul(gasCost, adjExpLen)
	} else {
		gasCost.Mul(gasCost, big1)
	}

	// a = a / div
	if table.ModExpEIP2565 {
		gasCost.Div(gasCost, big3)
	} else {
		gasCost.Div(gasCost, divisor)
	}

	// cap to the max uint64
	if !gasCost.IsUint64() {
		return math.MaxUint64
	}

	if gas := gasCost.Uint64(); gas > table.ModExpMinGas {
		return gas
	}

	return table.ModExpMinGas
}

func (m *modExp) gas(input []byte, config *chain.ForksInTime) uint64 {
	var val, tail []byte

	val, tail = get(input, 32)
	baseLen := new(big.Int).SetBytes(val)

	val, tail = get(tail, 32)
	expLen := new(big.Int).SetBytes(val)

	val, _ = get(tail, 32)
	modLen := new(big.Int).SetBytes(val)

	if len(input) > 96 {
		input = input[96:]
	} else {
		input = input[:0]
	}

	expHeadLen := uint64(32)
	if expLen.Cmp(big32) < 0 {
		expHeadLen = expLen.Uint64()
	}

	expHead := new(big.Int)

	if baseLen.IsUint64() {
		if bLen := baseLen.Uint64(); bLen < uint64(len(input)) {
			val, _ = get(input[bLen:], int(expHeadLen))
			expHead.SetBytes(val)
		}
	}

	return modExpGas(baseLen, expLen, modLen, expHead, config.GasTable())
}

func (m *modExp) run(input []byte) ([]byte, error) {
	// get the lengths
	var baseLen, exponentLen, modulusLen uint64

	baseLen, input = getUint64(input)
	exponentLen, input = getUint64(input)
	modulusLen, input = getUint64(input)

	if baseLen == 0 && modulusLen == 0 {
		return nil, nil
	}

	if baseLen > maxOperandLength || exponentLen > maxOperandLength || modulusLen > maxOperandLength {
		return nil, runtime.ErrInvalidInputData
	}

	// get the values
	var val []byte

	val, input = get(input, int(baseLen))
	base := new(big.Int).SetBytes(val)

	val, input = get(input, int(exponentLen))
	exponent := new(big.Int).SetBytes(val)

	val, _ = get(input, int(modulusLen))
	modulus := new(big.Int).SetBytes(val)

	var res []byte
	if modulus.Sign() != 0 {
		res = base.Exp(base, exponent, modulus).Bytes()
	}

	return leftPad(res, int(modulusLen)), nil
}

// encodeModExpInput builds the EIP-198 call data for base ** exponent mod modulus
// with the base padded to the modulus length
func encodeModExpInput(base, exponent, modulus []byte) []byte {
	baseLen := len(base)
	if len(modulus) > baseLen {
		baseLen = len(modulus)
	}

	input := make([]byte, 0, 96+baseLen+len(exponent)+len(modulus))
	input = append(input, leftPad(new(big.Int).SetUint64(uint64(baseLen)).Bytes(), 32)...)
	input = append(input, leftPad(new(big.Int).SetUint64(uint64(len(exponent))).Bytes(), 32)...)
	input = append(input, leftPad(new(big.Int).SetUint64(uint64(len(modulus))).Bytes(), 32)...)
	input = append(input, leftPad(base, baseLen)...)
	input = append(input, exponent...)
	input = append(input, modulus...)

	return input
}
