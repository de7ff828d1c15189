package bigint

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroModulus is returned when a modular operation is requested with a zero modulus
	ErrZeroModulus = errors.New("modulus is zero")
	// ErrNegativeOperand is returned when an operand is negative
	ErrNegativeOperand = errors.New("negative operand")
)

var big1 = big.NewInt(1)

// ModExp computes base ** exponent mod modulus
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	res, _, err := ModExpCounted(base, exponent, modulus)

	return res, err
}

// ModExpCounted computes base ** exponent mod modulus using left-to-right
// square-and-multiply. Along with the result it returns the number of modular
// multiplications (squarings included) that were performed.
func ModExpCounted(base, exponent, modulus *big.Int) (*big.Int, uint64, error) {
	if err := checkOperands(base, exponent, modulus); err != nil {
		return nil, 0, err
	}

	if modulus.Cmp(big1) == 0 {
		return new(big.Int), 0, nil
	}

	b := new(big.Int).Mod(base, modulus)
	acc := new(big.Int).Set(big1)

	var (
		mulMods uint64
		tmp     = new(big.Int)
	)

	for i := exponent.BitLen() - 1; i >= 0; i-- {
		// acc = acc ** 2 mod n
		tmp.Mul(acc, acc)
		acc.Mod(tmp, modulus)
		mulMods++

		if exponent.Bit(i) == 1 {
			// acc = acc * base mod n
			tmp.Mul(acc, b)
			acc.Mod(tmp, modulus)
			mulMods++
		}
	}

	return acc, mulMods, nil
}

func checkOperands(base, exponent, modulus *big.Int) error {
	if modulus.Sign() == 0 {
		return ErrZeroModulus
	}

	if base.Sign() < 0 || exponent.Sign() < 0 || modulus.Sign() < 0 {
		return ErrNegativeOperand
	}

	return nil
}
