package precompiled

import (
	"bytes"
	"math/big"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/crypto/rsaverify"
	"github.com/0xPolygon/rsa-verifier/helper/keccak"
	"github.com/0xPolygon/rsa-verifier/state/runtime"
	"github.com/0xPolygon/rsa-verifier/types"
	"github.com/umbracle/ethgo/abi"
)

const rsaVerifySignature = "verifyRSA(bytes,bytes32,bytes,bytes)"

var (
	rsaVerifyInputsABIType = abi.MustNewType(
		"tuple(bytes signature, bytes32 digest, bytes exponent, bytes modulus)")

	// RSAVerifySelector is the 4 byte selector expected in front of the rsaVerify call data
	RSAVerifySelector = keccak.Keccak256(nil, []byte(rsaVerifySignature))[:4]
)

type rsaVerifyInputs struct {
	signature []byte
	digest    [types.HashLength]byte
	exponent  []byte
	modulus   []byte
}

// EncodeRSAVerifyInput builds the call data of the RSA verification precompile
func EncodeRSAVerifyInput(signature []byte, digest types.Hash, exponent, modulus []byte) ([]byte, error) {
	encoded, err := rsaVerifyInputsABIType.Encode(map[string]interface{}{
		"signature": signature,
		"digest":    [types.HashLength]byte(digest),
		"exponent":  exponent,
		"modulus":   modulus,
	})
	if err != nil {
		return nil, err
	}

	return append(append([]byte{}, RSAVerifySelector...), encoded...), nil
}

func decodeRSAVerifyInput(input []byte) (*rsaVerifyInputs, error) {
	if len(input) < len(RSAVerifySelector) || !bytes.Equal(input[:len(RSAVerifySelector)], RSAVerifySelector) {
		return nil, runtime.ErrInvalidInputData
	}

	rawData, err := abi.Decode(rsaVerifyInputsABIType, input[len(RSAVerifySelector):])
	if err != nil {
		return nil, runtime.ErrInvalidInputData
	}

	data, ok := rawData.(map[string]interface{})
	if !ok {
		return nil, runtime.ErrInvalidInputData
	}

	in := &rsaVerifyInputs{}

	if in.signature, ok = data["signature"].([]byte); !ok {
		return nil, runtime.ErrInvalidInputData
	}

	if in.digest, ok = data["digest"].([types.HashLength]byte); !ok {
		return nil, runtime.ErrInvalidInputData
	}

	if in.exponent, ok = data["exponent"].([]byte); !ok {
		return nil, runtime.ErrInvalidInputData
	}

	if in.modulus, ok = data["modulus"].([]byte); !ok {
		return nil, runtime.ErrInvalidInputData
	}

	return in, nil
}

// rsaVerify checks an RSASSA-PKCS1-v1_5 signature over a SHA-256 digest.
// Input is the selector of verifyRSA(bytes,bytes32,bytes,bytes) followed by the
// ABI encoded (signature, digest, exponent, modulus); the output is an ABI encoded bool.
type rsaVerify struct{}

// gas returns the base price plus the price of the underlying modexp call
func (r *rsaVerify) gas(input []byte, config *chain.ForksInTime) uint64 {
	table := config.GasTable()

	in, err := decodeRSAVerifyInput(input)
	if err != nil {
		return table.RSAVerifyBase
	}

	baseLen := len(in.signature)
	if len(in.modulus) > baseLen {
		baseLen = len(in.modulus)
	}

	expHead := in.exponent
	if len(expHead) > 32 {
		expHead = expHead[:32]
	}

	modexpGas := modExpGas(
		big.NewInt(int64(baseLen)),
		big.NewInt(int64(len(in.exponent))),
		big.NewInt(int64(len(in.modulus))),
		new(big.Int).SetBytes(expHead),
		table,
	)

	if modexpGas > ^uint64(0)-table.RSAVerifyBase {
		return ^uint64(0)
	}

	return table.RSAVerifyBase + modexpGas
}

func (r *rsaVerify) run(input []byte) ([]byte, error) {
	in, err := decodeRSAVerifyInput(input)
	if err != nil {
		return nil, err
	}

	if len(in.signature) > maxOperandLength || len(in.exponent) > maxOperandLength ||
		len(in.modulus) > maxOperandLength {
		return nil, runtime.ErrInvalidInputData
	}

	if rsaverify.Verify(nativeModExp{}, in.signature, in.digest[:], in.exponent, in.modulus) {
		return abiBoolTrue, nil
	}

	return abiBoolFalse, nil
}

// nativeModExp exponentiates with math/big, the gas having already been charged by the precompile
type nativeModExp struct{}

func (nativeModExp) Name() string {
	return "native"
}

func (nativeModExp) ModExp(base, exponent, modulus *big.Int) (*big.Int, uint64, error) {
	if modulus.Sign() == 0 {
		return nil, 0, runtime.ErrInvalidInputData
	}

	return new(big.Int).Exp(base, exponent, modulus), 0, nil
}
