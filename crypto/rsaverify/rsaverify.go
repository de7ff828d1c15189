// Package rsaverify checks RSASSA-PKCS1-v1_5 signatures over SHA-256 digests
// using a pluggable modular exponentiation backend.
//
// Arguments are always passed in the order (signature, digest, exponent, modulus),
// each as a big-endian byte string. Every malformed input is reported as an
// invalid signature, never as an error.
package rsaverify

import (
	"bytes"
	"math/big"

	"github.com/0xPolygon/rsa-verifier/crypto/bigint"
	"github.com/0xPolygon/rsa-verifier/crypto/pkcs1"
)

// Backend computes base ** exponent mod modulus and reports the cost of doing so
type Backend interface {
	// Name returns the backend identifier
	Name() string

	// ModExp returns the result and the backend specific cost
	ModExp(base, exponent, modulus *big.Int) (*big.Int, uint64, error)
}

// Verify reports whether signature is a valid PKCS#1 v1.5 signature of digest
// under the public key (exponent, modulus)
func Verify(backend Backend, signature, digest, exponent, modulus []byte) bool {
	ok, _ := VerifyWithCost(backend, signature, digest, exponent, modulus)

	return ok
}

// VerifyWithCost performs the same check as Verify and additionally returns the
// cost reported by the backend for the exponentiation. The cost is zero when the
// input was rejected before the exponentiation took place.
func VerifyWithCost(backend Backend, signature, digest, exponent, modulus []byte) (bool, uint64) {
	out := check(backend, signature, digest, exponent, modulus)

	return out.valid(), out.cost
}

// stage is the step at which a verification stopped
type stage int

const (
	stageOk stage = iota
	stageZeroModulus
	stageSignatureRange
	stageModExp
	stageWidth
	stageEncoding
	stageMismatch
)

// outcome is the detailed result of a verification. The stage stays inside
// this package so callers only ever see a bool and a cost.
type outcome struct {
	step stage
	cost uint64
}

// valid returns true if the signature was accepted
func (o outcome) valid() bool {
	return o.step == stageOk
}

// check runs the verification steps in order and returns where it stopped
func check(backend Backend, signature, digest, exponent, modulus []byte) outcome {
	n := bigint.FromBytes(modulus)
	e := bigint.FromBytes(exponent)
	s := bigint.FromBytes(signature)

	if n.Sign() == 0 {
		return outcome{step: stageZeroModulus}
	}

	if s.Cmp(n) >= 0 {
		return outcome{step: stageSignatureRange}
	}

	recovered, cost, err := backend.ModExp(s, e, n)
	if err != nil {
		return outcome{step: stageModExp, cost: cost}
	}

	k := bigint.ByteLen(n)

	em, err := bigint.ToFixedBytes(recovered, k)
	if err != nil {
		return outcome{step: stageWidth, cost: cost}
	}

	expected, err := pkcs1.EncodeExpected(digest, k)
	if err != nil {
		return outcome{step: stageEncoding, cost: cost}
	}

	if !bytes.Equal(em, expected) {
		return outcome{step: stageMismatch, cost: cost}
	}

	return outcome{step: stageOk, cost: cost}
}
