// Package pkcs1 builds EMSA-PKCS1-v1_5 encoded messages for SHA-256 digests
package pkcs1

import (
	"errors"
	"fmt"
)

const (
	// DigestLength is the length of a SHA-256 digest
	DigestLength = 32

	// MinPaddingLength is the minimal number of 0xff padding bytes
	MinPaddingLength = 8

	// MinModulusLength is the smallest modulus byte length able to hold the encoding
	MinModulusLength = 3 + MinPaddingLength + 19 + DigestLength
)

// SHA256DigestInfoPrefix is the DER encoding of the SHA-256 AlgorithmIdentifier
// followed by the OCTET STRING header of the digest
var SHA256DigestInfoPrefix = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
}

var (
	ErrInvalidDigestLength = errors.New("invalid digest length")
	ErrModulusTooSmall     = errors.New("modulus too small for pkcs1 v1.5 encoding")
)

// DigestInfo returns the DER encoded DigestInfo for the given SHA-256 digest
func DigestInfo(digest []byte) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidDigestLength, DigestLength, len(digest))
	}

	info := make([]byte, 0, len(SHA256DigestInfoPrefix)+DigestLength)
	info = append(info, SHA256DigestInfoPrefix...)
	info = append(info, digest...)

	return info, nil
}

// EncodeExpected builds the encoded message
//
// 0x00 || 0x01 || PS || 0x00 || DigestInfo
//
// of exactly k bytes, where PS is a run of 0xff bytes
func EncodeExpected(digest []byte, k int) ([]byte, error) {
	info, err := DigestInfo(digest)
	if err != nil {
		return nil, err
	}

	psLen := k - 3 - len(info)
	if psLen < MinPaddingLength {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrModulusTooSmall, k, MinModulusLength)
	}

	em := make([]byte, k)
	em[1] = 0x01

	for i := 2; i < 2+psLen; i++ {
		em[i] = 0xff
	}

	// em[2+psLen] is the 0x00 separator
	copy(em[3+psLen:], info)

	return em, nil
}
