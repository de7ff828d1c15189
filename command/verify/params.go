package verify

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/helper/hex"
	"github.com/0xPolygon/rsa-verifier/types"
	"github.com/0xPolygon/rsa-verifier/verifier"
)

const (
	signatureFlag = "signature"
	digestFlag    = "digest"
	messageFlag   = "message"
	exponentFlag  = "exponent"
	modulusFlag   = "modulus"
	pubKeyFlag    = "pubkey"
)

var (
	errNoSignature  = errors.New("signature is required")
	errNoDigest     = errors.New("either digest or message is required")
	errNoPublicKey  = errors.New("either exponent and modulus or pubkey is required")
	errDigestLength = fmt.Errorf("digest must be %d bytes", types.HashLength)
)

type verifyParams struct {
	signature string
	digest    string
	message   string
	exponent  string
	modulus   string
	pubKey    string

	verifierFlags helper.VerifierFlags

	request *verifier.Request
}

func (p *verifyParams) validateFlags() error {
	if p.signature == "" {
		return errNoSignature
	}

	if p.digest == "" && p.message == "" {
		return errNoDigest
	}

	if p.pubKey == "" && (p.exponent == "" || p.modulus == "") {
		return errNoPublicKey
	}

	return nil
}

// initRequest decodes the flags into a verification request
func (p *verifyParams) initRequest() error {
	var (
		req = &verifier.Request{}
		err error
	)

	if req.Signature, err = hex.DecodeHex(p.signature); err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	if p.message != "" {
		req.Digest = types.Hash(sha256.Sum256([]byte(p.message)))
	} else {
		digest, err := hex.DecodeHex(p.digest)
		if err != nil {
			return fmt.Errorf("invalid digest: %w", err)
		}

		if len(digest) != types.HashLength {
			return errDigestLength
		}

		req.Digest = types.BytesToHash(digest)
	}

	if p.pubKey != "" {
		if req.Exponent, req.Modulus, err = helper.ReadRSAPublicKey(p.pubKey); err != nil {
			return fmt.Errorf("invalid public key: %w", err)
		}
	} else {
		if req.Exponent, err = hex.DecodeHex(p.exponent); err != nil {
			return fmt.Errorf("invalid exponent: %w", err)
		}

		if req.Modulus, err = hex.DecodeHex(p.modulus); err != nil {
			return fmt.Errorf("invalid modulus: %w", err)
		}
	}

	p.request = req

	return nil
}
