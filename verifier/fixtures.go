package verifier

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rsa-verifier/helper/hex"
	"github.com/0xPolygon/rsa-verifier/types"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is a hex encoded verification request as stored in a fixture file
type Fixture struct {
	Name      string `json:"name" yaml:"name" hcl:"name"`
	Signature string `json:"signature" yaml:"signature" hcl:"signature"`
	Digest    string `json:"digest" yaml:"digest" hcl:"digest"`
	Exponent  string `json:"exponent" yaml:"exponent" hcl:"exponent"`
	Modulus   string `json:"modulus" yaml:"modulus" hcl:"modulus"`
}

// FixtureFile is the on disk layout of a set of fixtures
type FixtureFile struct {
	Fixtures []*Fixture `json:"fixtures" yaml:"fixtures" hcl:"fixtures"`
}

// ToRequest decodes the fixture into a verification request
func (f *Fixture) ToRequest() (*Request, error) {
	var (
		req = &Request{}
		err error
	)

	if req.Signature, err = hex.DecodeHex(f.Signature); err != nil {
		return nil, fmt.Errorf("%w %s: signature: %w", ErrInvalidFixture, f.Name, err)
	}

	digest, err := hex.DecodeHex(f.Digest)
	if err != nil {
		return nil, fmt.Errorf("%w %s: digest: %w", ErrInvalidFixture, f.Name, err)
	}

	if len(digest) != types.HashLength {
		return nil, fmt.Errorf("%w %s: digest must be %d bytes, got %d",
			ErrInvalidFixture, f.Name, types.HashLength, len(digest))
	}

	req.Digest = types.BytesToHash(digest)

	if req.Exponent, err = hex.DecodeHex(f.Exponent); err != nil {
		return nil, fmt.Errorf("%w %s: exponent: %w", ErrInvalidFixture, f.Name, err)
	}

	if req.Modulus, err = hex.DecodeHex(f.Modulus); err != nil {
		return nil, fmt.Errorf("%w %s: modulus: %w", ErrInvalidFixture, f.Name, err)
	}

	return req, nil
}

// ReadFixtureFile loads the fixtures stored at path.
//
// Supported file types: .json, .hcl, .yaml, .yml
func ReadFixtureFile(path string) ([]*Fixture, error) {
	file := &FixtureFile{}

	if err := readFile(path, file); err != nil {
		return nil, err
	}

	return file.Fixtures, nil
}
