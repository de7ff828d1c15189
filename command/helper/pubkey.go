package helper

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
)

var (
	ErrNoPEMBlock     = errors.New("no PEM block found")
	ErrNotRSAKey      = errors.New("public key is not an RSA key")
	ErrUnsupportedPEM = errors.New("unsupported PEM block type")
)

// ReadRSAPublicKey reads a PEM encoded RSA public key and returns its
// big-endian exponent and modulus
func ReadRSAPublicKey(path string) ([]byte, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	return ParseRSAPublicKey(data)
}

// ParseRSAPublicKey accepts PKIX ("PUBLIC KEY"), PKCS#1 ("RSA PUBLIC KEY")
// and certificate blocks
func ParseRSAPublicKey(data []byte) ([]byte, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, nil, ErrNoPEMBlock
	}

	var key interface{}

	switch block.Type {
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse PKCS#1 public key: %w", err)
		}

		key = pub
	case "PUBLIC KEY":
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse PKIX public key: %w", err)
		}

		key = pub
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse certificate: %w", err)
		}

		key = cert.PublicKey
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedPEM, block.Type)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, nil, ErrNotRSAKey
	}

	return big.NewInt(int64(rsaKey.E)).Bytes(), rsaKey.N.Bytes(), nil
}
