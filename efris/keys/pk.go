package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/youmark/pkcs8"
)

// LoadPrivateKeyFromFile loads an RSA private key from a PEM file.
// Plain PKCS#1/PKCS#8 blocks and password protected ENCRYPTED PRIVATE KEY
// blocks are supported; pass a nil password for unencrypted keys.
func LoadPrivateKeyFromFile(path string, password []byte) (*rsa.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	return LoadPrivateKeyFromPEM(b, password)
}

func LoadPrivateKeyFromPEM(pemBytes []byte, password []byte) (*rsa.PrivateKey, error) {
	for len(pemBytes) > 0 {
		var block *pem.Block
		block, pemBytes = pem.Decode(pemBytes)
		if block == nil {
			break
		}

		switch block.Type {
		case "RSA PRIVATE KEY":
			return x509.ParsePKCS1PrivateKey(block.Bytes)

		case "PRIVATE KEY":
			keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parse PKCS#8 private key: %w", err)
			}
			return asRSA(keyAny)

		case "ENCRYPTED PRIVATE KEY":
			if len(password) == 0 {
				return nil, errors.New("password is required for ENCRYPTED PRIVATE KEY")
			}
			keyAny, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
			if err != nil {
				return nil, fmt.Errorf("decrypt PKCS#8 encrypted private key: %w", err)
			}
			return asRSA(keyAny)
		}
	}

	return nil, errors.New("no private key block found in PEM")
}

func asRSA(keyAny any) (*rsa.PrivateKey, error) {
	k, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unsupported key type: %T (expected RSA)", keyAny)
	}
	return k, nil
}
