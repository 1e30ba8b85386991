package cipher

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// RsaEncrypt encrypts message with the server public key (PKCS#1 v1.5,
// the scheme T104 key exchange uses).
func RsaEncrypt(message []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, message)
	if err != nil {
		return nil, fmt.Errorf("cannot encrypt given message with public key: %w", err)
	}
	return encrypted, nil
}

// RsaDecrypt decrypts a PKCS#1 v1.5 ciphertext with the client private key.
func RsaDecrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	plain, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot decrypt message with private key: %w", err)
	}
	return plain, nil
}

// RsaSign signs SHA-256(content) with PKCS#1 v1.5.
func RsaSign(content []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	sum := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, sum[:])
	if err != nil {
		return nil, fmt.Errorf("cannot sign content: %w", err)
	}
	return sig, nil
}

// RsaVerify verifies a PKCS#1 v1.5 signature over SHA-256(content).
func RsaVerify(content, signature []byte, publicKey *rsa.PublicKey) error {
	sum := sha256.Sum256(content)
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, sum[:], signature); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

// LoadPublicKeyFromFile reads a PEM encoded PKIX public key.
func LoadPublicKeyFromFile(keyFileName string) (*rsa.PublicKey, error) {
	key, err := os.ReadFile(keyFileName)
	if err != nil {
		return nil, fmt.Errorf("cannot read public key file %s: %w", keyFileName, err)
	}
	return LoadPublicKey(key)
}

func LoadPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in public key data")
	}
	parsedKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("cannot parse public key: %w", err)
	}

	publicKey, ok := parsedKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key: %T", parsedKey)
	}
	return publicKey, nil
}
