// Package cipher implements the crypto collaborator consumed by the
// envelope codec: AES-256-CBC (PKCS#7) for the session key path and RSA
// for key exchange and signatures. Algorithm selection follows the wire
// encryptCode values: "1" asymmetric, "2" symmetric.
package cipher

import (
	"crypto/rsa"
	"sync"

	"github.com/go-faster/errors"
)

type Algorithm string

const (
	AlgRSA Algorithm = "1"
	AlgAES Algorithm = "2"
)

// Provider is injected into the envelope codec. Decrypt failures must be
// surfaced as errors, never panics; the boundary maps them to returnCode 99.
type Provider interface {
	Encrypt(alg Algorithm, plaintext []byte) ([]byte, error)
	Decrypt(alg Algorithm, ciphertext []byte) ([]byte, error)
	Sign(content []byte) ([]byte, error)
	Verify(content, signature []byte) error
}

// Keyring is the default Provider implementation. The AES session key is
// rotated after every T104 exchange; RSA key material stays fixed for the
// lifetime of the device registration.
type Keyring struct {
	mu     sync.RWMutex
	aesKey []byte
	aesIV  []byte

	private *rsa.PrivateKey
	// server public key, used for signature verification
	public *rsa.PublicKey
}

func NewKeyring(private *rsa.PrivateKey, serverPublic *rsa.PublicKey) *Keyring {
	return &Keyring{private: private, public: serverPublic}
}

// SetSessionKey installs the symmetric key obtained from T104.
func (k *Keyring) SetSessionKey(key, iv []byte) error {
	if len(key) != 32 {
		return errors.Errorf("session key must be 32 bytes, got %d", len(key))
	}
	if len(iv) != 16 {
		return errors.Errorf("session IV must be 16 bytes, got %d", len(iv))
	}
	k.mu.Lock()
	k.aesKey = key
	k.aesIV = iv
	k.mu.Unlock()
	return nil
}

func (k *Keyring) HasSessionKey() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.aesKey != nil
}

func (k *Keyring) Encrypt(alg Algorithm, plaintext []byte) ([]byte, error) {
	switch alg {
	case AlgAES:
		key, iv, err := k.sessionKey()
		if err != nil {
			return nil, err
		}
		return EncryptBytesWithAES256CBCPKCS7(plaintext, key, iv)
	case AlgRSA:
		if k.public == nil {
			return nil, errors.New("no server public key configured")
		}
		return RsaEncrypt(plaintext, k.public)
	default:
		return nil, errors.Errorf("unknown encryption algorithm %q", alg)
	}
}

func (k *Keyring) Decrypt(alg Algorithm, ciphertext []byte) ([]byte, error) {
	switch alg {
	case AlgAES:
		key, iv, err := k.sessionKey()
		if err != nil {
			return nil, err
		}
		return DecryptBytesAESCBCPKCS7(ciphertext, key, iv)
	case AlgRSA:
		if k.private == nil {
			return nil, errors.New("no private key configured")
		}
		return RsaDecrypt(ciphertext, k.private)
	default:
		return nil, errors.Errorf("unknown encryption algorithm %q", alg)
	}
}

func (k *Keyring) Sign(content []byte) ([]byte, error) {
	if k.private == nil {
		return nil, errors.New("no private key configured")
	}
	return RsaSign(content, k.private)
}

func (k *Keyring) Verify(content, signature []byte) error {
	if k.public == nil {
		return errors.New("no server public key configured")
	}
	return RsaVerify(content, signature, k.public)
}

func (k *Keyring) sessionKey() (key, iv []byte, err error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.aesKey == nil {
		return nil, nil, errors.New("no symmetric session key installed")
	}
	return k.aesKey, k.aesIV, nil
}
