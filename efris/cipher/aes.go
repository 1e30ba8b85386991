package cipher

import (
	"bytes"
	aes2 "crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
)

// GenerateRandom256BitsKey generates a random 256-bit key (32 bytes).
func GenerateRandom256BitsKey() ([]byte, error) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("generating random key: %w", err)
	}
	return key, nil
}

// GenerateRandom16BytesIv generates a random 16-byte initialization vector.
func GenerateRandom16BytesIv() ([]byte, error) {
	iv := make([]byte, 16)
	_, err := rand.Read(iv)
	if err != nil {
		return nil, fmt.Errorf("generating random IV: %w", err)
	}
	return iv, nil
}

// DeriveIV builds the CBC initialization vector both sides agree on for a
// given session key: the first 16 bytes of SHA-256 over the key. The key
// exchange transports only the key, never an IV.
func DeriveIV(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:16]
}

// EncryptBytesWithAES256CBCPKCS7 encrypts content using AES-256-CBC with PKCS#7.
func EncryptBytesWithAES256CBCPKCS7(content, key, iv []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d, expected 32 bytes (AES-256)", len(key))
	}
	if len(iv) != aes2.BlockSize {
		return nil, fmt.Errorf("invalid IV length: %d, expected %d", len(iv), aes2.BlockSize)
	}

	block, err := aes2.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("NewCipher: %w", err)
	}

	padded := pkcs7Pad(content, aes2.BlockSize)
	out := make([]byte, len(padded))

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(out, padded)
	return out, nil
}

// DecryptBytesAESCBCPKCS7 decrypts an AES-256-CBC buffer and strips the
// PKCS#7 padding, validating every padding byte.
func DecryptBytesAESCBCPKCS7(ciphertext, key, iv []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes (AES-256), got %d", len(key))
	}
	if len(iv) != aes2.BlockSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", aes2.BlockSize, len(iv))
	}
	if len(ciphertext)%aes2.BlockSize != 0 {
		return nil, fmt.Errorf("data is not a multiple of the block size")
	}

	block, err := aes2.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("NewCipher: %w", err)
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	plain := make([]byte, len(ciphertext))
	mode.CryptBlocks(plain, ciphertext)

	if len(plain) == 0 {
		return nil, fmt.Errorf("empty data after decryption")
	}
	pad := int(plain[len(plain)-1])
	if pad <= 0 || pad > aes2.BlockSize || pad > len(plain) {
		return nil, fmt.Errorf("invalid padding")
	}
	for i := 0; i < pad; i++ {
		if plain[len(plain)-1-i] != byte(pad) {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return plain[:len(plain)-pad], nil
}

func pkcs7Pad(src []byte, blockSize int) []byte {
	padLen := blockSize - (len(src) % blockSize)
	if padLen == 0 {
		padLen = blockSize
	}
	return append(src, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}
