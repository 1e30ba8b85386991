package envelope

import "fmt"

// DecodeError means the outer envelope or its content is malformed
// (bad JSON, bad base64, bad gzip stream).
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("envelope decode: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("envelope decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CryptoError means decryption failed: wrong key or corrupt ciphertext.
type CryptoError struct {
	Reason string
	Err    error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("envelope crypto: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("envelope crypto: %s", e.Reason)
}

func (e *CryptoError) Unwrap() error { return e.Err }

// SignatureError means the recomputed signature over the canonical
// content does not match the transmitted one.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("envelope signature mismatch: %v", e.Err)
}

func (e *SignatureError) Unwrap() error { return e.Err }
