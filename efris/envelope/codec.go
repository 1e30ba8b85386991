// Package envelope encodes and decodes the three part outer structure
// (data, globalInfo, returnStateInfo) shared by every interface. The codec
// is stateless per call; key material comes from the injected
// cipher.Provider.
package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/model"
)

var logger = logrus.WithField("component", "efris.envelope")

const (
	CodeTypePlain       = "0"
	CodeTypeEncrypted   = "1"
	ZipCodeUncompressed = "0"
	ZipCodeCompressed   = "1"
)

// Options selects how Encode wraps the inner content.
type Options struct {
	// Encrypt selects ciphertext mode (codeType "1"). Algorithm picks
	// the encryptCode value, "1" RSA or "2" AES.
	Encrypt   bool
	Algorithm cipher.Algorithm
	Compress  bool
	// Sign controls whether data.signature is computed over the
	// plaintext content.
	Sign bool
}

type Codec struct {
	provider cipher.Provider
}

func New(provider cipher.Provider) *Codec {
	return &Codec{provider: provider}
}

// Encode wraps content into an envelope. The pipeline is
// gzip (optional) -> encrypt (optional) -> base64; the signature is
// computed over the plaintext content before compression.
func (c *Codec) Encode(info model.GlobalInfo, content []byte, opts Options) (*model.Envelope, error) {

	env := &model.Envelope{
		GlobalInfo: info,
		Data: model.Data{
			DataDescription: model.DataDescription{
				CodeType:    CodeTypePlain,
				EncryptCode: "0",
				ZipCode:     ZipCodeUncompressed,
			},
		},
	}

	if len(content) == 0 {
		return env, nil
	}

	if opts.Sign {
		if c.provider == nil {
			return nil, &CryptoError{Reason: "signing requested without a crypto provider"}
		}
		sig, err := c.provider.Sign(content)
		if err != nil {
			return nil, &CryptoError{Reason: "cannot sign content", Err: err}
		}
		env.Data.Signature = base64.StdEncoding.EncodeToString(sig)
	}

	payload := content
	if opts.Compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, &DecodeError{Reason: "compressing content", Err: err}
		}
		if err := zw.Close(); err != nil {
			return nil, &DecodeError{Reason: "closing gzip writer", Err: err}
		}
		payload = buf.Bytes()
		env.Data.DataDescription.ZipCode = ZipCodeCompressed
	}

	if opts.Encrypt {
		if c.provider == nil {
			return nil, &CryptoError{Reason: "encryption requested without a crypto provider"}
		}
		encrypted, err := c.provider.Encrypt(opts.Algorithm, payload)
		if err != nil {
			return nil, &CryptoError{Reason: "cannot encrypt content", Err: err}
		}
		payload = encrypted
		env.Data.DataDescription.CodeType = CodeTypeEncrypted
		env.Data.DataDescription.EncryptCode = string(opts.Algorithm)
	}

	env.Data.Content = base64.StdEncoding.EncodeToString(payload)
	return env, nil
}

// Decode parses a raw envelope and unwraps its content back to plaintext:
// base64 -> decrypt (when codeType is "1") -> gunzip (when zipCode is "1").
// A present signature is verified against the plaintext when the codec has
// a provider. An absent or empty content yields a nil payload.
func (c *Codec) Decode(raw []byte) (*model.Envelope, []byte, error) {

	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, &DecodeError{Reason: "malformed outer JSON", Err: err}
	}

	content, err := c.Unwrap(&env)
	if err != nil {
		return &env, nil, err
	}
	return &env, content, nil
}

// Unwrap extracts the plaintext content from an already parsed envelope.
func (c *Codec) Unwrap(env *model.Envelope) ([]byte, error) {

	if env.Data.Content == "" {
		return nil, nil
	}

	payload, err := base64.StdEncoding.DecodeString(env.Data.Content)
	if err != nil {
		return nil, &DecodeError{Reason: "content is not valid base64", Err: err}
	}

	desc := env.Data.DataDescription
	if desc.CodeType == CodeTypeEncrypted {
		if c.provider == nil {
			return nil, &CryptoError{Reason: "encrypted content without a crypto provider"}
		}
		payload, err = c.provider.Decrypt(cipher.Algorithm(desc.EncryptCode), payload)
		if err != nil {
			return nil, &CryptoError{Reason: "cannot decrypt content", Err: err}
		}
	}

	if desc.ZipCode == ZipCodeCompressed {
		zr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, &DecodeError{Reason: "content is not a gzip stream", Err: err}
		}
		payload, err = io.ReadAll(zr)
		if err != nil {
			return nil, &DecodeError{Reason: "decompressing content", Err: err}
		}
		if err := zr.Close(); err != nil {
			return nil, &DecodeError{Reason: "closing gzip reader", Err: err}
		}
	}

	if env.Data.Signature != "" && c.provider != nil {
		sig, err := base64.StdEncoding.DecodeString(env.Data.Signature)
		if err != nil {
			return nil, &DecodeError{Reason: "signature is not valid base64", Err: err}
		}
		if err := c.provider.Verify(payload, sig); err != nil {
			return nil, &SignatureError{Err: err}
		}
	}

	return payload, nil
}

// ReturnState maps a codec or validation failure to the returnStateInfo
// every reply must carry. Unknown errors map to code 99, this is a
// request/response protocol where no failure may kill the process.
func ReturnState(err error) model.ReturnStateInfo {
	if err == nil {
		return model.ReturnStateInfo{ReturnCode: "00", ReturnMessage: "SUCCESS"}
	}

	var de *DecodeError
	var ce *CryptoError
	var se *SignatureError
	switch {
	case errors.As(err, &se), errors.As(err, &ce), errors.As(err, &de):
		// all transport level failures surface as unknown error with detail
	default:
		logger.WithError(err).Debug("mapping unclassified error to returnCode 99")
	}
	return model.ReturnStateInfo{ReturnCode: "99", ReturnMessage: err.Error()}
}
