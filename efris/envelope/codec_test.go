package envelope

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/model"
)

func testKeyring(t *testing.T) *cipher.Keyring {
	t.Helper()

	private, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyring := cipher.NewKeyring(private, &private.PublicKey)
	key, err := cipher.GenerateRandom256BitsKey()
	require.NoError(t, err)
	require.NoError(t, keyring.SetSessionKey(key, cipher.DeriveIV(key)))
	return keyring
}

func TestEncodePlain(t *testing.T) {

	codec := New(nil)
	env, err := codec.Encode(model.GlobalInfo{InterfaceCode: "T101"}, []byte(`{"a":"1"}`), Options{})
	require.NoError(t, err)

	assert.Equal(t, CodeTypePlain, env.Data.DataDescription.CodeType)
	assert.Equal(t, ZipCodeUncompressed, env.Data.DataDescription.ZipCode)
	assert.Equal(t, "eyJhIjoiMSJ9", env.Data.Content, "content must be base64 even when plain")
}

func TestRoundTripEncryptedCompressed(t *testing.T) {

	codec := New(testKeyring(t))
	content := []byte(`{"basicInformation":{"currency":"UGX"}}`)

	env, err := codec.Encode(model.GlobalInfo{InterfaceCode: "T109"}, content, Options{
		Encrypt:   true,
		Algorithm: cipher.AlgAES,
		Compress:  true,
		Sign:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, CodeTypeEncrypted, env.Data.DataDescription.CodeType)
	assert.Equal(t, string(cipher.AlgAES), env.Data.DataDescription.EncryptCode)
	assert.Equal(t, ZipCodeCompressed, env.Data.DataDescription.ZipCode)
	assert.NotEmpty(t, env.Data.Signature)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	decoded, payload, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "T109", decoded.GlobalInfo.InterfaceCode)
	assert.Equal(t, content, payload)
}

func TestDecodeEmptyContent(t *testing.T) {

	codec := New(nil)
	_, payload, err := codec.Decode([]byte(`{"data":{"content":""},"globalInfo":{},"returnStateInfo":{}}`))
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestTamperedSignature(t *testing.T) {

	codec := New(testKeyring(t))
	env, err := codec.Encode(model.GlobalInfo{}, []byte(`{"a":"1"}`), Options{Sign: true})
	require.NoError(t, err)

	env.Data.Content = "eyJhIjoiMiJ9" // different plaintext, same signature

	_, err = codec.Unwrap(env)
	var sigErr *SignatureError
	assert.ErrorAs(t, err, &sigErr)
}

func TestDecodeGarbage(t *testing.T) {

	codec := New(nil)
	_, _, err := codec.Decode([]byte(`{not json`))
	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)

	_, _, err = codec.Decode([]byte(`{"data":{"content":"***"},"globalInfo":{},"returnStateInfo":{}}`))
	assert.ErrorAs(t, err, &decErr, "invalid base64 content")
}

func TestReturnState(t *testing.T) {

	ok := ReturnState(nil)
	assert.Equal(t, "00", ok.ReturnCode)
	assert.Equal(t, "SUCCESS", ok.ReturnMessage)

	bad := ReturnState(&DecodeError{Reason: "malformed outer JSON"})
	assert.Equal(t, "99", bad.ReturnCode)
	assert.NotEmpty(t, bad.ReturnMessage)
}
