package api

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/envelope"
	"github.com/alapierre/go-efris-client/efris/model"
	"github.com/alapierre/go-efris-client/efris/validate"
)

type fakeClient struct {
	reply *model.Envelope
	sent  *model.Envelope
	calls int
}

func (f *fakeClient) PostEnvelope(_ context.Context, env *model.Envelope) (*model.Envelope, error) {
	f.calls++
	f.sent = env
	return f.reply, nil
}

func testDevice() Device {
	return Device{
		AppID:    "AP04",
		Tin:      "1000023456",
		DeviceNo: "TCS5a2ce23146217466",
	}
}

func newKeyring(t *testing.T) *cipher.Keyring {
	t.Helper()
	private, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return cipher.NewKeyring(private, &private.PublicKey)
}

func reply(t *testing.T, content []byte) *model.Envelope {
	t.Helper()
	env, err := envelope.New(nil).Encode(model.GlobalInfo{}, content, envelope.Options{})
	require.NoError(t, err)
	env.ReturnStateInfo = model.ReturnStateInfo{ReturnCode: "00", ReturnMessage: "SUCCESS"}
	return env
}

func TestGetServerTime(t *testing.T) {

	client := &fakeClient{reply: reply(t, []byte(`{"currentTime":"01/08/2026 10:30:45"}`))}
	service := NewService(client, newKeyring(t), testDevice(), validate.Options{})

	serverTime, err := service.GetServerTime(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2026, serverTime.Year())
	assert.Equal(t, 45, serverTime.Second())

	require.NotNil(t, client.sent)
	assert.Equal(t, "T101", client.sent.GlobalInfo.InterfaceCode)
	assert.Equal(t, "1000023456", client.sent.GlobalInfo.Tin)
	assert.NotEmpty(t, client.sent.GlobalInfo.DataExchangeID)
}

func TestGetSymmetricKey(t *testing.T) {

	keyring := newKeyring(t)

	key, err := cipher.GenerateRandom256BitsKey()
	require.NoError(t, err)

	// the server seals base64(key) with the device's public key
	sealed, err := keyring.Encrypt(cipher.AlgRSA, []byte(base64.StdEncoding.EncodeToString(key)))
	require.NoError(t, err)

	content := []byte(`{"passowrdDes":"` + base64.StdEncoding.EncodeToString(sealed) + `","sign":"x"}`)
	client := &fakeClient{reply: reply(t, content)}
	service := NewService(client, keyring, testDevice(), validate.Options{})

	require.NoError(t, service.GetSymmetricKey(context.Background()))
	assert.True(t, keyring.HasSessionKey())
}

func TestFiscaliseInvoiceRejectsInvalidDocumentBeforePost(t *testing.T) {

	client := &fakeClient{}
	service := NewService(client, newKeyring(t), testDevice(), validate.Options{})

	_, err := service.FiscaliseInvoice(context.Background(), &model.Invoice{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "T109", verr.InterfaceCode)
	assert.Zero(t, client.calls, "invalid documents must never reach the network")
}

func TestServerFailureMapsToReturnError(t *testing.T) {

	failed := reply(t, nil)
	failed.ReturnStateInfo = model.ReturnStateInfo{ReturnCode: "99", ReturnMessage: "UNKNOWN ERROR"}
	client := &fakeClient{reply: failed}
	service := NewService(client, newKeyring(t), testDevice(), validate.Options{})

	_, err := service.GetServerTime(context.Background())

	var rerr *efris.ReturnError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "99", rerr.Code)
}

func TestQueryTaxpayer(t *testing.T) {

	content := []byte(`{"taxpayer":{"tin":"1000023456","legalName":"Nile Breweries Ltd"}}`)
	client := &fakeClient{reply: reply(t, content)}
	service := NewService(client, newKeyring(t), testDevice(), validate.Options{})

	taxpayer, err := service.QueryTaxpayer(context.Background(), &model.TaxpayerRequest{Tin: "1000023456"})
	require.NoError(t, err)
	assert.Equal(t, "Nile Breweries Ltd", taxpayer.LegalName)
	assert.Equal(t, "T119", client.sent.GlobalInfo.InterfaceCode)
}
