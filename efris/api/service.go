package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/envelope"
	"github.com/alapierre/go-efris-client/efris/model"
	"github.com/alapierre/go-efris-client/efris/schema"
	"github.com/alapierre/go-efris-client/efris/serialize"
	"github.com/alapierre/go-efris-client/efris/validate"
)

// Device identifies the taxpayer device issuing requests. The values land
// in every envelope's globalInfo.
type Device struct {
	AppID     string
	Tin       string
	DeviceNo  string
	DeviceMAC string
	Brn       string
}

type Service interface {
	GetServerTime(ctx context.Context) (time.Time, error)
	GetSymmetricKey(ctx context.Context) error
	FiscaliseInvoice(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	CreditNoteApplication(ctx context.Context, application *model.CreditNoteApplication) (*model.Invoice, error)
	DictionaryUpdate(ctx context.Context) (*model.DictionaryResponse, error)
	QueryTaxpayer(ctx context.Context, req *model.TaxpayerRequest) (*model.Taxpayer, error)
	BatchUpload(ctx context.Context, invoices []*model.Invoice) ([]model.BatchInvoiceResult, error)
	UploadGoods(ctx context.Context, goods []model.Goods) ([]model.Goods, error)
}

type service struct {
	client   Client
	codec    *envelope.Codec
	keyring  *cipher.Keyring
	registry *schema.Registry
	device   Device
	opts     validate.Options
}

// NewService wires the full request pipeline:
// validate -> serialize -> encode -> POST -> decode -> map returnStateInfo.
func NewService(client Client, keyring *cipher.Keyring, device Device, opts validate.Options) Service {
	return &service{
		client:   client,
		codec:    envelope.New(keyring),
		keyring:  keyring,
		registry: schema.Default(),
		device:   device,
		opts:     opts,
	}
}

func (s *service) GetServerTime(ctx context.Context) (time.Time, error) {

	log.Debug("query server time")

	var res model.ServerTimeResponse
	if err := s.call(ctx, "T101", nil, envelope.Options{}, &res); err != nil {
		return time.Time{}, err
	}
	return time.Parse(schema.LayoutResponseTime, res.CurrentTime)
}

// GetSymmetricKey runs the key exchange and installs the AES session key
// on the keyring. Later operations encrypt with encryptCode "2".
func (s *service) GetSymmetricKey(ctx context.Context) error {

	log.Debug("symmetric key exchange")

	var res model.SymmetricKeyResponse
	if err := s.call(ctx, "T104", nil, envelope.Options{}, &res); err != nil {
		return err
	}

	sealed, err := base64.StdEncoding.DecodeString(res.PasswordDes)
	if err != nil {
		return errors.Wrap(err, "passowrdDes is not valid base64")
	}
	keyB64, err := s.keyring.Decrypt(cipher.AlgRSA, sealed)
	if err != nil {
		return errors.Wrap(err, "cannot decrypt session key")
	}
	key, err := base64.StdEncoding.DecodeString(string(keyB64))
	if err != nil {
		return errors.Wrap(err, "decrypted session key is not valid base64")
	}
	return s.keyring.SetSessionKey(key, cipher.DeriveIV(key))
}

func (s *service) FiscaliseInvoice(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {

	log.Debugf("fiscalise invoice, items: %d", len(invoice.GoodsDetails))

	var fiscalised model.Invoice
	err := s.call(ctx, "T109", invoice, s.secure(), &fiscalised)
	if err != nil {
		return nil, err
	}
	return &fiscalised, nil
}

func (s *service) CreditNoteApplication(ctx context.Context, application *model.CreditNoteApplication) (*model.Invoice, error) {

	log.Debugf("credit note application against invoice %s", application.OriInvoiceNo)

	var approved model.Invoice
	err := s.call(ctx, "T110", application, s.secure(), &approved)
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

func (s *service) DictionaryUpdate(ctx context.Context) (*model.DictionaryResponse, error) {

	log.Debug("system dictionary update")

	var res model.DictionaryResponse
	if err := s.call(ctx, "T115", nil, envelope.Options{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) QueryTaxpayer(ctx context.Context, req *model.TaxpayerRequest) (*model.Taxpayer, error) {

	log.Debugf("query taxpayer %s%s", req.Tin, req.NinBrn)

	var res model.TaxpayerResponse
	if err := s.call(ctx, "T119", req, envelope.Options{}, &res); err != nil {
		return nil, err
	}
	return &res.Taxpayer, nil
}

func (s *service) BatchUpload(ctx context.Context, invoices []*model.Invoice) ([]model.BatchInvoiceResult, error) {

	log.Debugf("batch upload, %d invoices", len(invoices))

	items := make([]any, 0, len(invoices))
	for _, inv := range invoices {
		content, err := json.Marshal(inv)
		if err != nil {
			return nil, errors.Wrap(err, "marshal batch item")
		}
		sig, err := s.keyring.Sign(content)
		if err != nil {
			return nil, errors.Wrap(err, "sign batch item")
		}
		items = append(items, map[string]any{
			"invoiceContent":   base64.StdEncoding.EncodeToString(content),
			"invoiceSignature": base64.StdEncoding.EncodeToString(sig),
		})
	}

	var res []model.BatchInvoiceResult
	if err := s.call(ctx, "T129", items, s.secure(), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) UploadGoods(ctx context.Context, goods []model.Goods) ([]model.Goods, error) {

	log.Debugf("upload goods, %d items", len(goods))

	items := make([]any, 0, len(goods))
	for _, g := range goods {
		items = append(items, g)
	}

	var res []model.Goods
	if err := s.call(ctx, "T130", items, s.secure(), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// secure picks AES once the session key is installed, otherwise requests
// stay plain. Key exchange itself always runs plain.
func (s *service) secure() envelope.Options {
	if s.keyring != nil && s.keyring.HasSessionKey() {
		return envelope.Options{Encrypt: true, Algorithm: cipher.AlgAES, Compress: true, Sign: true}
	}
	return envelope.Options{Sign: true}
}

func (s *service) call(ctx context.Context, interfaceCode string, doc any, opts envelope.Options, out any) error {

	content, err := s.requestContent(interfaceCode, doc)
	if err != nil {
		return err
	}

	env, err := s.codec.Encode(s.globalInfo(interfaceCode), content, opts)
	if err != nil {
		return err
	}

	reply, err := s.client.PostEnvelope(ctx, env)
	if err != nil {
		return err
	}

	if !reply.ReturnStateInfo.Success() {
		return &efris.ReturnError{
			Code:    reply.ReturnStateInfo.ReturnCode,
			Message: reply.ReturnStateInfo.ReturnMessage,
		}
	}

	payload, err := s.codec.Unwrap(reply)
	if err != nil {
		return err
	}
	if len(payload) == 0 || out == nil {
		return nil
	}

	if err := s.checkResponse(interfaceCode, payload); err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// requestContent validates the document against its request descriptor and
// renders the canonical form. Interfaces without request content (T101,
// T104, T115) pass a nil doc.
func (s *service) requestContent(interfaceCode string, doc any) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}

	generic, err := toGeneric(doc)
	if err != nil {
		return nil, err
	}

	d, err := s.registry.Lookup(interfaceCode, schema.Request)
	if err != nil {
		// no request descriptor registered, send the document as-is
		return json.Marshal(doc)
	}

	if result := validate.Document(generic, d, s.opts); !result.OK() {
		return nil, &ValidationError{InterfaceCode: interfaceCode, Result: result}
	}
	return serialize.Document(generic, d)
}

// checkResponse validates a reply payload when a response descriptor is
// registered; replies for unknown shapes pass through untouched.
func (s *service) checkResponse(interfaceCode string, payload []byte) error {
	d, err := s.registry.Lookup(interfaceCode, schema.Response)
	if err != nil {
		return nil
	}

	var generic any
	if d.TopLevelArray {
		var arr []any
		if err := json.Unmarshal(payload, &arr); err != nil {
			return errors.Wrap(err, "reply is not a JSON array")
		}
		generic = arr
	} else {
		var obj map[string]any
		if err := json.Unmarshal(payload, &obj); err != nil {
			return errors.Wrap(err, "reply is not a JSON object")
		}
		generic = obj
	}

	if result := validate.Document(generic, d, validate.Options{Dict: s.opts.Dict}); !result.OK() {
		return &ValidationError{InterfaceCode: interfaceCode, Result: result}
	}
	return nil
}

func (s *service) globalInfo(interfaceCode string) model.GlobalInfo {
	return model.GlobalInfo{
		AppID:          s.device.AppID,
		Version:        "1.1.20191201",
		DataExchangeID: uuid.NewString(),
		InterfaceCode:  interfaceCode,
		RequestCode:    "TP",
		RequestTime:    time.Now().Format(schema.LayoutRequestTime),
		ResponseCode:   "TA",
		UserName:       "admin",
		DeviceMAC:      s.device.DeviceMAC,
		DeviceNo:       s.device.DeviceNo,
		Tin:            s.device.Tin,
		Brn:            s.device.Brn,
		TaxpayerID:     "1",
		Longitude:      "",
		Latitude:       "",
	}
}

// toGeneric reshapes a typed document into the map/slice form the
// validator and serializer walk.
func toGeneric(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request document")
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(err, "reshape request document")
	}
	return generic, nil
}
