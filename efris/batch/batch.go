// Package batch handles multi-invoice uploads. Items live and die alone:
// a broken invoice fills its own result slot and never stops the rest of
// the batch from going through.
package batch

import (
	"encoding/base64"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/model"
	"github.com/alapierre/go-efris-client/efris/schema"
	"github.com/alapierre/go-efris-client/efris/validate"
)

var logger = logrus.WithField("component", "efris.batch")

type Processor struct {
	registry *schema.Registry
	provider cipher.Provider
	opts     validate.Options
}

// New builds a processor. The provider may be nil, signature checks are
// then skipped.
func New(provider cipher.Provider, opts validate.Options) *Processor {
	return &Processor{registry: schema.Default(), provider: provider, opts: opts}
}

// Process checks every slot of a batch against the invoice upload rules.
// Result slot N mirrors item N by position; successful items carry empty
// return fields.
func (p *Processor) Process(items []model.BatchInvoiceItem) []model.BatchInvoiceResult {

	results := make([]model.BatchInvoiceResult, len(items))
	for i, item := range items {
		results[i] = model.BatchInvoiceResult{InvoiceContent: item.InvoiceContent}

		if code, msg := p.check(item); code != "" {
			logger.WithField("slot", i).Debugf("batch item rejected: %s", msg)
			results[i].InvoiceReturnCode = code
			results[i].InvoiceReturnMessage = msg
		}
	}
	return results
}

func (p *Processor) check(item model.BatchInvoiceItem) (code, message string) {

	content, err := base64.StdEncoding.DecodeString(item.InvoiceContent)
	if err != nil {
		return efris.ReturnCodeUnknownError, "invoiceContent is not valid base64"
	}

	if p.provider != nil && item.InvoiceSignature != "" {
		sig, err := base64.StdEncoding.DecodeString(item.InvoiceSignature)
		if err != nil {
			return efris.ReturnCodeUnknownError, "invoiceSignature is not valid base64"
		}
		if err := p.provider.Verify(content, sig); err != nil {
			return efris.ReturnCodeUnknownError, "invoice signature does not verify"
		}
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return efris.ReturnCodeUnknownError, "invoiceContent is not a JSON object"
	}

	d, err := p.registry.Lookup("T109", schema.Request)
	if err != nil {
		return efris.ReturnCodeUnknownError, err.Error()
	}

	if result := validate.Document(doc, d, p.opts); !result.OK() {
		return efris.ReturnCodeInvalidField, result.Message()
	}
	return "", ""
}
