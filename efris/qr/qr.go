// Package qr builds the verification QR printed on fiscalised receipts.
// The payload is the comma separated summary the authority's verification
// app expects, keyed by the antifake code.
package qr

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/alapierre/go-efris-client/efris/model"
)

var logger = logrus.WithField("component", "efris.qr")

// Payload renders the verification string for a fiscalised invoice:
// antifakeCode,tin,deviceNo,invoiceNo,issuedDate,grossAmount. Offline
// copies found in an exist-invoice list already carry the final string.
func Payload(inv *model.Invoice) (string, error) {

	basic := inv.BasicInformation
	if basic.AntifakeCode == "" {
		return "", fmt.Errorf("invoice %s has no antifake code, it was never fiscalised", basic.InvoiceNo)
	}

	fields := []string{
		basic.AntifakeCode,
		inv.SellerDetails.Tin,
		basic.DeviceNo,
		basic.InvoiceNo,
		basic.IssuedDate,
		inv.Summary.GrossAmount,
	}
	return strings.Join(fields, ","), nil
}

// PNG encodes the verification payload as a PNG image of the given size
// in pixels.
func PNG(inv *model.Invoice, size int) ([]byte, error) {

	payload, err := Payload(inv)
	if err != nil {
		return nil, err
	}

	logger.Debugf("encoding QR for invoice %s", inv.BasicInformation.InvoiceNo)
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// WritePNG renders the QR straight to a file.
func WritePNG(inv *model.Invoice, size int, filename string) error {

	payload, err := Payload(inv)
	if err != nil {
		return err
	}
	return qrcode.WriteFile(payload, qrcode.Medium, size, filename)
}
