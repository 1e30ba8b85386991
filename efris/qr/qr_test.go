package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris/model"
)

func fiscalisedInvoice() *model.Invoice {
	return &model.Invoice{
		SellerDetails: model.SellerDetails{Tin: "1000023456"},
		BasicInformation: model.BasicInformation{
			InvoiceNo:    "322000045001",
			AntifakeCode: "201812310000012345",
			DeviceNo:     "TCS5a2ce23146217466",
			IssuedDate:   "2026-08-01 10:30:00",
		},
		Summary: model.Summary{GrossAmount: "2000"},
	}
}

func TestPayload(t *testing.T) {

	payload, err := Payload(fiscalisedInvoice())
	require.NoError(t, err)

	assert.Equal(t, "201812310000012345,1000023456,TCS5a2ce23146217466,322000045001,2026-08-01 10:30:00,2000", payload)
}

func TestPayloadRequiresAntifakeCode(t *testing.T) {

	inv := fiscalisedInvoice()
	inv.BasicInformation.AntifakeCode = ""

	_, err := Payload(inv)
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {

	data, err := PNG(fiscalisedInvoice(), 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
