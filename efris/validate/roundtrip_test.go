package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris/serialize"
)

// A document the validator accepts must still be accepted after the
// canonical encoder rewrote it: trailing zeros are trimmed, the deemed
// sentinel takes its '-' form, optional empties disappear.
func TestSerializedInvoiceStillValidates(t *testing.T) {

	line := goodsLine("1", "1")
	line["total"] = "2000.00"
	line["unitPrice"] = "1000.0000"
	line["discountTotal"] = "-200.00"

	deemed := discountAmountLine("2")
	deemed["taxRate"] = " " // space form of the deemed sentinel
	deemed["deemedFlag"] = "1"
	deemed["vatProjectId"] = "P-2020-17"
	deemed["vatProjectName"] = "Hydro dam works"

	doc := invoiceRequest(line, deemed)
	doc["summary"].(map[string]any)["itemCount"] = "2"

	d := t109Request(t)

	first := Document(doc, d, Options{})
	require.True(t, first.OK(), "fixture must validate before encoding: %s", first.Message())

	encoded, err := serialize.Document(doc, d)
	require.NoError(t, err)

	var reparsed map[string]any
	require.NoError(t, json.Unmarshal(encoded, &reparsed))

	second := Document(reparsed, d, Options{})
	assert.True(t, second.OK(), "canonical form must not introduce violations: %s", second.Message())

	rewritten := reparsed["goodsDetails"].([]any)[0].(map[string]any)
	assert.Equal(t, "2000", rewritten["total"], "trailing zeros are trimmed")
	assert.Equal(t, "-", reparsed["goodsDetails"].([]any)[1].(map[string]any)["taxRate"],
		"deemed sentinel is canonicalized to '-'")
}
