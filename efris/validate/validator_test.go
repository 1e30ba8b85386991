package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-efris-client/efris/schema"
)

func goodsLine(orderNumber, discountFlag string) map[string]any {
	return map[string]any{
		"item":            "Waragi 750ml",
		"itemCode":        "WRG-750",
		"qty":             "2",
		"unitOfMeasure":   "101",
		"unitPrice":       "1000",
		"total":           "2000",
		"taxRate":         "0.18",
		"tax":             "305.08",
		"orderNumber":     orderNumber,
		"discountFlag":    discountFlag,
		"deemedFlag":      "2",
		"exciseFlag":      "2",
		"goodsCategoryId": "50202506",
	}
}

func discountAmountLine(orderNumber string) map[string]any {
	return map[string]any{
		"item":            "Waragi 750ml (discount)",
		"itemCode":        "WRG-750",
		"total":           "-200",
		"taxRate":         "0.18",
		"tax":             "-30.51",
		"orderNumber":     orderNumber,
		"discountFlag":    "0",
		"deemedFlag":      "2",
		"exciseFlag":      "2",
		"goodsCategoryId": "50202506",
	}
}

func invoiceRequest(goods ...map[string]any) map[string]any {
	lines := make([]any, 0, len(goods))
	for _, g := range goods {
		lines = append(lines, g)
	}
	return map[string]any{
		"sellerDetails": map[string]any{
			"tin":          "1000023456",
			"legalName":    "Nile Breweries Ltd",
			"emailAddress": "sales@nile.co.ug",
		},
		"basicInformation": map[string]any{
			"deviceNo":            "TCS5a2ce23146217466",
			"issuedDate":          "2026-08-01 10:30:00",
			"operator":            "aisha",
			"currency":            "UGX",
			"invoiceType":         "1",
			"invoiceKind":         "1",
			"dataSource":          "106",
			"invoiceIndustryCode": "101",
		},
		"buyerDetails": map[string]any{
			"buyerType": "1",
		},
		"goodsDetails": lines,
		"taxDetails": []any{
			map[string]any{
				"taxCategoryCode": "01",
				"netAmount":       "1694.92",
				"taxRate":         "0.18",
				"taxAmount":       "305.08",
				"grossAmount":     "2000",
			},
		},
		"summary": map[string]any{
			"netAmount":   "1694.92",
			"taxAmount":   "305.08",
			"grossAmount": "2000",
			"itemCount":   "1",
			"modeCode":    "1",
		},
		"payWay": []any{
			map[string]any{
				"paymentMode":   "102",
				"paymentAmount": "2000",
				"orderNumber":   "1",
			},
		},
	}
}

func t109Request(t *testing.T) *schema.Descriptor {
	t.Helper()
	d, err := schema.Default().Lookup("T109", schema.Request)
	require.NoError(t, err)
	return d
}

func violationPaths(r Result) []string {
	paths := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		paths = append(paths, v.FieldPath)
	}
	return paths
}

func TestValidInvoicePasses(t *testing.T) {

	result := Document(invoiceRequest(goodsLine("1", "2")), t109Request(t), Options{})
	assert.True(t, result.OK(), "unexpected violations: %s", result.Message())
}

func TestRequiredFieldMissing(t *testing.T) {

	doc := invoiceRequest(goodsLine("1", "2"))
	delete(doc["basicInformation"].(map[string]any), "currency")

	result := Document(doc, t109Request(t), Options{})
	assert.Contains(t, violationPaths(result), "basicInformation.currency")
}

func TestDiscountedItemFollowedByDiscountLine(t *testing.T) {

	doc := invoiceRequest(goodsLine("1", "1"), discountAmountLine("2"))
	line := doc["goodsDetails"].([]any)[0].(map[string]any)
	line["discountTotal"] = "-200"
	doc["summary"].(map[string]any)["itemCount"] = "2"

	result := Document(doc, t109Request(t), Options{})
	assert.True(t, result.OK(), "unexpected violations: %s", result.Message())
}

func TestDiscountLineMustNotCarryQty(t *testing.T) {

	discount := discountAmountLine("2")
	discount["qty"] = "2"

	doc := invoiceRequest(goodsLine("1", "1"), discount)
	doc["goodsDetails"].([]any)[0].(map[string]any)["discountTotal"] = "-200"
	doc["summary"].(map[string]any)["itemCount"] = "2"

	result := Document(doc, t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[1].qty")
}

func TestDiscountLineTotalMustBeNegative(t *testing.T) {

	discount := discountAmountLine("2")
	discount["total"] = "200"
	discount["tax"] = "30.51"

	doc := invoiceRequest(goodsLine("1", "1"), discount)
	doc["goodsDetails"].([]any)[0].(map[string]any)["discountTotal"] = "-200"
	doc["summary"].(map[string]any)["itemCount"] = "2"

	result := Document(doc, t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[1].total")
	assert.Contains(t, violationPaths(result), "goodsDetails[1].tax")
}

func TestFirstLineCannotBeDiscountLine(t *testing.T) {

	doc := invoiceRequest(discountAmountLine("1"), goodsLine("2", "2"))
	doc["summary"].(map[string]any)["itemCount"] = "2"

	result := Document(doc, t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[0].discountFlag")
}

func TestLastLineCannotBeDiscountedItem(t *testing.T) {

	line := goodsLine("1", "1")
	line["discountTotal"] = "-200"

	result := Document(invoiceRequest(line), t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[0].discountFlag")
}

func TestItemCountMustMatchGoodsLines(t *testing.T) {

	doc := invoiceRequest(goodsLine("1", "2"))
	doc["summary"].(map[string]any)["itemCount"] = "3"

	result := Document(doc, t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "summary.itemCount")
}

func TestDeemedTaxRateSentinel(t *testing.T) {

	line := goodsLine("1", "2")
	line["taxRate"] = "-"
	line["deemedFlag"] = "1"
	line["vatProjectId"] = "P-2020-17"
	line["vatProjectName"] = "Hydro dam works"

	result := Document(invoiceRequest(line), t109Request(t), Options{})
	assert.True(t, result.OK(), "unexpected violations: %s", result.Message())
}

func TestTaxRateMustBeNumberWithoutDeemedSentinel(t *testing.T) {

	line := goodsLine("1", "2")
	line["taxRate"] = "abc"

	result := Document(invoiceRequest(line), t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[0].taxRate")
}

func TestPerUnitExciseNeedsPackAndStick(t *testing.T) {

	line := goodsLine("1", "2")
	line["exciseFlag"] = "1"
	line["exciseRule"] = "2"
	line["categoryId"] = "EXC-101"
	line["categoryName"] = "Spirits"
	line["exciseRate"] = "1500"
	line["exciseTax"] = "150"
	line["exciseCurrency"] = "UGX"

	result := Document(invoiceRequest(line), t109Request(t), Options{})
	require.False(t, result.OK())
	paths := violationPaths(result)
	assert.Contains(t, paths, "goodsDetails[0].pack")
	assert.Contains(t, paths, "goodsDetails[0].stick")

	line["pack"] = "1"
	line["stick"] = "20"
	result = Document(invoiceRequest(line), t109Request(t), Options{})
	assert.True(t, result.OK(), "unexpected violations: %s", result.Message())
}

func TestQrCodeRequiredForOfflineMode(t *testing.T) {

	doc := invoiceRequest(goodsLine("1", "2"))
	doc["summary"].(map[string]any)["modeCode"] = "0"

	result := Document(doc, t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "summary.qrCode")
}

func TestIntegerDigitCapOnDecimalString(t *testing.T) {

	line := goodsLine("1", "2")
	line["total"] = "1234567890123.00" // 13 integer digits, cap is 12

	result := Document(invoiceRequest(line), t109Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[0].total")
}

type rejectAllDict struct{}

func (rejectAllDict) IsValidCode(dictionary, code string) bool { return false }

func TestDictionaryMembership(t *testing.T) {

	result := Document(invoiceRequest(goodsLine("1", "2")), t109Request(t), Options{Dict: rejectAllDict{}})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "basicInformation.currency")
}

// ---- credit note rules ----

type stubOriginal struct {
	line OriginalLine
}

func (s stubOriginal) FetchOriginalLine(invoiceID, orderNumber string) (OriginalLine, error) {
	return s.line, nil
}

func creditNoteRequest() map[string]any {
	return map[string]any{
		"oriInvoiceId":             "1000045001",
		"oriInvoiceNo":             "322000045001",
		"reasonCode":               "102",
		"applicationTime":          "2026-08-02 09:00:00",
		"invoiceApplyCategoryCode": "101",
		"currency":                 "UGX",
		"source":                   "103",
		"goodsDetails": []any{
			map[string]any{
				"item":            "Waragi 750ml",
				"itemCode":        "WRG-750",
				"qty":             "-1",
				"unitOfMeasure":   "101",
				"unitPrice":       "1000",
				"total":           "-1000",
				"taxRate":         "0.18",
				"tax":             "-152.54",
				"orderNumber":     "1",
				"deemedFlag":      "2",
				"exciseFlag":      "2",
				"goodsCategoryId": "50202506",
			},
		},
		"taxDetails": []any{
			map[string]any{
				"taxCategoryCode": "01",
				"netAmount":       "-847.46",
				"taxRate":         "0.18",
				"taxAmount":       "-152.54",
				"grossAmount":     "-1000",
			},
		},
		"summary": map[string]any{
			"netAmount":   "-847.46",
			"taxAmount":   "-152.54",
			"grossAmount": "-1000",
			"itemCount":   "1",
			"modeCode":    "1",
		},
	}
}

func t110Request(t *testing.T) *schema.Descriptor {
	t.Helper()
	d, err := schema.Default().Lookup("T110", schema.Request)
	require.NoError(t, err)
	return d
}

func originalWaragiLine() OriginalLine {
	return OriginalLine{
		Fields: map[string]string{
			"item":            "Waragi 750ml",
			"itemCode":        "WRG-750",
			"unitPrice":       "1000",
			"taxRate":         "0.18",
			"orderNumber":     "1",
			"deemedFlag":      "2",
			"exciseFlag":      "2",
			"goodsCategoryId": "50202506",
		},
		RemainingQty:   decimal.NewFromInt(2),
		RemainingTotal: decimal.NewFromInt(2000),
	}
}

func TestValidCreditNotePasses(t *testing.T) {

	opts := Options{Original: stubOriginal{line: originalWaragiLine()}}
	result := Document(creditNoteRequest(), t110Request(t), opts)
	assert.True(t, result.OK(), "unexpected violations: %s", result.Message())
}

func TestCreditNoteAmountsMustBeNegative(t *testing.T) {

	doc := creditNoteRequest()
	line := doc["goodsDetails"].([]any)[0].(map[string]any)
	line["qty"] = "1"
	line["total"] = "1000"
	line["tax"] = "152.54"

	result := Document(doc, t110Request(t), Options{})
	require.False(t, result.OK())
	paths := violationPaths(result)
	assert.Contains(t, paths, "goodsDetails[0].qty")
	assert.Contains(t, paths, "goodsDetails[0].total")
	assert.Contains(t, paths, "goodsDetails[0].tax")
}

func TestCreditNoteQtyCappedByRemaining(t *testing.T) {

	doc := creditNoteRequest()
	line := doc["goodsDetails"].([]any)[0].(map[string]any)
	line["qty"] = "-3" // original has 2 remaining
	line["total"] = "-3000"
	line["tax"] = "-457.62"

	opts := Options{Original: stubOriginal{line: originalWaragiLine()}}
	result := Document(doc, t110Request(t), opts)
	require.False(t, result.OK())

	var codes []string
	for _, v := range result.Violations {
		codes = append(codes, v.Code)
	}
	assert.Contains(t, codes, "1434")
	assert.Contains(t, codes, "1460")
}

func TestCreditNoteFieldsMustMatchOriginal(t *testing.T) {

	doc := creditNoteRequest()
	doc["goodsDetails"].([]any)[0].(map[string]any)["unitPrice"] = "999"

	opts := Options{Original: stubOriginal{line: originalWaragiLine()}}
	result := Document(doc, t110Request(t), opts)
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "goodsDetails[0].unitPrice")
}

func TestReasonRequiredForOtherReasonCode(t *testing.T) {

	doc := creditNoteRequest()
	doc["reasonCode"] = "103"

	result := Document(doc, t110Request(t), Options{})
	require.False(t, result.OK())
	assert.Contains(t, violationPaths(result), "reason")
}
