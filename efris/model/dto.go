package model

// ServerTimeResponse is the T101 payload. Note the response-side date
// format, dd/MM/yyyy HH:mm:ss, differs from every request timestamp.
type ServerTimeResponse struct {
	CurrentTime string `json:"currentTime"`
}

// SymmetricKeyResponse is the T104 payload: the AES session key used for
// all subsequent ciphertext, encrypted with the client private key's
// public counterpart, plus a signature value.
type SymmetricKeyResponse struct {
	PasswordDes string `json:"passowrdDes"` // field name is misspelled on the wire
	Sign        string `json:"sign"`
}

// BatchInvoiceItem is one slot of a T129 request array. Content carries a
// full T109 request document as plaintext JSON.
type BatchInvoiceItem struct {
	InvoiceContent   string `json:"invoiceContent"`
	InvoiceSignature string `json:"invoiceSignature"`
}

// BatchInvoiceResult is the same-position slot of a T129 response.
// Successful items carry empty return fields.
type BatchInvoiceResult struct {
	InvoiceContent       string `json:"invoiceContent"`
	InvoiceReturnCode    string `json:"invoiceReturnCode"`
	InvoiceReturnMessage string `json:"invoiceReturnMessage"`
}

// Goods is a T130 goods upload item. The response echoes the item back
// with per-item returnCode/returnMessage on failure.
type Goods struct {
	OperationType       string           `json:"operationType,omitempty"`
	GoodsName           string           `json:"goodsName"`
	GoodsCode           string           `json:"goodsCode"`
	MeasureUnit         string           `json:"measureUnit"`
	UnitPrice           string           `json:"unitPrice,omitempty"`
	Currency            string           `json:"currency"`
	CommodityCategoryID string           `json:"commodityCategoryId"`
	HaveExciseTax       string           `json:"haveExciseTax"`
	Description         string           `json:"description,omitempty"`
	StockPrewarning     string           `json:"stockPrewarning,omitempty"`
	PieceMeasureUnit    string           `json:"pieceMeasureUnit,omitempty"`
	HavePieceUnit       string           `json:"havePieceUnit"`
	PieceUnitPrice      string           `json:"pieceUnitPrice,omitempty"`
	PackageScaledValue  string           `json:"packageScaledValue,omitempty"`
	PieceScaledValue    string           `json:"pieceScaledValue,omitempty"`
	ExciseDutyCode      string           `json:"exciseDutyCode,omitempty"`
	HaveOtherUnit       string           `json:"haveOtherUnit,omitempty"`
	GoodsTypeCode       string           `json:"goodsTypeCode,omitempty"`
	GoodsExtend         *GoodsExtend     `json:"commodityGoodsExtendEntity,omitempty"`
	GoodsOtherUnits     []GoodsOtherUnit `json:"goodsOtherUnits,omitempty"`
	ReturnCode          string           `json:"returnCode,omitempty"`
	ReturnMessage       string           `json:"returnMessage,omitempty"`
}

type GoodsExtend struct {
	CustomsMeasureUnit        string `json:"customsMeasureUnit,omitempty"`
	CustomsUnitPrice          string `json:"customsUnitPrice,omitempty"`
	PackageScaledValueCustoms string `json:"packageScaledValueCustoms,omitempty"`
	CustomsScaledValue        string `json:"customsScaledValue,omitempty"`
}

type GoodsOtherUnit struct {
	OtherUnit     string `json:"otherUnit"`
	OtherPrice    string `json:"otherPrice"`
	OtherScaled   string `json:"otherScaled"`
	PackageScaled string `json:"packageScaled"`
}

// DictionaryResponse is the T115 payload: named code tables, each a list
// of value/name pairs.
type DictionaryResponse struct {
	RateUnit            []DictionaryEntry `json:"rateUnit,omitempty"`
	CurrencyType        []DictionaryEntry `json:"currencyType,omitempty"`
	PayWay              []DictionaryEntry `json:"payWay,omitempty"`
	InvoiceIndustryCode []DictionaryEntry `json:"invoiceIndustryCode,omitempty"`
	TaxCategory         []DictionaryEntry `json:"taxCategory,omitempty"`
	DictionaryVersion   string            `json:"dictionaryVersion,omitempty"`
}

type DictionaryEntry struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// TaxpayerRequest and TaxpayerResponse belong to T119.
type TaxpayerRequest struct {
	Tin    string `json:"tin,omitempty"`
	NinBrn string `json:"ninBrn,omitempty"`
}

type TaxpayerResponse struct {
	Taxpayer Taxpayer `json:"taxpayer"`
}

type Taxpayer struct {
	Tin           string `json:"tin"`
	NinBrn        string `json:"ninBrn,omitempty"`
	LegalName     string `json:"legalName"`
	BusinessName  string `json:"businessName,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	ContactEmail  string `json:"contactEmail,omitempty"`
	TaxpayerType  string `json:"taxpayerType,omitempty"`
	GovernmentTIN string `json:"governmentTIN,omitempty"`
}
